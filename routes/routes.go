package routes

import (
	"net/http"
	"time"

	"sportello/config"
	"sportello/handlers"
	"sportello/i18n"
	"sportello/middleware"
	"sportello/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPaymentRoutes registers the payment intent endpoints. A single
// parameterized handler serves every service in the catalog.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/:service/intent", hb.CreateIntentHandler)
	}
}

// RegisterFormRoutes registers the form/booking submission endpoints behind
// the per-IP submission rate limit.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	window := time.Duration(config.AppConfig.FormRateWindowSec) * time.Second
	api := r.Group("/api/forms")
	{
		api.Use(middleware.SubmissionRateLimit(utils.GetRateLimitClient(), config.AppConfig.FormRateMax, window))
		api.POST("/:form", hb.SubmitFormHandler)
	}
}

// RegisterWebhookRoutes registers the processor webhook receiver.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/webhook/stripe", hb.StripeWebhookHandler)
}

// RegisterSiteRoutes registers the sitemap, robots and affiliate endpoints.
func RegisterSiteRoutes(r *gin.Engine) {
	r.GET("/sitemap.xml", handlers.SitemapHandler)
	r.GET("/robots.txt", handlers.RobotsHandler)
	r.GET("/api/affiliate/:slug", handlers.AffiliateRedirectHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Sportello"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(i18n.Middleware())
	r.Use(middleware.LocaleRedirect())

	RegisterPaymentRoutes(r, hb)
	RegisterFormRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterSiteRoutes(r)
	RegisterHealthRoute(r)
}
