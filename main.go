// File: sportello/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportello/config"
	"sportello/handlers"
	"sportello/i18n"
	"sportello/middleware"
	"sportello/routes"
	bookingSvc "sportello/services/booking"
	"sportello/services/notify"
	paymentSvc "sportello/services/payment"
	"sportello/services/records"
	"sportello/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := i18n.Init(); err != nil {
		logger.Sugar().Fatalf("main: failed to initialize i18n bundle: %v", err)
	}
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// services.
	intentService := paymentSvc.NewIntentService(paymentSvc.StripeIntentCreator{}, logger)

	var mailer notify.Mailer
	if config.AppConfig.ResendAPIKey != "" {
		m, err := notify.NewResendMailer(
			config.AppConfig.ResendAPIKey,
			config.AppConfig.NotifyFrom,
			config.AppConfig.NotifyTo,
			logger,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize mailer: %v", err)
		}
		mailer = m
	} else {
		logger.Sugar().Warn("main: RESEND_API_KEY not set, booking notifications disabled")
	}

	var recorder records.Recorder
	if config.AppConfig.GoogleCredentialsFile != "" {
		rec, err := records.NewGoogleRecorder(
			context.Background(),
			config.AppConfig.GoogleCredentialsFile,
			config.AppConfig.BookingsSheetID,
			config.AppConfig.DriveFolderID,
			logger,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize booking recorder: %v", err)
		}
		recorder = rec
	} else {
		logger.Sugar().Warn("main: GOOGLE_CREDENTIALS_FILE not set, booking records disabled")
	}

	submissionService := bookingSvc.NewSubmissionService(
		mailer,
		recorder,
		config.AppConfig.CheckoutBaseURL,
		logger,
	)

	paymentHandler := handlers.NewPaymentHandler(intentService, logger)
	bookingHandler := handlers.NewBookingHandler(submissionService, logger)
	webhookHandler := handlers.NewWebhookHandler(config.AppConfig.StripeWebhookSecret, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateIntentHandler:  paymentHandler.CreateIntentHandler,
		SubmitFormHandler:    bookingHandler.SubmitHandler,
		StripeWebhookHandler: webhookHandler.StripeWebhookHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
