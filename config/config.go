package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Site configuration.
	SiteBaseURL     string `mapstructure:"SITE_BASE_URL"`
	CheckoutBaseURL string `mapstructure:"CHECKOUT_BASE_URL"`
	DefaultLocale   string `mapstructure:"DEFAULT_LOCALE"`
	AffiliateTag    string `mapstructure:"AMAZON_AFFILIATE_TAG"`

	// Stripe configuration.
	StripeKey           string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`

	// Notification provider (Resend).
	ResendAPIKey string `mapstructure:"RESEND_API_KEY"`
	NotifyFrom   string `mapstructure:"NOTIFY_FROM"`
	NotifyTo     string `mapstructure:"NOTIFY_TO"`

	// Google service account for the bookings spreadsheet and Drive uploads.
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	BookingsSheetID       string `mapstructure:"BOOKINGS_SHEET_ID"`
	DriveFolderID         string `mapstructure:"DRIVE_FOLDER_ID"`

	// Form submission rate limiting.
	FormRateMax       int `mapstructure:"FORM_RATE_MAX"`
	FormRateWindowSec int `mapstructure:"FORM_RATE_WINDOW_SEC"`

	// Redis configuration (optional; enables the shared submission counter).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SITE_BASE_URL", "https://www.sportello.org.uk")
	viper.SetDefault("CHECKOUT_BASE_URL", "")
	viper.SetDefault("DEFAULT_LOCALE", "en")
	viper.SetDefault("AMAZON_AFFILIATE_TAG", "")
	// Secrets have no sensible default, but registering the keys is what
	// lets AutomaticEnv surface them through Unmarshal when no config
	// file exists.
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("RESEND_API_KEY", "")
	viper.SetDefault("NOTIFY_FROM", "")
	viper.SetDefault("NOTIFY_TO", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "")
	viper.SetDefault("BOOKINGS_SHEET_ID", "")
	viper.SetDefault("DRIVE_FOLDER_ID", "")
	viper.SetDefault("FORM_RATE_MAX", 5)
	viper.SetDefault("FORM_RATE_WINDOW_SEC", 60)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
