package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	Env         string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking policy.
	BookingTimezone       string `mapstructure:"BOOKING_TIMEZONE"`
	BookingHorizonMonths  int    `mapstructure:"BOOKING_HORIZON_MONTHS"`
	LimitedSeatsThreshold int    `mapstructure:"BOOKING_LIMITED_SEATS_THRESHOLD"`

	// Pricing.
	FullPackagePrice   float64 `mapstructure:"PRICING_FULL_PACKAGE"`
	GroupPackagePrice  float64 `mapstructure:"PRICING_GROUP_PACKAGE"`
	TestReadinessPrice float64 `mapstructure:"PRICING_TEST_READINESS"`
	ExtendedGroupRates bool    `mapstructure:"PRICING_EXTENDED_GROUP_RATES"`

	// CORS.
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("BOOKING_TIMEZONE", "Australia/Canberra")
	viper.SetDefault("BOOKING_HORIZON_MONTHS", 3)
	viper.SetDefault("BOOKING_LIMITED_SEATS_THRESHOLD", 6)
	viper.SetDefault("PRICING_FULL_PACKAGE", 995.0)
	viper.SetDefault("PRICING_GROUP_PACKAGE", 499.0)
	viper.SetDefault("PRICING_TEST_READINESS", 150.0)
	viper.SetDefault("PRICING_EXTENDED_GROUP_RATES", false)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"*"})

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
