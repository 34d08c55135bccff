package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Mongo configuration.
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSchedulerDB int    `mapstructure:"REDIS_SCHEDULER_DB"`

	// All appointment times are local to this single business timezone.
	BusinessTimezone string `mapstructure:"BUSINESS_TIMEZONE"`

	// Availability engine tuning.
	StoreTimeoutMS     int `mapstructure:"STORE_TIMEOUT_MS"`
	StoreRetries       int `mapstructure:"STORE_RETRIES"`
	RangeConcurrency   int `mapstructure:"RANGE_CONCURRENCY"`
	MaxRangeDays       int `mapstructure:"MAX_RANGE_DAYS"`
	CacheTTLSeconds    int `mapstructure:"AVAILABILITY_CACHE_TTL_SECONDS"`
	PrewarmDays        int `mapstructure:"PREWARM_DAYS"`
	PrewarmIntervalMin int `mapstructure:"PREWARM_INTERVAL_MIN"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "gearbook")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SCHEDULER_DB", 1)
	viper.SetDefault("BUSINESS_TIMEZONE", "America/Chicago")
	viper.SetDefault("STORE_TIMEOUT_MS", 5000)
	viper.SetDefault("STORE_RETRIES", 2)
	viper.SetDefault("RANGE_CONCURRENCY", 4)
	viper.SetDefault("MAX_RANGE_DAYS", 60)
	viper.SetDefault("AVAILABILITY_CACHE_TTL_SECONDS", 30)
	viper.SetDefault("PREWARM_DAYS", 7)
	viper.SetDefault("PREWARM_INTERVAL_MIN", 15)

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

// BusinessLocation resolves the configured business timezone. A bad value
// is a deployment error, so it is fatal at startup.
func BusinessLocation() *time.Location {
	loc, err := time.LoadLocation(AppConfig.BusinessTimezone)
	if err != nil {
		log.Fatalf("invalid BUSINESS_TIMEZONE %q: %v", AppConfig.BusinessTimezone, err)
	}
	return loc
}

// StoreTimeout returns the bounded timeout applied to every external-store
// read.
func StoreTimeout() time.Duration {
	return time.Duration(AppConfig.StoreTimeoutMS) * time.Millisecond
}
