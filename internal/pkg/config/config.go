package config

import (
	"log"
	"time"

	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an env file (when present) overlaid with environment variables
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "towjek-rides")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 9992)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "towjek")

	v.SetDefault("PRICING_BASE_FARE", 50.0)
	v.SetDefault("PRICING_PER_KM_RATE", 4.5)
	v.SetDefault("PRICING_CURRENCY", "BRL")

	v.SetDefault("RIDES_PROPOSAL_TTL", "10m")
	v.SetDefault("RIDES_SWEEP_INTERVAL", "30s")
	v.SetDefault("RIDES_DEFAULT_PAGE_SIZE", 20)
	v.SetDefault("RIDES_MAX_PAGE_SIZE", 100)
	v.SetDefault("RIDES_GEOHASH_PRECISION", 5)

	v.SetDefault("RATE_LIMIT_PROPOSAL_LIMIT", 10)
	v.SetDefault("RATE_LIMIT_PROPOSAL_PERIOD", "1m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_TYPE", "json")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	configs.NATS.URL = v.GetString("NATS_URL")

	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	configs.APIKey.Internal = v.GetString("API_KEY_INTERNAL")

	configs.Pricing.BaseFare = v.GetFloat64("PRICING_BASE_FARE")
	configs.Pricing.PerKmRate = v.GetFloat64("PRICING_PER_KM_RATE")
	configs.Pricing.Currency = v.GetString("PRICING_CURRENCY")

	configs.Rides.ProposalTTL = durationOr(v, "RIDES_PROPOSAL_TTL", 10*time.Minute)
	configs.Rides.SweepInterval = durationOr(v, "RIDES_SWEEP_INTERVAL", 30*time.Second)
	configs.Rides.DefaultPageSize = v.GetInt("RIDES_DEFAULT_PAGE_SIZE")
	configs.Rides.MaxPageSize = v.GetInt("RIDES_MAX_PAGE_SIZE")
	configs.Rides.GeohashPrecision = v.GetUint("RIDES_GEOHASH_PRECISION")

	configs.RateLimit.ProposalLimit = v.GetInt("RATE_LIMIT_PROPOSAL_LIMIT")
	configs.RateLimit.ProposalPeriod = durationOr(v, "RATE_LIMIT_PROPOSAL_PERIOD", time.Minute)

	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	return configs
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d := v.GetDuration(key)
	if d <= 0 {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, fallback)
		return fallback
	}
	return d
}
