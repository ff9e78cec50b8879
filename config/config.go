package config

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL       string        `envconfig:"DATABASE_URL"         required:"true"`
	HTTPPort          string        `envconfig:"HTTP_PORT"            default:":8080"`
	GrpcPort          string        `envconfig:"GRPC_PORT"            default:":50051"` // health checks only
	LogLevel          string        `envconfig:"LOG_LEVEL"            default:"info"`
	JWTSecret         string        `envconfig:"JWT_SECRET"           required:"true"`
	JWTTTL            time.Duration `envconfig:"JWT_TTL"              default:"24h"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS"    default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS"    default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	AutoMigrate       bool          `envconfig:"AUTO_MIGRATE"         default:"false"`
	CORSOrigins       string        `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	RateLimitRPS      float64       `envconfig:"RATE_LIMIT_RPS"       default:"20"`
	RateLimitBurst    int           `envconfig:"RATE_LIMIT_BURST"     default:"40"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT"     default:"10s"`
	AdminUsername     string        `envconfig:"ADMIN_USERNAME"`
	AdminPassword     string        `envconfig:"ADMIN_PASSWORD"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s", config.HTTPPort, config.GrpcPort, config.LogLevel)
		if config.DatabaseURL != "" {
			logger.Info("Configuration loaded: DatabaseURL is set")
		} else {
			logger.Fatal("Configuration error: DATABASE_URL is not set")
		}
	})
	return &config
}

// Process reads the configuration from the environment without touching the
// package-level singleton.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
