package config

import (
	"os"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	TokenSecret string
}

// Stripe configuration
type StripeConfig struct {
	SecretKey string
	Currency  string
}

// CORS configuration
type CORSConfig struct {
	Origins []string
}

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	Stripe StripeConfig
	CORS   CORSConfig
	Env    string
}

// Default configuration values
const (
	DefaultServerPort  = "5000"
	DefaultServerHost  = ""
	DefaultMongoURI    = "mongodb://localhost:27017"
	DefaultMongoDB     = "aweiDb"
	DefaultCurrency    = "usd"
	DefaultCORSOrigins = "http://localhost:5173,http://localhost:5174"
	DefaultEnv         = "development"
	// Pagination defaults
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// New returns a new Config with values from the environment
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			TokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			Currency:  getEnv("PAYMENT_CURRENCY", DefaultCurrency),
		},
		CORS: CORSConfig{
			Origins: splitList(getEnv("CORS_ORIGINS", DefaultCORSOrigins)),
		},
		Env: getEnv("APP_ENV", DefaultEnv),
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// IsProduction reports whether the service runs in production mode.
// Cookie security attributes depend on this.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
