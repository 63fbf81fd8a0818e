package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server settings and the engine's input limits.
type Config struct {
	Port            int
	MaxPrice        float64
	MaxPrincipal    float64
	MaxMonthlyRent  float64
	MaxRate         float64
	MaxTermYears    int
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	RateLimitRPS    float64
	RateLimitBurst  int
}

// LoadConfig reads the configuration from the environment. A .env file is
// loaded if present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8000),
		MaxPrice:        getEnvFloat("MAX_PRICE", 1e9),
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e9),
		MaxMonthlyRent:  getEnvFloat("MAX_MONTHLY_RENT", 1e6),
		MaxRate:         getEnvFloat("MAX_RATE", 100),
		MaxTermYears:    getEnvInt("MAX_TERM_YEARS", 60),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "immo-engine"),
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 20),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
