package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	FirebaseApiKey  string
	Environment     string

	// Payment simulation knobs. The real gateway is out of scope; the
	// sandbox processor uses these to shape its behavior.
	PaymentSuccessRate float64
	PaymentDelay       time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		FirebaseProject:    getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:     getEnv("FIREBASE_API_KEY", ""),
		Environment:        getEnv("ENVIRONMENT", "development"),
		PaymentSuccessRate: getEnvAsFloat("PAYMENT_SUCCESS_RATE", 0.9),
		PaymentDelay:       time.Duration(getEnvAsInt64("PAYMENT_DELAY_MS", 1500)) * time.Millisecond,
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatValue
		}
	}
	return defaultValue
}
