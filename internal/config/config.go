package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	LogLevel          string
	JWTSecret         string
	WidgetServiceURL  string
	SurveyServiceURL  string
	SampleServiceURL  string
	CatalogServiceURL string
	HTTPTimeout       time.Duration
}

func New() *Config {
	// Local runs keep overrides in a .env file; deployed environments set
	// real env vars and the load is a no-op.
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          os.Getenv("LOGLEVEL"),
		JWTSecret:         os.Getenv("JWTSECRET"),
		WidgetServiceURL:  os.Getenv("WIDGETSERVICEURL"),
		SurveyServiceURL:  os.Getenv("SURVEYSERVICEURL"),
		SampleServiceURL:  os.Getenv("SAMPLESERVICEURL"),
		CatalogServiceURL: os.Getenv("CATALOGSERVICEURL"),
		HTTPTimeout:       getSeconds("HTTPTIMEOUTSECONDS", 10),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getSeconds(key string, fallback int) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if val, err := strconv.Atoi(raw); err == nil && val > 0 {
			return time.Duration(val) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
