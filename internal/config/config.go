// Package config provides configuration management for the application.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application.
type Config struct {
	// Loan bounds
	MinLoanAmount int
	MaxLoanAmount int
	MinLoanPeriod int
	MaxLoanPeriod int

	// Credit segment modifiers. The debt segment always has modifier 0
	// and is not configurable.
	Segment1Modifier int
	Segment2Modifier int
	Segment3Modifier int

	// AmountStep is the granularity of the amount search; approved
	// amounts are always multiples of it.
	AmountStep int

	// Applicant age window (inclusive)
	MinAge int
	MaxAge int

	// HTTP server
	HTTPAddr    string
	HTTPTimeout time.Duration

	// Application
	Stage    string
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		// Loan bounds
		MinLoanAmount: getEnvInt("MIN_LOAN_AMOUNT", 2000),
		MaxLoanAmount: getEnvInt("MAX_LOAN_AMOUNT", 10000),
		MinLoanPeriod: getEnvInt("MIN_LOAN_PERIOD", 12),
		MaxLoanPeriod: getEnvInt("MAX_LOAN_PERIOD", 60),

		// Segment modifiers
		Segment1Modifier: getEnvInt("SEGMENT_1_CREDIT_MODIFIER", 100),
		Segment2Modifier: getEnvInt("SEGMENT_2_CREDIT_MODIFIER", 300),
		Segment3Modifier: getEnvInt("SEGMENT_3_CREDIT_MODIFIER", 1000),

		AmountStep: getEnvInt("LOAN_AMOUNT_STEP", 100),

		// Age window
		MinAge: getEnvInt("MIN_CLIENT_AGE", 18),
		MaxAge: getEnvInt("MAX_CLIENT_AGE", 80),

		// HTTP server
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 5*time.Second),

		// Application
		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as int or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration retrieves an environment variable as duration or returns a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
