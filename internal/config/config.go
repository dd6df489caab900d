package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from the environment.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Object storage bucket the drone images live in
	StorageBucket string `env:"STORAGE_BUCKET"`

	// Detection model
	ModelPath           string   `env:"MODEL_PATH" envDefault:"model/best.onnx"`
	ModelClassNames     []string `env:"MODEL_CLASS_NAMES" envDefault:"fire,smoke"`
	DetectionConfidence float64  `env:"DETECTION_CONFIDENCE" envDefault:"0.6"`

	// Simulation
	SimMaxDetections  int           `env:"SIM_MAX_DETECTIONS" envDefault:"4"`
	SimDetectionDelay time.Duration `env:"SIM_DETECTION_DELAY" envDefault:"2s"`
	SimStopTimeout    time.Duration `env:"SIM_STOP_TIMEOUT" envDefault:"1s"`

	// Twilio SMS
	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `env:"TWILIO_PHONE_NUMBER"`
	AlertPhoneNumber string `env:"PHONE_NUMBER"`

	// NATS fire-event fan-out (optional, disabled when empty)
	NatsURL string `env:"NATS_URL"`

	// Webhook forwarding for created alerts
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig loads configuration from environment variables and an optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		StorageBucket:       os.Getenv("STORAGE_BUCKET"),
		ModelPath:           getEnv("MODEL_PATH", "model/best.onnx"),
		DetectionConfidence: getEnvAsFloat("DETECTION_CONFIDENCE", 0.6),
		SimMaxDetections:    getEnvAsInt("SIM_MAX_DETECTIONS", 4),
		SimDetectionDelay:   getEnvAsDuration("SIM_DETECTION_DELAY", 2*time.Second),
		SimStopTimeout:      getEnvAsDuration("SIM_STOP_TIMEOUT", time.Second),
		TwilioAccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:     os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
		AlertPhoneNumber:    os.Getenv("PHONE_NUMBER"),
		NatsURL:             os.Getenv("NATS_URL"),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Class names the detection model was trained with, in index order.
	for _, name := range strings.Split(getEnv("MODEL_CLASS_NAMES", "fire,smoke"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.ModelClassNames = append(cfg.ModelClassNames, name)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.StorageBucket == "" {
		return nil, fmt.Errorf("STORAGE_BUCKET environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or the default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable parsed as int or the default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns an environment variable parsed as float64 or the default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable parsed as time.Duration or the default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
