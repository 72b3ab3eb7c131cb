package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Schema   string
	SSLMode  string
}

// S3Config holds the object storage settings for generated remedy images.
type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	PublicBaseURL   string
}

// OpenAIConfig holds the upstream generative API settings.
// The key is read once at startup; a missing key is a fatal
// configuration error, never a per-request one.
type OpenAIConfig struct {
	APIKey         string
	RequestTimeout time.Duration
}

// Config is the full application configuration, loaded once in main.
type Config struct {
	Port int

	OpenAI OpenAIConfig
	S3     S3Config
	DB     DBConfig

	// BatchDelay is the pause between sequential image generations.
	// Injectable so the pacing contract can be tested with a near-zero value.
	BatchDelay time.Duration

	// AnalysisCacheSize bounds the LRU cache of symptom analyses.
	AnalysisCacheSize int
}

// Load reads configuration from the environment (and .env when present)
// and validates the required fields.
func Load() (*Config, error) {
	// A missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		Port: intEnv("PORT", 8080),
		OpenAI: OpenAIConfig{
			APIKey:         os.Getenv("OPENAI_API_KEY"),
			RequestTimeout: durationEnv("OPENAI_REQUEST_TIMEOUT_SECONDS", 120*time.Second),
		},
		S3: S3Config{
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
			Region:          envOr("S3_REGION", "us-east-1"),
			Bucket:          envOr("S3_BUCKET", "remedy-images"),
			PublicBaseURL:   os.Getenv("S3_PUBLIC_BASE_URL"),
		},
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     intEnv("DB_PORT", 5432),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: os.Getenv("DB_NAME"),
			Schema:   envOr("DB_SCHEMA", "public"),
			SSLMode:  envOr("DB_SSL_MODE", "disable"),
		},
		BatchDelay:        durationEnv("IMAGE_BATCH_DELAY_SECONDS", 12*time.Second),
		AnalysisCacheSize: intEnv("ANALYSIS_CACHE_SIZE", 128),
	}

	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.S3.AccessKeyID == "" {
		return nil, fmt.Errorf("S3_ACCESS_KEY_ID is required")
	}
	if cfg.S3.SecretAccessKey == "" {
		return nil, fmt.Errorf("S3_SECRET_ACCESS_KEY is required")
	}
	if cfg.DB.Host == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	if cfg.DB.User == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	if cfg.DB.Database == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}

	return cfg, nil
}

// DSN returns the pgx connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s&search_path=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Database, c.DB.SSLMode, c.DB.Schema)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v != 0 {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return time.Duration(v) * time.Second
	}
	return fallback
}
