package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// SchedulerBackendMemory arms one in-process timer per complaint
	SchedulerBackendMemory = "memory"
	// SchedulerBackendRedis keeps pending assignments in a Redis sorted set
	SchedulerBackendRedis = "redis"

	// DefaultAssignmentDelay matches the delay between registration and officer assignment
	DefaultAssignmentDelay = 15 * time.Second
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	UploadDir   string
	// Logging
	LogLevel  string
	LogFormat string
	// Assignment scheduling
	AssignmentDelay         time.Duration
	SchedulerBackend        string
	RedisAddr               string
	RedisPassword           string
	RedisDB                 int
	RedisPollInterval       time.Duration
	AssignmentSweepSchedule string // cron spec, "off" disables the sweep
	ExportSchedule          string // cron spec, "off" disables nightly exports
	Timezone                string
	// Entity extraction (OpenAI is used when a key is present)
	OpenAIAPIKey string
	OpenAIModel  string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged instead of sent
	DispatchEmail string
	// Admin
	AdminBootstrapPassword string
	// PDF rendering
	ChromePath string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		DBPath:                  getEnv("DB_PATH", "db/trace.db"),
		Environment:             getEnv("ENVIRONMENT", "development"),
		UploadDir:               getEnv("UPLOAD_DIR", "static/uploads"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		LogFormat:               getEnv("LOG_FORMAT", "console"),
		AssignmentDelay:         getEnvDuration("ASSIGNMENT_DELAY", DefaultAssignmentDelay),
		SchedulerBackend:        getEnv("SCHEDULER_BACKEND", SchedulerBackendMemory),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		RedisDB:                 getEnvInt("REDIS_DB", 0),
		RedisPollInterval:       getEnvDuration("REDIS_POLL_INTERVAL", time.Second),
		AssignmentSweepSchedule: getEnv("ASSIGNMENT_SWEEP_SCHEDULE", "@every 1m"),
		ExportSchedule:          getEnv("EXPORT_SCHEDULE", "0 2 * * *"),
		Timezone:                getEnv("TIMEZONE", "Asia/Kolkata"),
		OpenAIAPIKey:            getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:             getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		ResendAPIKey:            getEnv("RESEND_API_KEY", ""),
		EmailFrom:               getEnv("EMAIL_FROM", "noreply@trace.local"),
		EmailFromName:           getEnv("EMAIL_FROM_NAME", "TRACE System"),
		EmailTestMode:           getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		DispatchEmail:           getEnv("DISPATCH_EMAIL", ""),
		AdminBootstrapPassword:  getEnv("ADMIN_BOOTSTRAP_PASSWORD", ""),
		ChromePath:              getEnv("CHROME_PATH", ""),
		R2AccountID:             getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:           getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:       getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:            getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:             getEnv("R2_PUBLIC_URL", ""),
	}
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARNING] Invalid integer for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// getEnvDuration accepts Go durations ("15s") or a bare number of seconds ("15")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
