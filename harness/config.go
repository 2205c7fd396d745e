package harness

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration for the sampling harness
type Config struct {
	Strategy              string // "basic" or "weighted"
	BufferSize            int
	InitialCollisionCheck bool
	MaxAttempts           int
	SampleRate            float64 // draws per second, 0 = unlimited
	CacheSize             int     // 0 disables the verdict cache
	RegistryPath          string
	GenerateTimeout       time.Duration
	MetricsPort           string
	LogLevel              string
	JaegerEndpoint        string // empty disables tracing
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Strategy:              getEnv("SAMPLER_STRATEGY", "weighted"),
		BufferSize:            getEnvInt("SAMPLER_BUFFER_SIZE", 10),
		InitialCollisionCheck: getEnvBool("SAMPLER_INITIAL_COLLISION_CHECK", false),
		MaxAttempts:           getEnvInt("SAMPLER_MAX_ATTEMPTS", 1000),
		SampleRate:            getEnvFloat("SAMPLER_RATE", 0),
		CacheSize:             getEnvInt("SAMPLER_CACHE_SIZE", 0),
		RegistryPath:          getEnv("SAMPLER_REGISTRY", "requirements.yaml"),
		GenerateTimeout:       getEnvDuration("SAMPLER_GENERATE_TIMEOUT", "30s"),
		MetricsPort:           getEnv("SAMPLER_METRICS_PORT", "8082"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		JaegerEndpoint:        getEnv("SAMPLER_JAEGER", ""),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
