package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the server reads from the environment.
type Config struct {
	HTTPPort      string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string

	CORSAllowedOrigins string

	// DemoOnly serves only the demo endpoints and skips all database
	// connections, mirroring the original DEMO_MODE deployment switch.
	DemoOnly bool

	// DemoStore selects the demo session backend: "memory" or "redis".
	DemoStore         string
	DemoIdleTimeout   time.Duration
	DemoSweepInterval time.Duration

	AdminUsername string
	AdminPassword string
	JWTSecret     string

	ImportURL string
}

// Load reads the configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		HTTPPort:      getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "fragenspiel"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),

		DemoOnly:          getEnvBool("DEMO_ONLY", false),
		DemoStore:         getEnv("DEMO_STORE", "memory"),
		DemoIdleTimeout:   getEnvDuration("DEMO_IDLE_TIMEOUT", 30*time.Minute),
		DemoSweepInterval: getEnvDuration("DEMO_SWEEP_INTERVAL", 5*time.Minute),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "password123"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-in-production"),

		ImportURL: os.Getenv("IMPORT_URL"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}
