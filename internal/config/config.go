package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort          string // Application port
	DBUser           string // Database user
	DBPassword       string // Database password
	DBHost           string // Database host
	DBPort           string // Database port
	DBName           string // Database name
	DBPoolSize       int    // Maximum open database connections
	DBMaxIdle        int    // Maximum idle database connections
	DBConnMaxIdleSec int    // Seconds before an idle connection is closed
	RedisAddr        string // Redis server address
	RedisPass        string // Redis password
	RedisDB          int    // Redis database number
	IsProd           bool   // Is production environment (requires TLS to the database)
}

// envInt reads an integer environment variable with a fallback default
func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v // Use the configured value if valid
	}
	return def // Fall back to the default
}

// envStr reads a string environment variable with a fallback default
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:          envStr("APP_PORT", "3000"),          // Application port
		DBUser:           os.Getenv("DB_USER"),                // Database user
		DBPassword:       os.Getenv("DB_PASSWORD"),            // Database password
		DBHost:           envStr("DB_HOST", "localhost"),      // Database host
		DBPort:           envStr("DB_PORT", "3306"),           // Database port
		DBName:           os.Getenv("DB_NAME"),                // Database name
		DBPoolSize:       envInt("DB_POOL_SIZE", 20),          // Maximum open connections
		DBMaxIdle:        envInt("DB_MAX_IDLE", 10),           // Maximum idle connections
		DBConnMaxIdleSec: envInt("DB_CONN_MAX_IDLE_SEC", 30),  // Idle connection timeout
		RedisAddr:        envStr("REDIS_ADDR", "localhost:6379"), // Redis server address
		RedisPass:        os.Getenv("REDIS_PASS"),             // Redis password
		RedisDB:          redisDB,                             // Redis database number
		IsProd:           os.Getenv("IS_PROD") == "true",      // Is production environment
	}
}
