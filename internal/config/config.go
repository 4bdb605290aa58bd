package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataFile  string
	LogFile   string
	LogLevel  string
	AdminFile string
}

func Load() *Config {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	return &Config{
		DataFile:  getEnv("TRACKER_DATA_FILE", "data.json"),
		LogFile:   getEnv("TRACKER_LOG_FILE", "app.log"),
		LogLevel:  getEnv("TRACKER_LOG_LEVEL", "info"),
		AdminFile: getEnv("TRACKER_ADMIN_FILE", "admin.txt"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
