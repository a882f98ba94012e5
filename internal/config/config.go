package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	AppEnv         string
	HorizonDays    int
	AuditQueueSize int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "production"),
		HorizonDays:    getEnvInt("BOOKING_HORIZON_DAYS", 15),
		AuditQueueSize: getEnvInt("AUDIT_QUEUE_SIZE", 100),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
