package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     int
	LogLevel string
}

// Load reads .env if one exists, then the environment. The relay listens
// on 4000 unless PORT says otherwise.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:     4000,
		LogLevel: "info",
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}
