package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the HTTP server.
type Config struct {
	Port string
}

// Load reads configuration from the environment, loading a .env file first
// when one exists. Missing values fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{Port: port}
}
