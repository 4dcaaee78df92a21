package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config values from the process environment. A .env file
// in the working directory is loaded first when present; existing variables
// are not overridden by it.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("INKPAD_ADDR"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("INKPAD_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("INKPAD_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("INKPAD_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
	if v := os.Getenv("INKPAD_COOKIE_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.CookieMaxAge = d
		}
	}
	if v := os.Getenv("INKPAD_BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
