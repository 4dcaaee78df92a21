package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/oleksir/inkpad/internal/flagx"
	"github.com/oleksir/inkpad/internal/timex"
)

// JsonConfig is the intermediate DTO for reading JSON configuration files.
// Duration fields accept either strings ("1h") or integer nanoseconds.
type JsonConfig struct {
	Addr          string         `json:"addr"`
	DatabaseDSN   string         `json:"database_dsn"`
	SecretKey     string         `json:"secret_key"`
	TokenValidity timex.Duration `json:"token_validity"`
	CookieMaxAge  timex.Duration `json:"cookie_max_age"`
	BcryptCost    int            `json:"bcrypt_cost"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags, if any. An unreadable or invalid file is a fatal
// startup mistake and panics. Zero-valued fields leave the current
// configuration untouched.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidity.Duration != 0 {
		config.TokenValidity = time.Duration(c.TokenValidity.Duration)
	}
	if c.CookieMaxAge.Duration != 0 {
		config.CookieMaxAge = time.Duration(c.CookieMaxAge.Duration)
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}
