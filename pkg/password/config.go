package password

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadConfig builds a policy from PASSWORD_* environment variables,
// falling back to the documented defaults for unset values. A .env file in
// the working directory is loaded once per process if present.
//
//	PASSWORD_MIN_LENGTH=12 PASSWORD_REQUIRE_SPECIAL=false
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
