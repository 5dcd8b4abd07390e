// Package config loads and validates the application configuration from
// environment variables and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and, when present, a
// config.yaml in the working directory. Environment variables take precedence
// over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults: the public API contract specifies port 3000 when no port is
	// configured.
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; anything else is a real problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with TAREAS_ prefix, e.g. TAREAS_SERVER_PORT
	v.SetEnvPrefix("TAREAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind the variables AutomaticEnv cannot discover through
	// the defaults above.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"server.port", "TAREAS_SERVER_PORT"},
		{"server.log_level", "TAREAS_SERVER_LOG_LEVEL"},
		{"database.url", "TAREAS_DATABASE_URL"},
		{"auth.jwt_secret", "TAREAS_AUTH_JWT_SECRET"},
		{"auth.token_lifetime_minutes", "TAREAS_AUTH_TOKEN_LIFETIME_MINUTES"},
	}
	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
