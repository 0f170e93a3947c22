package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// AppConfig is the web server's own configuration.
type AppConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	Digest          DigestConfig  `mapstructure:"digest"`
}

// DigestConfig controls the scheduled yesterday-report digest.
type DigestConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// LoadAppConfig reads the app config file when a path is given, otherwise
// returns defaults.
func LoadAppConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("digest.enabled", false)
	v.SetDefault("digest.schedule", "0 6 * * *")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	return &cfg, nil
}
