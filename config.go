package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the full server configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig holds listener and connection limits
type ServerConfig struct {
	Addr          string `mapstructure:"addr"`
	ClientDir     string `mapstructure:"client_dir"`
	MaxConnsPerIP int    `mapstructure:"max_conns_per_ip"`
	MaxTotalConns int    `mapstructure:"max_total_conns"`
}

// DatabaseConfig holds the SQLite settings
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig holds account/session settings
type AuthConfig struct {
	TokenTTLHours int `mapstructure:"token_ttl_hours"`
}

// LoadConfig loads configuration from a file (optional) with env overrides.
// Missing file is not an error; defaults apply.
func LoadConfig(configPath string) (Config, error) {
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.client_dir", "./client")
	viper.SetDefault("server.max_conns_per_ip", 8)
	viper.SetDefault("server.max_total_conns", 512)
	viper.SetDefault("database.path", "brawler.db")
	viper.SetDefault("auth.token_ttl_hours", 7*24)

	viper.SetEnvPrefix("brawler")
	viper.AutomaticEnv()

	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
