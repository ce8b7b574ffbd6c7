package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// It is constructed once in main and passed by reference; nothing reads the
// environment after Load returns.
type Config struct {
	// Server
	Port        int    `mapstructure:"PORT"`
	Env         string `mapstructure:"APP_ENV"` // development | production
	ProjectName string `mapstructure:"PROJECT_NAME"`

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Auth
	JWTSecret                string `mapstructure:"JWT_SECRET"`
	JWTAlgorithm             string `mapstructure:"JWT_ALGORITHM"`
	AccessTokenExpireMinutes int    `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES"`

	// HTTP surface
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"` // comma-separated
	LogLevel           string `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from environment variables (and optional .env file).
// JWT_SECRET and DATABASE_URL have no defaults: the process must not come up
// without them.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PROJECT_NAME", "Brumas API")
	viper.SetDefault("JWT_ALGORITHM", "HS256")
	// 8 days, matching the original deployment
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24*8)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("config: JWT_SECRET não definido")
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("config: DATABASE_URL não definido")
	}
	return cfg, nil
}
