package auth

import (
	"fmt"
	"os"

	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" mapstructure:"jwt_secret"`

	// Token lifetimes in minutes
	SessionTokenTTL int `yaml:"session_token_ttl" mapstructure:"session_token_ttl"`
	VerifyTokenTTL  int `yaml:"verify_token_ttl" mapstructure:"verify_token_ttl"`
	ResetTokenTTL   int `yaml:"reset_token_ttl" mapstructure:"reset_token_ttl"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if _, statErr := os.Stat(configPath); configPath == "" || statErr == nil {
				return nil, fmt.Errorf("error reading auth config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Environment variable wins for the secret
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if config.JWTSecret == "" {
		return nil, &apperrors.ConfigurationError{Message: "jwt_secret is required"}
	}

	return &config, nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("session_token_ttl", 12*60)
	v.SetDefault("verify_token_ttl", 60)
	v.SetDefault("reset_token_ttl", 30)
}
