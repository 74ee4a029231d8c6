package auth

import (
	"fmt"
	"time"

	"trainit-backend/internal/config"
)

// DefaultIssuer is the iss claim of every token this service signs
const DefaultIssuer = "trainit-backend"

// AuthConfig holds the token settings of the authentication service
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret" json:"jwt_secret"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" json:"access_token_ttl"`
	Issuer         string        `yaml:"issuer" json:"issuer"`
}

// NewAuthConfig derives the auth settings from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:      cfg.JWTSecret,
		AccessTokenTTL: time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute,
		Issuer:         DefaultIssuer,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("access token lifetime must be positive")
	}

	if c.Issuer == "" {
		c.Issuer = DefaultIssuer
	}

	return nil
}
