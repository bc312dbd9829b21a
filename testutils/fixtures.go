package testutils

import (
	"time"

	"github.com/yoursport/admin-api/config"
	"golang.org/x/crypto/bcrypt"
)

func GetTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "Test App",
			URL:  "http://localhost:8080",
		},
		Auth: config.AuthConfig{
			BcryptCost:       bcrypt.MinCost,
			MinLength:        8,
			ResetTokenLength: 32,
			ResetTokenExpiry: time.Hour,
		},
		JWT: config.JWTConfig{
			SecretKey:     "test-secret-key-32-chars-long!!",
			Issuer:        "test-issuer",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 7 * 24 * time.Hour,
		},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			DSN:    ":memory:",
		},
		RateLimit: config.RateLimitConfig{
			Enabled:  false,
			Requests: 10,
			Window:   time.Minute,
		},
	}
}
