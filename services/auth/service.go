package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/yoursport/admin-api/config"
	"github.com/yoursport/admin-api/services/logging"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPasswordHashingFailed = errors.New("failed to hash password")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrResetTokenInvalid     = errors.New("invalid or expired password reset token")
)

type Service struct {
	config *config.Config
	db     *gorm.DB
	logger *logging.Service
}

func NewService(cfg *config.Config, db *gorm.DB, logger *logging.Service) *Service {
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		cfg.Auth.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		config: cfg,
		db:     db,
		logger: logger,
	}
}

func (s *Service) ValidatePassword(password string) error {
	if len(password) < s.config.Auth.MinLength {
		if s.logger != nil {
			s.logger.Warn("password validation failed: insufficient length",
				zap.Int("length", len(password)),
				zap.Int("min_required", s.config.Auth.MinLength))
		}
		return fmt.Errorf("password must be at least %d characters", s.config.Auth.MinLength)
	}
	return nil
}

func (s *Service) HashPassword(password string) (string, error) {
	if err := s.ValidatePassword(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.Auth.BcryptCost)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("password hashing failed", zap.Error(err))
		}
		return "", ErrPasswordHashingFailed
	}

	return string(hash), nil
}

func (s *Service) VerifyPassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("password verification failed")
		}
		return ErrInvalidCredentials
	}
	return nil
}

func (s *Service) generateSecureToken() (string, error) {
	bytes := make([]byte, s.config.Auth.ResetTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// CreateResetToken issues a fresh reset token for the user. Multiple
// outstanding tokens per user are allowed; earlier ones stay valid until
// consumed or expired.
func (s *Service) CreateResetToken(userID uint) (*PasswordResetToken, error) {
	token, err := s.generateSecureToken()
	if err != nil {
		if s.logger != nil {
			s.logger.Error("failed to generate password reset token", zap.Error(err), zap.Uint("user_id", userID))
		}
		return nil, err
	}

	resetToken := &PasswordResetToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.config.Auth.ResetTokenExpiry),
	}

	if err := s.db.Create(resetToken).Error; err != nil {
		if s.logger != nil {
			s.logger.Error("failed to store password reset token", zap.Error(err), zap.Uint("user_id", userID))
		}
		return nil, fmt.Errorf("failed to create password reset token: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("password reset token created",
			zap.Uint("user_id", userID),
			zap.Time("expires_at", resetToken.ExpiresAt))
	}
	return resetToken, nil
}

// ResetPassword consumes a reset token and replaces the owning user's password
// hash. Both mutations run in one transaction; the delete is guarded on its
// row count so concurrent redemptions of the same token cannot both succeed.
func (s *Service) ResetPassword(token, newPassword string) error {
	hashedPassword, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var resetToken PasswordResetToken
		if err := tx.Where("token = ? AND expires_at > ?", token, time.Now()).First(&resetToken).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResetTokenInvalid
			}
			return fmt.Errorf("failed to look up password reset token: %w", err)
		}

		if err := tx.Table("users").Where("id = ?", resetToken.UserID).Update("password", hashedPassword).Error; err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}

		result := tx.Where("id = ?", resetToken.ID).Delete(&PasswordResetToken{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete password reset token: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// A concurrent request consumed the token first.
			return ErrResetTokenInvalid
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrResetTokenInvalid) && s.logger != nil {
			s.logger.Error("password reset failed", zap.Error(err))
		}
		return err
	}

	if s.logger != nil {
		s.logger.Info("password reset completed")
	}
	return nil
}

// cleanupLoop sweeps expired tokens until the context is cancelled.
func (s *Service) cleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.CleanupExpiredTokens(); err != nil && s.logger != nil {
				s.logger.Error("password reset token cleanup failed", zap.Error(err))
			}
		}
	}
}

// CleanupExpiredTokens removes reset tokens past their expiry. Expired rows
// are harmless (lookups filter on expiry) but pile up without this.
func (s *Service) CleanupExpiredTokens() error {
	result := s.db.Where("expires_at < ?", time.Now()).Delete(&PasswordResetToken{})
	if result.Error != nil {
		return fmt.Errorf("failed to cleanup expired password reset tokens: %w", result.Error)
	}

	if s.logger != nil && result.RowsAffected > 0 {
		s.logger.Info("expired password reset tokens cleaned up", zap.Int64("tokens_removed", result.RowsAffected))
	}
	return nil
}
