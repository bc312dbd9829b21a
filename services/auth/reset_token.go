package auth

import (
	"time"
)

// PasswordResetToken is a single-use credential-recovery token. The row is
// deleted on successful consumption; lookups must filter expires_at > now.
type PasswordResetToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"-" gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}
