package user

import (
	"strings"
	"time"
)

// User is an application account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FullName    string    `json:"full_name" gorm:"size:255;not null"`
	Institution string    `json:"institution" gorm:"size:255"`
	Address     string    `json:"address" gorm:"size:255"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password    string    `json:"-" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsStaff     bool      `json:"is_staff" gorm:"default:false"`
	IsSchool    bool      `json:"is_school" gorm:"default:false"`
	IsCorporate bool      `json:"is_corporate" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// NormalizeEmail canonicalizes an address for lookup and uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
