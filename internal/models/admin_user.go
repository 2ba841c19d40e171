package models

import (
	"time"
)

// AdminUser is the single dashboard account. It is seeded at startup and
// never mutated or deleted through the HTTP surface.
type AdminUser struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       string `gorm:"uniqueIndex"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (AdminUser) TableName() string {
	return "admin_users"
}
