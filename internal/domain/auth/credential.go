package auth

import (
	"github.com/yungbote/quizhub-backend/internal/domain/user"
)

// Credential holds the password digest for exactly one user.
type Credential struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex;column:user_id" json:"user_id"`
	User         *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	PasswordHash string     `gorm:"not null;type:text;column:password_hash" json:"-"`
}

func (Credential) TableName() string { return "credential" }
