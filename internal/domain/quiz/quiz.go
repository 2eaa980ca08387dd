package quiz

import (
	"github.com/yungbote/quizhub-backend/internal/domain/user"
)

// Quiz is the aggregate root header row.
type Quiz struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"not null;size:255;index;column:name" json:"name"`
	Description string     `gorm:"not null;type:text;column:description" json:"description"`
	OwnerID     uint       `gorm:"not null;index;column:owner_id" json:"owner_id"`
	Owner       *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:OwnerID;references:ID" json:"-"`
}

func (Quiz) TableName() string { return "quiz" }
