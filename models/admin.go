package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is an operator allowed to override case fields
type Admin struct {
	ID          string     `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	Username    string     `gorm:"uniqueIndex;not null" json:"username"`
	Password    string     `gorm:"column:password_hash;not null" json:"-"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// BeforeCreate hook to generate UUID
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Admin model
func (Admin) TableName() string {
	return "admins"
}
