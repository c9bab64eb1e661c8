package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginLog records a successful sign-in. The admin console exports these
// per date range as a spreadsheet.
type LoginLog struct {
	gorm.Model
	UserID   uint      `json:"user_id" gorm:"index"`
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Email    string    `json:"email"`
	LoggedAt time.Time `json:"logged_at"`
}
