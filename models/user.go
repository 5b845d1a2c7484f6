package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account, either a learner or an admin
type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null;size:120" json:"email"`
	PasswordHash  string `gorm:"not null;size:256" json:"-"`
	FullName      string `gorm:"not null;size:100" json:"fullName"`
	Qualification string `gorm:"size:100" json:"qualification"`
	IsAdmin       bool   `gorm:"default:false" json:"isAdmin"`

	// Password reset tokens are opaque nanoids, valid for 24 hours
	ResetToken       string     `gorm:"size:64;index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	Scores       []Score       `gorm:"foreignKey:UserID" json:"-"`
	Achievements []Achievement `gorm:"foreignKey:UserID" json:"-"`
}
