package models

import "time"

// Achievement is a one-time badge. The composite unique index on
// (user_id, name) makes granting idempotent at the storage layer.
type Achievement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"userId"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Name        string    `gorm:"not null;size:100;uniqueIndex:idx_user_achievement" json:"name"`
	Description string    `gorm:"not null;size:500" json:"description"`
	BadgeIcon   string    `gorm:"not null;size:50" json:"badgeIcon"`
	EarnedDate  time.Time `gorm:"autoCreateTime" json:"earnedDate"`
}
