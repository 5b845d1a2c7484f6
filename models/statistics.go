package models

import "time"

// UserStatistics holds running aggregates over every attempt a user has
// made. AverageScore is always recomputed as TotalScore/TotalQuizzesTaken
// so it cannot drift.
type UserStatistics struct {
	ID                uint      `gorm:"primaryKey" json:"-"`
	UserID            uint      `gorm:"not null;uniqueIndex" json:"userId"`
	User              User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	TotalQuizzesTaken int       `gorm:"default:0" json:"totalQuizzesTaken"`
	TotalScore        float64   `gorm:"default:0" json:"totalScore"`
	AverageScore      float64   `gorm:"default:0" json:"averageScore"`
	HighestScore      float64   `gorm:"default:0" json:"highestScore"`
	TotalTimeSpent    int       `gorm:"default:0" json:"totalTimeSpent"` // minutes
	LastUpdated       time.Time `json:"lastUpdated"`
}
