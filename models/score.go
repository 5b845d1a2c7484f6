package models

import (
	"time"

	"gorm.io/datatypes"
)

// Score is one quiz attempt. Rows are append-only: created at submission,
// never updated, removed only when the owning quiz is deleted.
type Score struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"not null;index" json:"userId"`
	User        User              `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	QuizID      uint              `gorm:"not null;index" json:"quizId"`
	Quiz        Quiz              `gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Score       float64           `gorm:"not null" json:"score"` // percentage, 0-100
	Answers     datatypes.JSONMap `json:"answers,omitempty"`     // question id -> chosen option
	AttemptDate time.Time         `gorm:"autoCreateTime" json:"attemptDate"`
}
