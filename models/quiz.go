package models

import "gorm.io/gorm"

// Difficulty levels a quiz can be labeled with
var DifficultyLevels = []string{"beginner", "intermediate", "advanced", "expert"}

// Quiz is a timed set of multiple-choice questions under one subject
type Quiz struct {
	gorm.Model
	Title     string  `gorm:"not null;size:100" json:"title"`
	SubjectID uint    `gorm:"not null;index" json:"subjectId"`
	Subject   Subject `gorm:"foreignKey:SubjectID" json:"-"`

	Duration          int     `gorm:"not null" json:"duration"` // minutes
	TotalMarks        int     `gorm:"not null" json:"totalMarks"`
	Difficulty        string  `gorm:"size:20;default:intermediate" json:"difficulty"`
	Category          string  `gorm:"size:50" json:"category"`
	IsPublic          bool    `gorm:"default:true" json:"isPublic"`
	TimeLimitEnforced bool    `gorm:"default:true" json:"timeLimitEnforced"`
	PassingPercentage float64 `gorm:"default:60" json:"passingPercentage"`
	AllowReview       bool    `gorm:"default:true" json:"allowReview"`

	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	Scores    []Score    `gorm:"foreignKey:QuizID" json:"-"`
}
