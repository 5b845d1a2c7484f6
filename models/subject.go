package models

import "gorm.io/gorm"

// Subject groups quizzes and study materials under one topic
type Subject struct {
	gorm.Model
	Name        string `gorm:"not null;size:100" json:"name"`
	Description string `gorm:"size:500" json:"description"`

	Quizzes        []Quiz          `gorm:"foreignKey:SubjectID" json:"quizzes,omitempty"`
	StudyMaterials []StudyMaterial `gorm:"foreignKey:SubjectID" json:"-"`
}
