package models

import "gorm.io/gorm"

// StudyMaterial is reference content an admin attaches to a subject
type StudyMaterial struct {
	gorm.Model
	SubjectID uint    `gorm:"not null;index" json:"subjectId"`
	Subject   Subject `gorm:"foreignKey:SubjectID" json:"-"`
	Title     string  `gorm:"not null;size:100" json:"title"`
	Content   string  `gorm:"not null" json:"content"`
}
