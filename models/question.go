package models

import "gorm.io/gorm"

// Question is a single multiple-choice question; CorrectAnswer is 1-4
type Question struct {
	gorm.Model
	QuizID        uint   `gorm:"not null;index" json:"quizId"`
	Quiz          Quiz   `gorm:"foreignKey:QuizID" json:"-"`
	QuestionText  string `gorm:"not null;size:500" json:"questionText"`
	Option1       string `gorm:"not null;size:200" json:"option1"`
	Option2       string `gorm:"not null;size:200" json:"option2"`
	Option3       string `gorm:"not null;size:200" json:"option3"`
	Option4       string `gorm:"not null;size:200" json:"option4"`
	CorrectAnswer int    `gorm:"not null" json:"-"` // hidden from quiz takers
	Marks         int    `gorm:"not null" json:"marks"`
}
