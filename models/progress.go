package models

import "time"

// Mastery tiers derived from a score average
const (
	MasteryBeginner     = "beginner"
	MasteryIntermediate = "intermediate"
	MasteryAdvanced     = "advanced"
	MasteryExpert       = "expert"
)

// UserProgress tracks completion per (user, subject). MasteryLevel follows
// the user's overall average, not the per-subject one.
type UserProgress struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	UserID           uint      `gorm:"not null;uniqueIndex:idx_user_subject" json:"userId"`
	User             User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	SubjectID        uint      `gorm:"not null;uniqueIndex:idx_user_subject" json:"subjectId"`
	Subject          Subject   `gorm:"foreignKey:SubjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CompletedQuizzes int       `gorm:"default:0" json:"completedQuizzes"`
	MasteryLevel     string    `gorm:"size:20;default:beginner" json:"masteryLevel"`
	LastActivity     time.Time `json:"lastActivity"`
}
