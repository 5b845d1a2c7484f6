package scoring

import (
	"errors"

	"github.com/sudha-1290/Quiz-Master-V1/models"
)

// ErrNoQuestions is returned when a quiz has nothing to grade
var ErrNoQuestions = errors.New("quiz has no questions to grade")

// Grade computes the percentage earned for a set of submitted answers.
// answers maps question id to the chosen option (1-4); unanswered
// questions simply earn nothing. A quiz whose questions carry zero total
// marks grades to 0 rather than dividing by zero.
func Grade(questions []models.Question, answers map[uint]int) float64 {
	earned := 0
	totalMarks := 0

	for _, question := range questions {
		if chosen, ok := answers[question.ID]; ok && chosen == question.CorrectAnswer {
			earned += question.Marks
		}
		totalMarks += question.Marks
	}

	if totalMarks == 0 {
		return 0
	}
	return float64(earned) / float64(totalMarks) * 100
}

// MasteryLevel maps an overall average score onto a mastery tier
func MasteryLevel(averageScore float64) string {
	switch {
	case averageScore >= 90:
		return models.MasteryExpert
	case averageScore >= 75:
		return models.MasteryAdvanced
	case averageScore >= 60:
		return models.MasteryIntermediate
	default:
		return models.MasteryBeginner
	}
}
