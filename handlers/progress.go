package handlers

import (
	"net/http"

	"github.com/sudha-1290/Quiz-Master-V1/middleware"
	"github.com/sudha-1290/Quiz-Master-V1/models"
	"github.com/sudha-1290/Quiz-Master-V1/scoring"
)

// GET /api/progress
//
// Overall statistics plus a per-subject breakdown. The per-subject mastery
// label shown here is derived from the user's best score per quiz in that
// subject; the stored UserProgress.MasteryLevel keeps following the global
// average.
func (db *DBHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	var scores []models.Score
	if err := db.Preload("Quiz").Where("user_id = ?", user.ID).Find(&scores).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	stats := map[string]interface{}{
		"totalQuizzesTaken": len(scores),
		"averageScore":      0.0,
		"highestScore":      0.0,
		"totalTimeSpent":    0,
	}
	if len(scores) > 0 {
		sum, highest, timeSpent := 0.0, 0.0, 0
		for _, s := range scores {
			sum += s.Score
			if s.Score > highest {
				highest = s.Score
			}
			timeSpent += s.Quiz.Duration
		}
		stats["averageScore"] = sum / float64(len(scores))
		stats["highestScore"] = highest
		stats["totalTimeSpent"] = timeSpent
	}

	var subjects []models.Subject
	if err := db.Find(&subjects).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	// Group the user's attempts by subject and by quiz
	scoresBySubject := map[uint][]float64{}
	bestByQuiz := map[uint]float64{}
	quizSubject := map[uint]uint{}
	for _, s := range scores {
		scoresBySubject[s.Quiz.SubjectID] = append(scoresBySubject[s.Quiz.SubjectID], s.Score)
		quizSubject[s.QuizID] = s.Quiz.SubjectID
		if best, ok := bestByQuiz[s.QuizID]; !ok || s.Score > best {
			bestByQuiz[s.QuizID] = s.Score
		}
	}

	type subjectProgress struct {
		Subject          models.Subject `json:"subject"`
		AverageScore     float64        `json:"averageScore"`
		CompletedQuizzes int            `json:"completedQuizzes"`
		MasteryLevel     string         `json:"masteryLevel"`
	}

	progressData := make([]subjectProgress, 0, len(subjects))
	for _, subject := range subjects {
		entry := subjectProgress{Subject: subject, MasteryLevel: models.MasteryBeginner}

		if attempts := scoresBySubject[subject.ID]; len(attempts) > 0 {
			sum := 0.0
			for _, score := range attempts {
				sum += score
			}
			entry.AverageScore = sum / float64(len(attempts))
		}

		// Mastery here follows the best attempt per quiz in this subject
		bestSum, completed := 0.0, 0
		for quizID, best := range bestByQuiz {
			if quizSubject[quizID] == subject.ID {
				bestSum += best
				completed++
			}
		}
		entry.CompletedQuizzes = completed
		if completed > 0 {
			entry.MasteryLevel = scoring.MasteryLevel(bestSum / float64(completed))
		}

		progressData = append(progressData, entry)
	}

	var tracked []models.UserProgress
	if err := db.Where("user_id = ?", user.ID).Find(&tracked).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"stats":       stats,
		"subjects":    progressData,
		"trackedRows": tracked,
	})
}
