package handlers

import (
	"net/http"

	"github.com/sudha-1290/Quiz-Master-V1/middleware"
	"github.com/sudha-1290/Quiz-Master-V1/models"
)

// GET /api/dashboard
//
// Everything the learner landing page needs: open quizzes, the user's own
// attempt history, and earned badges.
func (db *DBHandler) UserDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	var quizzes []models.Quiz
	if err := db.Where("is_public = ?", true).Find(&quizzes).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	var attempts []models.Score
	if err := db.Where("user_id = ?", user.ID).Order("attempt_date desc").Find(&attempts).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	var achievements []models.Achievement
	if err := db.Where("user_id = ?", user.ID).Find(&achievements).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"availableQuizzes": quizzes,
		"attempts":         attempts,
		"achievements":     achievements,
	})
}

// GET /api/achievements
func (db *DBHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	var achievements []models.Achievement
	if err := db.Where("user_id = ?", user.ID).Order("earned_date desc").Find(&achievements).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, achievements)
}
