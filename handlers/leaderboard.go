package handlers

import (
	"net/http"

	"github.com/sudha-1290/Quiz-Master-V1/models"
)

// LeaderboardEntry is one ranked row
type LeaderboardEntry struct {
	UserID       uint    `json:"userId"`
	FullName     string  `json:"fullName"`
	AverageScore float64 `json:"averageScore"`
	QuizCount    int     `json:"quizCount"`
	Rank         int     `json:"rank" gorm:"-"`
}

// GET /api/leaderboard
//
// Top 10 non-admin users by mean score. Tie-break is explicit so rankings
// are deterministic: equal averages rank the user with fewer attempts
// first, then the lower user id.
func (db *DBHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	var entries []LeaderboardEntry
	err := db.Model(&models.Score{}).
		Select("scores.user_id as user_id, users.full_name as full_name, AVG(scores.score) as average_score, COUNT(scores.id) as quiz_count").
		Joins("JOIN users ON users.id = scores.user_id").
		Where("users.is_admin = ? AND users.deleted_at IS NULL", false).
		Group("scores.user_id, users.full_name").
		Order("average_score DESC, quiz_count ASC, user_id ASC").
		Limit(10).
		Scan(&entries).Error
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}
	respondJSON(w, http.StatusOK, entries)
}
