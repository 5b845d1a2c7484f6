package handlers

import (
	"net/http"
	"time"

	"github.com/sudha-1290/Quiz-Master-V1/models"
)

// GET /api/admin/dashboard
func (db *DBHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	var totalUsers, totalSubjects, totalQuizzes, totalAttempts int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	db.Model(&models.Subject{}).Count(&totalSubjects)
	db.Model(&models.Quiz{}).Count(&totalQuizzes)
	db.Model(&models.Score{}).Count(&totalAttempts)

	var averageScore float64
	db.Model(&models.Score{}).Select("COALESCE(AVG(score), 0)").Scan(&averageScore)

	var recentScores []models.Score
	if err := db.Preload("User").Preload("Quiz").
		Order("attempt_date desc").Limit(5).Find(&recentScores).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	type quizStat struct {
		QuizID       uint    `json:"quizId"`
		Title        string  `json:"title"`
		Attempts     int     `json:"attempts"`
		AverageScore float64 `json:"averageScore"`
	}
	var quizStats []quizStat
	err := db.Table("quizzes").
		Select("quizzes.id as quiz_id, quizzes.title as title, COUNT(scores.id) as attempts, COALESCE(AVG(scores.score), 0) as average_score").
		Joins("LEFT JOIN scores ON scores.quiz_id = quizzes.id").
		Where("quizzes.deleted_at IS NULL").
		Group("quizzes.id, quizzes.title").
		Scan(&quizStats).Error
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"totalUsers":    totalUsers,
		"totalSubjects": totalSubjects,
		"totalQuizzes":  totalQuizzes,
		"totalAttempts": totalAttempts,
		"averageScore":  averageScore,
		"recentScores":  recentScores,
		"quizStats":     quizStats,
	})
}

// GET /api/admin/analytics
//
// Global and per-subject attempt aggregates plus a 30-day daily attempt
// histogram. Bucketing happens in Go so it behaves the same on sqlite and
// postgres.
func (db *DBHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	var totalAttempts int64
	if err := db.Model(&models.Score{}).Count(&totalAttempts).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	var averageScore float64
	db.Model(&models.Score{}).Select("COALESCE(AVG(score), 0)").Scan(&averageScore)

	type subjectStat struct {
		SubjectID    uint    `json:"subjectId"`
		Name         string  `json:"name"`
		Attempts     int     `json:"attempts"`
		AverageScore float64 `json:"averageScore"`
	}
	var subjectStats []subjectStat
	err := db.Table("subjects").
		Select("subjects.id as subject_id, subjects.name as name, COUNT(scores.id) as attempts, COALESCE(AVG(scores.score), 0) as average_score").
		Joins("LEFT JOIN quizzes ON quizzes.subject_id = subjects.id AND quizzes.deleted_at IS NULL").
		Joins("LEFT JOIN scores ON scores.quiz_id = quizzes.id").
		Where("subjects.deleted_at IS NULL").
		Group("subjects.id, subjects.name").
		Scan(&subjectStats).Error
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	// 30-day engagement histogram, zero-filled per calendar day; the last
	// bucket is today
	today := time.Now().UTC().Truncate(24 * time.Hour)
	windowStart := today.AddDate(0, 0, -29)

	var recent []models.Score
	if err := db.Select("attempt_date").Where("attempt_date >= ?", windowStart).Find(&recent).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	counts := map[string]int{}
	for _, s := range recent {
		counts[s.AttemptDate.UTC().Format("2006-01-02")]++
	}

	type dailyCount struct {
		Date     string `json:"date"`
		Attempts int    `json:"attempts"`
	}
	engagement := make([]dailyCount, 0, 30)
	for i := 0; i < 30; i++ {
		day := windowStart.AddDate(0, 0, i).Format("2006-01-02")
		engagement = append(engagement, dailyCount{Date: day, Attempts: counts[day]})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"totalAttempts": totalAttempts,
		"averageScore":  averageScore,
		"subjectStats":  subjectStats,
		"engagement":    engagement,
	})
}

// GET /api/admin/search?q=&type=
func (db *DBHandler) AdminSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	searchType := r.URL.Query().Get("type")
	if searchType == "" {
		searchType = "all"
	}

	results := map[string]interface{}{
		"subjects": []models.Subject{},
		"quizzes":  []models.Quiz{},
		"users":    []models.User{},
	}

	if query != "" {
		pattern := "%" + query + "%"
		if searchType == "all" || searchType == "subjects" {
			var subjects []models.Subject
			db.Where("name LIKE ?", pattern).Find(&subjects)
			results["subjects"] = subjects
		}
		if searchType == "all" || searchType == "quizzes" {
			var quizzes []models.Quiz
			db.Where("title LIKE ?", pattern).Find(&quizzes)
			results["quizzes"] = quizzes
		}
		if searchType == "all" || searchType == "users" {
			var users []models.User
			db.Where("full_name LIKE ?", pattern).Find(&users)
			results["users"] = users
		}
	}

	respondJSON(w, http.StatusOK, results)
}
