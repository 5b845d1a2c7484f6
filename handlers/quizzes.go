package handlers

import (
	"net/http"

	"github.com/sudha-1290/Quiz-Master-V1/logger"
	"github.com/sudha-1290/Quiz-Master-V1/middleware"
	"github.com/sudha-1290/Quiz-Master-V1/models"
	"gorm.io/gorm"
)

type quizRequest struct {
	Title             string  `json:"title" validate:"required,max=100"`
	Duration          int     `json:"duration" validate:"required,min=1"`
	TotalMarks        int     `json:"totalMarks" validate:"required,min=1"`
	Difficulty        string  `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Category          string  `json:"category" validate:"max=50"`
	IsPublic          *bool   `json:"isPublic"`
	TimeLimitEnforced *bool   `json:"timeLimitEnforced"`
	PassingPercentage float64 `json:"passingPercentage" validate:"omitempty,min=0,max=100"`
	AllowReview       *bool   `json:"allowReview"`
}

// GET /api/subjects/{subjectID}/quizzes
func (db *DBHandler) ListSubjectQuizzes(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := pathID(r, "subjectID")
	if !ok {
		http.Error(w, "Subject ID is required", http.StatusBadRequest)
		return
	}

	var subject models.Subject
	if err := db.First(&subject, subjectID).Error; err != nil {
		http.Error(w, "Subject not found", http.StatusNotFound)
		return
	}

	var quizzes []models.Quiz
	if err := db.Where("subject_id = ?", subjectID).Find(&quizzes).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, quizzes)
}

// POST /api/subjects/{subjectID}/quizzes
func (db *DBHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := pathID(r, "subjectID")
	if !ok {
		http.Error(w, "Subject ID is required", http.StatusBadRequest)
		return
	}

	var subject models.Subject
	if err := db.First(&subject, subjectID).Error; err != nil {
		http.Error(w, "Subject not found", http.StatusNotFound)
		return
	}

	var req quizRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	quiz := models.Quiz{
		Title:             req.Title,
		SubjectID:         subjectID,
		Duration:          req.Duration,
		TotalMarks:        req.TotalMarks,
		Difficulty:        req.Difficulty,
		Category:          req.Category,
		IsPublic:          true,
		TimeLimitEnforced: true,
		PassingPercentage: 60,
		AllowReview:       true,
	}
	if req.Difficulty == "" {
		quiz.Difficulty = "intermediate"
	}
	if req.IsPublic != nil {
		quiz.IsPublic = *req.IsPublic
	}
	if req.TimeLimitEnforced != nil {
		quiz.TimeLimitEnforced = *req.TimeLimitEnforced
	}
	if req.PassingPercentage > 0 {
		quiz.PassingPercentage = req.PassingPercentage
	}
	if req.AllowReview != nil {
		quiz.AllowReview = *req.AllowReview
	}

	if err := db.Create(&quiz).Error; err != nil {
		logger.L().Errorw("failed to create quiz", "subjectID", subjectID, "err", err)
		http.Error(w, "Failed to create quiz", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, quiz)
}

// GET /api/quizzes/{quizID}
//
// Returns the quiz with its questions; correct answers are never
// serialized. Private quizzes are only visible to admins.
func (db *DBHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathID(r, "quizID")
	if !ok {
		http.Error(w, "Quiz ID is required", http.StatusBadRequest)
		return
	}

	var quiz models.Quiz
	if err := db.Preload("Questions").First(&quiz, quizID).Error; err != nil {
		http.Error(w, "Quiz not found", http.StatusNotFound)
		return
	}

	user, _ := middleware.CurrentUser(r)
	if !quiz.IsPublic && (user == nil || !user.IsAdmin) {
		http.Error(w, "Quiz is not public", http.StatusForbidden)
		return
	}

	respondJSON(w, http.StatusOK, quiz)
}

// PUT /api/quizzes/{quizID}
func (db *DBHandler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathID(r, "quizID")
	if !ok {
		http.Error(w, "Quiz ID is required", http.StatusBadRequest)
		return
	}

	var quiz models.Quiz
	if err := db.First(&quiz, quizID).Error; err != nil {
		http.Error(w, "Quiz not found", http.StatusNotFound)
		return
	}

	var req quizRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	quiz.Title = req.Title
	quiz.Duration = req.Duration
	quiz.TotalMarks = req.TotalMarks
	if req.Difficulty != "" {
		quiz.Difficulty = req.Difficulty
	}
	quiz.Category = req.Category
	if req.IsPublic != nil {
		quiz.IsPublic = *req.IsPublic
	}
	if req.TimeLimitEnforced != nil {
		quiz.TimeLimitEnforced = *req.TimeLimitEnforced
	}
	if req.PassingPercentage > 0 {
		quiz.PassingPercentage = req.PassingPercentage
	}
	if req.AllowReview != nil {
		quiz.AllowReview = *req.AllowReview
	}

	if err := db.Save(&quiz).Error; err != nil {
		logger.L().Errorw("failed to update quiz", "quizID", quizID, "err", err)
		http.Error(w, "Failed to update quiz", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, quiz)
}

// DELETE /api/quizzes/{quizID}
//
// Removes the quiz together with its questions and score history in one
// transaction.
func (db *DBHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathID(r, "quizID")
	if !ok {
		http.Error(w, "Quiz ID is required", http.StatusBadRequest)
		return
	}

	var quiz models.Quiz
	if err := db.First(&quiz, quizID).Error; err != nil {
		http.Error(w, "Quiz not found", http.StatusNotFound)
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Score{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
	if err != nil {
		logger.L().Errorw("failed to delete quiz", "quizID", quizID, "err", err)
		http.Error(w, "Failed to delete quiz", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /api/quizzes/search?q=&subject=&difficulty=
func (db *DBHandler) SearchQuizzes(w http.ResponseWriter, r *http.Request) {
	query := db.Model(&models.Quiz{}).Where("is_public = ?", true)

	if q := r.URL.Query().Get("q"); q != "" {
		query = query.Where("title LIKE ?", "%"+q+"%")
	}
	if subject := r.URL.Query().Get("subject"); subject != "" {
		query = query.Where("subject_id = ?", subject)
	}
	if difficulty := r.URL.Query().Get("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var quizzes []models.Quiz
	if err := query.Find(&quizzes).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, quizzes)
}
