package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sudha-1290/Quiz-Master-V1/logger"
	"github.com/sudha-1290/Quiz-Master-V1/middleware"
	"github.com/sudha-1290/Quiz-Master-V1/models"
	"github.com/sudha-1290/Quiz-Master-V1/scoring"
)

// POST /api/quizzes/{quizID}/attempts
//
// Grades the submission and applies the whole consequence chain (score,
// statistics, progress, achievements) in one transaction.
func (db *DBHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

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
	if !quiz.IsPublic && !user.IsAdmin {
		http.Error(w, "Quiz is not public", http.StatusForbidden)
		return
	}

	// Answers arrive keyed by question id as JSON object keys
	var req struct {
		Answers map[string]int `json:"answers" validate:"required"`
	}
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	answers := make(map[uint]int, len(req.Answers))
	for rawID, option := range req.Answers {
		questionID, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil || option < 1 || option > 4 {
			http.Error(w, "Invalid answer entry", http.StatusBadRequest)
			return
		}
		answers[uint(questionID)] = option
	}

	result, err := scoring.SubmitAttempt(db.DB, user.ID, &quiz, answers)
	if err != nil {
		if errors.Is(err, scoring.ErrNoQuestions) {
			http.Error(w, "No questions found for this quiz", http.StatusUnprocessableEntity)
			return
		}
		logger.L().Errorw("quiz submission failed", "quizID", quizID, "userID", user.ID, "err", err)
		http.Error(w, "Error submitting quiz", http.StatusInternalServerError)
		return
	}

	logger.L().Infow("quiz submitted",
		"quizID", quizID, "userID", user.ID, "score", result.Score.Score)
	respondJSON(w, http.StatusCreated, result)
}

// GET /api/attempts/{scoreID}
func (db *DBHandler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	scoreID, ok := pathID(r, "scoreID")
	if !ok {
		http.Error(w, "Score ID is required", http.StatusBadRequest)
		return
	}

	var score models.Score
	if err := db.Preload("Quiz").First(&score, scoreID).Error; err != nil {
		http.Error(w, "Attempt not found", http.StatusNotFound)
		return
	}
	if score.UserID != user.ID && !user.IsAdmin {
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"score":  score,
		"quiz":   score.Quiz,
		"passed": score.Score >= score.Quiz.PassingPercentage,
	})
}

// GET /api/attempts/{scoreID}/review
//
// Pairs each question with the submitted answer and the correct one. Only
// available when the quiz allows review.
func (db *DBHandler) ReviewAttempt(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	scoreID, ok := pathID(r, "scoreID")
	if !ok {
		http.Error(w, "Score ID is required", http.StatusBadRequest)
		return
	}

	var score models.Score
	if err := db.Preload("Quiz").First(&score, scoreID).Error; err != nil {
		http.Error(w, "Attempt not found", http.StatusNotFound)
		return
	}
	if score.UserID != user.ID && !user.IsAdmin {
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}
	if !score.Quiz.AllowReview {
		http.Error(w, "Review is disabled for this quiz", http.StatusForbidden)
		return
	}

	var questions []models.Question
	if err := db.Where("quiz_id = ?", score.QuizID).Find(&questions).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	type reviewEntry struct {
		Question      models.Question `json:"question"`
		ChosenOption  int             `json:"chosenOption"` // 0 when unanswered
		CorrectOption int             `json:"correctOption"`
		Correct       bool            `json:"correct"`
	}

	entries := make([]reviewEntry, len(questions))
	for i, question := range questions {
		chosen := 0
		key := strconv.FormatUint(uint64(question.ID), 10)
		if raw, ok := score.Answers[key]; ok {
			// JSON numbers decode as float64
			if f, ok := raw.(float64); ok {
				chosen = int(f)
			}
		}
		entries[i] = reviewEntry{
			Question:      question,
			ChosenOption:  chosen,
			CorrectOption: question.CorrectAnswer,
			Correct:       chosen == question.CorrectAnswer,
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"score":   score,
		"quiz":    score.Quiz,
		"entries": entries,
	})
}
