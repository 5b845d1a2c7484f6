package handlers

import (
	"net/http"

	"github.com/sudha-1290/Quiz-Master-V1/logger"
	"github.com/sudha-1290/Quiz-Master-V1/models"
)

type questionRequest struct {
	QuestionText  string `json:"questionText" validate:"required,max=500"`
	Option1       string `json:"option1" validate:"required,max=200"`
	Option2       string `json:"option2" validate:"required,max=200"`
	Option3       string `json:"option3" validate:"required,max=200"`
	Option4       string `json:"option4" validate:"required,max=200"`
	CorrectAnswer int    `json:"correctAnswer" validate:"required,min=1,max=4"`
	Marks         int    `json:"marks" validate:"required,min=1"`
}

// adminQuestion exposes the correct answer, which the learner-facing
// serialization hides
type adminQuestion struct {
	models.Question
	CorrectAnswer int `json:"correctAnswer"`
}

// GET /api/quizzes/{quizID}/questions (admin)
func (db *DBHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
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

	var questions []models.Question
	if err := db.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	out := make([]adminQuestion, len(questions))
	for i, q := range questions {
		out[i] = adminQuestion{Question: q, CorrectAnswer: q.CorrectAnswer}
	}
	respondJSON(w, http.StatusOK, out)
}

// POST /api/quizzes/{quizID}/questions
func (db *DBHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
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

	var req questionRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	question := models.Question{
		QuizID:        quizID,
		QuestionText:  req.QuestionText,
		Option1:       req.Option1,
		Option2:       req.Option2,
		Option3:       req.Option3,
		Option4:       req.Option4,
		CorrectAnswer: req.CorrectAnswer,
		Marks:         req.Marks,
	}
	if err := db.Create(&question).Error; err != nil {
		logger.L().Errorw("failed to create question", "quizID", quizID, "err", err)
		http.Error(w, "Failed to create question", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, adminQuestion{Question: question, CorrectAnswer: question.CorrectAnswer})
}

// PUT /api/questions/{questionID}
func (db *DBHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "questionID")
	if !ok {
		http.Error(w, "Question ID is required", http.StatusBadRequest)
		return
	}

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		http.Error(w, "Question not found", http.StatusNotFound)
		return
	}

	var req questionRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	question.QuestionText = req.QuestionText
	question.Option1 = req.Option1
	question.Option2 = req.Option2
	question.Option3 = req.Option3
	question.Option4 = req.Option4
	question.CorrectAnswer = req.CorrectAnswer
	question.Marks = req.Marks

	if err := db.Save(&question).Error; err != nil {
		logger.L().Errorw("failed to update question", "questionID", questionID, "err", err)
		http.Error(w, "Failed to update question", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, adminQuestion{Question: question, CorrectAnswer: question.CorrectAnswer})
}

// DELETE /api/questions/{questionID}
func (db *DBHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, ok := pathID(r, "questionID")
	if !ok {
		http.Error(w, "Question ID is required", http.StatusBadRequest)
		return
	}

	var question models.Question
	if err := db.First(&question, questionID).Error; err != nil {
		http.Error(w, "Question not found", http.StatusNotFound)
		return
	}

	if err := db.Delete(&question).Error; err != nil {
		logger.L().Errorw("failed to delete question", "questionID", questionID, "err", err)
		http.Error(w, "Failed to delete question", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
