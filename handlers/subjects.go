package handlers

import (
	"net/http"

	"github.com/sudha-1290/Quiz-Master-V1/logger"
	"github.com/sudha-1290/Quiz-Master-V1/models"
)

// GET /api/subjects
func (db *DBHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	var subjects []models.Subject
	if err := db.Find(&subjects).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, subjects)
}

// GET /api/subjects/{subjectID}
func (db *DBHandler) GetSubject(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := pathID(r, "subjectID")
	if !ok {
		http.Error(w, "Subject ID is required", http.StatusBadRequest)
		return
	}

	var subject models.Subject
	if err := db.Preload("Quizzes").First(&subject, subjectID).Error; err != nil {
		http.Error(w, "Subject not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, subject)
}

// POST /api/subjects
func (db *DBHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description" validate:"max=500"`
	}
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	subject := models.Subject{Name: req.Name, Description: req.Description}
	if err := db.Create(&subject).Error; err != nil {
		logger.L().Errorw("failed to create subject", "err", err)
		http.Error(w, "Failed to create subject", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, subject)
}

// PUT /api/subjects/{subjectID}
func (db *DBHandler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description" validate:"max=500"`
	}
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	subject.Name = req.Name
	subject.Description = req.Description
	if err := db.Save(&subject).Error; err != nil {
		logger.L().Errorw("failed to update subject", "subjectID", subjectID, "err", err)
		http.Error(w, "Failed to update subject", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, subject)
}

// DELETE /api/subjects/{subjectID}
//
// A subject that still owns quizzes cannot be deleted; the whole operation
// is rejected rather than cascading or partially deleting.
func (db *DBHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
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

	var quizCount int64
	if err := db.Model(&models.Quiz{}).Where("subject_id = ?", subjectID).Count(&quizCount).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	if quizCount > 0 {
		http.Error(w, "Cannot delete subject with associated quizzes", http.StatusConflict)
		return
	}

	if err := db.Delete(&subject).Error; err != nil {
		logger.L().Errorw("failed to delete subject", "subjectID", subjectID, "err", err)
		http.Error(w, "Failed to delete subject", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
