package handlers

import (
	"net/http"

	"github.com/sudha-1290/Quiz-Master-V1/logger"
	"github.com/sudha-1290/Quiz-Master-V1/models"
)

// GET /api/study-materials
func (db *DBHandler) ListStudyMaterials(w http.ResponseWriter, r *http.Request) {
	var materials []models.StudyMaterial
	query := db.Order("subject_id")
	if subject := r.URL.Query().Get("subject"); subject != "" {
		query = query.Where("subject_id = ?", subject)
	}
	if err := query.Find(&materials).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, materials)
}

// POST /api/study-materials (admin)
func (db *DBHandler) CreateStudyMaterial(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SubjectID uint   `json:"subjectId" validate:"required"`
		Title     string `json:"title" validate:"required,max=100"`
		Content   string `json:"content" validate:"required"`
	}
	if msg, ok := decodeAndValidate(r, &req); !ok {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	var subject models.Subject
	if err := db.First(&subject, req.SubjectID).Error; err != nil {
		http.Error(w, "Subject not found", http.StatusNotFound)
		return
	}

	material := models.StudyMaterial{
		SubjectID: req.SubjectID,
		Title:     req.Title,
		Content:   req.Content,
	}
	if err := db.Create(&material).Error; err != nil {
		logger.L().Errorw("failed to create study material", "err", err)
		http.Error(w, "Failed to create study material", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, material)
}

// DELETE /api/study-materials/{materialID} (admin)
func (db *DBHandler) DeleteStudyMaterial(w http.ResponseWriter, r *http.Request) {
	materialID, ok := pathID(r, "materialID")
	if !ok {
		http.Error(w, "Material ID is required", http.StatusBadRequest)
		return
	}

	var material models.StudyMaterial
	if err := db.First(&material, materialID).Error; err != nil {
		http.Error(w, "Study material not found", http.StatusNotFound)
		return
	}

	if err := db.Delete(&material).Error; err != nil {
		logger.L().Errorw("failed to delete study material", "materialID", materialID, "err", err)
		http.Error(w, "Failed to delete study material", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
