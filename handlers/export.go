package handlers

import (
	"fmt"
	"net/http"

	"github.com/jung-kurt/gofpdf"
	"github.com/sudha-1290/Quiz-Master-V1/logger"
	"github.com/sudha-1290/Quiz-Master-V1/middleware"
	"github.com/sudha-1290/Quiz-Master-V1/models"
)

// GET /api/export/results
//
// Streams a PDF report of the user's attempt history. Read-only over Score
// rows; no state changes.
func (db *DBHandler) ExportResults(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	var scores []models.Score
	if err := db.Preload("Quiz").Where("user_id = ?", user.ID).
		Order("attempt_date desc").Find(&scores).Error; err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Quiz Results Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Name: %s", user.FullName), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Email: %s", user.Email), "", 1, "", false, 0, "")

	for _, score := range scores {
		pdf.CellFormat(0, 10, fmt.Sprintf("Quiz: %s", score.Quiz.Title), "", 1, "", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Score: %.2f%%", score.Score), "", 1, "", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Date: %s", score.AttemptDate.Format("2006-01-02")), "", 1, "", false, 0, "")
		pdf.Ln(5)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=results_%d.pdf", user.ID))
	if err := pdf.Output(w); err != nil {
		logger.L().Errorw("failed to write results report", "userID", user.ID, "err", err)
	}
}
