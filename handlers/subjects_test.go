package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sudha-1290/Quiz-Master-V1/models"
)

func TestDeleteSubjectBlockedByQuizzes(t *testing.T) {
	h := newTestHandler(t)
	subject, quiz := seedSubjectWithQuiz(t, h.DB, "Mathematics")

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/subjects/{subjectID}", h.DeleteSubject)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/subjects/%d", subject.ID), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status: want=409 got=%d", rec.Code)
	}

	// Subject and quiz must both survive the rejected delete
	var gotSubject models.Subject
	if err := h.DB.First(&gotSubject, subject.ID).Error; err != nil {
		t.Fatalf("subject should remain: %v", err)
	}
	var gotQuiz models.Quiz
	if err := h.DB.First(&gotQuiz, quiz.ID).Error; err != nil {
		t.Fatalf("quiz should remain: %v", err)
	}
}

func TestDeleteSubjectWithoutQuizzes(t *testing.T) {
	h := newTestHandler(t)
	subject := models.Subject{Name: "Empty"}
	if err := h.DB.Create(&subject).Error; err != nil {
		t.Fatalf("create subject: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/subjects/{subjectID}", h.DeleteSubject)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/subjects/%d", subject.ID), nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: want=204 got=%d", rec.Code)
	}

	var count int64
	h.DB.Model(&models.Subject{}).Where("id = ?", subject.ID).Count(&count)
	if count != 0 {
		t.Fatalf("subject should be gone, found %d rows", count)
	}
}

func TestDeleteSubjectNotFound(t *testing.T) {
	h := newTestHandler(t)

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/subjects/{subjectID}", h.DeleteSubject)

	req := httptest.NewRequest(http.MethodDelete, "/api/subjects/9999", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: want=404 got=%d", rec.Code)
	}
}
