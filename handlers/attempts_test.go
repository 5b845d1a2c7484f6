package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sudha-1290/Quiz-Master-V1/middleware"
	"github.com/sudha-1290/Quiz-Master-V1/models"
	"github.com/sudha-1290/Quiz-Master-V1/scoring"
)

func TestSubmitQuizEndToEnd(t *testing.T) {
	h := newTestHandler(t)
	subject, quiz := seedSubjectWithQuiz(t, h.DB, "Mathematics")
	user := seedUser(t, h.DB, "learner@example.com", false)

	var questions [2]models.Question
	for i := range questions {
		questions[i] = models.Question{
			QuizID:        quiz.ID,
			QuestionText:  fmt.Sprintf("Q%d", i+1),
			Option1:       "a",
			Option2:       "b",
			Option3:       "c",
			Option4:       "d",
			CorrectAnswer: 2,
			Marks:         10,
		}
		if err := h.DB.Create(&questions[i]).Error; err != nil {
			t.Fatalf("create question: %v", err)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/quizzes/{quizID}/attempts", h.SubmitQuiz)

	// One right, one wrong
	body := fmt.Sprintf(`{"answers":{"%d":2,"%d":3}}`, questions[0].ID, questions[1].ID)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/quizzes/%d/attempts", quiz.ID), strings.NewReader(body))
	req = req.WithContext(middleware.WithUser(req.Context(), user))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: want=201 got=%d body=%s", rec.Code, rec.Body.String())
	}

	var result scoring.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Score.Score != 50.0 {
		t.Fatalf("score: want=50.0 got=%v", result.Score.Score)
	}
	if result.Statistics.TotalQuizzesTaken != 1 || result.Statistics.AverageScore != 50.0 {
		t.Fatalf("statistics: %+v", result.Statistics)
	}
	if result.Progress.SubjectID != subject.ID || result.Progress.MasteryLevel != models.MasteryBeginner {
		t.Fatalf("progress: %+v", result.Progress)
	}
}

func TestSubmitQuizWithoutQuestions(t *testing.T) {
	h := newTestHandler(t)
	_, quiz := seedSubjectWithQuiz(t, h.DB, "Science")
	user := seedUser(t, h.DB, "learner@example.com", false)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/quizzes/{quizID}/attempts", h.SubmitQuiz)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/quizzes/%d/attempts", quiz.ID), strings.NewReader(`{"answers":{}}`))
	req = req.WithContext(middleware.WithUser(req.Context(), user))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: want=422 got=%d", rec.Code)
	}

	var count int64
	h.DB.Model(&models.Score{}).Count(&count)
	if count != 0 {
		t.Fatalf("no score should be recorded, got %d", count)
	}
}
