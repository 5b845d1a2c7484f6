package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAnalyticsAggregates(t *testing.T) {
	h := newTestHandler(t)
	_, mathQuiz := seedSubjectWithQuiz(t, h.DB, "Mathematics")
	_, scienceQuiz := seedSubjectWithQuiz(t, h.DB, "Science")
	user := seedUser(t, h.DB, "learner@example.com", false)

	seedScore(t, h.DB, user.ID, mathQuiz.ID, 80)
	seedScore(t, h.DB, user.ID, mathQuiz.ID, 60)
	seedScore(t, h.DB, user.ID, scienceQuiz.ID, 40)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/analytics", nil)
	rec := httptest.NewRecorder()
	h.Analytics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", rec.Code)
	}

	var resp struct {
		TotalAttempts int64   `json:"totalAttempts"`
		AverageScore  float64 `json:"averageScore"`
		SubjectStats  []struct {
			Name         string  `json:"name"`
			Attempts     int     `json:"attempts"`
			AverageScore float64 `json:"averageScore"`
		} `json:"subjectStats"`
		Engagement []struct {
			Date     string `json:"date"`
			Attempts int    `json:"attempts"`
		} `json:"engagement"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.TotalAttempts != 3 {
		t.Fatalf("total attempts: want=3 got=%d", resp.TotalAttempts)
	}
	if resp.AverageScore != 60 {
		t.Fatalf("global average: want=60 got=%v", resp.AverageScore)
	}

	bySubject := map[string]float64{}
	attempts := map[string]int{}
	for _, s := range resp.SubjectStats {
		bySubject[s.Name] = s.AverageScore
		attempts[s.Name] = s.Attempts
	}
	if bySubject["Mathematics"] != 70 || attempts["Mathematics"] != 2 {
		t.Fatalf("mathematics stats: avg=%v attempts=%d", bySubject["Mathematics"], attempts["Mathematics"])
	}
	if bySubject["Science"] != 40 || attempts["Science"] != 1 {
		t.Fatalf("science stats: avg=%v attempts=%d", bySubject["Science"], attempts["Science"])
	}

	if len(resp.Engagement) != 30 {
		t.Fatalf("engagement buckets: want=30 got=%d", len(resp.Engagement))
	}
	today := time.Now().UTC().Format("2006-01-02")
	last := resp.Engagement[len(resp.Engagement)-1]
	if last.Date != today {
		t.Fatalf("last bucket: want=%s got=%s", today, last.Date)
	}
	if last.Attempts != 3 {
		t.Fatalf("today's attempts: want=3 got=%d", last.Attempts)
	}
}
