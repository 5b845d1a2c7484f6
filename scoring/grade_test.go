package scoring

import (
	"testing"

	"github.com/sudha-1290/Quiz-Master-V1/models"
)

func question(id uint, correct, marks int) models.Question {
	q := models.Question{CorrectAnswer: correct, Marks: marks}
	q.ID = id
	return q
}

func TestGradeHalfCorrect(t *testing.T) {
	questions := []models.Question{
		question(1, 2, 10),
		question(2, 3, 10),
	}
	answers := map[uint]int{1: 2, 2: 1}

	got := Grade(questions, answers)
	if got != 50.0 {
		t.Fatalf("Grade: want=50.0 got=%v", got)
	}
}

func TestGradeUnansweredEarnNothing(t *testing.T) {
	questions := []models.Question{
		question(1, 1, 5),
		question(2, 4, 5),
	}

	got := Grade(questions, map[uint]int{2: 4})
	if got != 50.0 {
		t.Fatalf("Grade with one unanswered: want=50.0 got=%v", got)
	}

	got = Grade(questions, map[uint]int{})
	if got != 0 {
		t.Fatalf("Grade with nothing answered: want=0 got=%v", got)
	}
}

func TestGradeZeroTotalMarks(t *testing.T) {
	questions := []models.Question{
		question(1, 1, 0),
		question(2, 2, 0),
	}

	got := Grade(questions, map[uint]int{1: 1, 2: 2})
	if got != 0 {
		t.Fatalf("Grade with zero total marks: want=0 got=%v", got)
	}
}

func TestGradeStaysInRange(t *testing.T) {
	questions := []models.Question{
		question(1, 1, 3),
		question(2, 2, 7),
		question(3, 3, 11),
	}
	submissions := []map[uint]int{
		{},
		{1: 1},
		{1: 1, 2: 2},
		{1: 1, 2: 2, 3: 3},
		{1: 4, 2: 4, 3: 4},
	}

	for _, answers := range submissions {
		got := Grade(questions, answers)
		if got < 0 || got > 100 {
			t.Fatalf("Grade out of range for %v: got=%v", answers, got)
		}
	}
}

func TestMasteryLevel(t *testing.T) {
	cases := []struct {
		average float64
		want    string
	}{
		{95, models.MasteryExpert},
		{90, models.MasteryExpert},
		{80, models.MasteryAdvanced},
		{75, models.MasteryAdvanced},
		{65, models.MasteryIntermediate},
		{60, models.MasteryIntermediate},
		{40, models.MasteryBeginner},
		{0, models.MasteryBeginner},
	}

	for _, tc := range cases {
		if got := MasteryLevel(tc.average); got != tc.want {
			t.Fatalf("MasteryLevel(%v): want=%s got=%s", tc.average, tc.want, got)
		}
	}
}
