package scoring

import (
	"fmt"
	"testing"

	"github.com/sudha-1290/Quiz-Master-V1/config"
	"github.com/sudha-1290/Quiz-Master-V1/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x", FullName: "Test User"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func seedSubject(t *testing.T, db *gorm.DB, name string) *models.Subject {
	t.Helper()
	subject := models.Subject{Name: name}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("create subject: %v", err)
	}
	return &subject
}

// seedQuiz creates a quiz with n questions worth `marks` each; every
// question's correct answer is option 1
func seedQuiz(t *testing.T, db *gorm.DB, subjectID uint, n, marks, duration int) *models.Quiz {
	t.Helper()
	quiz := models.Quiz{
		Title:             "Test Quiz",
		SubjectID:         subjectID,
		Duration:          duration,
		TotalMarks:        n * marks,
		PassingPercentage: 60,
	}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	for i := 0; i < n; i++ {
		q := models.Question{
			QuizID:        quiz.ID,
			QuestionText:  fmt.Sprintf("Q%d", i+1),
			Option1:       "a",
			Option2:       "b",
			Option3:       "c",
			Option4:       "d",
			CorrectAnswer: 1,
			Marks:         marks,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("create question: %v", err)
		}
		quiz.Questions = append(quiz.Questions, q)
	}
	return &quiz
}

// answersFor answers the first `correct` questions right and the rest wrong
func answersFor(quiz *models.Quiz, correct int) map[uint]int {
	answers := make(map[uint]int, len(quiz.Questions))
	for i, q := range quiz.Questions {
		if i < correct {
			answers[q.ID] = 1
		} else {
			answers[q.ID] = 2
		}
	}
	return answers
}

func TestSubmitAttemptEndToEnd(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "learner@example.com")
	subject := seedSubject(t, db, "Mathematics")
	quiz := seedQuiz(t, db, subject.ID, 2, 10, 30)

	result, err := SubmitAttempt(db, user.ID, quiz, answersFor(quiz, 1))
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}

	if result.Score.Score != 50.0 {
		t.Fatalf("score: want=50.0 got=%v", result.Score.Score)
	}
	if result.Passed {
		t.Fatalf("50%% should not pass a quiz with passing percentage 60")
	}

	var stats models.UserStatistics
	if err := db.Where("user_id = ?", user.ID).First(&stats).Error; err != nil {
		t.Fatalf("statistics row missing: %v", err)
	}
	if stats.TotalQuizzesTaken != 1 || stats.AverageScore != 50.0 || stats.HighestScore != 50.0 {
		t.Fatalf("statistics: taken=%d avg=%v highest=%v", stats.TotalQuizzesTaken, stats.AverageScore, stats.HighestScore)
	}
	if stats.TotalTimeSpent != 30 {
		t.Fatalf("time spent: want=30 got=%d", stats.TotalTimeSpent)
	}

	var progress models.UserProgress
	if err := db.Where("user_id = ? AND subject_id = ?", user.ID, subject.ID).First(&progress).Error; err != nil {
		t.Fatalf("progress row missing: %v", err)
	}
	if progress.CompletedQuizzes != 1 || progress.MasteryLevel != models.MasteryBeginner {
		t.Fatalf("progress: completed=%d mastery=%s", progress.CompletedQuizzes, progress.MasteryLevel)
	}

	if len(result.NewAchievements) != 0 {
		t.Fatalf("no achievements expected, got %v", result.NewAchievements)
	}
}

func TestSubmitAttemptNoQuestions(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "learner@example.com")
	subject := seedSubject(t, db, "Science")
	quiz := seedQuiz(t, db, subject.ID, 0, 0, 10)

	_, err := SubmitAttempt(db, user.ID, quiz, map[uint]int{})
	if err != ErrNoQuestions {
		t.Fatalf("want ErrNoQuestions, got %v", err)
	}

	var count int64
	db.Model(&models.Score{}).Count(&count)
	if count != 0 {
		t.Fatalf("no score row should exist, got %d", count)
	}
}

func TestStatisticsStayExactOverManySubmissions(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "learner@example.com")
	subject := seedSubject(t, db, "History")
	quiz := seedQuiz(t, db, subject.ID, 4, 5, 15)

	// 4-question quiz: k correct answers score k*25%
	correctCounts := []int{3, 1, 4, 0, 2}
	sum, highest := 0.0, 0.0
	for _, k := range correctCounts {
		result, err := SubmitAttempt(db, user.ID, quiz, answersFor(quiz, k))
		if err != nil {
			t.Fatalf("SubmitAttempt: %v", err)
		}
		sum += result.Score.Score
		if result.Score.Score > highest {
			highest = result.Score.Score
		}
	}

	var stats models.UserStatistics
	if err := db.Where("user_id = ?", user.ID).First(&stats).Error; err != nil {
		t.Fatalf("statistics row missing: %v", err)
	}

	wantAvg := sum / float64(len(correctCounts))
	if diff := stats.AverageScore - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("average: want=%v got=%v", wantAvg, stats.AverageScore)
	}
	if stats.HighestScore != highest {
		t.Fatalf("highest: want=%v got=%v", highest, stats.HighestScore)
	}
	if stats.TotalQuizzesTaken != len(correctCounts) {
		t.Fatalf("taken: want=%d got=%d", len(correctCounts), stats.TotalQuizzesTaken)
	}
	if stats.TotalTimeSpent != 15*len(correctCounts) {
		t.Fatalf("time spent: want=%d got=%d", 15*len(correctCounts), stats.TotalTimeSpent)
	}
}

func TestMasteryFollowsGlobalAverage(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "learner@example.com")
	mathematics := seedSubject(t, db, "Mathematics")
	science := seedSubject(t, db, "Science")
	mathQuiz := seedQuiz(t, db, mathematics.ID, 1, 10, 10)
	scienceQuiz := seedQuiz(t, db, science.ID, 1, 10, 10)

	// Two perfect math attempts push the global average to 100
	for i := 0; i < 2; i++ {
		if _, err := SubmitAttempt(db, user.ID, mathQuiz, answersFor(mathQuiz, 1)); err != nil {
			t.Fatalf("SubmitAttempt: %v", err)
		}
	}

	// The science progress row gets its mastery from the global average,
	// (100+100+0)/3 ≈ 66.7 → intermediate, not from science alone
	result, err := SubmitAttempt(db, user.ID, scienceQuiz, answersFor(scienceQuiz, 0))
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if result.Progress.SubjectID != science.ID {
		t.Fatalf("progress subject: want=%d got=%d", science.ID, result.Progress.SubjectID)
	}
	if result.Progress.MasteryLevel != models.MasteryIntermediate {
		t.Fatalf("mastery from global average: want=%s got=%s", models.MasteryIntermediate, result.Progress.MasteryLevel)
	}
}

func TestPerfectScoreGrantedOnce(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "learner@example.com")
	subject := seedSubject(t, db, "Mathematics")
	quiz := seedQuiz(t, db, subject.ID, 1, 10, 10)

	first, err := SubmitAttempt(db, user.ID, quiz, answersFor(quiz, 1))
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if len(first.NewAchievements) != 1 || first.NewAchievements[0].Name != AchievementPerfectScore {
		t.Fatalf("first perfect score should grant the badge, got %v", first.NewAchievements)
	}

	second, err := SubmitAttempt(db, user.ID, quiz, answersFor(quiz, 1))
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if len(second.NewAchievements) != 0 {
		t.Fatalf("second perfect score should grant nothing, got %v", second.NewAchievements)
	}

	var count int64
	db.Model(&models.Achievement{}).
		Where("user_id = ? AND name = ?", user.ID, AchievementPerfectScore).
		Count(&count)
	if count != 1 {
		t.Fatalf("achievement rows: want=1 got=%d", count)
	}
}

func TestQuizMasterFiresAtFifthHighScore(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "learner@example.com")
	subject := seedSubject(t, db, "Mathematics")

	// 5-question quiz: 4 of 5 correct scores exactly 80%
	quiz := seedQuiz(t, db, subject.ID, 5, 4, 10)

	for i := 0; i < 4; i++ {
		result, err := SubmitAttempt(db, user.ID, quiz, answersFor(quiz, 4))
		if err != nil {
			t.Fatalf("SubmitAttempt: %v", err)
		}
		for _, a := range result.NewAchievements {
			if a.Name == AchievementQuizMaster {
				t.Fatalf("Quiz Master granted after %d high scores", i+1)
			}
		}
	}

	fifth, err := SubmitAttempt(db, user.ID, quiz, answersFor(quiz, 4))
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	found := false
	for _, a := range fifth.NewAchievements {
		if a.Name == AchievementQuizMaster {
			found = true
		}
	}
	if !found {
		t.Fatalf("Quiz Master should fire on the fifth high score, got %v", fifth.NewAchievements)
	}
}
