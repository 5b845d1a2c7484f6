package handlers

import (
	"fmt"
	"testing"

	"github.com/sudha-1290/Quiz-Master-V1/config"
	"github.com/sudha-1290/Quiz-Master-V1/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestHandler(t *testing.T) *DBHandler {
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
	return &DBHandler{DB: db}
}

func seedUser(t *testing.T, db *gorm.DB, email string, isAdmin bool) *models.User {
	t.Helper()
	user := models.User{Email: email, PasswordHash: "x", FullName: email, IsAdmin: isAdmin}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func seedSubjectWithQuiz(t *testing.T, db *gorm.DB, name string) (*models.Subject, *models.Quiz) {
	t.Helper()
	subject := models.Subject{Name: name}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("create subject: %v", err)
	}
	quiz := models.Quiz{
		Title:      name + " Quiz",
		SubjectID:  subject.ID,
		Duration:   10,
		TotalMarks: 10,
	}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	return &subject, &quiz
}

func seedScore(t *testing.T, db *gorm.DB, userID, quizID uint, percentage float64) {
	t.Helper()
	score := models.Score{UserID: userID, QuizID: quizID, Score: percentage}
	if err := db.Create(&score).Error; err != nil {
		t.Fatalf("create score: %v", err)
	}
}
