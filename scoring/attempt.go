package scoring

import (
	"strconv"
	"time"

	"github.com/sudha-1290/Quiz-Master-V1/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Result is everything a submission produced: the persisted attempt, the
// updated aggregates, and any badges granted by this attempt.
type Result struct {
	Score           models.Score          `json:"score"`
	Statistics      models.UserStatistics `json:"statistics"`
	Progress        models.UserProgress   `json:"progress"`
	NewAchievements []models.Achievement  `json:"newAchievements"`
	Passed          bool                  `json:"passed"`
}

// SubmitAttempt grades one quiz submission and persists the full
// consequence chain: Score insert, UserStatistics upsert, UserProgress
// upsert, achievement evaluation. Everything runs in one transaction so a
// failure never leaves partial aggregates behind.
func SubmitAttempt(db *gorm.DB, userID uint, quiz *models.Quiz, answers map[uint]int) (*Result, error) {
	if len(quiz.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	percentage := Grade(quiz.Questions, answers)
	result := &Result{Passed: percentage >= quiz.PassingPercentage}

	err := db.Transaction(func(tx *gorm.DB) error {
		score := models.Score{
			UserID:  userID,
			QuizID:  quiz.ID,
			Score:   percentage,
			Answers: answersJSON(answers),
		}
		if err := tx.Create(&score).Error; err != nil {
			return err
		}
		result.Score = score

		stats, err := applyStatistics(tx, userID, percentage, quiz.Duration)
		if err != nil {
			return err
		}
		result.Statistics = *stats

		progress, err := applyProgress(tx, userID, quiz.SubjectID, stats.AverageScore)
		if err != nil {
			return err
		}
		result.Progress = *progress

		granted, err := evaluateAchievements(tx, userID, percentage)
		if err != nil {
			return err
		}
		result.NewAchievements = granted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applyStatistics upserts the user's aggregate row. The row is locked on
// postgres so concurrent submissions by the same user serialize instead of
// losing updates; sqlite writers are already exclusive.
func applyStatistics(tx *gorm.DB, userID uint, percentage float64, duration int) (*models.UserStatistics, error) {
	var stats models.UserStatistics
	err := lockForUpdate(tx).Where("user_id = ?", userID).First(&stats).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		stats = models.UserStatistics{UserID: userID}
	}

	stats.TotalQuizzesTaken++
	stats.TotalScore += percentage
	// Recompute from the running sum; incremental averaging drifts
	stats.AverageScore = stats.TotalScore / float64(stats.TotalQuizzesTaken)
	if percentage > stats.HighestScore {
		stats.HighestScore = percentage
	}
	stats.TotalTimeSpent += duration
	stats.LastUpdated = time.Now().UTC()

	if err := tx.Save(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// applyProgress upserts the (user, subject) progress row. Mastery follows
// the user's overall average, not the per-subject one.
func applyProgress(tx *gorm.DB, userID, subjectID uint, overallAverage float64) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := lockForUpdate(tx).
		Where("user_id = ? AND subject_id = ?", userID, subjectID).
		First(&progress).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		progress = models.UserProgress{UserID: userID, SubjectID: subjectID}
	}

	progress.CompletedQuizzes++
	progress.LastActivity = time.Now().UTC()
	progress.MasteryLevel = MasteryLevel(overallAverage)

	if err := tx.Save(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// Badge definitions
const (
	AchievementPerfectScore = "Perfect Score"
	AchievementQuizMaster   = "Quiz Master"

	quizMasterThreshold = 80.0
	quizMasterCount     = 5
)

// evaluateAchievements grants whichever badges this attempt unlocked.
// Inserts ignore conflicts on the (user_id, name) unique index, so an
// already-earned badge is a no-op even under concurrent submissions.
func evaluateAchievements(tx *gorm.DB, userID uint, percentage float64) ([]models.Achievement, error) {
	var granted []models.Achievement

	if percentage == 100 {
		achievement := models.Achievement{
			UserID:      userID,
			Name:        AchievementPerfectScore,
			Description: "Scored 100% on a quiz!",
			BadgeIcon:   "fa-star",
			EarnedDate:  time.Now().UTC(),
		}
		created, err := grantOnce(tx, &achievement)
		if err != nil {
			return nil, err
		}
		if created {
			granted = append(granted, achievement)
		}
	}

	// Quiz Master: five scores at or above 80%, counting this attempt
	var highScores int64
	err := tx.Model(&models.Score{}).
		Where("user_id = ? AND score >= ?", userID, quizMasterThreshold).
		Count(&highScores).Error
	if err != nil {
		return nil, err
	}
	if highScores >= quizMasterCount {
		achievement := models.Achievement{
			UserID:      userID,
			Name:        AchievementQuizMaster,
			Description: "Scored 80% or higher on 5 quizzes!",
			BadgeIcon:   "fa-crown",
			EarnedDate:  time.Now().UTC(),
		}
		created, err := grantOnce(tx, &achievement)
		if err != nil {
			return nil, err
		}
		if created {
			granted = append(granted, achievement)
		}
	}

	return granted, nil
}

func grantOnce(tx *gorm.DB, achievement *models.Achievement) (bool, error) {
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(achievement)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func answersJSON(answers map[uint]int) datatypes.JSONMap {
	out := datatypes.JSONMap{}
	for questionID, option := range answers {
		out[strconv.FormatUint(uint64(questionID), 10)] = option
	}
	return out
}
