package testutil

import (
	"testing"
	"time"

	"github.com/GeniusPlums/supreme-succotash/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory database with the full schema. Each call
// is fully isolated; the single-connection pool keeps the in-memory store
// alive for the test's duration.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Contest{},
		&models.Question{},
		&models.Participant{},
		&models.LeaderboardEntry{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// CreateContest inserts an active contest for tests.
func CreateContest(t *testing.T, db *gorm.DB) *models.Contest {
	t.Helper()

	contest := models.Contest{
		Name:      "Test Contest",
		Prize:     "₹1,000",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(5 * time.Hour),
		IsActive:  true,
	}
	if err := db.Create(&contest).Error; err != nil {
		t.Fatalf("failed to create test contest: %v", err)
	}
	return &contest
}

// CreateQuestions inserts n questions for the contest, numbered 1..n.
func CreateQuestions(t *testing.T, db *gorm.DB, contestID uint, n int) []models.Question {
	t.Helper()

	questions := make([]models.Question, n)
	for i := 0; i < n; i++ {
		questions[i] = models.Question{
			ContestID:      contestID,
			QuestionNumber: i + 1,
			Category:       "Sports",
			QuestionText:   "Test question",
			OptionA:        "Alpha",
			OptionB:        "Bravo",
			OptionC:        "Charlie",
			VotesA:         30000,
			VotesB:         50000,
			VotesC:         70000,
		}
		if err := db.Create(&questions[i]).Error; err != nil {
			t.Fatalf("failed to create test question: %v", err)
		}
	}
	return questions
}

// CreateParticipant inserts a participant, optionally with submitted
// selections.
func CreateParticipant(t *testing.T, db *gorm.DB, contestID uint, name, sessionID string, sels models.SelectionList) *models.Participant {
	t.Helper()

	participant := models.Participant{
		ContestID:  contestID,
		Name:       name,
		SessionID:  sessionID,
		Selections: sels,
	}
	if sels != nil {
		now := time.Now()
		participant.SubmittedAt = &now
	}
	if err := db.Create(&participant).Error; err != nil {
		t.Fatalf("failed to create test participant: %v", err)
	}
	return &participant
}

// SetCorrectAnswers marks the given answer letter as correct for every
// listed question.
func SetCorrectAnswers(t *testing.T, db *gorm.DB, answer string, questionIDs ...uint) {
	t.Helper()

	for _, id := range questionIDs {
		if err := db.Model(&models.Question{}).Where("id = ?", id).
			Update("correct_answer", answer).Error; err != nil {
			t.Fatalf("failed to set correct answer: %v", err)
		}
	}
}
