package services

import (
	"math/rand"
	"time"

	"github.com/GeniusPlums/supreme-succotash/internal/models"
	"github.com/GeniusPlums/supreme-succotash/internal/selection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipantService struct {
	db       *gorm.DB
	contests *ContestService
}

func NewParticipantService(db *gorm.DB, contests *ContestService) *ParticipantService {
	return &ParticipantService{db: db, contests: contests}
}

// JoinResult reports whether the participant was created by this call or
// resumed from an earlier visit.
type JoinResult struct {
	Participant *models.Participant `json:"participant"`
	Created     bool                `json:"created"`
}

// Join returns the existing participant for the session or creates a new
// one. The contest's participant counter is incremented only on creation.
// A missing session id gets a server-generated one; a missing name gets a
// Player_xxxxxx placeholder.
func (s *ParticipantService) Join(contestID uint, sessionID, name string) (*JoinResult, error) {
	if _, err := s.contests.GetContest(contestID); err != nil {
		return nil, err
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var existing models.Participant
	if err := s.db.Where("contest_id = ? AND session_id = ?", contestID, sessionID).
		First(&existing).Error; err == nil {
		return &JoinResult{Participant: &existing}, nil
	}

	if name == "" {
		name = "Player_" + randomSuffix(6)
	}

	participant := models.Participant{
		ContestID: contestID,
		Name:      name,
		SessionID: sessionID,
	}
	if err := s.db.Create(&participant).Error; err != nil {
		// The unique (contest_id, session_id) index catches concurrent
		// joins for the same session; resume with the winner's row.
		var raced models.Participant
		if ferr := s.db.Where("contest_id = ? AND session_id = ?", contestID, sessionID).
			First(&raced).Error; ferr == nil {
			return &JoinResult{Participant: &raced}, nil
		}
		return nil, err
	}

	if err := s.contests.IncrementParticipants(contestID, 1); err != nil {
		return nil, err
	}
	return &JoinResult{Participant: &participant, Created: true}, nil
}

func (s *ParticipantService) GetByID(id uint) (*models.Participant, error) {
	var participant models.Participant
	if err := s.db.First(&participant, id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &participant, nil
}

func (s *ParticipantService) GetBySession(sessionID string) (*models.Participant, error) {
	var participant models.Participant
	if err := s.db.Where("session_id = ?", sessionID).First(&participant).Error; err != nil {
		return nil, ErrNotFound
	}
	return &participant, nil
}

// SubmitSelections persists a participant's final picks. It is a one-shot
// write: a second submission fails with ErrAlreadySubmitted.
func (s *ParticipantService) SubmitSelections(participantID uint, sels models.SelectionList) error {
	participant, err := s.GetByID(participantID)
	if err != nil {
		return err
	}
	if participant.SubmittedAt != nil {
		return ErrAlreadySubmitted
	}

	var questions []models.Question
	if err := s.db.Select("id").Where("contest_id = ?", participant.ContestID).
		Find(&questions).Error; err != nil {
		return err
	}
	questionIDs := make(map[uint]bool, len(questions))
	for _, q := range questions {
		questionIDs[q.ID] = true
	}

	if err := selection.Validate(sels, questionIDs); err != nil {
		return err
	}

	now := time.Now()
	return s.db.Model(participant).Updates(map[string]interface{}{
		"selections":   sels,
		"submitted_at": now,
	}).Error
}

const suffixCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixCharset[rand.Intn(len(suffixCharset))]
	}
	return string(b)
}
