package services

import (
	"sort"

	"github.com/GeniusPlums/supreme-succotash/internal/models"

	"gorm.io/gorm"
)

// PointsPerCorrect is awarded for every selection matching the question's
// correct answer.
const PointsPerCorrect = 100

type ScoringService struct {
	db *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{db: db}
}

// LeaderboardRow is a leaderboard entry with the participant's display name
// joined in for the public endpoint.
type LeaderboardRow struct {
	ID                 uint   `json:"id"`
	ContestID          uint   `json:"contest_id"`
	ParticipantID      uint   `json:"participant_id"`
	Rank               int    `json:"rank"`
	Points             int    `json:"points"`
	CorrectPredictions int    `json:"correct_predictions"`
	Name               string `json:"name"`
}

type scoredParticipant struct {
	participant models.Participant
	points      int
	correct     int
}

// Recalculate rebuilds a contest's leaderboard from scratch: score every
// participant with submitted selections, stable-sort by points descending,
// assign dense ranks 1..N, and replace all leaderboard rows. Re-running with
// unchanged inputs produces an identical board. Selections whose question is
// missing or unscored simply contribute nothing.
func (s *ScoringService) Recalculate(contestID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var questions []models.Question
		if err := tx.Where("contest_id = ?", contestID).Find(&questions).Error; err != nil {
			return err
		}
		correctByQuestion := make(map[uint]string, len(questions))
		for _, q := range questions {
			if q.CorrectAnswer != nil {
				correctByQuestion[q.ID] = *q.CorrectAnswer
			}
		}

		// Fetch order (id ascending) is the tie-break for equal points,
		// kept stable through the sort below.
		var participants []models.Participant
		if err := tx.Where("contest_id = ? AND selections IS NOT NULL", contestID).
			Order("id ASC").Find(&participants).Error; err != nil {
			return err
		}

		scored := make([]scoredParticipant, len(participants))
		for i, p := range participants {
			correct := 0
			for _, sel := range p.Selections {
				if answer, ok := correctByQuestion[sel.QuestionID]; ok && answer == sel.SelectedOption {
					correct++
				}
			}
			scored[i] = scoredParticipant{
				participant: p,
				points:      correct * PointsPerCorrect,
				correct:     correct,
			}
		}

		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].points > scored[j].points
		})

		for i, sp := range scored {
			rank := i + 1
			err := tx.Model(&models.Participant{}).Where("id = ?", sp.participant.ID).
				Updates(map[string]interface{}{
					"total_points":        sp.points,
					"correct_predictions": sp.correct,
					"rank":                rank,
				}).Error
			if err != nil {
				return err
			}
		}

		if err := tx.Where("contest_id = ?", contestID).
			Delete(&models.LeaderboardEntry{}).Error; err != nil {
			return err
		}
		for i, sp := range scored {
			entry := models.LeaderboardEntry{
				ContestID:          contestID,
				ParticipantID:      sp.participant.ID,
				Rank:               i + 1,
				Points:             sp.points,
				CorrectPredictions: sp.correct,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetLeaderboard returns a contest's leaderboard ordered by rank.
func (s *ScoringService) GetLeaderboard(contestID uint) ([]LeaderboardRow, error) {
	rows := make([]LeaderboardRow, 0)
	err := s.db.Model(&models.LeaderboardEntry{}).
		Select("leaderboard_entries.id, leaderboard_entries.contest_id, leaderboard_entries.participant_id, leaderboard_entries.rank, leaderboard_entries.points, leaderboard_entries.correct_predictions, participants.name AS name").
		Joins("LEFT JOIN participants ON participants.id = leaderboard_entries.participant_id").
		Where("leaderboard_entries.contest_id = ?", contestID).
		Order("leaderboard_entries.rank ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetEntries returns the raw leaderboard rows for a contest, rank ascending.
func (s *ScoringService) GetEntries(contestID uint) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := s.db.Where("contest_id = ?", contestID).
		Order("rank ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
