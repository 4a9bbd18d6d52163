package services

import (
	"time"

	"github.com/GeniusPlums/supreme-succotash/internal/models"

	"gorm.io/gorm"
)

type ContestService struct {
	db *gorm.DB
}

func NewContestService(db *gorm.DB) *ContestService {
	return &ContestService{db: db}
}

type ContestInput struct {
	Name        string
	Description string
	Prize       string
	StartTime   time.Time
	EndTime     time.Time
	IsActive    bool
}

// GetActiveContest returns the currently running contest. The CMS keeps at
// most one contest active at a time.
func (s *ContestService) GetActiveContest() (*models.Contest, error) {
	var contest models.Contest
	if err := s.db.Where("is_active = ?", true).Order("id ASC").First(&contest).Error; err != nil {
		return nil, ErrNotFound
	}
	return &contest, nil
}

func (s *ContestService) GetContest(id uint) (*models.Contest, error) {
	var contest models.Contest
	if err := s.db.First(&contest, id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &contest, nil
}

func (s *ContestService) ListContests() ([]models.Contest, error) {
	var contests []models.Contest
	if err := s.db.Order("id ASC").Find(&contests).Error; err != nil {
		return nil, err
	}
	return contests, nil
}

func (s *ContestService) CreateContest(input ContestInput) (*models.Contest, error) {
	contest := models.Contest{
		Name:        input.Name,
		Description: input.Description,
		Prize:       input.Prize,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		IsActive:    input.IsActive,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if contest.IsActive {
			if err := tx.Model(&models.Contest{}).Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&contest).Error
	})
	if err != nil {
		return nil, err
	}
	return &contest, nil
}

func (s *ContestService) UpdateContest(id uint, input ContestInput) (*models.Contest, error) {
	var contest models.Contest
	if err := s.db.First(&contest, id).Error; err != nil {
		return nil, ErrNotFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.IsActive && !contest.IsActive {
			if err := tx.Model(&models.Contest{}).Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		contest.Name = input.Name
		contest.Description = input.Description
		contest.Prize = input.Prize
		contest.StartTime = input.StartTime
		contest.EndTime = input.EndTime
		contest.IsActive = input.IsActive
		return tx.Save(&contest).Error
	})
	if err != nil {
		return nil, err
	}
	return &contest, nil
}

// DeleteContest removes a contest together with its questions, participants
// and leaderboard rows.
func (s *ContestService) DeleteContest(id uint) error {
	var contest models.Contest
	if err := s.db.First(&contest, id).Error; err != nil {
		return ErrNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contest_id = ?", id).Delete(&models.LeaderboardEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contest_id = ?", id).Delete(&models.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contest_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&contest).Error
	})
}

// IncrementParticipants bumps the denormalized participant counter.
func (s *ContestService) IncrementParticipants(contestID uint, delta int) error {
	return s.db.Model(&models.Contest{}).Where("id = ?", contestID).
		Update("total_participants", gorm.Expr("total_participants + ?", delta)).Error
}
