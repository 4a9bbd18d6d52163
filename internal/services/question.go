package services

import (
	"fmt"

	"github.com/GeniusPlums/supreme-succotash/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	ContestID      uint
	QuestionNumber int
	Category       string
	QuestionText   string
	OptionA        string
	OptionB        string
	OptionC        string
}

// AnswerUpdate sets the correct answer for one question.
type AnswerUpdate struct {
	QuestionID    uint   `json:"questionId"`
	CorrectAnswer string `json:"correctAnswer"`
}

// GetQuestionsByContest returns a contest's questions ordered by their
// question number.
func (s *QuestionService) GetQuestionsByContest(contestID uint) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Where("contest_id = ?", contestID).
		Order("question_number ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// ListQuestions returns all questions, optionally filtered to one contest.
func (s *QuestionService) ListQuestions(contestID *uint) ([]models.Question, error) {
	query := s.db.Order("contest_id ASC, question_number ASC")
	if contestID != nil {
		query = query.Where("contest_id = ?", *contestID)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	var contest models.Contest
	if err := s.db.First(&contest, input.ContestID).Error; err != nil {
		return nil, ErrNotFound
	}

	question := models.Question{
		ContestID:      input.ContestID,
		QuestionNumber: input.QuestionNumber,
		Category:       input.Category,
		QuestionText:   input.QuestionText,
		OptionA:        input.OptionA,
		OptionB:        input.OptionB,
		OptionC:        input.OptionC,
		VotesA:         30000,
		VotesB:         50000,
		VotesC:         70000,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) UpdateQuestion(id uint, input QuestionInput) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return nil, ErrNotFound
	}

	question.QuestionNumber = input.QuestionNumber
	question.Category = input.Category
	question.QuestionText = input.QuestionText
	question.OptionA = input.OptionA
	question.OptionB = input.OptionB
	question.OptionC = input.OptionC
	if err := s.db.Save(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) DeleteQuestion(id uint) error {
	result := s.db.Delete(&models.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkUpdateAnswers writes the admin-supplied correct answers for a
// contest's questions. Every answer must be one of A/B/C; updates to
// questions outside the contest are rejected.
func (s *QuestionService) BulkUpdateAnswers(contestID uint, answers []AnswerUpdate) error {
	for _, a := range answers {
		if !models.ValidOption(a.CorrectAnswer) {
			return fmt.Errorf("invalid correct answer %q for question %d", a.CorrectAnswer, a.QuestionID)
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, a := range answers {
			result := tx.Model(&models.Question{}).
				Where("id = ? AND contest_id = ?", a.QuestionID, contestID).
				Update("correct_answer", a.CorrectAnswer)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("question %d does not belong to contest %d", a.QuestionID, contestID)
			}
		}
		return nil
	})
}
