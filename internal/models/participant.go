package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Participant struct {
	ID                 uint          `gorm:"primaryKey" json:"id"`
	ContestID          uint          `gorm:"not null;uniqueIndex:idx_contest_session" json:"contest_id"`
	Name               string        `gorm:"size:100;not null" json:"name"`
	SessionID          string        `gorm:"size:64;not null;uniqueIndex:idx_contest_session" json:"session_id"`
	Selections         SelectionList `gorm:"type:text" json:"selections"`
	TotalPoints        *int          `json:"total_points"`
	CorrectPredictions *int          `json:"correct_predictions"`
	Rank               *int          `json:"rank"`
	SubmittedAt        *time.Time    `json:"submitted_at"`
}

// Selection is one submitted prediction: a question and the option the
// participant picked for it.
type Selection struct {
	QuestionID     uint   `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
}

// SelectionList is stored as a JSON column. A nil list marshals to SQL NULL,
// which is how "not yet submitted" is represented.
type SelectionList []Selection

func (s SelectionList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *SelectionList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for SelectionList")
	}
}
