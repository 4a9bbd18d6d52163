package models

type Question struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	ContestID      uint    `gorm:"not null;index" json:"contest_id"`
	QuestionNumber int     `gorm:"not null" json:"question_number"`
	Category       string  `gorm:"size:100;not null" json:"category"`
	QuestionText   string  `gorm:"type:text;not null" json:"question_text"`
	OptionA        string  `gorm:"size:255;not null" json:"option_a"`
	OptionB        string  `gorm:"size:255;not null" json:"option_b"`
	OptionC        string  `gorm:"size:255;not null" json:"option_c"`
	VotesA         int     `gorm:"not null;default:30000" json:"votes_a"`
	VotesB         int     `gorm:"not null;default:50000" json:"votes_b"`
	VotesC         int     `gorm:"not null;default:70000" json:"votes_c"`
	CorrectAnswer  *string `gorm:"size:1" json:"correct_answer"`
}

const (
	OptionA = "A"
	OptionB = "B"
	OptionC = "C"
)

// ValidOption reports whether opt is one of the three answer letters.
func ValidOption(opt string) bool {
	return opt == OptionA || opt == OptionB || opt == OptionC
}
