package models

// LeaderboardEntry is a denormalized row rebuilt wholesale on every score
// recalculation. Ranks are always dense 1..N per contest.
type LeaderboardEntry struct {
	ID                 uint `gorm:"primaryKey" json:"id"`
	ContestID          uint `gorm:"not null;index" json:"contest_id"`
	ParticipantID      uint `gorm:"not null" json:"participant_id"`
	Rank               int  `gorm:"not null" json:"rank"`
	Points             int  `gorm:"not null" json:"points"`
	CorrectPredictions int  `gorm:"not null" json:"correct_predictions"`
}
