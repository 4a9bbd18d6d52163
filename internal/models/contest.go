package models

import "time"

type Contest struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:255;not null" json:"name"`
	Description       string    `gorm:"type:text" json:"description"`
	Prize             string    `gorm:"size:100;not null" json:"prize"`
	StartTime         time.Time `gorm:"not null" json:"start_time"`
	EndTime           time.Time `gorm:"not null" json:"end_time"`
	IsActive          bool      `gorm:"not null;default:true" json:"is_active"`
	TotalParticipants int       `gorm:"not null;default:0" json:"total_participants"`
}
