package handlers

import "github.com/GeniusPlums/supreme-succotash/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// Type aliases so swag can resolve models in annotations.
type Contest = models.Contest
type Question = models.Question
type Participant = models.Participant
