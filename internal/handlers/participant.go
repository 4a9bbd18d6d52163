package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GeniusPlums/supreme-succotash/internal/models"
	"github.com/GeniusPlums/supreme-succotash/internal/selection"
	"github.com/GeniusPlums/supreme-succotash/internal/services"
	"github.com/GeniusPlums/supreme-succotash/internal/ws"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	participantService *services.ParticipantService
	hub                *ws.Hub
}

func NewParticipantHandler(participantService *services.ParticipantService, hub *ws.Hub) *ParticipantHandler {
	return &ParticipantHandler{participantService: participantService, hub: hub}
}

type SubmitSelectionsRequest struct {
	Selections []models.Selection `json:"selections" binding:"required"`
}

// SubmitSelections godoc
// @Summary      Submit predictions
// @Description  Persist a participant's final 5 selections; a one-shot write
// @Tags         participants
// @Accept       json
// @Produce      json
// @Param        participantId path int true "Participant ID"
// @Param        request body SubmitSelectionsRequest true "Exactly 5 selections"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/participant/{participantId}/selections [post]
func (h *ParticipantHandler) SubmitSelections(c *gin.Context) {
	participantID, err := strconv.ParseUint(c.Param("participantId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid participant id"})
		return
	}

	var req SubmitSelectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.Selections) != selection.MaxSelections {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "must select exactly 5 questions"})
		return
	}

	if err := h.participantService.SubmitSelections(uint(participantID), req.Selections); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "participant not found"})
		case errors.Is(err, services.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return
	}

	participant, err := h.participantService.GetByID(uint(participantID))
	if err == nil {
		h.hub.Broadcast(participant.ContestID, ws.WSMessage{
			Type: ws.EventSelectionsSubmitted,
			Data: gin.H{"participant_id": participant.ID},
		})
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// GetBySession godoc
// @Summary      Get participant by session
// @Description  Resolve the participant record for a browser session
// @Tags         participants
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} Participant
// @Failure      404 {object} ErrorResponse
// @Router       /api/participant/session/{sessionId} [get]
func (h *ParticipantHandler) GetBySession(c *gin.Context) {
	participant, err := h.participantService.GetBySession(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "participant not found"})
		return
	}
	c.JSON(http.StatusOK, participant)
}
