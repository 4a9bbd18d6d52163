package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GeniusPlums/supreme-succotash/internal/services"
	"github.com/GeniusPlums/supreme-succotash/internal/ws"

	"github.com/gin-gonic/gin"
)

type ContestHandler struct {
	contestService     *services.ContestService
	questionService    *services.QuestionService
	participantService *services.ParticipantService
	hub                *ws.Hub
}

func NewContestHandler(
	contestService *services.ContestService,
	questionService *services.QuestionService,
	participantService *services.ParticipantService,
	hub *ws.Hub,
) *ContestHandler {
	return &ContestHandler{
		contestService:     contestService,
		questionService:    questionService,
		participantService: participantService,
		hub:                hub,
	}
}

type JoinRequest struct {
	SessionID string `json:"sessionId" example:"e9c1d0a4-7f1b-4f6e-9f0a-2b7c3d4e5f6a"`
	Name      string `json:"name" example:"SportsMaster"`
}

// GetActiveContest godoc
// @Summary      Get the active contest
// @Description  Returns the currently running contest
// @Tags         contest
// @Produce      json
// @Success      200 {object} Contest
// @Failure      404 {object} ErrorResponse
// @Router       /api/contest [get]
func (h *ContestHandler) GetActiveContest(c *gin.Context) {
	contest, err := h.contestService.GetActiveContest()
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active contest found"})
		return
	}
	c.JSON(http.StatusOK, contest)
}

// GetQuestions godoc
// @Summary      List contest questions
// @Description  Questions for a contest ordered by question number
// @Tags         contest
// @Produce      json
// @Param        contestId path int true "Contest ID"
// @Success      200 {array} Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/contest/{contestId}/questions [get]
func (h *ContestHandler) GetQuestions(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("contestId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	questions, err := h.questionService.GetQuestionsByContest(uint(contestID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// Join godoc
// @Summary      Join a contest
// @Description  Returns the participant for the session, creating one on first visit
// @Tags         contest
// @Accept       json
// @Produce      json
// @Param        contestId path int true "Contest ID"
// @Param        request body JoinRequest true "Join data"
// @Success      200 {object} services.JoinResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/contest/{contestId}/join [post]
func (h *ContestHandler) Join(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("contestId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.participantService.Join(uint(contestID), req.SessionID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "contest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to join contest"})
		return
	}

	if result.Created {
		h.hub.Broadcast(uint(contestID), ws.WSMessage{
			Type: ws.EventParticipantJoined,
			Data: result.Participant,
		})
	}

	c.JSON(http.StatusOK, result)
}
