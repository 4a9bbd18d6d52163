package handlers

import (
	"net/http"
	"strconv"

	"github.com/GeniusPlums/supreme-succotash/internal/services"
	"github.com/GeniusPlums/supreme-succotash/internal/ws"

	"github.com/gin-gonic/gin"
)

type CMSScoringHandler struct {
	questionService *services.QuestionService
	scoringService  *services.ScoringService
	hub             *ws.Hub
}

func NewCMSScoringHandler(
	questionService *services.QuestionService,
	scoringService *services.ScoringService,
	hub *ws.Hub,
) *CMSScoringHandler {
	return &CMSScoringHandler{
		questionService: questionService,
		scoringService:  scoringService,
		hub:             hub,
	}
}

type UpdateAnswersRequest struct {
	Answers []services.AnswerUpdate `json:"answers" binding:"required"`
}

// UpdateAnswers godoc
// @Summary      Set correct answers
// @Description  Bulk-set correct answers for a contest and rebuild its leaderboard
// @Tags         cms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        contestId path int true "Contest ID"
// @Param        request body UpdateAnswersRequest true "Answers"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/cms/contest/{contestId}/answers [post]
func (h *CMSScoringHandler) UpdateAnswers(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("contestId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	var req UpdateAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "answers must be an array"})
		return
	}

	if err := h.questionService.BulkUpdateAnswers(uint(contestID), req.Answers); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.recalculate(c, uint(contestID))
}

// Calculate godoc
// @Summary      Recalculate the leaderboard
// @Description  Rebuild scores and leaderboard rows for a contest
// @Tags         cms
// @Produce      json
// @Security     BearerAuth
// @Param        contestId path int true "Contest ID"
// @Success      200 {object} SuccessResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/cms/contest/{contestId}/calculate [post]
func (h *CMSScoringHandler) Calculate(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("contestId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	h.recalculate(c, uint(contestID))
}

func (h *CMSScoringHandler) recalculate(c *gin.Context, contestID uint) {
	if err := h.scoringService.Recalculate(contestID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to calculate scores"})
		return
	}

	h.hub.Broadcast(contestID, ws.WSMessage{
		Type: ws.EventLeaderboardUpdated,
		Data: gin.H{"contest_id": contestID},
	})

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
