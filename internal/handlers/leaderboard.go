package handlers

import (
	"net/http"
	"strconv"

	"github.com/GeniusPlums/supreme-succotash/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	scoringService *services.ScoringService
}

func NewLeaderboardHandler(scoringService *services.ScoringService) *LeaderboardHandler {
	return &LeaderboardHandler{scoringService: scoringService}
}

// GetLeaderboard godoc
// @Summary      Get contest leaderboard
// @Description  Leaderboard rows ordered by rank ascending
// @Tags         leaderboard
// @Produce      json
// @Param        contestId path int true "Contest ID"
// @Success      200 {array} services.LeaderboardRow
// @Failure      400 {object} ErrorResponse
// @Router       /api/contest/{contestId}/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	contestID, err := strconv.ParseUint(c.Param("contestId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	rows, err := h.scoringService.GetLeaderboard(uint(contestID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch leaderboard"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
