package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GeniusPlums/supreme-succotash/internal/services"

	"github.com/gin-gonic/gin"
)

type CMSContestHandler struct {
	contestService *services.ContestService
}

func NewCMSContestHandler(contestService *services.ContestService) *CMSContestHandler {
	return &CMSContestHandler{contestService: contestService}
}

type ContestRequest struct {
	Name        string    `json:"name" binding:"required,min=1,max=255" example:"Opinion 5 - Sports Edition"`
	Description string    `json:"description" example:"Pick 5 winning opinions from 11 sports questions"`
	Prize       string    `json:"prize" binding:"required" example:"₹1,000"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	IsActive    bool      `json:"is_active"`
}

func (r ContestRequest) toInput() services.ContestInput {
	return services.ContestInput{
		Name:        r.Name,
		Description: r.Description,
		Prize:       r.Prize,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsActive:    r.IsActive,
	}
}

// ListContests godoc
// @Summary      List all contests
// @Tags         cms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Contest
// @Failure      401 {object} ErrorResponse
// @Router       /api/cms/contests [get]
func (h *CMSContestHandler) ListContests(c *gin.Context) {
	contests, err := h.contestService.ListContests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch contests"})
		return
	}
	c.JSON(http.StatusOK, contests)
}

// CreateContest godoc
// @Summary      Create a contest
// @Description  Creating an active contest deactivates all others
// @Tags         cms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ContestRequest true "Contest data"
// @Success      201 {object} Contest
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/cms/contests [post]
func (h *CMSContestHandler) CreateContest(c *gin.Context) {
	var req ContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	contest, err := h.contestService.CreateContest(req.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create contest"})
		return
	}
	c.JSON(http.StatusCreated, contest)
}

// UpdateContest godoc
// @Summary      Update a contest
// @Tags         cms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Contest ID"
// @Param        request body ContestRequest true "Contest data"
// @Success      200 {object} Contest
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/cms/contests/{id} [put]
func (h *CMSContestHandler) UpdateContest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	var req ContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	contest, err := h.contestService.UpdateContest(uint(id), req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "contest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update contest"})
		return
	}
	c.JSON(http.StatusOK, contest)
}

// DeleteContest godoc
// @Summary      Delete a contest
// @Description  Removes the contest with its questions, participants and leaderboard
// @Tags         cms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Contest ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/cms/contests/{id} [delete]
func (h *CMSContestHandler) DeleteContest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	if err := h.contestService.DeleteContest(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "contest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete contest"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "contest deleted"})
}
