package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GeniusPlums/supreme-succotash/internal/services"

	"github.com/gin-gonic/gin"
)

type CMSQuestionHandler struct {
	questionService *services.QuestionService
}

func NewCMSQuestionHandler(questionService *services.QuestionService) *CMSQuestionHandler {
	return &CMSQuestionHandler{questionService: questionService}
}

type QuestionRequest struct {
	ContestID      uint   `json:"contest_id" binding:"required" example:"1"`
	QuestionNumber int    `json:"question_number" binding:"required,min=1" example:"1"`
	Category       string `json:"category" binding:"required,max=100" example:"Football"`
	QuestionText   string `json:"question_text" binding:"required" example:"Which team will have the most possession?"`
	OptionA        string `json:"option_a" binding:"required,max=255" example:"Manchester United"`
	OptionB        string `json:"option_b" binding:"required,max=255" example:"Liverpool FC"`
	OptionC        string `json:"option_c" binding:"required,max=255" example:"Draw/Equal"`
}

func (r QuestionRequest) toInput() services.QuestionInput {
	return services.QuestionInput{
		ContestID:      r.ContestID,
		QuestionNumber: r.QuestionNumber,
		Category:       r.Category,
		QuestionText:   r.QuestionText,
		OptionA:        r.OptionA,
		OptionB:        r.OptionB,
		OptionC:        r.OptionC,
	}
}

// ListQuestions godoc
// @Summary      List questions
// @Description  All questions, optionally filtered by contest_id
// @Tags         cms
// @Produce      json
// @Security     BearerAuth
// @Param        contest_id query int false "Contest ID filter"
// @Success      200 {array} Question
// @Failure      401 {object} ErrorResponse
// @Router       /api/cms/questions [get]
func (h *CMSQuestionHandler) ListQuestions(c *gin.Context) {
	var contestID *uint
	if raw := c.Query("contest_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest_id"})
			return
		}
		id := uint(parsed)
		contestID = &id
	}

	questions, err := h.questionService.ListQuestions(contestID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         cms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body QuestionRequest true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/cms/questions [post]
func (h *CMSQuestionHandler) CreateQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.questionService.CreateQuestion(req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "contest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create question"})
		return
	}
	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Tags         cms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      200 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/cms/questions/{id} [put]
func (h *CMSQuestionHandler) UpdateQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.questionService.UpdateQuestion(uint(id), req.toInput())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update question"})
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         cms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/cms/questions/{id} [delete]
func (h *CMSQuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	if err := h.questionService.DeleteQuestion(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete question"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted"})
}
