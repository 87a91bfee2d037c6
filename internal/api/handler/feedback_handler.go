package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/pkg/response"
)

// FeedbackHandler exposes the post-swap rating endpoints.
type FeedbackHandler struct {
	svc service.FeedbackService
}

// NewFeedbackHandler creates the FeedbackHandler.
func NewFeedbackHandler(svc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// Create handles POST /api/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	fb, err := h.svc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSwapNotFound):
			response.NotFound(c, 40004, err.Error())
		case errors.Is(err, service.ErrFeedbackNotParticipant):
			response.Forbidden(c, 50001, err.Error())
		case errors.Is(err, service.ErrFeedbackSwapIncomplete):
			response.BadRequest(c, 50002, err.Error())
		case errors.Is(err, service.ErrFeedbackExists):
			response.Conflict(c, 50003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, fb)
}
