package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/model"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/pkg/response"
)

// SwapHandler exposes the swap request lifecycle endpoints.
type SwapHandler struct {
	svc service.SwapService
}

// NewSwapHandler creates the SwapHandler.
func NewSwapHandler(svc service.SwapService) *SwapHandler {
	return &SwapHandler{svc: svc}
}

// Create handles POST /api/swaps
func (h *SwapHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	swap, err := h.svc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfSwap):
			response.BadRequest(c, 40001, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, err.Error())
		case errors.Is(err, service.ErrSkillNotFound):
			response.NotFound(c, 30001, err.Error())
		case errors.Is(err, service.ErrOfferedSkillNotOwned),
			errors.Is(err, service.ErrWantedSkillNotOffered):
			response.BadRequest(c, 40002, err.Error())
		case errors.Is(err, service.ErrDuplicateSwap):
			response.BadRequest(c, 40003, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, swap)
}

// List handles GET /api/swaps
func (h *SwapHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SwapListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	swaps, total, err := h.svc.List(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, swaps, total, req.GetPage(), req.GetPageSize())
}

// GetByID handles GET /api/swaps/:id
func (h *SwapHandler) GetByID(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	swap, err := h.svc.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSwapNotFound):
			response.NotFound(c, 40004, err.Error())
		case errors.Is(err, service.ErrSwapForbidden):
			response.Forbidden(c, 40005, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, swap)
}

// Update handles PUT /api/swaps/:id (status transition)
func (h *SwapHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	swap, err := h.svc.Transition(c.Request.Context(), c.Param("id"), userID, model.SwapStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSwapNotFound):
			response.NotFound(c, 40004, err.Error())
		case errors.Is(err, service.ErrSwapForbidden):
			response.Forbidden(c, 40005, err.Error())
		case errors.Is(err, service.ErrInvalidTransition):
			response.Conflict(c, 40006, err.Error())
		case errors.Is(err, service.ErrSwapConflict):
			response.Conflict(c, 40007, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, swap)
}

// Delete handles DELETE /api/swaps/:id
func (h *SwapHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID, role); err != nil {
		switch {
		case errors.Is(err, service.ErrSwapNotFound):
			response.NotFound(c, 40004, err.Error())
		case errors.Is(err, service.ErrSwapForbidden):
			response.Forbidden(c, 40005, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"message": "swap request deleted"})
}
