package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/pkg/response"
)

// UserHandler exposes profile, search, and per-user skill endpoints.
type UserHandler struct {
	svc         service.UserService
	feedbackSvc service.FeedbackService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(svc service.UserService, feedbackSvc service.FeedbackService) *UserHandler {
	return &UserHandler{svc: svc, feedbackSvc: feedbackSvc}
}

// GetMe handles GET /api/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.svc.GetMe(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// UpdateMe handles PUT /api/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	user, err := h.svc.UpdateMe(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// Search handles GET /api/users/search
func (h *UserHandler) Search(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UserSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	users, err := h.svc.Search(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, users)
}

// GetByID handles GET /api/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.svc.GetPublic(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, err.Error())
		case errors.Is(err, service.ErrProfilePrivate):
			response.Forbidden(c, 20002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// GetSkills handles GET /api/users/:id/skills?type=offered|wanted
func (h *UserHandler) GetSkills(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	wanted := c.DefaultQuery("type", "offered") == "wanted"

	skills, err := h.svc.GetSkills(c.Request.Context(), c.Param("id"), callerID, wanted)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, err.Error())
		case errors.Is(err, service.ErrProfilePrivate):
			response.Forbidden(c, 20002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, skills)
}

// AddSkill handles POST /api/users/me/skills/:skillId?type=offered|wanted
func (h *UserHandler) AddSkill(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	wanted := c.DefaultQuery("type", "offered") == "wanted"

	if err := h.svc.AddSkill(c.Request.Context(), userID, c.Param("skillId"), wanted); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, err.Error())
		case errors.Is(err, service.ErrSkillNotFound):
			response.NotFound(c, 30001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"message": "skill added"})
}

// RemoveSkill handles DELETE /api/users/me/skills/:skillId?type=offered|wanted
func (h *UserHandler) RemoveSkill(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	wanted := c.DefaultQuery("type", "offered") == "wanted"

	if err := h.svc.RemoveSkill(c.Request.Context(), userID, c.Param("skillId"), wanted); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, err.Error())
		case errors.Is(err, service.ErrSkillNotFound):
			response.NotFound(c, 30001, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"message": "skill removed"})
}

// GetFeedback handles GET /api/users/:id/feedback
func (h *UserHandler) GetFeedback(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	fbs, total, err := h.feedbackSvc.ListForUser(c.Request.Context(), c.Param("id"), &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, fbs, total, page.GetPage(), page.GetPageSize())
}
