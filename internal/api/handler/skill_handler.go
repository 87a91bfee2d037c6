package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/pkg/response"
)

// SkillHandler exposes the skill catalog endpoints.
type SkillHandler struct {
	svc service.SkillService
}

// NewSkillHandler creates the SkillHandler.
func NewSkillHandler(svc service.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

// Create handles POST /api/skills
func (h *SkillHandler) Create(c *gin.Context) {
	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	skill, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSkillPendingApproval) {
			response.BadRequest(c, 30002, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, skill)
}

// List handles GET /api/skills
func (h *SkillHandler) List(c *gin.Context) {
	var req dto.SkillListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	skills, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, skills, total, req.GetPage(), req.GetPageSize())
}

// Categories handles GET /api/skills/categories
func (h *SkillHandler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, categories)
}

// GetByID handles GET /api/skills/:id
func (h *SkillHandler) GetByID(c *gin.Context) {
	skill, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			response.NotFound(c, 30001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, skill)
}
