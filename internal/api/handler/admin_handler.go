package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/model"
	"github.com/jashmevada/skill-swap-platform/internal/service"
	"github.com/jashmevada/skill-swap-platform/pkg/response"
)

// AdminHandler exposes moderation, announcement, stats, report, and
// export endpoints.
type AdminHandler struct {
	svc       service.AdminService
	skillSvc  service.SkillService
	exportSvc service.ExportService
}

// NewAdminHandler creates the AdminHandler.
func NewAdminHandler(svc service.AdminService, skillSvc service.SkillService, exportSvc service.ExportService) *AdminHandler {
	return &AdminHandler{svc: svc, skillSvc: skillSvc, exportSvc: exportSvc}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var req dto.AdminUserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	users, total, err := h.svc.ListUsers(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, users, total, req.GetPage(), req.GetPageSize())
}

// BanUser handles PUT /api/admin/users/:id/ban
func (h *AdminHandler) BanUser(c *gin.Context) {
	h.setUserActive(c, false, "user banned")
}

// UnbanUser handles PUT /api/admin/users/:id/unban
func (h *AdminHandler) UnbanUser(c *gin.Context) {
	h.setUserActive(c, true, "user unbanned")
}

func (h *AdminHandler) setUserActive(c *gin.Context, active bool, message string) {
	if err := h.svc.SetUserActive(c.Request.Context(), c.Param("id"), active); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, err.Error())
		case errors.Is(err, service.ErrCannotBanAdmin):
			response.Forbidden(c, 50004, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, gin.H{"message": message})
}

// ListPendingSkills handles GET /api/admin/skills/pending
func (h *AdminHandler) ListPendingSkills(c *gin.Context) {
	skills, err := h.svc.ListPendingSkills(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, skills)
}

// ApproveSkill handles PUT /api/admin/skills/:id/approve
func (h *AdminHandler) ApproveSkill(c *gin.Context) {
	h.setSkillApproval(c, true, "skill approved")
}

// RejectSkill handles PUT /api/admin/skills/:id/reject
func (h *AdminHandler) RejectSkill(c *gin.Context) {
	h.setSkillApproval(c, false, "skill rejected")
}

func (h *AdminHandler) setSkillApproval(c *gin.Context, approved bool, message string) {
	if err := h.skillSvc.SetApproval(c.Request.Context(), c.Param("id"), approved); err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			response.NotFound(c, 30001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": message})
}

// DeleteSkill handles DELETE /api/admin/skills/:id
func (h *AdminHandler) DeleteSkill(c *gin.Context) {
	if err := h.skillSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			response.NotFound(c, 30001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "skill deleted"})
}

// ListSwaps handles GET /api/admin/swaps
func (h *AdminHandler) ListSwaps(c *gin.Context) {
	var req dto.AdminSwapListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	swaps, total, err := h.svc.ListSwaps(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, swaps, total, req.GetPage(), req.GetPageSize())
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// CreateMessage handles POST /api/admin/messages
func (h *AdminHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	msg, err := h.svc.CreateMessage(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, msg)
}

// ListMessages handles GET /api/admin/messages
func (h *AdminHandler) ListMessages(c *gin.Context) {
	var isActive *bool
	if raw, exists := c.GetQuery("is_active"); exists {
		v := raw == "true"
		isActive = &v
	}

	msgs, err := h.svc.ListMessages(c.Request.Context(), isActive)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, msgs)
}

// ToggleMessage handles PUT /api/admin/messages/:id/toggle
func (h *AdminHandler) ToggleMessage(c *gin.Context) {
	msg, err := h.svc.ToggleMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			response.NotFound(c, 50005, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, msg)
}

// UserActivityReport handles GET /api/admin/reports/users
func (h *AdminHandler) UserActivityReport(c *gin.Context) {
	report, err := h.svc.UserActivityReport(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, report)
}

// FeedbackReport handles GET /api/admin/reports/feedback
func (h *AdminHandler) FeedbackReport(c *gin.Context) {
	report, err := h.svc.FeedbackReport(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, report)
}

// ExportSwaps handles GET /api/admin/export/swaps — streams an xlsx file.
func (h *AdminHandler) ExportSwaps(c *gin.Context) {
	status := model.SwapStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		response.BadRequest(c, 10001, "invalid status filter")
		return
	}

	buf, filename, err := h.exportSvc.ExportSwaps(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, service.ErrExportNoSwaps) {
			response.NotFound(c, 50006, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
