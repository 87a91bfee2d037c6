package handler

import "github.com/jashmevada/skill-swap-platform/internal/service"

// Handler aggregates all handlers.
type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Skill    *SkillHandler
	Swap     *SwapHandler
	Feedback *FeedbackHandler
	Admin    *AdminHandler
}

// NewHandler wires the handler layer.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		User:     NewUserHandler(svc.User, svc.Feedback),
		Skill:    NewSkillHandler(svc.Skill),
		Swap:     NewSwapHandler(svc.Swap),
		Feedback: NewFeedbackHandler(svc.Feedback),
		Admin:    NewAdminHandler(svc.Admin, svc.Skill, svc.Export),
	}
}
