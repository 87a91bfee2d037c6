package service

import (
	"go.uber.org/zap"

	"github.com/jashmevada/skill-swap-platform/config"
	"github.com/jashmevada/skill-swap-platform/internal/repository"
	"github.com/jashmevada/skill-swap-platform/pkg/jwt"
	"github.com/jashmevada/skill-swap-platform/pkg/redis"
)

// Service aggregates all services.
type Service struct {
	Auth     AuthService
	User     UserService
	Skill    SkillService
	Swap     SwapService
	Feedback FeedbackService
	Admin    AdminService
	Export   ExportService
}

// NewService wires the service layer.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:     NewUserService(repo, logger),
		Skill:    NewSkillService(repo, logger),
		Swap:     NewSwapService(repo, logger),
		Feedback: NewFeedbackService(repo, logger),
		Admin:    NewAdminService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
