package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/model"
	"github.com/jashmevada/skill-swap-platform/internal/repository"
)

var (
	ErrCannotBanAdmin  = errors.New("cannot ban an admin user")
	ErrMessageNotFound = errors.New("message not found")
)

// AdminService covers moderation, announcements, stats, and reports.
type AdminService interface {
	ListUsers(ctx context.Context, req *dto.AdminUserListRequest) ([]dto.UserResponse, int64, error)
	SetUserActive(ctx context.Context, id string, active bool) error
	ListPendingSkills(ctx context.Context) ([]dto.SkillResponse, error)
	ListSwaps(ctx context.Context, req *dto.AdminSwapListRequest) ([]dto.SwapResponse, int64, error)
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	CreateMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	ListMessages(ctx context.Context, isActive *bool) ([]dto.MessageResponse, error)
	ToggleMessage(ctx context.Context, id string) (*dto.MessageResponse, error)
	UserActivityReport(ctx context.Context) ([]dto.UserActivityReport, error)
	FeedbackReport(ctx context.Context) (*dto.FeedbackReport, error)
}

type adminService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAdminService creates the AdminService.
func NewAdminService(repo *repository.Repository, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, logger: logger}
}

func (s *adminService) ListUsers(ctx context.Context, req *dto.AdminUserListRequest) ([]dto.UserResponse, int64, error) {
	users, total, err := s.repo.User.List(ctx, req.IsActive, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *toUserResponse(&users[i]))
	}

	return result, total, nil
}

func (s *adminService) SetUserActive(ctx context.Context, id string, active bool) error {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		s.logger.Error("look up user failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if !active && user.IsAdmin() {
		return ErrCannotBanAdmin
	}

	user.IsActive = active
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user active flag failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *adminService) ListPendingSkills(ctx context.Context) ([]dto.SkillResponse, error) {
	skills, err := s.repo.Skill.ListPending(ctx)
	if err != nil {
		s.logger.Error("list pending skills failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SkillResponse, 0, len(skills))
	for i := range skills {
		result = append(result, *toSkillResponse(&skills[i]))
	}

	return result, nil
}

func (s *adminService) ListSwaps(ctx context.Context, req *dto.AdminSwapListRequest) ([]dto.SwapResponse, int64, error) {
	filters := &repository.SwapListFilters{
		Status: model.SwapStatus(req.Status),
	}

	records, total, err := s.repo.Swap.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list swaps failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.SwapResponse, 0, len(records))
	for i := range records {
		result = append(result, *toSwapResponse(&records[i]))
	}

	return result, total, nil
}

func (s *adminService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	totalUsers, activeUsers, err := s.repo.User.Count(ctx)
	if err != nil {
		s.logger.Error("count users failed", zap.Error(err))
		return nil, err
	}

	totalSkills, approvedSkills, err := s.repo.Skill.Count(ctx)
	if err != nil {
		s.logger.Error("count skills failed", zap.Error(err))
		return nil, err
	}

	totalSwaps, pendingSwaps, completedSwaps, err := s.repo.Swap.Count(ctx)
	if err != nil {
		s.logger.Error("count swaps failed", zap.Error(err))
		return nil, err
	}

	return &dto.StatsResponse{
		Users: dto.UserStats{
			Total:    totalUsers,
			Active:   activeUsers,
			Inactive: totalUsers - activeUsers,
		},
		Skills: dto.SkillStats{
			Total:    totalSkills,
			Approved: approvedSkills,
			Pending:  totalSkills - approvedSkills,
		},
		Swaps: dto.SwapStats{
			Total:     totalSwaps,
			Pending:   pendingSwaps,
			Completed: completedSwaps,
		},
	}, nil
}

func (s *adminService) CreateMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	msg := &model.AdminMessage{
		Title:     req.Title,
		Content:   req.Content,
		IsActive:  isActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AdminMessage.Create(ctx, msg); err != nil {
		s.logger.Error("create admin message failed", zap.Error(err))
		return nil, err
	}

	return toMessageResponse(msg), nil
}

func (s *adminService) ListMessages(ctx context.Context, isActive *bool) ([]dto.MessageResponse, error) {
	msgs, err := s.repo.AdminMessage.List(ctx, isActive)
	if err != nil {
		s.logger.Error("list admin messages failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MessageResponse, 0, len(msgs))
	for i := range msgs {
		result = append(result, *toMessageResponse(&msgs[i]))
	}

	return result, nil
}

func (s *adminService) ToggleMessage(ctx context.Context, id string) (*dto.MessageResponse, error) {
	msg, err := s.repo.AdminMessage.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrMessageNotFound
		}
		s.logger.Error("look up admin message failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	msg.IsActive = !msg.IsActive
	if err := s.repo.AdminMessage.Update(ctx, msg); err != nil {
		s.logger.Error("toggle admin message failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toMessageResponse(msg), nil
}

func (s *adminService) UserActivityReport(ctx context.Context) ([]dto.UserActivityReport, error) {
	rows, err := s.repo.User.ActivityReport(ctx)
	if err != nil {
		s.logger.Error("user activity report failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserActivityReport, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.UserActivityReport{
			UserID:        row.UserID,
			Username:      row.Username,
			Email:         row.Email,
			CreatedAt:     row.CreatedAt,
			IsActive:      row.IsActive,
			TotalRequests: row.TotalRequests,
		})
	}

	return result, nil
}

func (s *adminService) FeedbackReport(ctx context.Context) (*dto.FeedbackReport, error) {
	stats, err := s.repo.Feedback.Stats(ctx)
	if err != nil {
		s.logger.Error("feedback report failed", zap.Error(err))
		return nil, err
	}

	return &dto.FeedbackReport{
		TotalFeedback: stats.Total,
		AverageRating: stats.AverageRating,
		MinRating:     stats.MinRating,
		MaxRating:     stats.MaxRating,
	}, nil
}
