package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/repository"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrProfilePrivate = errors.New("this profile is private")
)

// UserService handles profiles, search, and per-user skill sets.
type UserService interface {
	GetMe(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateMe(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	// GetPublic returns another user's profile; private profiles are only
	// visible to their owner.
	GetPublic(ctx context.Context, id, callerID string) (*dto.UserPublicResponse, error)
	Search(ctx context.Context, callerID string, req *dto.UserSearchRequest) ([]dto.UserPublicResponse, error)
	GetSkills(ctx context.Context, id, callerID string, wanted bool) ([]dto.SkillResponse, error)
	AddSkill(ctx context.Context, userID, skillID string, wanted bool) error
	RemoveSkill(ctx context.Context, userID, skillID string, wanted bool) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetMe(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("look up user failed", zap.String("id", userID), zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateMe(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("look up user failed", zap.String("id", userID), zap.Error(err))
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Availability != nil {
		user.Availability = *req.Availability
	}
	if req.ProfilePhoto != nil {
		user.ProfilePhoto = *req.ProfilePhoto
	}
	if req.IsPublic != nil {
		user.IsPublic = *req.IsPublic
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user failed", zap.String("id", userID), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *userService) GetPublic(ctx context.Context, id, callerID string) (*dto.UserPublicResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("look up user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !user.IsPublic && user.UserID != callerID {
		return nil, ErrProfilePrivate
	}

	return toUserPublicResponse(user), nil
}

func (s *userService) Search(ctx context.Context, callerID string, req *dto.UserSearchRequest) ([]dto.UserPublicResponse, error) {
	filters := &repository.UserSearchFilters{
		Skill:     req.Skill,
		Category:  req.Category,
		Location:  req.Location,
		ExcludeID: callerID,
	}

	users, err := s.repo.User.Search(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("search users failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserPublicResponse, 0, len(users))
	for i := range users {
		result = append(result, *toUserPublicResponse(&users[i]))
	}

	return result, nil
}

func (s *userService) GetSkills(ctx context.Context, id, callerID string, wanted bool) ([]dto.SkillResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("look up user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !user.IsPublic && user.UserID != callerID {
		return nil, ErrProfilePrivate
	}

	skills := user.SkillsOffered
	if wanted {
		skills = user.SkillsWanted
	}

	result := make([]dto.SkillResponse, 0, len(skills))
	for i := range skills {
		result = append(result, *toSkillResponse(&skills[i]))
	}

	return result, nil
}

func (s *userService) AddSkill(ctx context.Context, userID, skillID string, wanted bool) error {
	skill, err := s.repo.Skill.GetByID(ctx, skillID)
	if err != nil {
		if isNotFound(err) {
			return ErrSkillNotFound
		}
		return err
	}

	// Association append is idempotent: re-adding an existing skill is a no-op.
	if wanted {
		err = s.repo.User.AddSkillWanted(ctx, userID, skill)
	} else {
		err = s.repo.User.AddSkillOffered(ctx, userID, skill)
	}
	if err != nil {
		s.logger.Error("add user skill failed",
			zap.String("user_id", userID),
			zap.String("skill_id", skillID),
			zap.Bool("wanted", wanted),
			zap.Error(err),
		)
	}
	return err
}

func (s *userService) RemoveSkill(ctx context.Context, userID, skillID string, wanted bool) error {
	skill, err := s.repo.Skill.GetByID(ctx, skillID)
	if err != nil {
		if isNotFound(err) {
			return ErrSkillNotFound
		}
		return err
	}

	if wanted {
		err = s.repo.User.RemoveSkillWanted(ctx, userID, skill)
	} else {
		err = s.repo.User.RemoveSkillOffered(ctx, userID, skill)
	}
	if err != nil {
		s.logger.Error("remove user skill failed",
			zap.String("user_id", userID),
			zap.String("skill_id", skillID),
			zap.Bool("wanted", wanted),
			zap.Error(err),
		)
	}
	return err
}
