package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/model"
	"github.com/jashmevada/skill-swap-platform/internal/repository"
)

var (
	ErrSkillNotFound        = errors.New("skill not found")
	ErrSkillPendingApproval = errors.New("skill exists but is pending approval")
)

// SkillService handles the skill catalog.
type SkillService interface {
	// Create returns the existing skill when an approved one with the
	// same name already exists.
	Create(ctx context.Context, req *dto.CreateSkillRequest) (*dto.SkillResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SkillResponse, error)
	List(ctx context.Context, req *dto.SkillListRequest) ([]dto.SkillResponse, int64, error)
	Categories(ctx context.Context) ([]string, error)
	SetApproval(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
}

type skillService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSkillService creates the SkillService.
func NewSkillService(repo *repository.Repository, logger *zap.Logger) SkillService {
	return &skillService{repo: repo, logger: logger}
}

// titleCase normalizes skill names and categories ("go programming" → "Go Programming").
func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func (s *skillService) Create(ctx context.Context, req *dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	name := titleCase(req.Name)

	existing, err := s.repo.Skill.GetByName(ctx, name)
	if err == nil {
		if existing.IsApproved {
			return toSkillResponse(existing), nil
		}
		return nil, ErrSkillPendingApproval
	}
	if !isNotFound(err) {
		s.logger.Error("look up skill failed", zap.Error(err))
		return nil, err
	}

	skill := &model.Skill{
		Name:        name,
		Category:    titleCase(req.Category),
		Description: req.Description,
		IsApproved:  true, // auto-approved; admins can reject afterwards
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Skill.Create(ctx, skill); err != nil {
		s.logger.Error("create skill failed", zap.Error(err))
		return nil, err
	}

	return toSkillResponse(skill), nil
}

func (s *skillService) GetByID(ctx context.Context, id string) (*dto.SkillResponse, error) {
	skill, err := s.repo.Skill.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSkillNotFound
		}
		s.logger.Error("look up skill failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSkillResponse(skill), nil
}

func (s *skillService) List(ctx context.Context, req *dto.SkillListRequest) ([]dto.SkillResponse, int64, error) {
	filters := &repository.SkillListFilters{
		Category:     req.Category,
		Search:       req.Search,
		ApprovedOnly: true,
	}

	skills, total, err := s.repo.Skill.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list skills failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.SkillResponse, 0, len(skills))
	for i := range skills {
		result = append(result, *toSkillResponse(&skills[i]))
	}

	return result, total, nil
}

func (s *skillService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Skill.Categories(ctx)
	if err != nil {
		s.logger.Error("list categories failed", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (s *skillService) SetApproval(ctx context.Context, id string, approved bool) error {
	skill, err := s.repo.Skill.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrSkillNotFound
		}
		s.logger.Error("look up skill failed", zap.String("id", id), zap.Error(err))
		return err
	}

	skill.IsApproved = approved
	if err := s.repo.Skill.Update(ctx, skill); err != nil {
		s.logger.Error("update skill approval failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *skillService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Skill.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrSkillNotFound
		}
		s.logger.Error("look up skill failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Skill.Delete(ctx, id); err != nil {
		s.logger.Error("delete skill failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}
