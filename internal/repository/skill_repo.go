package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jashmevada/skill-swap-platform/internal/model"
)

// SkillListFilters narrow the catalog listing.
type SkillListFilters struct {
	Category     string // substring, case-insensitive
	Search       string // name substring, case-insensitive
	ApprovedOnly bool
}

// SkillRepository is the skill catalog data access interface.
type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	GetByID(ctx context.Context, id string) (*model.Skill, error)
	GetByName(ctx context.Context, name string) (*model.Skill, error)
	List(ctx context.Context, filters *SkillListFilters, offset, limit int) ([]model.Skill, int64, error)
	ListPending(ctx context.Context) ([]model.Skill, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (total, approved int64, err error)
}

type skillRepo struct {
	db *gorm.DB
}

// NewSkillRepo creates the gorm-backed SkillRepository.
func NewSkillRepo(db *gorm.DB) SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Create(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepo) GetByID(ctx context.Context, id string) (*model.Skill, error) {
	var skill model.Skill
	err := r.db.WithContext(ctx).
		Where("skill_id = ?", id).
		First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// GetByName matches case-insensitively on the exact name.
func (r *skillRepo) GetByName(ctx context.Context, name string) (*model.Skill, error) {
	var skill model.Skill
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", name).
		First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepo) List(ctx context.Context, filters *SkillListFilters, offset, limit int) ([]model.Skill, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Skill{})

	if filters.ApprovedOnly {
		db = db.Where("is_approved = ?", true)
	}
	if filters.Category != "" {
		db = db.Where("category ILIKE ?", "%"+filters.Category+"%")
	}
	if filters.Search != "" {
		db = db.Where("name ILIKE ?", "%"+filters.Search+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skills []model.Skill
	if err := db.Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&skills).Error; err != nil {
		return nil, 0, err
	}

	return skills, total, nil
}

func (r *skillRepo) ListPending(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.WithContext(ctx).
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepo) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.Skill{}).
		Where("category IS NOT NULL AND category <> '' AND is_approved = ?", true).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *skillRepo) Update(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *skillRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("skill_id = ?", id).
		Delete(&model.Skill{}).Error
}

func (r *skillRepo) Count(ctx context.Context) (total, approved int64, err error) {
	if err = r.db.WithContext(ctx).Model(&model.Skill{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.WithContext(ctx).Model(&model.Skill{}).
		Where("is_approved = ?", true).Count(&approved).Error; err != nil {
		return 0, 0, err
	}
	return total, approved, nil
}
