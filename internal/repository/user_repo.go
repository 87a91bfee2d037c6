package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jashmevada/skill-swap-platform/internal/model"
)

// UserSearchFilters narrow the public user search.
type UserSearchFilters struct {
	Skill     string // substring of an offered skill's name
	Category  string // substring of an offered skill's category
	Location  string // substring of the user's location
	ExcludeID string // the searching user, never returned
}

// UserActivityRow is one row of the admin activity report.
type UserActivityRow struct {
	UserID        string
	Username      string
	Email         string
	CreatedAt     string
	IsActive      bool
	TotalRequests int64
}

// UserRepository is the user data access interface.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	Update(ctx context.Context, user *model.User) error
	List(ctx context.Context, isActive *bool, offset, limit int) ([]model.User, int64, error)
	Search(ctx context.Context, filters *UserSearchFilters, offset, limit int) ([]model.User, error)
	AddSkillOffered(ctx context.Context, userID string, skill *model.Skill) error
	RemoveSkillOffered(ctx context.Context, userID string, skill *model.Skill) error
	AddSkillWanted(ctx context.Context, userID string, skill *model.Skill) error
	RemoveSkillWanted(ctx context.Context, userID string, skill *model.Skill) error
	Count(ctx context.Context) (total, active int64, err error)
	ActivityReport(ctx context.Context) ([]UserActivityRow, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates the gorm-backed UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("SkillsOffered").
		Preload("SkillsWanted").
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) List(ctx context.Context, isActive *bool, offset, limit int) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	db := r.db.WithContext(ctx).Model(&model.User{})
	if isActive != nil {
		db = db.Where("is_active = ?", *isActive)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepo) Search(ctx context.Context, filters *UserSearchFilters, offset, limit int) ([]model.User, error) {
	db := r.db.WithContext(ctx).Model(&model.User{}).
		Where("users.is_public = ? AND users.is_active = ?", true, true)

	if filters.ExcludeID != "" {
		db = db.Where("users.user_id <> ?", filters.ExcludeID)
	}
	if filters.Location != "" {
		db = db.Where("users.location ILIKE ?", "%"+filters.Location+"%")
	}
	if filters.Skill != "" || filters.Category != "" {
		db = db.Joins("JOIN user_skills_offered uso ON uso.user_id = users.user_id").
			Joins("JOIN skills s ON s.skill_id = uso.skill_id")
		if filters.Skill != "" {
			db = db.Where("s.name ILIKE ?", "%"+filters.Skill+"%")
		}
		if filters.Category != "" {
			db = db.Where("s.category ILIKE ?", "%"+filters.Category+"%")
		}
		db = db.Distinct("users.*")
	}

	var users []model.User
	if err := db.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) AddSkillOffered(ctx context.Context, userID string, skill *model.Skill) error {
	return r.db.WithContext(ctx).
		Model(&model.User{UserID: userID}).
		Association("SkillsOffered").
		Append(skill)
}

func (r *userRepo) RemoveSkillOffered(ctx context.Context, userID string, skill *model.Skill) error {
	return r.db.WithContext(ctx).
		Model(&model.User{UserID: userID}).
		Association("SkillsOffered").
		Delete(skill)
}

func (r *userRepo) AddSkillWanted(ctx context.Context, userID string, skill *model.Skill) error {
	return r.db.WithContext(ctx).
		Model(&model.User{UserID: userID}).
		Association("SkillsWanted").
		Append(skill)
}

func (r *userRepo) RemoveSkillWanted(ctx context.Context, userID string, skill *model.Skill) error {
	return r.db.WithContext(ctx).
		Model(&model.User{UserID: userID}).
		Association("SkillsWanted").
		Delete(skill)
}

func (r *userRepo) Count(ctx context.Context) (total, active int64, err error) {
	if err = r.db.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.WithContext(ctx).Model(&model.User{}).
		Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *userRepo) ActivityReport(ctx context.Context) ([]UserActivityRow, error) {
	var rows []UserActivityRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.user_id, u.username, u.email, u.created_at, u.is_active,
		       COUNT(sr.swap_request_id) AS total_requests
		FROM users u
		LEFT JOIN swap_requests sr
		       ON sr.requester_id = u.user_id OR sr.requested_id = u.user_id
		GROUP BY u.user_id, u.username, u.email, u.created_at, u.is_active
		ORDER BY total_requests DESC`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
