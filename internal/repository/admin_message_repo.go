package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jashmevada/skill-swap-platform/internal/model"
)

// AdminMessageRepository is the platform announcement data access interface.
type AdminMessageRepository interface {
	Create(ctx context.Context, msg *model.AdminMessage) error
	GetByID(ctx context.Context, id string) (*model.AdminMessage, error)
	List(ctx context.Context, isActive *bool) ([]model.AdminMessage, error)
	Update(ctx context.Context, msg *model.AdminMessage) error
}

type adminMessageRepo struct {
	db *gorm.DB
}

// NewAdminMessageRepo creates the gorm-backed AdminMessageRepository.
func NewAdminMessageRepo(db *gorm.DB) AdminMessageRepository {
	return &adminMessageRepo{db: db}
}

func (r *adminMessageRepo) Create(ctx context.Context, msg *model.AdminMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *adminMessageRepo) GetByID(ctx context.Context, id string) (*model.AdminMessage, error) {
	var msg model.AdminMessage
	err := r.db.WithContext(ctx).
		Where("message_id = ?", id).
		First(&msg).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *adminMessageRepo) List(ctx context.Context, isActive *bool) ([]model.AdminMessage, error) {
	db := r.db.WithContext(ctx)
	if isActive != nil {
		db = db.Where("is_active = ?", *isActive)
	}

	var msgs []model.AdminMessage
	if err := db.Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *adminMessageRepo) Update(ctx context.Context, msg *model.AdminMessage) error {
	return r.db.WithContext(ctx).Save(msg).Error
}
