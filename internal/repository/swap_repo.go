package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jashmevada/skill-swap-platform/internal/model"
)

// Swap list roles.
const (
	SwapRoleSent     = "sent"     // caller is the requester
	SwapRoleReceived = "received" // caller is the requested user
	SwapRoleAll      = "all"      // either side
)

// SwapListFilters narrow a swap request listing.
// An empty UserID lists across all users (admin view).
type SwapListFilters struct {
	UserID string
	Role   string           // sent | received | all; ignored when UserID is empty
	Status model.SwapStatus // optional
}

// SwapRepository is the swap request data access interface.
type SwapRepository interface {
	Create(ctx context.Context, req *model.SwapRequest) error
	GetByID(ctx context.Context, id string) (*model.SwapRequest, error)
	// List returns requests ordered by creation time, newest first. The
	// ordering is stable: created_at DESC with the id as tiebreaker.
	List(ctx context.Context, filters *SwapListFilters, offset, limit int) ([]model.SwapRequest, int64, error)
	// UpdateStatus performs a compare-and-swap: the status and updated_at
	// are written in one UPDATE guarded by the expected current status.
	// Returns the number of rows matched; 0 means the record is gone or
	// its status changed since it was read.
	UpdateStatus(ctx context.Context, id string, from, to model.SwapStatus, now time.Time) (int64, error)
	Delete(ctx context.Context, id string) error
	ExistsPendingDuplicate(ctx context.Context, requesterID, requestedID, skillOfferedID, skillWantedID string) (bool, error)
	Count(ctx context.Context) (total, pending, completed int64, err error)
}

type swapRepo struct {
	db *gorm.DB
}

// NewSwapRepo creates the gorm-backed SwapRepository.
func NewSwapRepo(db *gorm.DB) SwapRepository {
	return &swapRepo{db: db}
}

func (r *swapRepo) Create(ctx context.Context, req *model.SwapRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *swapRepo) GetByID(ctx context.Context, id string) (*model.SwapRequest, error) {
	var req model.SwapRequest
	err := r.db.WithContext(ctx).
		Preload("SkillOffered").
		Preload("SkillWanted").
		Where("swap_request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *swapRepo) List(ctx context.Context, filters *SwapListFilters, offset, limit int) ([]model.SwapRequest, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.SwapRequest{})

	if filters.UserID != "" {
		switch filters.Role {
		case SwapRoleSent:
			db = db.Where("requester_id = ?", filters.UserID)
		case SwapRoleReceived:
			db = db.Where("requested_id = ?", filters.UserID)
		default:
			db = db.Where("requester_id = ? OR requested_id = ?", filters.UserID, filters.UserID)
		}
	}
	if filters.Status != "" {
		db = db.Where("status = ?", filters.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reqs []model.SwapRequest
	if err := db.Preload("SkillOffered").
		Preload("SkillWanted").
		Offset(offset).Limit(limit).
		Order("created_at DESC, swap_request_id DESC").
		Find(&reqs).Error; err != nil {
		return nil, 0, err
	}

	return reqs, total, nil
}

func (r *swapRepo) UpdateStatus(ctx context.Context, id string, from, to model.SwapStatus, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("swap_request_id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": now,
		})
	return res.RowsAffected, res.Error
}

func (r *swapRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("swap_request_id = ?", id).
		Delete(&model.SwapRequest{}).Error
}

func (r *swapRepo) ExistsPendingDuplicate(ctx context.Context, requesterID, requestedID, skillOfferedID, skillWantedID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("requester_id = ? AND requested_id = ? AND skill_offered_id = ? AND skill_wanted_id = ? AND status = ?",
			requesterID, requestedID, skillOfferedID, skillWantedID, model.SwapStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *swapRepo) Count(ctx context.Context) (total, pending, completed int64, err error) {
	db := r.db.WithContext(ctx).Model(&model.SwapRequest{})
	if err = db.Count(&total).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("status = ?", model.SwapStatusPending).Count(&pending).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = r.db.WithContext(ctx).Model(&model.SwapRequest{}).
		Where("status = ?", model.SwapStatusCompleted).Count(&completed).Error; err != nil {
		return 0, 0, 0, err
	}
	return total, pending, completed, nil
}
