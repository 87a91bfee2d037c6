package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jashmevada/skill-swap-platform/internal/model"
)

// FeedbackStats are the aggregate numbers for the admin report.
type FeedbackStats struct {
	Total         int64
	AverageRating float64
	MinRating     int
	MaxRating     int
}

// FeedbackRepository is the feedback data access interface.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *model.Feedback) error
	GetBySwapAndGiver(ctx context.Context, swapRequestID, giverID string) (*model.Feedback, error)
	ListByReceiver(ctx context.Context, receiverID string, offset, limit int) ([]model.Feedback, int64, error)
	Stats(ctx context.Context) (*FeedbackStats, error)
}

type feedbackRepo struct {
	db *gorm.DB
}

// NewFeedbackRepo creates the gorm-backed FeedbackRepository.
func NewFeedbackRepo(db *gorm.DB) FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, fb *model.Feedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}

func (r *feedbackRepo) GetBySwapAndGiver(ctx context.Context, swapRequestID, giverID string) (*model.Feedback, error) {
	var fb model.Feedback
	err := r.db.WithContext(ctx).
		Where("swap_request_id = ? AND giver_id = ?", swapRequestID, giverID).
		First(&fb).Error
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

func (r *feedbackRepo) ListByReceiver(ctx context.Context, receiverID string, offset, limit int) ([]model.Feedback, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Feedback{}).
		Where("receiver_id = ?", receiverID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var fbs []model.Feedback
	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&fbs).Error; err != nil {
		return nil, 0, err
	}

	return fbs, total, nil
}

func (r *feedbackRepo) Stats(ctx context.Context) (*FeedbackStats, error) {
	var row struct {
		Total int64
		Avg   float64
		Min   int
		Max   int
	}
	err := r.db.WithContext(ctx).Model(&model.Feedback{}).
		Select("COUNT(*) AS total, COALESCE(AVG(rating), 0) AS avg, COALESCE(MIN(rating), 0) AS min, COALESCE(MAX(rating), 0) AS max").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &FeedbackStats{
		Total:         row.Total,
		AverageRating: row.Avg,
		MinRating:     row.Min,
		MaxRating:     row.Max,
	}, nil
}
