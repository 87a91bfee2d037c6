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
	ErrFeedbackNotParticipant = errors.New("only swap participants can leave feedback")
	ErrFeedbackSwapIncomplete = errors.New("feedback requires a completed swap")
	ErrFeedbackExists         = errors.New("feedback for this swap already submitted")
)

// FeedbackService handles post-swap ratings.
type FeedbackService interface {
	// Create stores feedback from a participant of a completed swap; the
	// receiver is always the other party.
	Create(ctx context.Context, giverID string, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	ListForUser(ctx context.Context, receiverID string, page *dto.PaginationRequest) ([]dto.FeedbackResponse, int64, error)
}

type feedbackService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFeedbackService creates the FeedbackService.
func NewFeedbackService(repo *repository.Repository, logger *zap.Logger) FeedbackService {
	return &feedbackService{repo: repo, logger: logger}
}

func (s *feedbackService) Create(ctx context.Context, giverID string, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	swap, err := s.repo.Swap.GetByID(ctx, req.SwapRequestID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSwapNotFound
		}
		s.logger.Error("look up swap request failed", zap.Error(err))
		return nil, err
	}

	if !swap.Participant(giverID) {
		return nil, ErrFeedbackNotParticipant
	}
	if swap.Status != model.SwapStatusCompleted {
		return nil, ErrFeedbackSwapIncomplete
	}

	if _, err := s.repo.Feedback.GetBySwapAndGiver(ctx, req.SwapRequestID, giverID); err == nil {
		return nil, ErrFeedbackExists
	} else if !isNotFound(err) {
		s.logger.Error("look up feedback failed", zap.Error(err))
		return nil, err
	}

	fb := &model.Feedback{
		SwapRequestID: req.SwapRequestID,
		GiverID:       giverID,
		ReceiverID:    swap.OtherParty(giverID),
		Rating:        req.Rating,
		Comment:       req.Comment,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Feedback.Create(ctx, fb); err != nil {
		s.logger.Error("create feedback failed", zap.Error(err))
		return nil, err
	}

	return toFeedbackResponse(fb), nil
}

func (s *feedbackService) ListForUser(ctx context.Context, receiverID string, page *dto.PaginationRequest) ([]dto.FeedbackResponse, int64, error) {
	fbs, total, err := s.repo.Feedback.ListByReceiver(ctx, receiverID, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("list feedback failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.FeedbackResponse, 0, len(fbs))
	for i := range fbs {
		result = append(result, *toFeedbackResponse(&fbs[i]))
	}

	return result, total, nil
}
