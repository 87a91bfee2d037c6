package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/model"
	"github.com/jashmevada/skill-swap-platform/internal/repository"
	apperrors "github.com/jashmevada/skill-swap-platform/pkg/errors"
)

var (
	ErrSwapNotFound          = errors.New("swap request not found")
	ErrSelfSwap              = errors.New("cannot request a swap with yourself")
	ErrDuplicateSwap         = errors.New("a pending request for this skill swap already exists")
	ErrOfferedSkillNotOwned  = errors.New("you don't offer the skill you're proposing to teach")
	ErrWantedSkillNotOffered = errors.New("the requested user doesn't offer the skill you want to learn")
	ErrSwapForbidden         = errors.New("not authorized for this swap request")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrSwapConflict          = errors.New("swap request was updated concurrently")
)

// TransitionError wraps a lifecycle failure with the record and the
// attempted target status, so callers can render a precise message.
type TransitionError struct {
	SwapRequestID string
	Target        model.SwapStatus
	Err           error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("swap request %s → %s: %v", e.SwapRequestID, e.Target, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

// SwapService owns the swap request lifecycle: creation, status
// transitions, deletion, and role-relative listings.
type SwapService interface {
	Create(ctx context.Context, requesterID string, req *dto.CreateSwapRequest) (*dto.SwapResponse, error)
	Get(ctx context.Context, id, callerID string) (*dto.SwapResponse, error)
	// List returns the caller's requests, newest first. role selects
	// sent (caller is requester), received (caller is requested), or all.
	List(ctx context.Context, userID string, req *dto.SwapListRequest) ([]dto.SwapResponse, int64, error)
	Transition(ctx context.Context, id, actorID string, target model.SwapStatus) (*dto.SwapResponse, error)
	// Delete is allowed for either party or an admin, regardless of status.
	Delete(ctx context.Context, id, callerID, callerRole string) error
}

type swapService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSwapService creates the SwapService.
func NewSwapService(repo *repository.Repository, logger *zap.Logger) SwapService {
	return &swapService{repo: repo, logger: logger}
}

func (s *swapService) Create(ctx context.Context, requesterID string, req *dto.CreateSwapRequest) (*dto.SwapResponse, error) {
	if req.RequestedID == requesterID {
		return nil, ErrSelfSwap
	}

	requester, err := s.repo.User.GetByID(ctx, requesterID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("look up requester failed", zap.Error(err))
		return nil, err
	}

	requested, err := s.repo.User.GetByID(ctx, req.RequestedID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("look up requested user failed", zap.Error(err))
		return nil, err
	}
	if !requested.IsActive {
		return nil, ErrUserNotFound
	}

	if _, err := s.repo.Skill.GetByID(ctx, req.SkillOfferedID); err != nil {
		if isNotFound(err) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Skill.GetByID(ctx, req.SkillWantedID); err != nil {
		if isNotFound(err) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	if !requester.OffersSkill(req.SkillOfferedID) {
		return nil, ErrOfferedSkillNotOwned
	}
	if !requested.OffersSkill(req.SkillWantedID) {
		return nil, ErrWantedSkillNotOffered
	}

	dup, err := s.repo.Swap.ExistsPendingDuplicate(ctx, requesterID, req.RequestedID, req.SkillOfferedID, req.SkillWantedID)
	if err != nil {
		s.logger.Error("check duplicate swap failed", zap.Error(err))
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateSwap
	}

	now := time.Now().UTC()
	record := &model.SwapRequest{
		RequesterID:    requesterID,
		RequestedID:    req.RequestedID,
		SkillOfferedID: req.SkillOfferedID,
		SkillWantedID:  req.SkillWantedID,
		Message:        req.Message,
		Status:         model.SwapStatusPending,
		Timestamps:     model.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.repo.Swap.Create(ctx, record); err != nil {
		s.logger.Error("create swap request failed", zap.Error(err))
		return nil, err
	}

	return toSwapResponse(record), nil
}

func (s *swapService) Get(ctx context.Context, id, callerID string) (*dto.SwapResponse, error) {
	record, err := s.repo.Swap.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSwapNotFound
		}
		s.logger.Error("look up swap request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !record.Participant(callerID) {
		return nil, ErrSwapForbidden
	}

	return toSwapResponse(record), nil
}

func (s *swapService) List(ctx context.Context, userID string, req *dto.SwapListRequest) ([]dto.SwapResponse, int64, error) {
	role := req.Role
	if role == "" {
		role = repository.SwapRoleAll
	}

	filters := &repository.SwapListFilters{
		UserID: userID,
		Role:   role,
		Status: model.SwapStatus(req.Status),
	}

	records, total, err := s.repo.Swap.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list swap requests failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.SwapResponse, 0, len(records))
	for i := range records {
		result = append(result, *toSwapResponse(&records[i]))
	}

	return result, total, nil
}

// Transition moves a request along the lifecycle table. The status write is
// a compare-and-swap against the status that was read, so two concurrent
// transitions on the same record cannot both succeed: the loser re-reads
// the post-state and fails against the table, or with a conflict if the
// same edge was already taken.
func (s *swapService) Transition(ctx context.Context, id, actorID string, target model.SwapStatus) (*dto.SwapResponse, error) {
	if !target.Valid() {
		return nil, &TransitionError{SwapRequestID: id, Target: target, Err: ErrInvalidTransition}
	}

	record, err := s.repo.Swap.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &TransitionError{SwapRequestID: id, Target: target, Err: ErrSwapNotFound}
		}
		s.logger.Error("look up swap request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	actor, ok := model.CanTransition(record.Status, target)
	if !ok {
		return nil, &TransitionError{SwapRequestID: id, Target: target, Err: ErrInvalidTransition}
	}
	if !record.MayAct(actorID, actor) {
		return nil, &TransitionError{SwapRequestID: id, Target: target, Err: ErrSwapForbidden}
	}

	now := time.Now().UTC()
	affected, err := s.repo.Swap.UpdateStatus(ctx, id, record.Status, target, now)
	if err != nil {
		s.logger.Error("update swap status failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if affected == 0 {
		// Lost a race: evaluate the attempt against the post-state.
		current, err := s.repo.Swap.GetByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return nil, &TransitionError{SwapRequestID: id, Target: target, Err: ErrSwapNotFound}
			}
			return nil, err
		}
		if _, ok := model.CanTransition(current.Status, target); !ok {
			return nil, &TransitionError{SwapRequestID: id, Target: target, Err: ErrInvalidTransition}
		}
		s.logger.Warn("swap transition lost race",
			zap.String("id", id),
			zap.String("target", string(target)),
			zap.String("current_status", string(current.Status)),
			zap.Error(apperrors.ErrStaleRecord),
		)
		return nil, &TransitionError{SwapRequestID: id, Target: target, Err: ErrSwapConflict}
	}

	record.Status = target
	record.UpdatedAt = now

	return toSwapResponse(record), nil
}

func (s *swapService) Delete(ctx context.Context, id, callerID, callerRole string) error {
	record, err := s.repo.Swap.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrSwapNotFound
		}
		s.logger.Error("look up swap request failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if !record.Participant(callerID) && callerRole != model.RoleAdmin {
		return ErrSwapForbidden
	}

	if err := s.repo.Swap.Delete(ctx, id); err != nil {
		s.logger.Error("delete swap request failed", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}
