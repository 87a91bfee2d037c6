package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jashmevada/skill-swap-platform/internal/dto"
	"github.com/jashmevada/skill-swap-platform/internal/model"
	"github.com/jashmevada/skill-swap-platform/internal/repository"
)

// ── test fixture ──
//
// Alice offers Guitar and wants Spanish; Bob offers Spanish.
// Most tests create the canonical request: Alice asks Bob to trade
// Guitar lessons for Spanish lessons.

const (
	aliceID   = "user-alice"
	bobID     = "user-bob"
	carolID   = "user-carol"
	guitarID  = "skill-guitar"
	spanishID = "skill-spanish"
)

func setupTestSwapService() (SwapService, *mockSwapRepo) {
	repo, userRepo, skillRepo, swapRepo, _, _ := newMockRepository()

	guitar := &model.Skill{SkillID: guitarID, Name: "Guitar", IsApproved: true}
	spanish := &model.Skill{SkillID: spanishID, Name: "Spanish", IsApproved: true}
	skillRepo.Create(context.Background(), guitar)
	skillRepo.Create(context.Background(), spanish)

	userRepo.Create(context.Background(), &model.User{
		UserID: aliceID, Username: "alice", Email: "alice@example.com",
		IsActive: true, IsPublic: true, Role: model.RoleUser,
		SkillsOffered: []model.Skill{*guitar},
	})
	userRepo.Create(context.Background(), &model.User{
		UserID: bobID, Username: "bob", Email: "bob@example.com",
		IsActive: true, IsPublic: true, Role: model.RoleUser,
		SkillsOffered: []model.Skill{*spanish},
	})
	userRepo.Create(context.Background(), &model.User{
		UserID: carolID, Username: "carol", Email: "carol@example.com",
		IsActive: true, IsPublic: true, Role: model.RoleUser,
	})

	return NewSwapService(repo, zap.NewNop()), swapRepo
}

func createTestSwap(t *testing.T, svc SwapService) *dto.SwapResponse {
	t.Helper()
	swap, err := svc.Create(context.Background(), aliceID, &dto.CreateSwapRequest{
		RequestedID:    bobID,
		SkillOfferedID: guitarID,
		SkillWantedID:  spanishID,
		Message:        "trade guitar for spanish?",
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	return swap
}

// ── Create ──

func TestSwapService_Create_StartsPending(t *testing.T) {
	svc, _ := setupTestSwapService()

	swap := createTestSwap(t, svc)

	if swap.Status != string(model.SwapStatusPending) {
		t.Errorf("expected status=pending, got %s", swap.Status)
	}
	if swap.CreatedAt != swap.UpdatedAt {
		t.Errorf("expected created_at == updated_at on creation, got %s / %s", swap.CreatedAt, swap.UpdatedAt)
	}
	if swap.RequesterID != aliceID || swap.RequestedID != bobID {
		t.Errorf("unexpected parties: %s → %s", swap.RequesterID, swap.RequestedID)
	}
}

func TestSwapService_Create_SelfSwapRejected(t *testing.T) {
	svc, _ := setupTestSwapService()

	_, err := svc.Create(context.Background(), aliceID, &dto.CreateSwapRequest{
		RequestedID:    aliceID,
		SkillOfferedID: guitarID,
		SkillWantedID:  spanishID,
	})
	if !errors.Is(err, ErrSelfSwap) {
		t.Errorf("expected ErrSelfSwap, got %v", err)
	}
}

func TestSwapService_Create_RequesterMustOfferSkill(t *testing.T) {
	svc, _ := setupTestSwapService()

	// Alice does not offer Spanish.
	_, err := svc.Create(context.Background(), aliceID, &dto.CreateSwapRequest{
		RequestedID:    bobID,
		SkillOfferedID: spanishID,
		SkillWantedID:  spanishID,
	})
	if !errors.Is(err, ErrOfferedSkillNotOwned) {
		t.Errorf("expected ErrOfferedSkillNotOwned, got %v", err)
	}
}

func TestSwapService_Create_RequestedMustOfferWantedSkill(t *testing.T) {
	svc, _ := setupTestSwapService()

	// Carol offers nothing.
	_, err := svc.Create(context.Background(), aliceID, &dto.CreateSwapRequest{
		RequestedID:    carolID,
		SkillOfferedID: guitarID,
		SkillWantedID:  spanishID,
	})
	if !errors.Is(err, ErrWantedSkillNotOffered) {
		t.Errorf("expected ErrWantedSkillNotOffered, got %v", err)
	}
}

func TestSwapService_Create_DuplicatePendingRejected(t *testing.T) {
	svc, _ := setupTestSwapService()

	createTestSwap(t, svc)

	_, err := svc.Create(context.Background(), aliceID, &dto.CreateSwapRequest{
		RequestedID:    bobID,
		SkillOfferedID: guitarID,
		SkillWantedID:  spanishID,
	})
	if !errors.Is(err, ErrDuplicateSwap) {
		t.Errorf("expected ErrDuplicateSwap, got %v", err)
	}
}

func TestSwapService_Create_AfterCancellationAllowed(t *testing.T) {
	svc, _ := setupTestSwapService()

	swap := createTestSwap(t, svc)
	if _, err := svc.Transition(context.Background(), swap.ID, aliceID, model.SwapStatusCancelled); err != nil {
		t.Fatalf("cancel should succeed: %v", err)
	}

	// The duplicate guard only applies to pending requests.
	if _, err := svc.Create(context.Background(), aliceID, &dto.CreateSwapRequest{
		RequestedID:    bobID,
		SkillOfferedID: guitarID,
		SkillWantedID:  spanishID,
	}); err != nil {
		t.Errorf("re-creating after cancellation should succeed, got %v", err)
	}
}

func TestSwapService_Create_UnknownSkill(t *testing.T) {
	svc, _ := setupTestSwapService()

	_, err := svc.Create(context.Background(), aliceID, &dto.CreateSwapRequest{
		RequestedID:    bobID,
		SkillOfferedID: "skill-missing",
		SkillWantedID:  spanishID,
	})
	if !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("expected ErrSkillNotFound, got %v", err)
	}
}

// ── Transition ──

func TestSwapService_Transition_AcceptByRequested(t *testing.T) {
	svc, swapRepo := setupTestSwapService()
	swap := createTestSwap(t, svc)

	updated, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusAccepted)
	if err != nil {
		t.Fatalf("accept should succeed: %v", err)
	}
	if updated.Status != string(model.SwapStatusAccepted) {
		t.Errorf("expected status=accepted, got %s", updated.Status)
	}

	stored := swapRepo.swaps[swap.ID]
	if !stored.UpdatedAt.After(stored.CreatedAt) {
		t.Error("updated_at should advance past created_at on transition")
	}
}

func TestSwapService_Transition_AcceptByRequesterForbidden(t *testing.T) {
	svc, swapRepo := setupTestSwapService()
	swap := createTestSwap(t, svc)

	_, err := svc.Transition(context.Background(), swap.ID, aliceID, model.SwapStatusAccepted)
	if !errors.Is(err, ErrSwapForbidden) {
		t.Errorf("expected ErrSwapForbidden, got %v", err)
	}

	// The failed attempt must leave the record untouched.
	if got := swapRepo.swaps[swap.ID].Status; got != model.SwapStatusPending {
		t.Errorf("record should stay pending, got %s", got)
	}
}

func TestSwapService_Transition_CancelByRequesterOnly(t *testing.T) {
	svc, _ := setupTestSwapService()
	swap := createTestSwap(t, svc)

	if _, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusCancelled); !errors.Is(err, ErrSwapForbidden) {
		t.Errorf("requested user cancelling: expected ErrSwapForbidden, got %v", err)
	}

	if _, err := svc.Transition(context.Background(), swap.ID, aliceID, model.SwapStatusCancelled); err != nil {
		t.Errorf("requester cancelling: expected success, got %v", err)
	}
}

func TestSwapService_Transition_RejectByRequested(t *testing.T) {
	svc, _ := setupTestSwapService()
	swap := createTestSwap(t, svc)

	updated, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusRejected)
	if err != nil {
		t.Fatalf("reject should succeed: %v", err)
	}
	if updated.Status != string(model.SwapStatusRejected) {
		t.Errorf("expected status=rejected, got %s", updated.Status)
	}
}

func TestSwapService_Transition_CompleteByEitherParty(t *testing.T) {
	for _, actor := range []string{aliceID, bobID} {
		svc, _ := setupTestSwapService()
		swap := createTestSwap(t, svc)

		if _, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusAccepted); err != nil {
			t.Fatalf("accept should succeed: %v", err)
		}

		if _, err := svc.Transition(context.Background(), swap.ID, actor, model.SwapStatusCompleted); err != nil {
			t.Errorf("complete by %s should succeed, got %v", actor, err)
		}
	}
}

func TestSwapService_Transition_PendingToCompletedInvalid(t *testing.T) {
	svc, swapRepo := setupTestSwapService()
	swap := createTestSwap(t, svc)

	_, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusCompleted)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
	if got := swapRepo.swaps[swap.ID].Status; got != model.SwapStatusPending {
		t.Errorf("record should stay pending, got %s", got)
	}
}

func TestSwapService_Transition_TerminalStatesFrozen(t *testing.T) {
	terminalSetups := []struct {
		name  string
		setup func(t *testing.T, svc SwapService, id string)
	}{
		{"rejected", func(t *testing.T, svc SwapService, id string) {
			if _, err := svc.Transition(context.Background(), id, bobID, model.SwapStatusRejected); err != nil {
				t.Fatal(err)
			}
		}},
		{"cancelled", func(t *testing.T, svc SwapService, id string) {
			if _, err := svc.Transition(context.Background(), id, aliceID, model.SwapStatusCancelled); err != nil {
				t.Fatal(err)
			}
		}},
		{"completed", func(t *testing.T, svc SwapService, id string) {
			if _, err := svc.Transition(context.Background(), id, bobID, model.SwapStatusAccepted); err != nil {
				t.Fatal(err)
			}
			if _, err := svc.Transition(context.Background(), id, aliceID, model.SwapStatusCompleted); err != nil {
				t.Fatal(err)
			}
		}},
	}

	targets := []model.SwapStatus{
		model.SwapStatusPending,
		model.SwapStatusAccepted,
		model.SwapStatusRejected,
		model.SwapStatusCompleted,
		model.SwapStatusCancelled,
	}

	for _, ts := range terminalSetups {
		t.Run(ts.name, func(t *testing.T) {
			svc, _ := setupTestSwapService()
			swap := createTestSwap(t, svc)
			ts.setup(t, svc, swap.ID)

			for _, target := range targets {
				_, err := svc.Transition(context.Background(), swap.ID, bobID, target)
				if !errors.Is(err, ErrInvalidTransition) && !errors.Is(err, ErrSwapForbidden) {
					t.Errorf("%s → %s: expected invalid transition, got %v", ts.name, target, err)
				}
			}
		})
	}
}

func TestSwapService_Transition_UnknownStatus(t *testing.T) {
	svc, _ := setupTestSwapService()
	swap := createTestSwap(t, svc)

	_, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatus("archived"))
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSwapService_Transition_NotFound(t *testing.T) {
	svc, _ := setupTestSwapService()

	_, err := svc.Transition(context.Background(), "swap-missing", bobID, model.SwapStatusAccepted)
	if !errors.Is(err, ErrSwapNotFound) {
		t.Errorf("expected ErrSwapNotFound, got %v", err)
	}
}

func TestSwapService_Transition_ErrorCarriesContext(t *testing.T) {
	svc, _ := setupTestSwapService()
	swap := createTestSwap(t, svc)

	_, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusCompleted)

	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransitionError, got %T", err)
	}
	if te.SwapRequestID != swap.ID || te.Target != model.SwapStatusCompleted {
		t.Errorf("unexpected error context: %+v", te)
	}
}

func TestSwapService_Transition_LostRaceToOtherEdge(t *testing.T) {
	svc, swapRepo := setupTestSwapService()
	swap := createTestSwap(t, svc)

	// Bob accepts between Alice reading the record and her cancel CAS.
	swapRepo.beforeUpdateStatus = func() {
		swapRepo.swaps[swap.ID].Status = model.SwapStatusAccepted
	}

	_, err := svc.Transition(context.Background(), swap.ID, aliceID, model.SwapStatusCancelled)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition after losing the race, got %v", err)
	}
	if got := swapRepo.swaps[swap.ID].Status; got != model.SwapStatusAccepted {
		t.Errorf("winner's status should stand, got %s", got)
	}
}

func TestSwapService_Transition_StaleWriteReportsConflict(t *testing.T) {
	svc, swapRepo := setupTestSwapService()
	swap := createTestSwap(t, svc)

	// The CAS misses but the re-read still shows a state from which the
	// edge is valid: surfaced as a conflict the client may retry.
	swapRepo.failNextCAS = true

	_, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusAccepted)
	if !errors.Is(err, ErrSwapConflict) {
		t.Errorf("expected ErrSwapConflict, got %v", err)
	}
	if got := swapRepo.swaps[swap.ID].Status; got != model.SwapStatusPending {
		t.Errorf("record should stay pending after the missed CAS, got %s", got)
	}
}

// ── Get / List ──

func TestSwapService_Get_ParticipantsOnly(t *testing.T) {
	svc, _ := setupTestSwapService()
	swap := createTestSwap(t, svc)

	if _, err := svc.Get(context.Background(), swap.ID, aliceID); err != nil {
		t.Errorf("requester should see the swap: %v", err)
	}
	if _, err := svc.Get(context.Background(), swap.ID, bobID); err != nil {
		t.Errorf("requested user should see the swap: %v", err)
	}
	if _, err := svc.Get(context.Background(), swap.ID, carolID); !errors.Is(err, ErrSwapForbidden) {
		t.Errorf("third party: expected ErrSwapForbidden, got %v", err)
	}
}

func TestSwapService_List_SentAndReceivedDisjoint(t *testing.T) {
	svc, _ := setupTestSwapService()
	swap := createTestSwap(t, svc)

	sent, _, err := svc.List(context.Background(), aliceID, &dto.SwapListRequest{Role: repository.SwapRoleSent})
	if err != nil {
		t.Fatal(err)
	}
	if len(sent) != 1 || sent[0].ID != swap.ID {
		t.Errorf("alice sent: expected [%s], got %v", swap.ID, sent)
	}

	received, _, err := svc.List(context.Background(), aliceID, &dto.SwapListRequest{Role: repository.SwapRoleReceived})
	if err != nil {
		t.Fatal(err)
	}
	if len(received) != 0 {
		t.Errorf("alice received: expected empty, got %d entries", len(received))
	}

	bobReceived, _, err := svc.List(context.Background(), bobID, &dto.SwapListRequest{Role: repository.SwapRoleReceived})
	if err != nil {
		t.Fatal(err)
	}
	if len(bobReceived) != 1 {
		t.Errorf("bob received: expected 1 entry, got %d", len(bobReceived))
	}
}

func TestSwapService_List_StatusFilter(t *testing.T) {
	svc, _ := setupTestSwapService()
	swap := createTestSwap(t, svc)
	if _, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusAccepted); err != nil {
		t.Fatal(err)
	}

	pending, _, err := svc.List(context.Background(), aliceID, &dto.SwapListRequest{Status: "pending"})
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Errorf("expected no pending swaps, got %d", len(pending))
	}

	accepted, _, err := svc.List(context.Background(), aliceID, &dto.SwapListRequest{Status: "accepted"})
	if err != nil {
		t.Fatal(err)
	}
	if len(accepted) != 1 {
		t.Errorf("expected 1 accepted swap, got %d", len(accepted))
	}
}

// ── Delete ──

func TestSwapService_Delete_Permissions(t *testing.T) {
	cases := []struct {
		name    string
		caller  string
		role    string
		wantErr error
	}{
		{"requester", aliceID, model.RoleUser, nil},
		{"requested", bobID, model.RoleUser, nil},
		{"admin", "user-admin", model.RoleAdmin, nil},
		{"stranger", carolID, model.RoleUser, ErrSwapForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, swapRepo := setupTestSwapService()
			swap := createTestSwap(t, svc)

			err := svc.Delete(context.Background(), swap.ID, tc.caller, tc.role)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("delete should succeed: %v", err)
				}
				if _, ok := swapRepo.swaps[swap.ID]; ok {
					t.Error("record should be gone")
				}
			} else if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSwapService_Delete_AnyStatus(t *testing.T) {
	svc, _ := setupTestSwapService()
	swap := createTestSwap(t, svc)

	if _, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusAccepted); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Transition(context.Background(), swap.ID, aliceID, model.SwapStatusCompleted); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), swap.ID, aliceID, model.RoleUser); err != nil {
		t.Errorf("deleting a completed swap should succeed, got %v", err)
	}
}

// ── full lifecycle ──

func TestSwapService_Lifecycle(t *testing.T) {
	svc, _ := setupTestSwapService()

	swap := createTestSwap(t, svc)

	accepted, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusAccepted)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != string(model.SwapStatusAccepted) {
		t.Fatalf("expected accepted, got %s", accepted.Status)
	}

	completed, err := svc.Transition(context.Background(), swap.ID, aliceID, model.SwapStatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != string(model.SwapStatusCompleted) {
		t.Fatalf("expected completed, got %s", completed.Status)
	}

	if _, err := svc.Transition(context.Background(), swap.ID, bobID, model.SwapStatusCancelled); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("completed is terminal: expected ErrInvalidTransition, got %v", err)
	}
}

// timestamps in responses are RFC3339; sanity-check the format once.
func TestSwapService_TimestampFormat(t *testing.T) {
	svc, _ := setupTestSwapService()
	swap := createTestSwap(t, svc)

	if _, err := time.Parse(time.RFC3339, swap.CreatedAt); err != nil {
		t.Errorf("created_at not RFC3339: %q", swap.CreatedAt)
	}
}
