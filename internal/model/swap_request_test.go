package model

import "testing"

func TestCanTransition_ValidEdges(t *testing.T) {
	cases := []struct {
		from, to SwapStatus
		actor    SwapActor
	}{
		{SwapStatusPending, SwapStatusAccepted, ActorRequested},
		{SwapStatusPending, SwapStatusRejected, ActorRequested},
		{SwapStatusPending, SwapStatusCancelled, ActorRequester},
		{SwapStatusAccepted, SwapStatusCompleted, ActorEither},
	}

	for _, c := range cases {
		actor, ok := CanTransition(c.from, c.to)
		if !ok {
			t.Errorf("%s → %s should be a valid transition", c.from, c.to)
			continue
		}
		if actor != c.actor {
			t.Errorf("%s → %s: expected actor %v, got %v", c.from, c.to, c.actor, actor)
		}
	}
}

func TestCanTransition_InvalidEdges(t *testing.T) {
	all := []SwapStatus{SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled}
	valid := map[[2]SwapStatus]bool{
		{SwapStatusPending, SwapStatusAccepted}:   true,
		{SwapStatusPending, SwapStatusRejected}:   true,
		{SwapStatusPending, SwapStatusCancelled}:  true,
		{SwapStatusAccepted, SwapStatusCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			if valid[[2]SwapStatus{from, to}] {
				continue
			}
			if _, ok := CanTransition(from, to); ok {
				t.Errorf("%s → %s should be invalid", from, to)
			}
		}
	}
}

func TestCanTransition_TerminalStatesHaveNoEdges(t *testing.T) {
	targets := []SwapStatus{SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled}
	for _, from := range []SwapStatus{SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled} {
		if !from.Terminal() {
			t.Errorf("%s should be terminal", from)
		}
		for _, to := range targets {
			if _, ok := CanTransition(from, to); ok {
				t.Errorf("terminal state %s should have no outgoing edge (got %s → %s)", from, from, to)
			}
		}
	}
}

func TestSwapRequest_MayAct(t *testing.T) {
	r := &SwapRequest{RequesterID: "user-a", RequestedID: "user-b"}

	if !r.MayAct("user-a", ActorRequester) {
		t.Error("requester should match ActorRequester")
	}
	if r.MayAct("user-b", ActorRequester) {
		t.Error("requested user should not match ActorRequester")
	}
	if !r.MayAct("user-b", ActorRequested) {
		t.Error("requested user should match ActorRequested")
	}
	if !r.MayAct("user-a", ActorEither) || !r.MayAct("user-b", ActorEither) {
		t.Error("both parties should match ActorEither")
	}
	if r.MayAct("user-c", ActorEither) {
		t.Error("outsider should never match")
	}
}

func TestSwapRequest_OtherParty(t *testing.T) {
	r := &SwapRequest{RequesterID: "user-a", RequestedID: "user-b"}
	if got := r.OtherParty("user-a"); got != "user-b" {
		t.Errorf("expected user-b, got %s", got)
	}
	if got := r.OtherParty("user-b"); got != "user-a" {
		t.Errorf("expected user-a, got %s", got)
	}
}
