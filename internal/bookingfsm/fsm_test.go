package bookingfsm

import "testing"

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusRequested, StatusAccepted) {
		t.Fatal("expected requested -> accepted to be allowed")
	}
	if !CanTransition(StatusRequested, StatusCancelled) {
		t.Fatal("expected requested -> cancelled to be allowed")
	}
	if !CanTransition(StatusAccepted, StatusCompleted) {
		t.Fatal("expected accepted -> completed to be allowed")
	}
	if !CanTransition(StatusAccepted, StatusCancelled) {
		t.Fatal("expected accepted -> cancelled to be allowed")
	}
	if CanTransition(StatusRequested, StatusCompleted) {
		t.Fatal("unexpected transition requested -> completed allowed")
	}
	if CanTransition(StatusCompleted, StatusRequested) {
		t.Fatal("unexpected transition completed -> requested allowed")
	}
}

// The transition table is closed: every (from, to) pair outside the allowed
// set must be rejected, and terminal statuses accept nothing.
func TestTransitionClosure(t *testing.T) {
	statuses := []string{StatusRequested, StatusAccepted, StatusCompleted, StatusCancelled}
	allowed := map[[2]string]bool{
		{StatusRequested, StatusAccepted}:  true,
		{StatusRequested, StatusCancelled}: true,
		{StatusAccepted, StatusCompleted}:  true,
		{StatusAccepted, StatusCancelled}:  true,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			got := CanTransition(from, to)
			want := allowed[[2]string{from, to}]
			if got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatesAcceptNothing(t *testing.T) {
	for _, terminal := range []string{StatusCompleted, StatusCancelled} {
		for _, to := range []string{StatusRequested, StatusAccepted, StatusCompleted, StatusCancelled} {
			if CanTransition(terminal, to) {
				t.Errorf("terminal status %s must not transition to %s", terminal, to)
			}
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusRequested, StatusAccepted, StatusCompleted, StatusCancelled} {
		if !IsValidStatus(s) {
			t.Errorf("expected %s to be a valid status", s)
		}
	}
	for _, s := range []string{"", "pending", "done", "REQUESTED"} {
		if IsValidStatus(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
