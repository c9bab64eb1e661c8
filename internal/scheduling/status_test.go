package scheduling

import "testing"

// TestCanTransition verifies the status transition table without a database.
func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		// happy-path forward transitions
		{StatusPending, StatusScheduled, true},
		{StatusScheduled, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		// delays and cancels from every non-terminal state
		{StatusPending, StatusDelayed, true},
		{StatusScheduled, StatusDelayed, true},
		{StatusInProgress, StatusDelayed, true},
		{StatusPending, StatusCancelled, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusDelayed, StatusCancelled, true},
		// recovery from a delay
		{StatusDelayed, StatusScheduled, true},
		{StatusDelayed, StatusInProgress, true},
		{StatusDelayed, StatusCompleted, true},
		// self-loop is a no-op edit, always allowed
		{StatusPending, StatusPending, true},
		// invalid: terminal states have no outgoing transitions
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusDelayed, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusCancelled, StatusDelayed, false},
		// invalid: skipping states
		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusCompleted, false},
		{StatusScheduled, StatusCompleted, false},
		// invalid: going backwards
		{StatusScheduled, StatusPending, false},
		{StatusInProgress, StatusScheduled, false},
	}
	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		if got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusScheduled, StatusInProgress, StatusCompleted, StatusDelayed, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false, want true", s)
		}
	}
	if ValidStatus("Paused") {
		t.Error(`ValidStatus("Paused") = true, want false`)
	}
	if ValidStatus("") {
		t.Error(`ValidStatus("") = true, want false`)
	}
}

func TestValidGarbageType(t *testing.T) {
	for _, g := range []GarbageType{GarbageBiodegradable, GarbageNonBiodegradable, GarbageRecyclable} {
		if !ValidGarbageType(g) {
			t.Errorf("ValidGarbageType(%s) = false, want true", g)
		}
	}
	if ValidGarbageType("Hazardous") {
		t.Error(`ValidGarbageType("Hazardous") = true, want false`)
	}
}
