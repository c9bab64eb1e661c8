package scheduling

import (
	"errors"
	"testing"

	"waste_tracker/internal/models"
)

func TestIsReady(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{models.TruckActive, true},
		{models.TruckOnRoute, true},
		{models.TruckUnderMaintenance, false},
		{models.TruckUnavailable, false},
		{models.TruckInactive, false},
		{"", false},
	}
	for _, tc := range cases {
		truck := models.Truck{Status: tc.status}
		if got := IsReady(truck); got != tc.want {
			t.Errorf("IsReady(status=%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestValidateForScheduling(t *testing.T) {
	if err := ValidateForScheduling(models.Truck{Status: models.TruckOnRoute}); err != nil {
		t.Errorf("ready truck rejected: %v", err)
	}
	err := ValidateForScheduling(models.Truck{Status: models.TruckUnderMaintenance})
	if !errors.Is(err, ErrTruckNotReady) {
		t.Errorf("got %v, want ErrTruckNotReady", err)
	}
}
