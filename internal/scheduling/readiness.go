package scheduling

import (
	"waste_tracker/internal/models"
)

// IsReady reports whether a truck may be assigned to a new schedule.
// Only Active and On Route trucks qualify.
func IsReady(truck models.Truck) bool {
	return truck.Status == models.TruckActive || truck.Status == models.TruckOnRoute
}

// ValidateForScheduling is the authoritative server-side readiness check.
// Any client-side truck picker is advisory only.
func ValidateForScheduling(truck models.Truck) error {
	if !IsReady(truck) {
		return ErrTruckNotReady
	}
	return nil
}
