package scheduling

import "errors"

// Domain errors. Handlers translate these into HTTP responses; anything
// else coming out of the service is a storage failure and maps to 500.
var (
	ErrTruckNotReady  = errors.New("truck is not ready for scheduling")
	ErrNotEditable    = errors.New("schedule is locked for editing")
	ErrAlreadyDecided = errors.New("schedule approval already decided")
	ErrNotFound       = errors.New("schedule not found")
	ErrValidation     = errors.New("invalid schedule input")
	ErrConflict       = errors.New("schedule was modified concurrently")
)
