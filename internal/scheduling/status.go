package scheduling

// Status is the operational lifecycle of a schedule. It is independent of
// the approval axis (approved_by/cancelled_by): StatusCancelled means the
// collection run itself was called off, not that an approver rejected it.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusDelayed    Status = "Delayed"
	StatusCancelled  Status = "Cancelled"
)

// GarbageType classifies what a schedule collects.
type GarbageType string

const (
	GarbageBiodegradable    GarbageType = "Biodegradable"
	GarbageNonBiodegradable GarbageType = "Non Biodegradable"
	GarbageRecyclable       GarbageType = "Recyclable"
)

// AllowedTransitions represents the schedule status flow as code.
// Completed and Cancelled are terminal; Delayed and Cancelled are reachable
// from every non-terminal state.
var AllowedTransitions = map[Status][]Status{
	StatusPending:    {StatusScheduled, StatusDelayed, StatusCancelled},
	StatusScheduled:  {StatusInProgress, StatusDelayed, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusDelayed, StatusCancelled},
	StatusDelayed:    {StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s names a known schedule status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusScheduled, StatusInProgress, StatusCompleted, StatusDelayed, StatusCancelled:
		return true
	}
	return false
}

// ValidGarbageType reports whether g names a known garbage classification.
func ValidGarbageType(g GarbageType) bool {
	switch g {
	case GarbageBiodegradable, GarbageNonBiodegradable, GarbageRecyclable:
		return true
	}
	return false
}
