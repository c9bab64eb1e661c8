package scheduling

import (
	"strings"

	"waste_tracker/internal/models"
)

// ApprovalFilter selects schedules by their position on the approval axis.
type ApprovalFilter string

const (
	FilterNeedApproval ApprovalFilter = "need_approval"
	FilterApproved     ApprovalFilter = "approved"
	FilterCancelled    ApprovalFilter = "cancelled"
	FilterAll          ApprovalFilter = "all"
)

// Filter is the query configuration for the schedule list. Zero value for
// Search/DateFrom/DateTo means "no constraint"; Approval defaults to
// need_approval when empty.
type Filter struct {
	Approval ApprovalFilter
	Search   string // case-insensitive substring over the operator's full name
	DateFrom string // inclusive, "YYYY-MM-DD"
	DateTo   string // inclusive, "YYYY-MM-DD"
}

// Counts are the unfiltered badge totals shown next to the approval tabs.
type Counts struct {
	NeedApproval int `json:"need_approval"`
	Approved     int `json:"approved"`
	Cancelled    int `json:"cancelled"`
	All          int `json:"all"`
}

// ParseApprovalFilter maps a query-string value onto a known filter,
// falling back to the need_approval default.
func ParseApprovalFilter(raw string) ApprovalFilter {
	switch ApprovalFilter(raw) {
	case FilterApproved, FilterCancelled, FilterAll:
		return ApprovalFilter(raw)
	default:
		return FilterNeedApproval
	}
}

// Apply reduces schedules to the visible subset. The three predicates are
// AND-composed in a fixed order: approval, then text search, then date
// range. Input order is preserved, so identical input yields identical
// output.
func (f Filter) Apply(schedules []models.Schedule) []models.Schedule {
	approval := f.Approval
	if approval == "" {
		approval = FilterNeedApproval
	}
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Schedule, 0, len(schedules))
	for _, s := range schedules {
		if !matchesApproval(s, approval) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(s.User.FullName()), needle) {
			continue
		}
		// Lexicographic comparison on YYYY-MM-DD is date-order-equivalent.
		if f.DateFrom != "" && s.ScheduledCollection < f.DateFrom {
			continue
		}
		if f.DateTo != "" && s.ScheduledCollection > f.DateTo {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesApproval(s models.Schedule, f ApprovalFilter) bool {
	switch f {
	case FilterApproved:
		return s.ApprovedBy != nil
	case FilterCancelled:
		return s.CancelledBy != nil
	case FilterAll:
		return true
	default: // need_approval: no decision recorded on either marker
		return s.ApprovedBy == nil && s.CancelledBy == nil
	}
}

// CountByApproval totals the badges over the whole collection, ignoring
// whatever search or date filter is currently active. The markers are
// mutually exclusive, so the three buckets partition the collection.
func CountByApproval(schedules []models.Schedule) Counts {
	var c Counts
	c.All = len(schedules)
	for _, s := range schedules {
		switch {
		case s.ApprovedBy != nil:
			c.Approved++
		case s.CancelledBy != nil:
			c.Cancelled++
		default:
			c.NeedApproval++
		}
	}
	return c
}
