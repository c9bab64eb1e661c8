package scheduling

import (
	"sort"

	"waste_tracker/internal/models"
)

// UnknownBarangay is rendered for memberships whose barangay no longer
// resolves; the route listing must not fail on a stale id.
const UnknownBarangay = "Unknown Barangay"

// Stop is one barangay position along a route, ready for display.
type Stop struct {
	BarangayID uint   `json:"barangay_id"`
	OrderIndex int    `json:"order_index"`
	Name       string `json:"name"`
}

// OrderedStops resolves a route's barangay memberships into traversal
// order: ascending by order_index, stable on ties so equal indexes keep
// their insertion order. Indexes need not be contiguous.
func OrderedStops(route models.Route, names map[uint]string) []Stop {
	stops := make([]Stop, 0, len(route.Barangays))
	for _, m := range route.Barangays {
		name, ok := names[m.BarangayID]
		if !ok {
			name = UnknownBarangay
		}
		stops = append(stops, Stop{
			BarangayID: m.BarangayID,
			OrderIndex: m.OrderIndex,
			Name:       name,
		})
	}
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].OrderIndex < stops[j].OrderIndex
	})
	return stops
}

// BarangayNames builds the id → name lookup OrderedStops consumes.
func BarangayNames(barangays []models.Barangay) map[uint]string {
	names := make(map[uint]string, len(barangays))
	for _, b := range barangays {
		names[b.ID] = b.Name
	}
	return names
}
