package models

import (
	"gorm.io/gorm"
)

// Barangay is a serviced district. Routes reference barangays through
// RouteBarangay memberships which carry the traversal order.
type Barangay struct {
	gorm.Model

	Name string `json:"name" binding:"required"`
}

// RouteBarangay links a barangay into a route at a given position.
// OrderIndex is zero-based and not necessarily contiguous.
type RouteBarangay struct {
	gorm.Model

	RouteID    uint `json:"route_id" gorm:"index"`
	BarangayID uint `json:"barangay_id"`
	OrderIndex int  `json:"order_index"`
}
