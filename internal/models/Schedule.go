// internal/models/schedule.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Schedule is a planned collection event binding a route, a truck and a date.
// Status and the approved_by/cancelled_by pair are independent axes: a
// schedule can be Cancelled operationally while still awaiting an approval
// decision. Do not collapse the two.
type Schedule struct {
	gorm.Model

	RouteID uint  `json:"route_id" gorm:"index" binding:"required"`
	Route   Route `gorm:"foreignKey:RouteID" json:"route,omitempty"`
	TruckID uint  `json:"truck_id" gorm:"index" binding:"required"`
	Truck   Truck `gorm:"foreignKey:TruckID" json:"truck,omitempty"`

	// Denormalized from the truck's operator at creation time.
	UserID uint `json:"user_id" gorm:"index"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// The scheduler who created the record.
	CreatedBy uint `json:"created_by"`

	GarbageType string `json:"garbage_type"` // "Biodegradable", "Non Biodegradable", "Recyclable"
	Status      string `json:"status" gorm:"default:Pending"`
	Remark      string `json:"remark"`

	// Calendar date only, serialized "YYYY-MM-DD". String comparison on this
	// format is date-order-equivalent, which the date-range filter relies on.
	ScheduledCollection string `json:"scheduled_collection"`

	IsEditable bool `json:"is_editable" gorm:"default:true"`

	// Approval axis. At most one of ApprovedBy/CancelledBy may be set.
	ApprovedBy  *uint      `json:"approved_by" gorm:"index"`
	ApprovedAt  *time.Time `json:"approved_at"`
	CancelledBy *uint      `json:"cancelled_by" gorm:"index"`
	CancelledAt *time.Time `json:"cancelled_at"`

	// Bumped on every write; stale updates are rejected.
	Version int `json:"version" gorm:"default:0"`
}
