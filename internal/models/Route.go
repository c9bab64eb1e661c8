package models

import (
	"gorm.io/gorm"
)

// Route represents a collection path through a set of barangays.
// Each route has ordered barangay memberships and may be assigned to schedules.
type Route struct {
	gorm.Model

	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`

	// Geometry stored in PostGIS as a LINESTRING (SRID 4326)
	// When creating, provide GeoJSON; migrations define the column type appropriately.
	Geometry []byte `gorm:"type:bytea"`

	// Associations
	Barangays []RouteBarangay `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barangays,omitempty"`
}
