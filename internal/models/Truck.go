// internal/models/truck.go
package models

import (
	"gorm.io/gorm"
)

// Truck statuses as stored in the trucks table.
const (
	TruckActive           = "Active"
	TruckOnRoute          = "On Route"
	TruckUnderMaintenance = "Under Maintenance"
	TruckUnavailable      = "Unavailable"
	TruckInactive         = "Inactive"
)

type Truck struct {
	gorm.Model
	TruckCode  string `json:"truck_id" gorm:"unique" binding:"required"` // human-readable plate/fleet code
	Status     string `json:"status" gorm:"default:Active"`
	OperatorID uint   `json:"operator_id" gorm:"index"` // Foreign key to User
	Operator   User   `gorm:"foreignKey:OperatorID" json:"operator,omitempty"`
}
