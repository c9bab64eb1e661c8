package models

import (
	"gorm.io/gorm"
)

type Complaint struct {
	gorm.Model
	BarangayID   uint     `json:"barangay_id" gorm:"index"`
	Barangay     Barangay `gorm:"foreignKey:BarangayID" json:"barangay,omitempty"`
	ReporterName string   `json:"reporter_name"`
	Description  string   `json:"description" binding:"required"`
	Status       string   `json:"status" gorm:"default:Open"` // "Open", "In Review", "Resolved"
}
