package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste_tracker/internal/config"
	"waste_tracker/internal/models"
)

// CreateComplaint files a resident complaint against a barangay
func CreateComplaint(c *gin.Context) {
	var input struct {
		BarangayID   uint   `json:"barangay_id" binding:"required"`
		ReporterName string `json:"reporter_name"`
		Description  string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint input: " + err.Error()})
		return
	}

	var barangay models.Barangay
	if err := config.DB.First(&barangay, input.BarangayID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Barangay not found"})
		return
	}

	complaint := models.Complaint{
		BarangayID:   input.BarangayID,
		ReporterName: input.ReporterName,
		Description:  input.Description,
		Status:       "Open",
	}
	if err := config.DB.Create(&complaint).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create complaint: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"complaint": complaint})
}

// ListComplaints lists all complaints with their barangay
func ListComplaints(c *gin.Context) {
	var complaints []models.Complaint
	if err := config.DB.Preload("Barangay").Find(&complaints).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing complaints: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": complaints})
}

// UpdateComplaint changes a complaint's status or description
func UpdateComplaint(c *gin.Context) {
	id := c.Param("id")

	var complaint models.Complaint
	if err := config.DB.First(&complaint, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	var input struct {
		Status      *string `json:"status"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if input.Status != nil {
		switch *input.Status {
		case "Open", "In Review", "Resolved":
			complaint.Status = *input.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown complaint status: " + *input.Status})
			return
		}
	}
	if input.Description != nil {
		complaint.Description = *input.Description
	}

	config.DB.Save(&complaint)
	c.JSON(http.StatusOK, gin.H{"complaint": complaint})
}

// DeleteComplaint removes a complaint
func DeleteComplaint(c *gin.Context) {
	id := c.Param("id")

	var complaint models.Complaint
	if err := config.DB.First(&complaint, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	}

	config.DB.Delete(&complaint)
	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted"})
}
