package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste_tracker/internal/config"
	"waste_tracker/internal/models"
)

// CreateBarangay registers a new serviced district
func CreateBarangay(c *gin.Context) {
	var input models.Barangay
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create barangay: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"barangay": input})
}

// GetBarangay retrieves a Barangay by ID
func GetBarangay(c *gin.Context) {
	id := c.Param("id")
	var barangay models.Barangay
	if err := config.DB.First(&barangay, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barangay not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"barangay": barangay})
}

// ListBarangays lists all Barangays
func ListBarangays(c *gin.Context) {
	var barangays []models.Barangay
	if err := config.DB.Find(&barangays).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch barangays"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": barangays})
}

// UpdateBarangay modifies an existing Barangay
func UpdateBarangay(c *gin.Context) {
	id := c.Param("id")
	var barangay models.Barangay
	if err := config.DB.First(&barangay, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barangay not found"})
		return
	}

	var input struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Name != nil {
		barangay.Name = *input.Name
	}

	if err := config.DB.Save(&barangay).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update barangay"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"barangay": barangay})
}

// DeleteBarangay removes a Barangay
func DeleteBarangay(c *gin.Context) {
	id := c.Param("id")
	var barangay models.Barangay
	if err := config.DB.First(&barangay, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barangay not found"})
		return
	}

	config.DB.Delete(&barangay)
	c.JSON(http.StatusOK, gin.H{"message": "Barangay deleted"})
}
