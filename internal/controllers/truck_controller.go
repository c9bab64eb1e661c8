package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waste_tracker/internal/config"
	"waste_tracker/internal/models"
)

// CreateTruck registers a new collection truck; defaults Status to Active
func CreateTruck(c *gin.Context) {
	var input struct {
		TruckCode  string `json:"truck_id" binding:"required"`
		OperatorID uint   `json:"operator_id" binding:"required"`
	}

	// Parse JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid truck input: " + err.Error()})
		return
	}

	var operator models.User
	if err := config.DB.First(&operator, input.OperatorID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Operator not found"})
		return
	}

	truck := models.Truck{
		TruckCode:  input.TruckCode,
		Status:     models.TruckActive,
		OperatorID: input.OperatorID,
	}
	if err := config.DB.Create(&truck).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create truck: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"truck": truck})
}

// ListTrucks is typically for administrative use.
func ListTrucks(c *gin.Context) {
	var trucks []models.Truck
	if err := config.DB.Preload("Operator").Find(&trucks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing trucks: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trucks}) // Return in a 'data' key for consistency with frontend service
}

func GetTruck(c *gin.Context) {
	id := c.Param("id")
	var truck models.Truck
	if err := config.DB.Preload("Operator").First(&truck, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"truck": truck})
}

func UpdateTruck(c *gin.Context) {
	id := c.Param("id")

	var truck models.Truck
	if err := config.DB.First(&truck, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}

	var input struct {
		TruckCode  *string `json:"truck_id"`
		Status     *string `json:"status"`
		OperatorID *uint   `json:"operator_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if input.TruckCode != nil {
		truck.TruckCode = *input.TruckCode
	}
	if input.Status != nil {
		switch *input.Status {
		case models.TruckActive, models.TruckOnRoute, models.TruckUnderMaintenance, models.TruckUnavailable, models.TruckInactive:
			truck.Status = *input.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown truck status: " + *input.Status})
			return
		}
	}
	if input.OperatorID != nil {
		truck.OperatorID = *input.OperatorID
	}

	config.DB.Save(&truck)
	c.JSON(http.StatusOK, gin.H{"truck": truck})
}

func DeleteTruck(c *gin.Context) {
	id := c.Param("id")

	var truck models.Truck
	if err := config.DB.First(&truck, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}

	config.DB.Delete(&truck)
	c.JSON(http.StatusOK, gin.H{"message": "Truck deleted"})
}
