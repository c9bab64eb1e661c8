package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"waste_tracker/internal/config"
	"waste_tracker/internal/models"
	"waste_tracker/internal/scheduling"
)

func scheduleSvc() *scheduling.Service {
	return scheduling.NewService(config.DB)
}

// TruckOption mirrors models.Truck with the readiness verdict attached so
// the schedule form can grey out trucks it must not offer. The flag is
// advisory for the UI only; Create re-checks readiness server-side.
type TruckOption struct {
	models.Truck
	IsReady bool `json:"is_ready"`
}

// respondScheduleError maps domain errors onto HTTP statuses. Anything not
// in the scheduling taxonomy is a storage/transport failure and becomes a
// 500 so callers can tell rule rejections from broken calls.
func respondScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrTruckNotReady):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Truck is not ready for scheduling", "reason": "truck_not_ready"})
	case errors.Is(err, scheduling.ErrNotEditable):
		c.JSON(http.StatusConflict, gin.H{"error": "Schedule is no longer editable", "reason": "not_editable"})
	case errors.Is(err, scheduling.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, gin.H{"error": "Schedule approval has already been decided", "reason": "already_decided"})
	case errors.Is(err, scheduling.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Schedule was modified by someone else, reload and retry", "reason": "conflict"})
	case errors.Is(err, scheduling.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found", "reason": "not_found"})
	case errors.Is(err, scheduling.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid schedule field", "reason": "validation"})
	default:
		logrus.WithError(err).Error("schedule operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetAllSchedules returns the filtered schedule list together with the
// reference data the form needs: ready-flagged trucks, routes and users.
// Badge counts are always computed over the unfiltered collection.
func GetAllSchedules(c *gin.Context) {
	all, err := scheduleSvc().List()
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	filter := scheduling.Filter{
		Approval: scheduling.ParseApprovalFilter(c.Query("approval")),
		Search:   c.Query("search"),
		DateFrom: c.Query("from"),
		DateTo:   c.Query("to"),
	}
	visible := filter.Apply(all)
	counts := scheduling.CountByApproval(all)

	var trucks []models.Truck
	if err := config.DB.Preload("Operator").Find(&trucks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching trucks"})
		return
	}
	truckOptions := make([]TruckOption, 0, len(trucks))
	for _, t := range trucks {
		truckOptions = append(truckOptions, TruckOption{Truck: t, IsReady: scheduling.IsReady(t)})
	}

	var routes []models.Route
	if err := config.DB.Preload("Barangays").Find(&routes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching routes"})
		return
	}
	var users []models.User
	if err := config.DB.Select("id", "first_name", "last_name", "email", "role").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedules": visible,
		"counts":    counts,
		"trucks":    truckOptions,
		"routes":    routes,
		"users":     users,
	})
}

// CreateSchedule runs the readiness gate and inserts a Pending schedule.
func CreateSchedule(c *gin.Context) {
	var input struct {
		RouteID             uint   `json:"route_id" binding:"required"`
		TruckID             uint   `json:"truck_id" binding:"required"`
		GarbageType         string `json:"garbage_type" binding:"required"`
		ScheduledCollection string `json:"scheduled_collection" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule input: " + err.Error()})
		return
	}

	actorID := uint(c.MustGet("user_id").(float64))
	schedule, err := scheduleSvc().Create(scheduling.CreateCommand{
		RouteID:             input.RouteID,
		TruckID:             input.TruckID,
		GarbageType:         scheduling.GarbageType(input.GarbageType),
		ScheduledCollection: input.ScheduledCollection,
		ActorID:             actorID,
	})
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}

// UpdateSchedule edits an editable schedule. Approval fields are out of
// reach here; UpdateScheduleApproval is the only writer for those.
func UpdateSchedule(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	var input struct {
		Status              *string `json:"status"`
		Remark              *string `json:"remark"`
		GarbageType         *string `json:"garbage_type"`
		ScheduledCollection *string `json:"scheduled_collection"`
		IsEditable          *bool   `json:"is_editable"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := scheduling.UpdateCommand{
		Remark:              input.Remark,
		ScheduledCollection: input.ScheduledCollection,
		IsEditable:          input.IsEditable,
	}
	if input.Status != nil {
		st := scheduling.Status(*input.Status)
		cmd.Status = &st
	}
	if input.GarbageType != nil {
		gt := scheduling.GarbageType(*input.GarbageType)
		cmd.GarbageType = &gt
	}

	schedule, err := scheduleSvc().Update(uint(id), cmd)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// UpdateScheduleApproval records the approver's decision exactly once.
func UpdateScheduleApproval(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	var input struct {
		Decision string `json:"decision" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actorID := uint(c.MustGet("user_id").(float64))
	schedule, err := scheduleSvc().Decide(uint(id), scheduling.Decision(input.Decision), actorID)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// DeleteSchedule permanently removes a schedule.
func DeleteSchedule(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	if err := scheduleSvc().Delete(uint(id)); err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
