package routes

import (
	"waste_tracker/internal/controllers"
	"waste_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ScheduleRoutes(r *gin.Engine) {
	schedule := r.Group("/schedules")
	schedule.Use(middleware.RequireAuthWithRoles("scheduler", "approver", "admin"))
	{
		schedule.GET("", controllers.GetAllSchedules)
		schedule.POST("", controllers.CreateSchedule)
		schedule.PUT("/:id", controllers.UpdateSchedule)
		schedule.DELETE("/:id", controllers.DeleteSchedule)
	}

	// only approvers decide the approval axis
	approval := r.Group("/schedules")
	approval.Use(middleware.RequireAuthWithRoles("approver", "admin"))
	{
		approval.PATCH("/:id/approval", controllers.UpdateScheduleApproval)
	}
}
