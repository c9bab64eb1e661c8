package routes

import (
	"waste_tracker/internal/controllers"
	"waste_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ComplaintRoutes(r *gin.Engine) {
	complaint := r.Group("/complaints")
	complaint.Use(middleware.RequireAuth())
	{
		complaint.POST("", controllers.CreateComplaint)
		complaint.GET("", controllers.ListComplaints)
		complaint.PUT("/:id", controllers.UpdateComplaint)
		complaint.DELETE("/:id", controllers.DeleteComplaint)
	}
}
