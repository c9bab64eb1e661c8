package routes

import (
	"waste_tracker/internal/controllers"
	"waste_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func TruckRoutes(r *gin.Engine) {
	truck := r.Group("/trucks")
	truck.Use(middleware.RequireAuth())
	{
		truck.GET("", controllers.ListTrucks)
		truck.GET("/:id", controllers.GetTruck)
	}

	manage := r.Group("/trucks")
	manage.Use(middleware.RequireAuthWithRoles("admin"))
	{
		manage.POST("", controllers.CreateTruck)
		manage.PUT("/:id", controllers.UpdateTruck)
		manage.DELETE("/:id", controllers.DeleteTruck)
	}
}
