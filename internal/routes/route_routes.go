package routes

import (
	"waste_tracker/internal/controllers"
	"waste_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RouteRoutes(r *gin.Engine) {
	route := r.Group("/routes")
	route.Use(middleware.RequireAuth())
	{
		route.GET("", controllers.ListRoutes)
		route.GET("/:id", controllers.GetRoute)
		route.GET("/:id/barangays", controllers.GetRouteBarangays)
	}

	manage := r.Group("/routes")
	manage.Use(middleware.RequireAuthWithRoles("admin"))
	{
		manage.POST("", controllers.CreateRoute)
		manage.PUT("/:id", controllers.UpdateRoute)
		manage.PATCH("/:id/barangays", controllers.ReplaceRouteBarangays)
		manage.DELETE("/:id", controllers.DeleteRoute)
	}

	barangay := r.Group("/barangays")
	barangay.Use(middleware.RequireAuth())
	{
		barangay.GET("", controllers.ListBarangays)
		barangay.GET("/:id", controllers.GetBarangay)
	}

	manageBarangay := r.Group("/barangays")
	manageBarangay.Use(middleware.RequireAuthWithRoles("admin"))
	{
		manageBarangay.POST("", controllers.CreateBarangay)
		manageBarangay.PUT("/:id", controllers.UpdateBarangay)
		manageBarangay.DELETE("/:id", controllers.DeleteBarangay)
	}
}
