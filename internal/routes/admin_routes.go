package routes

import (
	"waste_tracker/internal/controllers"
	"waste_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRoles("admin"))
	{
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/users/:id", controllers.GetUser)
		admin.PUT("/users/:id", controllers.UpdateUser)
		admin.DELETE("/users/:id", controllers.DeleteUser)

		admin.GET("/reports/login-logs", controllers.GenerateLoginLogReport)
	}
}
