package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery and request logging apply to every group below
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	ScheduleRoutes(r)
	TruckRoutes(r)
	RouteRoutes(r)
	ComplaintRoutes(r)
	AdminRoutes(r)

	return r
}
