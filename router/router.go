// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atlas-hrms/atlas/api/authz/engine"
	"github.com/atlas-hrms/atlas/api/controller"
	"github.com/atlas-hrms/atlas/api/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	evaluator *engine.Evaluator,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	router.Use(middleware.Authenticate())
	router.Use(middleware.Authorize(evaluator))

	api := router.Group("/api/v1")

	controllers.Auth.RegisterRoutes(api)
	controllers.User.RegisterRoutes(api)
	controllers.Role.RegisterRoutes(api)
	controllers.Permission.RegisterRoutes(api)
	controllers.Dept.RegisterRoutes(api)
	controllers.Leave.RegisterRoutes(api)
	controllers.Attendance.RegisterRoutes(api)
	controllers.Document.RegisterRoutes(api)
	controllers.Payroll.RegisterRoutes(api)
	controllers.Requisition.RegisterRoutes(api)

	return router
}
