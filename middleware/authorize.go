// api/middleware/authorize.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlas-hrms/atlas/api/authz/engine"
	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
	"github.com/atlas-hrms/atlas/api/util"
)

// Authorize runs the authorization engine as the first gate in front of
// every controller. Anything the engine denies never reaches a handler;
// unmapped routes answer 403 rather than falling through.
func Authorize(evaluator *engine.Evaluator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authenticated := util.GetUserIDFromContext(c)

		decision := evaluator.Authorize(c.Request.Context(), c.Request.Method, c.Request.URL.Path, userID, authenticated)
		if decision.Allowed {
			c.Next()
			return
		}

		if decision.Reason == authz_model.ReasonUnauthenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		} else {
			c.JSON(http.StatusForbidden, gin.H{"error": decision.Reason})
		}
		c.Abort()
	}
}
