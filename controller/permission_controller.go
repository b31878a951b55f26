// api/controller/permission_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	"github.com/atlas-hrms/atlas/api/service"
	"github.com/atlas-hrms/atlas/api/util"
)

type PermissionController struct {
	permissionService service.IPermissionService
}

func NewPermissionController(permissionService service.IPermissionService) *PermissionController {
	return &PermissionController{permissionService: permissionService}
}

// RegisterRoutes registers the API routes
func (pc *PermissionController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/permissions", pc.ListPermissions)

	menus := r.Group("/menus")
	{
		menus.GET("", pc.ListMenus)
		menus.GET("/mine", pc.MyMenus)
	}
}

// ListPermissions endpoint
func (pc *PermissionController) ListPermissions(c *gin.Context) {
	permissions, err := pc.permissionService.ListPermissions(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list permissions", err)
		return
	}

	c.JSON(http.StatusOK, permissions)
}

// ListMenus endpoint
func (pc *PermissionController) ListMenus(c *gin.Context) {
	menus, err := pc.permissionService.ListMenus(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list menus", err)
		return
	}

	c.JSON(http.StatusOK, menus)
}

// MyMenus endpoint returns the menu sections visible to the caller.
func (pc *PermissionController) MyMenus(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	menus, err := pc.permissionService.MenusForUser(c, userID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve menus", err)
		return
	}

	c.JSON(http.StatusOK, menus)
}
