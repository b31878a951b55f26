// api/controller/user_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	"github.com/atlas-hrms/atlas/api/model"
	"github.com/atlas-hrms/atlas/api/service"
	"github.com/atlas-hrms/atlas/api/util"
	helper_util "github.com/atlas-hrms/atlas/api/util/helper"
)

type UserController struct {
	userService       service.IUserService
	attendanceService service.IAttendanceService
}

func NewUserController(userService service.IUserService, attendanceService service.IAttendanceService) *UserController {
	return &UserController{
		userService:       userService,
		attendanceService: attendanceService,
	}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", uc.ListUsers)
		users.POST("", uc.CreateUser)
		users.GET("/:id", uc.GetUser)
		users.PUT("/:id", uc.UpdateUser)
		users.DELETE("/:id", uc.DeleteUser)
		users.PUT("/:id/roles", uc.AssignRoles)
		users.GET("/:id/attendance", uc.ListUserAttendance)
	}
}

// CreateUser endpoint
func (uc *UserController) CreateUser(c *gin.Context) {
	var req struct {
		model.User
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		return
	}
	creatorID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	created, err := uc.userService.CreateUser(c, req.User, req.Password, creatorID)
	if err != nil {
		switch {
		case errors.Is(err, atlas_errors.ErrInvalidUserData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		case errors.Is(err, atlas_errors.ErrUserConflict):
			util.RespondWithError(c, http.StatusConflict, "User already exists", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create user", err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateUser endpoint
func (uc *UserController) UpdateUser(c *gin.Context) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user id", err)
		return
	}
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		return
	}
	user.ID = userID
	updaterID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	updated, err := uc.userService.UpdateUser(c, user, updaterID)
	if err != nil {
		switch {
		case errors.Is(err, atlas_errors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		case errors.Is(err, atlas_errors.ErrInvalidUserData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update user", err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteUser endpoint
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user id", err)
		return
	}
	deleterID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	if err := uc.userService.DeleteUser(c, userID, deleterID); err != nil {
		if errors.Is(err, atlas_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user id", err)
		return
	}

	user, err := uc.userService.GetUser(c, userID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve user", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers endpoint. Optional query filters narrow the result set.
func (uc *UserController) ListUsers(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	criteria := model.UserSearchCriteria{
		Name:     c.Query("name"),
		Username: c.Query("username"),
		Email:    c.Query("email"),
		Limit:    limit,
		Offset:   offset,
	}
	if v := c.Query("department_id"); v != "" {
		departmentID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid department id", err)
			return
		}
		criteria.DepartmentID = uint(departmentID)
	}

	users, err := uc.userService.ListUsers(c, criteria)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// AssignRoles endpoint
func (uc *UserController) AssignRoles(c *gin.Context) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user id", err)
		return
	}
	var req struct {
		RoleIDs []uint `json:"role_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Role ids are required", err)
		return
	}
	assignerID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	user, err := uc.userService.AssignRoles(c, userID, req.RoleIDs, assignerID)
	if err != nil {
		switch {
		case errors.Is(err, atlas_errors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		case errors.Is(err, atlas_errors.ErrRoleNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Unknown role", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to assign roles", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUserAttendance endpoint
func (uc *UserController) ListUserAttendance(c *gin.Context) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user id", err)
		return
	}

	var from, to time.Time
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse("2006-01-02", v); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid from date", err)
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse("2006-01-02", v); err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid to date", err)
			return
		}
	}

	records, err := uc.attendanceService.ListRecordsForUser(c, userID, from, to)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list attendance", err)
		return
	}

	c.JSON(http.StatusOK, records)
}
