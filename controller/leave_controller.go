// api/controller/leave_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	"github.com/atlas-hrms/atlas/api/model"
	"github.com/atlas-hrms/atlas/api/service"
	"github.com/atlas-hrms/atlas/api/util"
	helper_util "github.com/atlas-hrms/atlas/api/util/helper"
)

type LeaveController struct {
	leaveService service.ILeaveService
}

func NewLeaveController(leaveService service.ILeaveService) *LeaveController {
	return &LeaveController{leaveService: leaveService}
}

// RegisterRoutes registers the API routes
func (lc *LeaveController) RegisterRoutes(r *gin.RouterGroup) {
	leaves := r.Group("/leaves")
	{
		leaves.POST("", lc.ApplyForLeave)
		leaves.GET("", lc.ListLeaves)
		leaves.GET("/balance", lc.LeaveBalance)
		leaves.GET("/mine", lc.MyLeaves)
		leaves.GET("/:id", lc.GetLeave)
		leaves.PUT("/:id/status", lc.ReviewLeave)
	}
}

// ApplyForLeave endpoint
func (lc *LeaveController) ApplyForLeave(c *gin.Context) {
	var leave model.LeaveApplication
	if err := c.ShouldBindJSON(&leave); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid leave data", err)
		return
	}
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}
	leave.UserID = userID

	created, err := lc.leaveService.ApplyForLeave(c, leave)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrInvalidLeaveData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid leave data", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to file leave application", err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetLeave endpoint
func (lc *LeaveController) GetLeave(c *gin.Context) {
	leaveID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid leave id", err)
		return
	}

	leave, err := lc.leaveService.GetLeave(c, leaveID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrLeaveNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Leave application not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve leave application", err)
		}
		return
	}

	c.JSON(http.StatusOK, leave)
}

// ListLeaves endpoint
func (lc *LeaveController) ListLeaves(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	leaves, err := lc.leaveService.ListLeaves(c, c.Query("status"), limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list leave applications", err)
		return
	}

	c.JSON(http.StatusOK, leaves)
}

// ReviewLeave endpoint
func (lc *LeaveController) ReviewLeave(c *gin.Context) {
	leaveID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid leave id", err)
		return
	}
	var req struct {
		Approve *bool `json:"approve" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Approve flag is required", err)
		return
	}
	reviewerID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	leave, err := lc.leaveService.ReviewLeave(c, leaveID, *req.Approve, reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, atlas_errors.ErrLeaveNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Leave application not found", err)
		case errors.Is(err, atlas_errors.ErrLeaveAlreadyReviewed):
			util.RespondWithError(c, http.StatusConflict, "Leave application already reviewed", err)
		case errors.Is(err, atlas_errors.ErrInvalidLeaveData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid review request", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to review leave application", err)
		}
		return
	}

	c.JSON(http.StatusOK, leave)
}

// MyLeaves endpoint
func (lc *LeaveController) MyLeaves(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	leaves, err := lc.leaveService.ListLeavesForUser(c, userID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list leave applications", err)
		return
	}

	c.JSON(http.StatusOK, leaves)
}

// LeaveBalance endpoint
func (lc *LeaveController) LeaveBalance(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	year := 0
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = parsed
	}

	days, err := lc.leaveService.LeaveBalance(c, userID, year)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to compute leave balance", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approved_days": days})
}
