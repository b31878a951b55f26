// api/controller/attendance_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	"github.com/atlas-hrms/atlas/api/service"
	"github.com/atlas-hrms/atlas/api/util"
	helper_util "github.com/atlas-hrms/atlas/api/util/helper"
)

type AttendanceController struct {
	attendanceService service.IAttendanceService
}

func NewAttendanceController(attendanceService service.IAttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// RegisterRoutes registers the API routes
func (ac *AttendanceController) RegisterRoutes(r *gin.RouterGroup) {
	attendance := r.Group("/attendance")
	{
		attendance.POST("/clock-in", ac.ClockIn)
		attendance.POST("/clock-out", ac.ClockOut)
		attendance.GET("/:id", ac.GetRecord)
	}
}

// ClockIn endpoint
func (ac *AttendanceController) ClockIn(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	record, err := ac.attendanceService.ClockIn(c, userID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrAlreadyClockedIn) {
			util.RespondWithError(c, http.StatusConflict, "Already clocked in today", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to clock in", err)
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ClockOut endpoint
func (ac *AttendanceController) ClockOut(c *gin.Context) {
	userID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	record, err := ac.attendanceService.ClockOut(c, userID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrNotClockedIn) {
			util.RespondWithError(c, http.StatusConflict, "No open attendance record today", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to clock out", err)
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetRecord endpoint
func (ac *AttendanceController) GetRecord(c *gin.Context) {
	recordID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid attendance record id", err)
		return
	}

	record, err := ac.attendanceService.GetRecord(c, recordID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrAttendanceNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Attendance record not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve attendance record", err)
		}
		return
	}

	c.JSON(http.StatusOK, record)
}
