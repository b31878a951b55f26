// api/controller/payroll_controller.go
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

type PayrollController struct {
	payrollService service.IPayrollService
}

func NewPayrollController(payrollService service.IPayrollService) *PayrollController {
	return &PayrollController{payrollService: payrollService}
}

// RegisterRoutes registers the API routes
func (pc *PayrollController) RegisterRoutes(r *gin.RouterGroup) {
	payroll := r.Group("/payroll")
	{
		payroll.POST("/payslips", pc.GeneratePayslip)
		payroll.GET("/payslips", pc.ListPayslips)
		payroll.GET("/payslips/:id", pc.GetPayslip)
	}
}

// GeneratePayslip endpoint
func (pc *PayrollController) GeneratePayslip(c *gin.Context) {
	var payslip model.Payslip
	if err := c.ShouldBindJSON(&payslip); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid payslip data", err)
		return
	}
	generatorID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	created, err := pc.payrollService.GeneratePayslip(c, payslip, generatorID)
	if err != nil {
		switch {
		case errors.Is(err, atlas_errors.ErrInvalidPayslip):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid payslip data", err)
		case errors.Is(err, atlas_errors.ErrPayslipConflict):
			util.RespondWithError(c, http.StatusConflict, "Payslip already generated for period", err)
		case errors.Is(err, atlas_errors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Unknown employee", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to generate payslip", err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetPayslip endpoint
func (pc *PayrollController) GetPayslip(c *gin.Context) {
	payslipID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid payslip id", err)
		return
	}

	payslip, err := pc.payrollService.GetPayslip(c, payslipID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrPayslipNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Payslip not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payslip", err)
		}
		return
	}

	c.JSON(http.StatusOK, payslip)
}

// ListPayslips endpoint filters by period when month and year are supplied,
// otherwise by employee.
func (pc *PayrollController) ListPayslips(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	if month > 0 && year > 0 {
		payslips, err := pc.payrollService.ListPayslipsForPeriod(c, month, year)
		if err != nil {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to list payslips", err)
			return
		}
		c.JSON(http.StatusOK, payslips)
		return
	}

	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "user_id or month and year are required", err)
		return
	}

	payslips, err := pc.payrollService.ListPayslipsForUser(c, uint(userID), year)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list payslips", err)
		return
	}

	c.JSON(http.StatusOK, payslips)
}
