// api/controller/department_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	"github.com/atlas-hrms/atlas/api/model"
	"github.com/atlas-hrms/atlas/api/service"
	"github.com/atlas-hrms/atlas/api/util"
	helper_util "github.com/atlas-hrms/atlas/api/util/helper"
)

type DepartmentController struct {
	departmentService service.IDepartmentService
}

func NewDepartmentController(departmentService service.IDepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// RegisterRoutes registers the API routes
func (dc *DepartmentController) RegisterRoutes(r *gin.RouterGroup) {
	departments := r.Group("/departments")
	{
		departments.GET("", dc.ListDepartments)
		departments.POST("", dc.CreateDepartment)
		departments.PUT("/:id", dc.UpdateDepartment)
		departments.DELETE("/:id", dc.DeleteDepartment)
		departments.GET("/:id/employees", dc.ListEmployees)
	}
}

// CreateDepartment endpoint
func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	var dept model.Department
	if err := c.ShouldBindJSON(&dept); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", err)
		return
	}
	creatorID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	created, err := dc.departmentService.CreateDepartment(c, dept, creatorID)
	if err != nil {
		switch {
		case errors.Is(err, atlas_errors.ErrInvalidDepartmentData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", err)
		case errors.Is(err, atlas_errors.ErrDepartmentConflict):
			util.RespondWithError(c, http.StatusConflict, "Department already exists", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create department", err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateDepartment endpoint
func (dc *DepartmentController) UpdateDepartment(c *gin.Context) {
	deptID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department id", err)
		return
	}
	var dept model.Department
	if err := c.ShouldBindJSON(&dept); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", err)
		return
	}
	dept.ID = deptID
	updaterID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	updated, err := dc.departmentService.UpdateDepartment(c, dept, updaterID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrDepartmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update department", err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteDepartment endpoint
func (dc *DepartmentController) DeleteDepartment(c *gin.Context) {
	deptID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department id", err)
		return
	}
	deleterID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	if err := dc.departmentService.DeleteDepartment(c, deptID, deleterID); err != nil {
		switch {
		case errors.Is(err, atlas_errors.ErrDepartmentNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
		case errors.Is(err, atlas_errors.ErrDepartmentConflict):
			util.RespondWithError(c, http.StatusConflict, "Department is not empty", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete department", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListDepartments endpoint
func (dc *DepartmentController) ListDepartments(c *gin.Context) {
	departments, err := dc.departmentService.ListDepartments(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list departments", err)
		return
	}

	c.JSON(http.StatusOK, departments)
}

// ListEmployees endpoint
func (dc *DepartmentController) ListEmployees(c *gin.Context) {
	deptID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department id", err)
		return
	}

	employees, err := dc.departmentService.ListEmployees(c, deptID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrDepartmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to list employees", err)
		}
		return
	}

	c.JSON(http.StatusOK, employees)
}
