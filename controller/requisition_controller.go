// api/controller/requisition_controller.go
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

type RequisitionController struct {
	requisitionService service.IRequisitionService
}

func NewRequisitionController(requisitionService service.IRequisitionService) *RequisitionController {
	return &RequisitionController{requisitionService: requisitionService}
}

// RegisterRoutes registers the API routes
func (rc *RequisitionController) RegisterRoutes(r *gin.RouterGroup) {
	requisitions := r.Group("/requisitions")
	{
		requisitions.POST("", rc.CreateRequisition)
		requisitions.GET("", rc.ListRequisitions)
		requisitions.GET("/:id", rc.GetRequisition)
		requisitions.PUT("/:id/approve", rc.ReviewRequisition)
	}
}

// CreateRequisition endpoint
func (rc *RequisitionController) CreateRequisition(c *gin.Context) {
	var req model.Requisition
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid requisition data", err)
		return
	}
	requesterID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	created, err := rc.requisitionService.CreateRequisition(c, req, requesterID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrInvalidRequisitionData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid requisition data", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create requisition", err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetRequisition endpoint
func (rc *RequisitionController) GetRequisition(c *gin.Context) {
	requisitionID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid requisition id", err)
		return
	}

	req, err := rc.requisitionService.GetRequisition(c, requisitionID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrRequisitionNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Requisition not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve requisition", err)
		}
		return
	}

	c.JSON(http.StatusOK, req)
}

// ListRequisitions endpoint
func (rc *RequisitionController) ListRequisitions(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	reqs, err := rc.requisitionService.ListRequisitions(c, c.Query("status"), limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list requisitions", err)
		return
	}

	c.JSON(http.StatusOK, reqs)
}

// ReviewRequisition endpoint
func (rc *RequisitionController) ReviewRequisition(c *gin.Context) {
	requisitionID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid requisition id", err)
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

	reviewed, err := rc.requisitionService.ReviewRequisition(c, requisitionID, *req.Approve, reviewerID)
	if err != nil {
		switch {
		case errors.Is(err, atlas_errors.ErrRequisitionNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Requisition not found", err)
		case errors.Is(err, atlas_errors.ErrRequisitionAlreadyReviewed):
			util.RespondWithError(c, http.StatusConflict, "Requisition already reviewed", err)
		case errors.Is(err, atlas_errors.ErrInvalidRequisitionData):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid review request", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to review requisition", err)
		}
		return
	}

	c.JSON(http.StatusOK, reviewed)
}
