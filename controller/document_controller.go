// api/controller/document_controller.go
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

type DocumentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// RegisterRoutes registers the API routes
func (dc *DocumentController) RegisterRoutes(r *gin.RouterGroup) {
	documents := r.Group("/documents")
	{
		documents.POST("", dc.UploadDocument)
		documents.GET("", dc.ListDocuments)
		documents.GET("/:id", dc.GetDocument)
		documents.DELETE("/:id", dc.DeleteDocument)
	}
}

// UploadDocument endpoint
func (dc *DocumentController) UploadDocument(c *gin.Context) {
	var doc model.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid document data", err)
		return
	}
	uploaderID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	created, err := dc.documentService.UploadDocument(c, doc, uploaderID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrInvalidDocumentData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid document data", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to upload document", err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetDocument endpoint
func (dc *DocumentController) GetDocument(c *gin.Context) {
	documentID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid document id", err)
		return
	}

	doc, err := dc.documentService.GetDocument(c, documentID)
	if err != nil {
		if errors.Is(err, atlas_errors.ErrDocumentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Document not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve document", err)
		}
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocument endpoint
func (dc *DocumentController) DeleteDocument(c *gin.Context) {
	documentID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid document id", err)
		return
	}
	deleterID, ok := util.GetUserIDFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", atlas_errors.ErrUnauthenticated)
		return
	}

	if err := dc.documentService.DeleteDocument(c, documentID, deleterID); err != nil {
		if errors.Is(err, atlas_errors.ErrDocumentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Document not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete document", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListDocuments endpoint
func (dc *DocumentController) ListDocuments(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	docs, err := dc.documentService.ListDocuments(c, c.Query("category"), limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list documents", err)
		return
	}

	c.JSON(http.StatusOK, docs)
}
