// api/service/document_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atlas-hrms/atlas/api/audit"
	"github.com/atlas-hrms/atlas/api/dao"
	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
	"github.com/atlas-hrms/atlas/api/util"
)

// IDocumentService defines the interface for document operations
type IDocumentService interface {
	UploadDocument(ctx context.Context, doc model.Document, uploaderID uint) (*model.Document, error)
	GetDocument(ctx context.Context, documentID uint) (*model.Document, error)
	DeleteDocument(ctx context.Context, documentID uint, deleterID uint) error
	ListDocuments(ctx context.Context, category string, limit, offset int) ([]model.Document, error)
	ListDocumentsForUploader(ctx context.Context, userID uint) ([]model.Document, error)
}

type DocumentService struct {
	documentDAO    *dao.DocumentDAO
	auditService   audit.Service
	validationUtil *util.ValidationUtil
}

var _ IDocumentService = &DocumentService{}

func NewDocumentService(documentDAO *dao.DocumentDAO, auditService audit.Service, validationUtil *util.ValidationUtil) *DocumentService {
	return &DocumentService{
		documentDAO:    documentDAO,
		auditService:   auditService,
		validationUtil: validationUtil,
	}
}

// UploadDocument registers a document's metadata. The file key is assigned
// server-side; the binary itself lives in object storage keyed by it.
func (s *DocumentService) UploadDocument(ctx context.Context, doc model.Document, uploaderID uint) (*model.Document, error) {
	doc.UploadedBy = uploaderID
	doc.FileKey = uuid.NewString()

	if err := s.validationUtil.ValidateDocument(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", atlas_errors.ErrInvalidDocumentData, err)
	}

	if err := s.documentDAO.CreateDocument(ctx, &doc); err != nil {
		logger.Error("Error uploading document", zap.Error(err), zap.Uint("uploaderID", uploaderID))
		return nil, err
	}

	details, _ := json.Marshal(map[string]interface{}{"title": doc.Title, "category": doc.Category})
	s.logActivity(ctx, uploaderID, "UPLOAD_DOCUMENT", doc.ID, details)

	logger.Info("Document uploaded", zap.Uint("documentID", doc.ID), zap.Uint("uploaderID", uploaderID))
	return &doc, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, documentID uint) (*model.Document, error) {
	return s.documentDAO.GetDocument(ctx, documentID)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, documentID uint, deleterID uint) error {
	if err := s.documentDAO.DeleteDocument(ctx, documentID); err != nil {
		logger.Error("Error deleting document", zap.Error(err), zap.Uint("documentID", documentID))
		return err
	}

	s.logActivity(ctx, deleterID, "DELETE_DOCUMENT", documentID, nil)
	return nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, category string, limit, offset int) ([]model.Document, error) {
	return s.documentDAO.ListDocuments(ctx, category, limit, offset)
}

func (s *DocumentService) ListDocumentsForUploader(ctx context.Context, userID uint) ([]model.Document, error) {
	return s.documentDAO.ListDocumentsForUploader(ctx, userID)
}

func (s *DocumentService) logActivity(ctx context.Context, actorID uint, action string, documentID uint, details json.RawMessage) {
	entry := audit.ActivityLog{
		Timestamp:     time.Now(),
		ActorID:       actorID,
		Action:        action,
		EntityType:    "document",
		EntityID:      documentID,
		ChangeDetails: details,
	}
	if err := s.auditService.LogActivity(ctx, entry); err != nil {
		logger.Warn("Failed to record activity log", zap.Error(err), zap.String("action", action))
	}
}
