// api/service/requisition_service.go
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

// IRequisitionService defines the interface for requisition operations
type IRequisitionService interface {
	CreateRequisition(ctx context.Context, req model.Requisition, requesterID uint) (*model.Requisition, error)
	GetRequisition(ctx context.Context, requisitionID uint) (*model.Requisition, error)
	ListRequisitions(ctx context.Context, status string, limit, offset int) ([]model.Requisition, error)
	ListRequisitionsForUser(ctx context.Context, userID uint) ([]model.Requisition, error)
	ReviewRequisition(ctx context.Context, requisitionID uint, approve bool, reviewerID uint) (*model.Requisition, error)
}

type RequisitionService struct {
	requisitionDAO  *dao.RequisitionDAO
	auditService    audit.Service
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IRequisitionService = &RequisitionService{}

func NewRequisitionService(requisitionDAO *dao.RequisitionDAO, auditService audit.Service, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *RequisitionService {
	service := &RequisitionService{
		requisitionDAO:  requisitionDAO,
		auditService:    auditService,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("requisition.reviewed", service.handleRequisitionReviewed)

	return service
}

func (s *RequisitionService) handleRequisitionReviewed(ctx context.Context, event util.Event) error {
	req := event.Payload.(model.Requisition)
	if err := s.notificationSvc.NotifyRequisitionReviewed(ctx, req); err != nil {
		logger.Warn("Failed to send requisition notification", zap.Error(err), zap.Uint("requisitionID", req.ID))
	}
	return nil
}

// CreateRequisition files a purchase requisition for the calling user. The
// requisition number is assigned server-side.
func (s *RequisitionService) CreateRequisition(ctx context.Context, req model.Requisition, requesterID uint) (*model.Requisition, error) {
	req.RequestedBy = requesterID
	req.Status = model.StatusPending
	req.ReviewedBy = nil
	req.Number = fmt.Sprintf("REQ-%d-%s", time.Now().Year(), uuid.NewString()[:8])

	if err := s.validationUtil.ValidateRequisition(req); err != nil {
		return nil, fmt.Errorf("%w: %v", atlas_errors.ErrInvalidRequisitionData, err)
	}

	if err := s.requisitionDAO.CreateRequisition(ctx, &req); err != nil {
		logger.Error("Error creating requisition", zap.Error(err), zap.Uint("requesterID", requesterID))
		return nil, err
	}

	s.logActivity(ctx, requesterID, "CREATE_REQUISITION", req.ID, nil)
	logger.Info("Requisition filed",
		zap.Uint("requisitionID", req.ID),
		zap.String("number", req.Number),
		zap.Uint("requesterID", requesterID))
	return &req, nil
}

func (s *RequisitionService) GetRequisition(ctx context.Context, requisitionID uint) (*model.Requisition, error) {
	return s.requisitionDAO.GetRequisition(ctx, requisitionID)
}

func (s *RequisitionService) ListRequisitions(ctx context.Context, status string, limit, offset int) ([]model.Requisition, error) {
	return s.requisitionDAO.ListRequisitions(ctx, status, limit, offset)
}

func (s *RequisitionService) ListRequisitionsForUser(ctx context.Context, userID uint) ([]model.Requisition, error) {
	return s.requisitionDAO.ListRequisitionsForUser(ctx, userID)
}

// ReviewRequisition approves or rejects a pending requisition. Reviewing
// your own requisition is not allowed.
func (s *RequisitionService) ReviewRequisition(ctx context.Context, requisitionID uint, approve bool, reviewerID uint) (*model.Requisition, error) {
	existing, err := s.requisitionDAO.GetRequisition(ctx, requisitionID)
	if err != nil {
		return nil, err
	}
	if existing.RequestedBy == reviewerID {
		return nil, fmt.Errorf("%w: cannot review own requisition", atlas_errors.ErrInvalidRequisitionData)
	}

	status := model.StatusRejected
	if approve {
		status = model.StatusApproved
	}

	req, err := s.requisitionDAO.UpdateStatus(ctx, requisitionID, status, reviewerID)
	if err != nil {
		logger.Error("Error reviewing requisition", zap.Error(err), zap.Uint("requisitionID", requisitionID))
		return nil, err
	}

	details, _ := json.Marshal(map[string]interface{}{"status": status})
	s.logActivity(ctx, reviewerID, "REVIEW_REQUISITION", requisitionID, details)
	s.eventBus.Publish(ctx, "requisition.reviewed", *req)

	logger.Info("Requisition reviewed",
		zap.Uint("requisitionID", requisitionID),
		zap.Uint("reviewerID", reviewerID),
		zap.String("status", status))
	return req, nil
}

func (s *RequisitionService) logActivity(ctx context.Context, actorID uint, action string, requisitionID uint, details json.RawMessage) {
	entry := audit.ActivityLog{
		Timestamp:     time.Now(),
		ActorID:       actorID,
		Action:        action,
		EntityType:    "requisition",
		EntityID:      requisitionID,
		ChangeDetails: details,
	}
	if err := s.auditService.LogActivity(ctx, entry); err != nil {
		logger.Warn("Failed to record activity log", zap.Error(err), zap.String("action", action))
	}
}
