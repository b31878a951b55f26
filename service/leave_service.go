// api/service/leave_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/atlas-hrms/atlas/api/audit"
	"github.com/atlas-hrms/atlas/api/dao"
	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
	"github.com/atlas-hrms/atlas/api/util"
	helper_util "github.com/atlas-hrms/atlas/api/util/helper"
)

// ILeaveService defines the interface for leave application operations
type ILeaveService interface {
	ApplyForLeave(ctx context.Context, leave model.LeaveApplication) (*model.LeaveApplication, error)
	GetLeave(ctx context.Context, leaveID uint) (*model.LeaveApplication, error)
	ListLeaves(ctx context.Context, status string, limit, offset int) ([]model.LeaveApplication, error)
	ListLeavesForUser(ctx context.Context, userID uint) ([]model.LeaveApplication, error)
	ReviewLeave(ctx context.Context, leaveID uint, approve bool, reviewerID uint) (*model.LeaveApplication, error)
	LeaveBalance(ctx context.Context, userID uint, year int) (int, error)
}

type LeaveService struct {
	leaveDAO        *dao.LeaveDAO
	auditService    audit.Service
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ ILeaveService = &LeaveService{}

func NewLeaveService(leaveDAO *dao.LeaveDAO, auditService audit.Service, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *LeaveService {
	service := &LeaveService{
		leaveDAO:        leaveDAO,
		auditService:    auditService,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("leave.reviewed", service.handleLeaveReviewed)

	return service
}

func (s *LeaveService) handleLeaveReviewed(ctx context.Context, event util.Event) error {
	leave := event.Payload.(model.LeaveApplication)
	if err := s.notificationSvc.NotifyLeaveStatus(ctx, leave); err != nil {
		logger.Warn("Failed to send leave status notification", zap.Error(err), zap.Uint("leaveID", leave.ID))
	}
	return nil
}

// ApplyForLeave files a leave application for the calling user. Day count is
// derived from the date range, inclusive of both ends.
func (s *LeaveService) ApplyForLeave(ctx context.Context, leave model.LeaveApplication) (*model.LeaveApplication, error) {
	leave.Status = model.StatusPending
	leave.ReviewedBy = nil
	leave.Days = helper_util.InclusiveDays(leave.StartDate, leave.EndDate)

	if err := s.validationUtil.ValidateLeave(leave); err != nil {
		return nil, fmt.Errorf("%w: %v", atlas_errors.ErrInvalidLeaveData, err)
	}
	if leave.EndDate.Before(leave.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", atlas_errors.ErrInvalidLeaveData)
	}

	if err := s.leaveDAO.CreateLeave(ctx, &leave); err != nil {
		logger.Error("Error creating leave application", zap.Error(err), zap.Uint("userID", leave.UserID))
		return nil, err
	}

	s.logActivity(ctx, leave.UserID, "APPLY_LEAVE", leave.ID, nil)
	logger.Info("Leave application filed",
		zap.Uint("leaveID", leave.ID),
		zap.Uint("userID", leave.UserID),
		zap.Int("days", leave.Days))
	return &leave, nil
}

func (s *LeaveService) GetLeave(ctx context.Context, leaveID uint) (*model.LeaveApplication, error) {
	return s.leaveDAO.GetLeave(ctx, leaveID)
}

func (s *LeaveService) ListLeaves(ctx context.Context, status string, limit, offset int) ([]model.LeaveApplication, error) {
	return s.leaveDAO.ListLeaves(ctx, status, limit, offset)
}

func (s *LeaveService) ListLeavesForUser(ctx context.Context, userID uint) ([]model.LeaveApplication, error) {
	return s.leaveDAO.ListLeavesForUser(ctx, userID)
}

// ReviewLeave approves or rejects a pending application. Reviewing your own
// application is not allowed.
func (s *LeaveService) ReviewLeave(ctx context.Context, leaveID uint, approve bool, reviewerID uint) (*model.LeaveApplication, error) {
	existing, err := s.leaveDAO.GetLeave(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if existing.UserID == reviewerID {
		return nil, fmt.Errorf("%w: cannot review own application", atlas_errors.ErrInvalidLeaveData)
	}

	status := model.StatusRejected
	if approve {
		status = model.StatusApproved
	}

	leave, err := s.leaveDAO.UpdateStatus(ctx, leaveID, status, reviewerID)
	if err != nil {
		logger.Error("Error reviewing leave", zap.Error(err), zap.Uint("leaveID", leaveID), zap.Uint("reviewerID", reviewerID))
		return nil, err
	}

	details, _ := json.Marshal(map[string]interface{}{"status": status})
	s.logActivity(ctx, reviewerID, "REVIEW_LEAVE", leaveID, details)
	s.eventBus.Publish(ctx, "leave.reviewed", *leave)

	logger.Info("Leave reviewed",
		zap.Uint("leaveID", leaveID),
		zap.Uint("reviewerID", reviewerID),
		zap.String("status", status))
	return leave, nil
}

// LeaveBalance returns the number of approved leave days the user has
// consumed in the given year.
func (s *LeaveService) LeaveBalance(ctx context.Context, userID uint, year int) (int, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	return s.leaveDAO.ApprovedDaysForUser(ctx, userID, year)
}

func (s *LeaveService) logActivity(ctx context.Context, actorID uint, action string, leaveID uint, details json.RawMessage) {
	entry := audit.ActivityLog{
		Timestamp:     time.Now(),
		ActorID:       actorID,
		Action:        action,
		EntityType:    "leave",
		EntityID:      leaveID,
		ChangeDetails: details,
	}
	if err := s.auditService.LogActivity(ctx, entry); err != nil {
		logger.Warn("Failed to record activity log", zap.Error(err), zap.String("action", action))
	}
}
