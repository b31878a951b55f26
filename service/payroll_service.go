// api/service/payroll_service.go
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
)

// IPayrollService defines the interface for payroll operations
type IPayrollService interface {
	GeneratePayslip(ctx context.Context, payslip model.Payslip, generatorID uint) (*model.Payslip, error)
	GetPayslip(ctx context.Context, payslipID uint) (*model.Payslip, error)
	ListPayslipsForUser(ctx context.Context, userID uint, year int) ([]model.Payslip, error)
	ListPayslipsForPeriod(ctx context.Context, month, year int) ([]model.Payslip, error)
}

type PayrollService struct {
	payrollDAO      *dao.PayrollDAO
	userDAO         *dao.UserDAO
	auditService    audit.Service
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IPayrollService = &PayrollService{}

func NewPayrollService(payrollDAO *dao.PayrollDAO, userDAO *dao.UserDAO, auditService audit.Service, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *PayrollService {
	service := &PayrollService{
		payrollDAO:      payrollDAO,
		userDAO:         userDAO,
		auditService:    auditService,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("payslip.generated", service.handlePayslipGenerated)

	return service
}

func (s *PayrollService) handlePayslipGenerated(ctx context.Context, event util.Event) error {
	payslip := event.Payload.(model.Payslip)
	if err := s.notificationSvc.NotifyPayslipGenerated(ctx, payslip); err != nil {
		logger.Warn("Failed to send payslip notification", zap.Error(err), zap.Uint("payslipID", payslip.ID))
	}
	return nil
}

// GeneratePayslip creates a payslip for the given user and period. Net pay is
// always derived from gross and deductions; a period can only be generated
// once per user.
func (s *PayrollService) GeneratePayslip(ctx context.Context, payslip model.Payslip, generatorID uint) (*model.Payslip, error) {
	payslip.GeneratedBy = generatorID
	payslip.Net = payslip.Gross - payslip.Deductions

	if err := s.validationUtil.ValidatePayslip(payslip); err != nil {
		return nil, fmt.Errorf("%w: %v", atlas_errors.ErrInvalidPayslip, err)
	}

	if _, err := s.userDAO.GetUser(ctx, payslip.UserID); err != nil {
		return nil, err
	}

	if err := s.payrollDAO.CreatePayslip(ctx, &payslip); err != nil {
		logger.Error("Error generating payslip",
			zap.Error(err),
			zap.Uint("userID", payslip.UserID),
			zap.Int("month", payslip.Month),
			zap.Int("year", payslip.Year))
		return nil, err
	}

	details, _ := json.Marshal(map[string]interface{}{"month": payslip.Month, "year": payslip.Year})
	s.logActivity(ctx, generatorID, "GENERATE_PAYSLIP", payslip.ID, details)
	s.eventBus.Publish(ctx, "payslip.generated", payslip)

	logger.Info("Payslip generated",
		zap.Uint("payslipID", payslip.ID),
		zap.Uint("userID", payslip.UserID),
		zap.Uint("generatorID", generatorID))
	return &payslip, nil
}

func (s *PayrollService) GetPayslip(ctx context.Context, payslipID uint) (*model.Payslip, error) {
	return s.payrollDAO.GetPayslip(ctx, payslipID)
}

func (s *PayrollService) ListPayslipsForUser(ctx context.Context, userID uint, year int) ([]model.Payslip, error) {
	return s.payrollDAO.ListPayslipsForUser(ctx, userID, year)
}

func (s *PayrollService) ListPayslipsForPeriod(ctx context.Context, month, year int) ([]model.Payslip, error) {
	return s.payrollDAO.ListPayslipsForPeriod(ctx, month, year)
}

func (s *PayrollService) logActivity(ctx context.Context, actorID uint, action string, payslipID uint, details json.RawMessage) {
	entry := audit.ActivityLog{
		Timestamp:     time.Now(),
		ActorID:       actorID,
		Action:        action,
		EntityType:    "payslip",
		EntityID:      payslipID,
		ChangeDetails: details,
	}
	if err := s.auditService.LogActivity(ctx, entry); err != nil {
		logger.Warn("Failed to record activity log", zap.Error(err), zap.String("action", action))
	}
}
