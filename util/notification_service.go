// api/util/notification_service.go

package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
)

type NotificationService struct {
	// A message queue client or SMTP client would live here.
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	// Mock email sending; a real deployment plugs an SMTP client in here.
	logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject))
	return nil
}

func (n *NotificationService) NotifyLeaveStatus(ctx context.Context, leave model.LeaveApplication) error {
	logger.Info("NOTIFICATION: Leave application reviewed",
		zap.Uint("leaveID", leave.ID),
		zap.Uint("userID", leave.UserID),
		zap.String("status", leave.Status))
	return nil
}

func (n *NotificationService) NotifyRequisitionReviewed(ctx context.Context, requisition model.Requisition) error {
	logger.Info("NOTIFICATION: Requisition reviewed",
		zap.Uint("requisitionID", requisition.ID),
		zap.Uint("requestedBy", requisition.RequestedBy),
		zap.String("status", requisition.Status))
	return nil
}

func (n *NotificationService) NotifyRoleChange(ctx context.Context, changeType string, role model.Role) error {
	logger.Info("NOTIFICATION: Role changed",
		zap.String("changeType", changeType),
		zap.Uint("roleID", role.ID),
		zap.String("roleName", role.Name))
	return nil
}

func (n *NotificationService) NotifyPayslipGenerated(ctx context.Context, payslip model.Payslip) error {
	logger.Info("NOTIFICATION: Payslip generated",
		zap.Uint("payslipID", payslip.ID),
		zap.Uint("userID", payslip.UserID),
		zap.Int("month", payslip.Month),
		zap.Int("year", payslip.Year))
	return nil
}
