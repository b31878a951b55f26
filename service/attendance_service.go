// api/service/attendance_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/atlas-hrms/atlas/api/audit"
	"github.com/atlas-hrms/atlas/api/dao"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
)

// IAttendanceService defines the interface for attendance operations
type IAttendanceService interface {
	ClockIn(ctx context.Context, userID uint) (*model.AttendanceRecord, error)
	ClockOut(ctx context.Context, userID uint) (*model.AttendanceRecord, error)
	GetRecord(ctx context.Context, recordID uint) (*model.AttendanceRecord, error)
	ListRecordsForUser(ctx context.Context, userID uint, from, to time.Time) ([]model.AttendanceRecord, error)
}

type AttendanceService struct {
	attendanceDAO *dao.AttendanceDAO
	auditService  audit.Service
}

var _ IAttendanceService = &AttendanceService{}

func NewAttendanceService(attendanceDAO *dao.AttendanceDAO, auditService audit.Service) *AttendanceService {
	return &AttendanceService{attendanceDAO: attendanceDAO, auditService: auditService}
}

func (s *AttendanceService) ClockIn(ctx context.Context, userID uint) (*model.AttendanceRecord, error) {
	record, err := s.attendanceDAO.ClockIn(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, "CLOCK_IN", record.ID)
	logger.Info("User clocked in", zap.Uint("userID", userID), zap.Uint("recordID", record.ID))
	return record, nil
}

func (s *AttendanceService) ClockOut(ctx context.Context, userID uint) (*model.AttendanceRecord, error) {
	record, err := s.attendanceDAO.ClockOut(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, userID, "CLOCK_OUT", record.ID)
	logger.Info("User clocked out", zap.Uint("userID", userID), zap.Uint("recordID", record.ID))
	return record, nil
}

func (s *AttendanceService) GetRecord(ctx context.Context, recordID uint) (*model.AttendanceRecord, error) {
	return s.attendanceDAO.GetRecord(ctx, recordID)
}

func (s *AttendanceService) ListRecordsForUser(ctx context.Context, userID uint, from, to time.Time) ([]model.AttendanceRecord, error) {
	return s.attendanceDAO.ListRecordsForUser(ctx, userID, from, to)
}

func (s *AttendanceService) logActivity(ctx context.Context, actorID uint, action string, recordID uint) {
	entry := audit.ActivityLog{
		Timestamp:  time.Now(),
		ActorID:    actorID,
		Action:     action,
		EntityType: "attendance",
		EntityID:   recordID,
	}
	if err := s.auditService.LogActivity(ctx, entry); err != nil {
		logger.Warn("Failed to record activity log", zap.Error(err), zap.String("action", action))
	}
}
