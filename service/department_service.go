// api/service/department_service.go
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

// IDepartmentService defines the interface for department operations
type IDepartmentService interface {
	CreateDepartment(ctx context.Context, department model.Department, creatorID uint) (*model.Department, error)
	UpdateDepartment(ctx context.Context, department model.Department, updaterID uint) (*model.Department, error)
	DeleteDepartment(ctx context.Context, departmentID uint, deleterID uint) error
	GetDepartment(ctx context.Context, departmentID uint) (*model.Department, error)
	ListDepartments(ctx context.Context) ([]model.Department, error)
	ListEmployees(ctx context.Context, departmentID uint) ([]model.User, error)
}

type DepartmentService struct {
	departmentDAO  *dao.DepartmentDAO
	userDAO        *dao.UserDAO
	auditService   audit.Service
	validationUtil *util.ValidationUtil
}

var _ IDepartmentService = &DepartmentService{}

func NewDepartmentService(departmentDAO *dao.DepartmentDAO, userDAO *dao.UserDAO, auditService audit.Service, validationUtil *util.ValidationUtil) *DepartmentService {
	return &DepartmentService{
		departmentDAO:  departmentDAO,
		userDAO:        userDAO,
		auditService:   auditService,
		validationUtil: validationUtil,
	}
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, department model.Department, creatorID uint) (*model.Department, error) {
	if err := s.validationUtil.ValidateDepartment(department); err != nil {
		return nil, fmt.Errorf("%w: %v", atlas_errors.ErrInvalidDepartmentData, err)
	}

	if err := s.departmentDAO.CreateDepartment(ctx, &department); err != nil {
		logger.Error("Error creating department", zap.Error(err), zap.Uint("creatorID", creatorID))
		return nil, err
	}

	s.logActivity(ctx, creatorID, "CREATE_DEPARTMENT", department.ID, nil)
	logger.Info("Department created", zap.Uint("departmentID", department.ID), zap.Uint("creatorID", creatorID))
	return &department, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, department model.Department, updaterID uint) (*model.Department, error) {
	if err := s.validationUtil.ValidateDepartment(department); err != nil {
		return nil, fmt.Errorf("%w: %v", atlas_errors.ErrInvalidDepartmentData, err)
	}

	if err := s.departmentDAO.UpdateDepartment(ctx, &department); err != nil {
		logger.Error("Error updating department", zap.Error(err), zap.Uint("departmentID", department.ID))
		return nil, err
	}

	details, _ := json.Marshal(map[string]interface{}{"name": department.Name})
	s.logActivity(ctx, updaterID, "UPDATE_DEPARTMENT", department.ID, details)
	return &department, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, departmentID uint, deleterID uint) error {
	employees, err := s.userDAO.ListUsersByDepartment(ctx, departmentID)
	if err != nil {
		return err
	}
	if len(employees) > 0 {
		return fmt.Errorf("%w: department has %d employees", atlas_errors.ErrDepartmentConflict, len(employees))
	}

	if err := s.departmentDAO.DeleteDepartment(ctx, departmentID); err != nil {
		logger.Error("Error deleting department", zap.Error(err), zap.Uint("departmentID", departmentID))
		return err
	}

	s.logActivity(ctx, deleterID, "DELETE_DEPARTMENT", departmentID, nil)
	return nil
}

func (s *DepartmentService) GetDepartment(ctx context.Context, departmentID uint) (*model.Department, error) {
	return s.departmentDAO.GetDepartment(ctx, departmentID)
}

func (s *DepartmentService) ListDepartments(ctx context.Context) ([]model.Department, error) {
	return s.departmentDAO.ListDepartments(ctx)
}

func (s *DepartmentService) ListEmployees(ctx context.Context, departmentID uint) ([]model.User, error) {
	if _, err := s.departmentDAO.GetDepartment(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.userDAO.ListUsersByDepartment(ctx, departmentID)
}

func (s *DepartmentService) logActivity(ctx context.Context, actorID uint, action string, departmentID uint, details json.RawMessage) {
	entry := audit.ActivityLog{
		Timestamp:     time.Now(),
		ActorID:       actorID,
		Action:        action,
		EntityType:    "department",
		EntityID:      departmentID,
		ChangeDetails: details,
	}
	if err := s.auditService.LogActivity(ctx, entry); err != nil {
		logger.Warn("Failed to record activity log", zap.Error(err), zap.String("action", action))
	}
}
