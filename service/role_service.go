// api/service/role_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/atlas-hrms/atlas/api/audit"
	"github.com/atlas-hrms/atlas/api/authz/engine"
	"github.com/atlas-hrms/atlas/api/dao"
	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
	"github.com/atlas-hrms/atlas/api/util"
)

// IRoleService defines the interface for role operations
type IRoleService interface {
	CreateRole(ctx context.Context, role model.Role, creatorID uint) (*model.Role, error)
	UpdateRole(ctx context.Context, role model.Role, updaterID uint) (*model.Role, error)
	DeleteRole(ctx context.Context, roleID uint, deleterID uint) error
	GetRole(ctx context.Context, roleID uint) (*model.Role, error)
	ListRoles(ctx context.Context, limit, offset int) ([]model.Role, error)
	ReplacePermissions(ctx context.Context, roleID uint, permissionIDs []uint, updaterID uint) (*model.Role, error)
}

// RoleService handles business logic for role operations
type RoleService struct {
	roleDAO         *dao.RoleDAO
	evaluator       *engine.Evaluator
	auditService    audit.Service
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IRoleService = &RoleService{}

func NewRoleService(roleDAO *dao.RoleDAO, evaluator *engine.Evaluator, auditService audit.Service, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *RoleService {
	service := &RoleService{
		roleDAO:         roleDAO,
		evaluator:       evaluator,
		auditService:    auditService,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe("role.updated", service.handleRoleUpdated)

	return service
}

func (s *RoleService) handleRoleUpdated(ctx context.Context, event util.Event) error {
	role := event.Payload.(model.Role)
	if err := s.notificationSvc.NotifyRoleChange(ctx, "updated", role); err != nil {
		logger.Warn("Failed to send role change notification", zap.Error(err), zap.Uint("roleID", role.ID))
	}
	return nil
}

func (s *RoleService) CreateRole(ctx context.Context, role model.Role, creatorID uint) (*model.Role, error) {
	if err := s.validationUtil.ValidateRole(role); err != nil {
		return nil, fmt.Errorf("%w: %v", atlas_errors.ErrInvalidRoleData, err)
	}

	if err := s.roleDAO.CreateRole(ctx, &role); err != nil {
		logger.Error("Error creating role", zap.Error(err), zap.Uint("creatorID", creatorID))
		return nil, err
	}

	s.logActivity(ctx, creatorID, "CREATE_ROLE", role.ID, nil)
	logger.Info("Role created", zap.Uint("roleID", role.ID), zap.Uint("creatorID", creatorID))
	return &role, nil
}

func (s *RoleService) UpdateRole(ctx context.Context, role model.Role, updaterID uint) (*model.Role, error) {
	if err := s.validationUtil.ValidateRole(role); err != nil {
		return nil, fmt.Errorf("%w: %v", atlas_errors.ErrInvalidRoleData, err)
	}

	if err := s.roleDAO.UpdateRole(ctx, &role); err != nil {
		logger.Error("Error updating role", zap.Error(err), zap.Uint("roleID", role.ID), zap.Uint("updaterID", updaterID))
		return nil, err
	}

	s.logActivity(ctx, updaterID, "UPDATE_ROLE", role.ID, nil)
	s.eventBus.Publish(ctx, "role.updated", role)
	return &role, nil
}

func (s *RoleService) DeleteRole(ctx context.Context, roleID uint, deleterID uint) error {
	if err := s.roleDAO.DeleteRole(ctx, roleID); err != nil {
		logger.Error("Error deleting role", zap.Error(err), zap.Uint("roleID", roleID), zap.Uint("deleterID", deleterID))
		return err
	}

	// Any user may have held this role; every cached resolution is suspect.
	s.evaluator.InvalidateAll()

	s.logActivity(ctx, deleterID, "DELETE_ROLE", roleID, nil)
	logger.Info("Role deleted", zap.Uint("roleID", roleID), zap.Uint("deleterID", deleterID))
	return nil
}

func (s *RoleService) GetRole(ctx context.Context, roleID uint) (*model.Role, error) {
	return s.roleDAO.GetRole(ctx, roleID)
}

func (s *RoleService) ListRoles(ctx context.Context, limit, offset int) ([]model.Role, error) {
	return s.roleDAO.ListRoles(ctx, limit, offset)
}

// ReplacePermissions rewrites the role's permission set. Because there is no
// reverse index from role to cached users, the whole resolution cache is
// flushed synchronously after the write commits.
func (s *RoleService) ReplacePermissions(ctx context.Context, roleID uint, permissionIDs []uint, updaterID uint) (*model.Role, error) {
	if err := s.roleDAO.ReplacePermissions(ctx, roleID, permissionIDs); err != nil {
		logger.Error("Error replacing role permissions", zap.Error(err), zap.Uint("roleID", roleID), zap.Uint("updaterID", updaterID))
		return nil, err
	}

	s.evaluator.InvalidateAll()

	details, _ := json.Marshal(map[string]interface{}{"permission_ids": permissionIDs})
	s.logActivity(ctx, updaterID, "REPLACE_ROLE_PERMISSIONS", roleID, details)

	role, err := s.roleDAO.GetRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	s.eventBus.Publish(ctx, "role.updated", *role)

	logger.Info("Role permissions replaced",
		zap.Uint("roleID", roleID),
		zap.Uint("updaterID", updaterID),
		zap.Int("permissionCount", len(permissionIDs)))
	return role, nil
}

func (s *RoleService) logActivity(ctx context.Context, actorID uint, action string, roleID uint, details json.RawMessage) {
	entry := audit.ActivityLog{
		Timestamp:     time.Now(),
		ActorID:       actorID,
		Action:        action,
		EntityType:    "role",
		EntityID:      roleID,
		ChangeDetails: details,
	}
	if err := s.auditService.LogActivity(ctx, entry); err != nil {
		logger.Warn("Failed to record activity log", zap.Error(err), zap.String("action", action))
	}
}
