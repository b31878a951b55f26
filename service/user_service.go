// api/service/user_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/atlas-hrms/atlas/api/audit"
	"github.com/atlas-hrms/atlas/api/authz/engine"
	"github.com/atlas-hrms/atlas/api/dao"
	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
	"github.com/atlas-hrms/atlas/api/util"
)

// IUserService defines the interface for user operations
type IUserService interface {
	CreateUser(ctx context.Context, user model.User, password string, creatorID uint) (*model.User, error)
	UpdateUser(ctx context.Context, user model.User, updaterID uint) (*model.User, error)
	DeleteUser(ctx context.Context, userID uint, deleterID uint) error
	GetUser(ctx context.Context, userID uint) (*model.User, error)
	ListUsers(ctx context.Context, criteria model.UserSearchCriteria) ([]model.User, error)
	AssignRoles(ctx context.Context, userID uint, roleIDs []uint, assignerID uint) (*model.User, error)
}

// UserService handles business logic for user operations
type UserService struct {
	userDAO        *dao.UserDAO
	evaluator      *engine.Evaluator
	auditService   audit.Service
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IUserService = &UserService{}

func NewUserService(userDAO *dao.UserDAO, evaluator *engine.Evaluator, auditService audit.Service, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *UserService {
	return &UserService{
		userDAO:        userDAO,
		evaluator:      evaluator,
		auditService:   auditService,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user model.User, password string, creatorID uint) (*model.User, error) {
	if err := s.validationUtil.ValidateUser(user); err != nil {
		return nil, fmt.Errorf("%w: %v", atlas_errors.ErrInvalidUserData, err)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password too short", atlas_errors.ErrInvalidUserData)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, atlas_errors.ErrInternalServer
	}
	user.PasswordHash = string(hash)
	if user.JoinedAt.IsZero() {
		user.JoinedAt = time.Now()
	}

	if err := s.userDAO.CreateUser(ctx, &user); err != nil {
		logger.Error("Error creating user", zap.Error(err), zap.Uint("creatorID", creatorID))
		return nil, err
	}

	s.logActivity(ctx, creatorID, "CREATE_USER", "user", user.ID, nil)
	s.eventBus.Publish(ctx, "user.created", user)

	logger.Info("User created", zap.Uint("userID", user.ID), zap.Uint("creatorID", creatorID))
	return &user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user model.User, updaterID uint) (*model.User, error) {
	if err := s.validationUtil.ValidateUser(user); err != nil {
		return nil, fmt.Errorf("%w: %v", atlas_errors.ErrInvalidUserData, err)
	}

	if err := s.userDAO.UpdateUser(ctx, &user); err != nil {
		logger.Error("Error updating user", zap.Error(err), zap.Uint("userID", user.ID), zap.Uint("updaterID", updaterID))
		return nil, err
	}

	s.logActivity(ctx, updaterID, "UPDATE_USER", "user", user.ID, nil)
	return &user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID uint, deleterID uint) error {
	if err := s.userDAO.DeleteUser(ctx, userID); err != nil {
		logger.Error("Error deleting user", zap.Error(err), zap.Uint("userID", userID), zap.Uint("deleterID", deleterID))
		return err
	}

	// The deleted user's cached grants must not outlive the account.
	s.evaluator.Invalidate(userID)

	s.logActivity(ctx, deleterID, "DELETE_USER", "user", userID, nil)
	s.eventBus.Publish(ctx, "user.deleted", userID)

	logger.Info("User deleted", zap.Uint("userID", userID), zap.Uint("deleterID", deleterID))
	return nil
}

func (s *UserService) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	return s.userDAO.GetUser(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context, criteria model.UserSearchCriteria) ([]model.User, error) {
	return s.userDAO.ListUsers(ctx, criteria)
}

// AssignRoles replaces the user's role set. The user's cached resolution is
// dropped synchronously after the write commits, so the next request this
// user makes is evaluated against the new grants.
func (s *UserService) AssignRoles(ctx context.Context, userID uint, roleIDs []uint, assignerID uint) (*model.User, error) {
	if err := s.userDAO.ReplaceRoles(ctx, userID, roleIDs); err != nil {
		logger.Error("Error assigning roles", zap.Error(err), zap.Uint("userID", userID), zap.Uint("assignerID", assignerID))
		return nil, err
	}

	s.evaluator.Invalidate(userID)

	details, _ := json.Marshal(map[string]interface{}{"role_ids": roleIDs})
	s.logActivity(ctx, assignerID, "ASSIGN_ROLES", "user", userID, details)
	s.eventBus.Publish(ctx, "user.roles_changed", userID)

	logger.Info("Roles assigned",
		zap.Uint("userID", userID),
		zap.Uint("assignerID", assignerID),
		zap.Int("roleCount", len(roleIDs)))
	return s.userDAO.GetUser(ctx, userID)
}

func (s *UserService) logActivity(ctx context.Context, actorID uint, action, entityType string, entityID uint, details json.RawMessage) {
	entry := audit.ActivityLog{
		Timestamp:     time.Now(),
		ActorID:       actorID,
		Action:        action,
		EntityType:    entityType,
		EntityID:      entityID,
		ChangeDetails: details,
	}
	if err := s.auditService.LogActivity(ctx, entry); err != nil {
		logger.Warn("Failed to record activity log", zap.Error(err), zap.String("action", action))
	}
}
