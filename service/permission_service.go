// api/service/permission_service.go
package service

import (
	"context"

	"github.com/atlas-hrms/atlas/api/authz/engine"
	"github.com/atlas-hrms/atlas/api/dao"
	"github.com/atlas-hrms/atlas/api/model"
)

// IPermissionService defines the interface for permission and menu reads.
// Permissions are seed data; they have no write path through the API.
type IPermissionService interface {
	GetPermission(ctx context.Context, permissionID uint) (*model.Permission, error)
	ListPermissions(ctx context.Context) ([]model.Permission, error)
	ListMenus(ctx context.Context) ([]model.Menu, error)
	MenusForUser(ctx context.Context, userID uint) ([]model.Menu, error)
}

type PermissionService struct {
	permissionDAO *dao.PermissionDAO
	evaluator     *engine.Evaluator
}

var _ IPermissionService = &PermissionService{}

func NewPermissionService(permissionDAO *dao.PermissionDAO, evaluator *engine.Evaluator) *PermissionService {
	return &PermissionService{permissionDAO: permissionDAO, evaluator: evaluator}
}

func (s *PermissionService) GetPermission(ctx context.Context, permissionID uint) (*model.Permission, error) {
	return s.permissionDAO.GetPermission(ctx, permissionID)
}

func (s *PermissionService) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	return s.permissionDAO.ListPermissions(ctx)
}

func (s *PermissionService) ListMenus(ctx context.Context) ([]model.Menu, error) {
	return s.permissionDAO.ListMenus(ctx)
}

// MenusForUser returns the menu sections the user's resolved grants unlock,
// in display order. It reads through the same cached resolution the
// authorization gate uses, so the sidebar and the gate never disagree.
func (s *PermissionService) MenusForUser(ctx context.Context, userID uint) ([]model.Menu, error) {
	identity, err := s.evaluator.Identity(ctx, userID)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]struct{}, len(identity.MenuAccess))
	for _, name := range identity.MenuAccess {
		allowed[name] = struct{}{}
	}

	menus, err := s.permissionDAO.ListMenus(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]model.Menu, 0, len(allowed))
	for _, menu := range menus {
		if _, ok := allowed[menu.Name]; ok {
			visible = append(visible, menu)
		}
	}
	return visible, nil
}
