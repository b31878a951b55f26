// api/dao/role_dao.go
package dao

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
)

type RoleDAO struct {
	DB *gorm.DB
}

func NewRoleDAO(db *gorm.DB) *RoleDAO {
	return &RoleDAO{DB: db}
}

func (dao *RoleDAO) CreateRole(ctx context.Context, role *model.Role) error {
	err := dao.DB.WithContext(ctx).Create(role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return atlas_errors.ErrRoleConflict
		}
		logger.Error("Failed to create role", zap.Error(err), zap.String("roleName", role.Name))
		return atlas_errors.ErrDatabaseOperation
	}
	return nil
}

func (dao *RoleDAO) UpdateRole(ctx context.Context, role *model.Role) error {
	result := dao.DB.WithContext(ctx).Model(&model.Role{ID: role.ID}).Updates(map[string]interface{}{
		"name":        role.Name,
		"description": role.Description,
	})
	if result.Error != nil {
		logger.Error("Failed to update role", zap.Error(result.Error), zap.Uint("roleID", role.ID))
		return atlas_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return atlas_errors.ErrRoleNotFound
	}
	return nil
}

func (dao *RoleDAO) DeleteRole(ctx context.Context, roleID uint) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var role model.Role
		if err := tx.First(&role, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return atlas_errors.ErrRoleNotFound
			}
			return atlas_errors.ErrDatabaseOperation
		}
		if err := tx.Model(&role).Association("Permissions").Clear(); err != nil {
			return atlas_errors.ErrDatabaseOperation
		}
		if err := tx.Delete(&role).Error; err != nil {
			return atlas_errors.ErrDatabaseOperation
		}
		return nil
	})
}

func (dao *RoleDAO) GetRole(ctx context.Context, roleID uint) (*model.Role, error) {
	var role model.Role
	err := dao.DB.WithContext(ctx).Preload("Permissions").First(&role, roleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, atlas_errors.ErrRoleNotFound
	}
	if err != nil {
		logger.Error("Failed to get role", zap.Error(err), zap.Uint("roleID", roleID))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return &role, nil
}

func (dao *RoleDAO) ListRoles(ctx context.Context, limit, offset int) ([]model.Role, error) {
	var roles []model.Role
	err := dao.DB.WithContext(ctx).
		Preload("Permissions").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&roles).Error
	if err != nil {
		logger.Error("Failed to list roles", zap.Error(err))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return roles, nil
}

// ReplacePermissions replaces the role's permission grants in one
// transaction. Callers must invalidate the whole resolution cache after this
// commits, since the affected user set is unknown.
func (dao *RoleDAO) ReplacePermissions(ctx context.Context, roleID uint, permissionIDs []uint) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var role model.Role
		if err := tx.First(&role, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return atlas_errors.ErrRoleNotFound
			}
			return atlas_errors.ErrDatabaseOperation
		}

		var permissions []model.Permission
		if len(permissionIDs) > 0 {
			if err := tx.Find(&permissions, permissionIDs).Error; err != nil {
				return atlas_errors.ErrDatabaseOperation
			}
			if len(permissions) != len(permissionIDs) {
				return atlas_errors.ErrPermissionNotFound
			}
		}

		if err := tx.Model(&role).Association("Permissions").Replace(permissions); err != nil {
			return atlas_errors.ErrDatabaseOperation
		}
		return nil
	})
}
