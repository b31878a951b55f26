// api/dao/permission_dao.go
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

type PermissionDAO struct {
	DB *gorm.DB
}

func NewPermissionDAO(db *gorm.DB) *PermissionDAO {
	return &PermissionDAO{DB: db}
}

func (dao *PermissionDAO) GetPermission(ctx context.Context, permissionID uint) (*model.Permission, error) {
	var permission model.Permission
	err := dao.DB.WithContext(ctx).First(&permission, permissionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, atlas_errors.ErrPermissionNotFound
	}
	if err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return &permission, nil
}

func (dao *PermissionDAO) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	var permissions []model.Permission
	err := dao.DB.WithContext(ctx).Order("module, action").Find(&permissions).Error
	if err != nil {
		logger.Error("Failed to list permissions", zap.Error(err))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return permissions, nil
}

func (dao *PermissionDAO) ListMenus(ctx context.Context) ([]model.Menu, error) {
	var menus []model.Menu
	err := dao.DB.WithContext(ctx).
		Preload("Roles").
		Preload("Permissions").
		Order("sort_order").
		Find(&menus).Error
	if err != nil {
		logger.Error("Failed to list menus", zap.Error(err))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return menus, nil
}
