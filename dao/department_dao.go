// api/dao/department_dao.go
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

type DepartmentDAO struct {
	DB *gorm.DB
}

func NewDepartmentDAO(db *gorm.DB) *DepartmentDAO {
	return &DepartmentDAO{DB: db}
}

func (dao *DepartmentDAO) CreateDepartment(ctx context.Context, department *model.Department) error {
	err := dao.DB.WithContext(ctx).Create(department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return atlas_errors.ErrDepartmentConflict
		}
		logger.Error("Failed to create department", zap.Error(err), zap.String("name", department.Name))
		return atlas_errors.ErrDatabaseOperation
	}
	return nil
}

func (dao *DepartmentDAO) UpdateDepartment(ctx context.Context, department *model.Department) error {
	result := dao.DB.WithContext(ctx).Model(&model.Department{ID: department.ID}).Updates(map[string]interface{}{
		"name":    department.Name,
		"head_id": department.HeadID,
	})
	if result.Error != nil {
		logger.Error("Failed to update department", zap.Error(result.Error), zap.Uint("departmentID", department.ID))
		return atlas_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return atlas_errors.ErrDepartmentNotFound
	}
	return nil
}

func (dao *DepartmentDAO) DeleteDepartment(ctx context.Context, departmentID uint) error {
	result := dao.DB.WithContext(ctx).Delete(&model.Department{}, departmentID)
	if result.Error != nil {
		logger.Error("Failed to delete department", zap.Error(result.Error), zap.Uint("departmentID", departmentID))
		return atlas_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return atlas_errors.ErrDepartmentNotFound
	}
	return nil
}

func (dao *DepartmentDAO) GetDepartment(ctx context.Context, departmentID uint) (*model.Department, error) {
	var department model.Department
	err := dao.DB.WithContext(ctx).First(&department, departmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, atlas_errors.ErrDepartmentNotFound
	}
	if err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return &department, nil
}

func (dao *DepartmentDAO) ListDepartments(ctx context.Context) ([]model.Department, error) {
	var departments []model.Department
	err := dao.DB.WithContext(ctx).Order("name").Find(&departments).Error
	if err != nil {
		logger.Error("Failed to list departments", zap.Error(err))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return departments, nil
}
