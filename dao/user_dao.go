// api/dao/user_dao.go
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

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

func (dao *UserDAO) CreateUser(ctx context.Context, user *model.User) error {
	err := dao.DB.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return atlas_errors.ErrUserConflict
		}
		logger.Error("Failed to create user", zap.Error(err), zap.String("username", user.Username))
		return atlas_errors.ErrDatabaseOperation
	}
	return nil
}

func (dao *UserDAO) UpdateUser(ctx context.Context, user *model.User) error {
	result := dao.DB.WithContext(ctx).Model(&model.User{ID: user.ID}).Updates(map[string]interface{}{
		"name":          user.Name,
		"email":         user.Email,
		"designation":   user.Designation,
		"department_id": user.DepartmentID,
	})
	if result.Error != nil {
		logger.Error("Failed to update user", zap.Error(result.Error), zap.Uint("userID", user.ID))
		return atlas_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return atlas_errors.ErrUserNotFound
	}
	return nil
}

func (dao *UserDAO) DeleteUser(ctx context.Context, userID uint) error {
	result := dao.DB.WithContext(ctx).Delete(&model.User{}, userID)
	if result.Error != nil {
		logger.Error("Failed to delete user", zap.Error(result.Error), zap.Uint("userID", userID))
		return atlas_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return atlas_errors.ErrUserNotFound
	}
	return nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User
	err := dao.DB.WithContext(ctx).
		Preload("Roles").
		Preload("Department").
		First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, atlas_errors.ErrUserNotFound
	}
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err), zap.Uint("userID", userID))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *UserDAO) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := dao.DB.WithContext(ctx).
		Preload("Roles").
		Where("username = ?", username).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, atlas_errors.ErrUserNotFound
	}
	if err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return &user, nil
}

func (dao *UserDAO) ListUsers(ctx context.Context, criteria model.UserSearchCriteria) ([]model.User, error) {
	query := dao.DB.WithContext(ctx).Preload("Roles").Order("id")
	if criteria.Name != "" {
		query = query.Where("name ILIKE ?", "%"+criteria.Name+"%")
	}
	if criteria.Username != "" {
		query = query.Where("username = ?", criteria.Username)
	}
	if criteria.Email != "" {
		query = query.Where("email = ?", criteria.Email)
	}
	if criteria.DepartmentID != 0 {
		query = query.Where("department_id = ?", criteria.DepartmentID)
	}
	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}

	var users []model.User
	err := query.Offset(criteria.Offset).Find(&users).Error
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return users, nil
}

func (dao *UserDAO) ListUsersByDepartment(ctx context.Context, departmentID uint) ([]model.User, error) {
	var users []model.User
	err := dao.DB.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("name").
		Find(&users).Error
	if err != nil {
		logger.Error("Failed to list department users", zap.Error(err), zap.Uint("departmentID", departmentID))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return users, nil
}

// ReplaceRoles replaces the user's role memberships in one transaction.
// Callers must invalidate the user's cached resolution after this commits.
func (dao *UserDAO) ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return atlas_errors.ErrUserNotFound
			}
			return atlas_errors.ErrDatabaseOperation
		}

		var roles []model.Role
		if len(roleIDs) > 0 {
			if err := tx.Find(&roles, roleIDs).Error; err != nil {
				return atlas_errors.ErrDatabaseOperation
			}
			if len(roles) != len(roleIDs) {
				return atlas_errors.ErrRoleNotFound
			}
		}

		if err := tx.Model(&user).Association("Roles").Replace(roles); err != nil {
			return atlas_errors.ErrDatabaseOperation
		}
		return nil
	})
}
