// api/dao/leave_dao.go
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

type LeaveDAO struct {
	DB *gorm.DB
}

func NewLeaveDAO(db *gorm.DB) *LeaveDAO {
	return &LeaveDAO{DB: db}
}

func (dao *LeaveDAO) CreateLeave(ctx context.Context, leave *model.LeaveApplication) error {
	err := dao.DB.WithContext(ctx).Create(leave).Error
	if err != nil {
		logger.Error("Failed to create leave application", zap.Error(err), zap.Uint("userID", leave.UserID))
		return atlas_errors.ErrDatabaseOperation
	}
	return nil
}

func (dao *LeaveDAO) GetLeave(ctx context.Context, leaveID uint) (*model.LeaveApplication, error) {
	var leave model.LeaveApplication
	err := dao.DB.WithContext(ctx).First(&leave, leaveID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, atlas_errors.ErrLeaveNotFound
	}
	if err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return &leave, nil
}

func (dao *LeaveDAO) ListLeaves(ctx context.Context, status string, limit, offset int) ([]model.LeaveApplication, error) {
	q := dao.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var leaves []model.LeaveApplication
	if err := q.Find(&leaves).Error; err != nil {
		logger.Error("Failed to list leave applications", zap.Error(err))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return leaves, nil
}

func (dao *LeaveDAO) ListLeavesForUser(ctx context.Context, userID uint) ([]model.LeaveApplication, error) {
	var leaves []model.LeaveApplication
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&leaves).Error
	if err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return leaves, nil
}

// UpdateStatus reviews a pending application. Only pending applications can
// transition; a second review fails.
func (dao *LeaveDAO) UpdateStatus(ctx context.Context, leaveID uint, status string, reviewerID uint) (*model.LeaveApplication, error) {
	var leave model.LeaveApplication
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&leave, leaveID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return atlas_errors.ErrLeaveNotFound
			}
			return atlas_errors.ErrDatabaseOperation
		}
		if leave.Status != model.StatusPending {
			return atlas_errors.ErrLeaveAlreadyReviewed
		}
		leave.Status = status
		leave.ReviewedBy = &reviewerID
		if err := tx.Save(&leave).Error; err != nil {
			return atlas_errors.ErrDatabaseOperation
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// ApprovedDaysForUser sums approved leave days for a user in a given year.
func (dao *LeaveDAO) ApprovedDaysForUser(ctx context.Context, userID uint, year int) (int, error) {
	var total int64
	err := dao.DB.WithContext(ctx).
		Model(&model.LeaveApplication{}).
		Select("COALESCE(SUM(days), 0)").
		Where("user_id = ? AND status = ? AND EXTRACT(YEAR FROM start_date) = ?", userID, "approved", year).
		Take(&total).Error
	if err != nil {
		return 0, atlas_errors.ErrDatabaseOperation
	}
	return int(total), nil
}
