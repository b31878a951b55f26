// api/dao/payroll_dao.go
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

type PayrollDAO struct {
	DB *gorm.DB
}

func NewPayrollDAO(db *gorm.DB) *PayrollDAO {
	return &PayrollDAO{DB: db}
}

// CreatePayslip inserts a payslip for a user and period. The period is
// guarded by a unique index, so a duplicate generation surfaces as a conflict.
func (dao *PayrollDAO) CreatePayslip(ctx context.Context, payslip *model.Payslip) error {
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Payslip{}).
			Where("user_id = ? AND month = ? AND year = ?", payslip.UserID, payslip.Month, payslip.Year).
			Count(&count).Error; err != nil {
			return atlas_errors.ErrDatabaseOperation
		}
		if count > 0 {
			return atlas_errors.ErrPayslipConflict
		}
		if err := tx.Create(payslip).Error; err != nil {
			logger.Error("Failed to create payslip", zap.Error(err), zap.Uint("userID", payslip.UserID))
			return atlas_errors.ErrDatabaseOperation
		}
		return nil
	})
	return err
}

func (dao *PayrollDAO) GetPayslip(ctx context.Context, payslipID uint) (*model.Payslip, error) {
	var payslip model.Payslip
	err := dao.DB.WithContext(ctx).First(&payslip, payslipID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, atlas_errors.ErrPayslipNotFound
	}
	if err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return &payslip, nil
}

func (dao *PayrollDAO) ListPayslipsForUser(ctx context.Context, userID uint, year int) ([]model.Payslip, error) {
	var payslips []model.Payslip
	q := dao.DB.WithContext(ctx).Where("user_id = ?", userID).Order("year DESC, month DESC")
	if year > 0 {
		q = q.Where("year = ?", year)
	}
	if err := q.Find(&payslips).Error; err != nil {
		logger.Error("Failed to list payslips", zap.Error(err), zap.Uint("userID", userID))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return payslips, nil
}

func (dao *PayrollDAO) ListPayslipsForPeriod(ctx context.Context, month, year int) ([]model.Payslip, error) {
	var payslips []model.Payslip
	if err := dao.DB.WithContext(ctx).Where("month = ? AND year = ?", month, year).Find(&payslips).Error; err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return payslips, nil
}
