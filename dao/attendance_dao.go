// api/dao/attendance_dao.go
package dao

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
	helper_util "github.com/atlas-hrms/atlas/api/util/helper"
)

type AttendanceDAO struct {
	DB *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{DB: db}
}

// ClockIn opens today's attendance record for the user. A second clock-in on
// the same day fails.
func (dao *AttendanceDAO) ClockIn(ctx context.Context, userID uint, at time.Time) (*model.AttendanceRecord, error) {
	day := helper_util.DayStart(at)
	record := model.AttendanceRecord{UserID: userID, Date: day, ClockIn: at}

	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.AttendanceRecord
		err := tx.Where("user_id = ? AND date = ?", userID, day).First(&existing).Error
		if err == nil {
			return atlas_errors.ErrAlreadyClockedIn
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return atlas_errors.ErrDatabaseOperation
		}
		if err := tx.Create(&record).Error; err != nil {
			logger.Error("Failed to create attendance record", zap.Error(err), zap.Uint("userID", userID))
			return atlas_errors.ErrDatabaseOperation
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ClockOut closes today's open attendance record for the user.
func (dao *AttendanceDAO) ClockOut(ctx context.Context, userID uint, at time.Time) (*model.AttendanceRecord, error) {
	day := helper_util.DayStart(at)
	var record model.AttendanceRecord

	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND date = ? AND clock_out IS NULL", userID, day).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return atlas_errors.ErrNotClockedIn
		}
		if err != nil {
			return atlas_errors.ErrDatabaseOperation
		}
		record.ClockOut = &at
		if err := tx.Save(&record).Error; err != nil {
			return atlas_errors.ErrDatabaseOperation
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (dao *AttendanceDAO) GetRecord(ctx context.Context, recordID uint) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := dao.DB.WithContext(ctx).First(&record, recordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, atlas_errors.ErrAttendanceNotFound
	}
	if err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return &record, nil
}

func (dao *AttendanceDAO) ListRecordsForUser(ctx context.Context, userID uint, from, to time.Time) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	q := dao.DB.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC")
	if !from.IsZero() {
		q = q.Where("date >= ?", helper_util.DayStart(from))
	}
	if !to.IsZero() {
		q = q.Where("date <= ?", helper_util.DayStart(to))
	}
	if err := q.Find(&records).Error; err != nil {
		logger.Error("Failed to list attendance records", zap.Error(err), zap.Uint("userID", userID))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return records, nil
}
