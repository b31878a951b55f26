// api/dao/requisition_dao.go
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

type RequisitionDAO struct {
	DB *gorm.DB
}

func NewRequisitionDAO(db *gorm.DB) *RequisitionDAO {
	return &RequisitionDAO{DB: db}
}

func (dao *RequisitionDAO) CreateRequisition(ctx context.Context, req *model.Requisition) error {
	if err := dao.DB.WithContext(ctx).Create(req).Error; err != nil {
		logger.Error("Failed to create requisition", zap.Error(err), zap.String("number", req.Number))
		return atlas_errors.ErrDatabaseOperation
	}
	return nil
}

func (dao *RequisitionDAO) GetRequisition(ctx context.Context, requisitionID uint) (*model.Requisition, error) {
	var req model.Requisition
	err := dao.DB.WithContext(ctx).First(&req, requisitionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, atlas_errors.ErrRequisitionNotFound
	}
	if err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return &req, nil
}

func (dao *RequisitionDAO) ListRequisitions(ctx context.Context, status string, limit, offset int) ([]model.Requisition, error) {
	var reqs []model.Requisition
	q := dao.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&reqs).Error; err != nil {
		logger.Error("Failed to list requisitions", zap.Error(err))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return reqs, nil
}

func (dao *RequisitionDAO) ListRequisitionsForUser(ctx context.Context, userID uint) ([]model.Requisition, error) {
	var reqs []model.Requisition
	if err := dao.DB.WithContext(ctx).Where("requested_by = ?", userID).Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return reqs, nil
}

// UpdateStatus reviews a pending requisition. Only pending requisitions may be
// approved or rejected.
func (dao *RequisitionDAO) UpdateStatus(ctx context.Context, requisitionID uint, status string, reviewerID uint) (*model.Requisition, error) {
	var req model.Requisition
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&req, requisitionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return atlas_errors.ErrRequisitionNotFound
		}
		if err != nil {
			return atlas_errors.ErrDatabaseOperation
		}
		if req.Status != model.StatusPending {
			return atlas_errors.ErrRequisitionAlreadyReviewed
		}
		req.Status = status
		req.ReviewedBy = &reviewerID
		if err := tx.Save(&req).Error; err != nil {
			logger.Error("Failed to update requisition status", zap.Error(err), zap.Uint("requisitionID", requisitionID))
			return atlas_errors.ErrDatabaseOperation
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}
