// api/dao/document_dao.go
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

type DocumentDAO struct {
	DB *gorm.DB
}

func NewDocumentDAO(db *gorm.DB) *DocumentDAO {
	return &DocumentDAO{DB: db}
}

func (dao *DocumentDAO) CreateDocument(ctx context.Context, doc *model.Document) error {
	if err := dao.DB.WithContext(ctx).Create(doc).Error; err != nil {
		logger.Error("Failed to create document", zap.Error(err), zap.String("title", doc.Title))
		return atlas_errors.ErrDatabaseOperation
	}
	return nil
}

func (dao *DocumentDAO) GetDocument(ctx context.Context, documentID uint) (*model.Document, error) {
	var doc model.Document
	err := dao.DB.WithContext(ctx).First(&doc, documentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, atlas_errors.ErrDocumentNotFound
	}
	if err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return &doc, nil
}

func (dao *DocumentDAO) DeleteDocument(ctx context.Context, documentID uint) error {
	result := dao.DB.WithContext(ctx).Delete(&model.Document{}, documentID)
	if result.Error != nil {
		logger.Error("Failed to delete document", zap.Error(result.Error), zap.Uint("documentID", documentID))
		return atlas_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return atlas_errors.ErrDocumentNotFound
	}
	return nil
}

func (dao *DocumentDAO) ListDocuments(ctx context.Context, category string, limit, offset int) ([]model.Document, error) {
	var docs []model.Document
	q := dao.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Find(&docs).Error; err != nil {
		logger.Error("Failed to list documents", zap.Error(err))
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return docs, nil
}

func (dao *DocumentDAO) ListDocumentsForUploader(ctx context.Context, userID uint) ([]model.Document, error) {
	var docs []model.Document
	if err := dao.DB.WithContext(ctx).Where("uploaded_by = ?", userID).Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, atlas_errors.ErrDatabaseOperation
	}
	return docs, nil
}
