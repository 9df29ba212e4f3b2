//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"crew_academy/internal/middleware"
	"crew_academy/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	FindByUserAndModule(ctx context.Context, db *gorm.DB, userID, moduleID string) (*model.UserModuleProgress, error)
	CreateIfAbsent(ctx context.Context, db *gorm.DB, progress *model.UserModuleProgress) error
	Update(ctx context.Context, db *gorm.DB, progress *model.UserModuleProgress) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) FindByUserAndModule(ctx context.Context, db *gorm.DB, userID, moduleID string) (*model.UserModuleProgress, error) {
	var progress model.UserModuleProgress
	result := db.WithContext(ctx).Where("user_id = ? AND module_id = ?", userID, moduleID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding module progress in DB",
			"error", result.Error,
			"user_id", userID,
			"module_id", moduleID,
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndModule: %w", result.Error)
	}
	return &progress, nil
}

// CreateIfAbsent は既にレコードがあれば何もしない
func (r *gormProgressRepository) CreateIfAbsent(ctx context.Context, db *gorm.DB, progress *model.UserModuleProgress) error {
	result := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(progress)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating module progress in DB", "error", result.Error, "user_id", progress.UserID, "module_id", progress.ModuleID)
		return fmt.Errorf("gormProgressRepository.CreateIfAbsent: %w", result.Error)
	}
	return nil
}

// Update はレコード全体を上書きする (呼び出し元で存在確認済みの想定)
func (r *gormProgressRepository) Update(ctx context.Context, db *gorm.DB, progress *model.UserModuleProgress) error {
	result := db.WithContext(ctx).Save(progress)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating module progress in DB", "error", result.Error, "user_id", progress.UserID, "module_id", progress.ModuleID)
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	return nil
}
