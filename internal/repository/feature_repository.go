package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crew_academy/internal/middleware"
	"crew_academy/internal/model"

	"gorm.io/gorm"
)

type FeatureRepository interface {
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.FeatureFlag, error)
	Save(ctx context.Context, db *gorm.DB, flag *model.FeatureFlag) error
	// FindExpired は停止中かつ restore_at <= now のフラグを返す
	FindExpired(ctx context.Context, db *gorm.DB, now time.Time) ([]*model.FeatureFlag, error)
}

type gormFeatureRepository struct{}

func NewGormFeatureRepository() FeatureRepository {
	return &gormFeatureRepository{}
}

func (r *gormFeatureRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.FeatureFlag, error) {
	var flag model.FeatureFlag
	result := db.WithContext(ctx).Where("name = ?", name).First(&flag)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding feature flag in DB", "error", result.Error, "feature", name)
		return nil, fmt.Errorf("gormFeatureRepository.FindByName: %w", result.Error)
	}
	return &flag, nil
}

func (r *gormFeatureRepository) Save(ctx context.Context, db *gorm.DB, flag *model.FeatureFlag) error {
	if err := db.WithContext(ctx).Save(flag).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error saving feature flag in DB", "error", err, "feature", flag.Name)
		return fmt.Errorf("gormFeatureRepository.Save: %w", err)
	}
	return nil
}

func (r *gormFeatureRepository) FindExpired(ctx context.Context, db *gorm.DB, now time.Time) ([]*model.FeatureFlag, error) {
	var flags []*model.FeatureFlag
	result := db.WithContext(ctx).
		Where("disabled = ? AND restore_at IS NOT NULL AND restore_at <= ?", true, now).
		Find(&flags)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding expired feature flags in DB", "error", result.Error)
		return nil, fmt.Errorf("gormFeatureRepository.FindExpired: %w", result.Error)
	}
	return flags, nil
}
