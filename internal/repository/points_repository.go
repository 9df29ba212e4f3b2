//go:generate mockery --name PointsRepository --output ./mocks --outpkg mocks --case=underscore
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

type PointsRepository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID string) (*model.UserPoints, error)
	// CreateIfAbsent は未作成の場合だけ挿入する (同時作成は無視される)
	CreateIfAbsent(ctx context.Context, db *gorm.DB, points *model.UserPoints) error
	// IncrementTotal は verified_crew でないユーザーの合計を原子的に加算する。
	// 加算されなかった場合 (凍結済み・未作成) は false。
	IncrementTotal(ctx context.Context, db *gorm.DB, userID string, delta int) (bool, error)
	Update(ctx context.Context, db *gorm.DB, userID string, updates map[string]interface{}) error
	FindTop(ctx context.Context, db *gorm.DB, limit int) ([]*model.UserPoints, error)
}

type gormPointsRepository struct{}

func NewGormPointsRepository() PointsRepository {
	return &gormPointsRepository{}
}

func (r *gormPointsRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID string) (*model.UserPoints, error) {
	var points model.UserPoints
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&points)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding user points in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormPointsRepository.FindByUserID: %w", result.Error)
	}
	return &points, nil
}

func (r *gormPointsRepository) CreateIfAbsent(ctx context.Context, db *gorm.DB, points *model.UserPoints) error {
	result := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(points)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating user points in DB", "error", result.Error, "user_id", points.UserID)
		return fmt.Errorf("gormPointsRepository.CreateIfAbsent: %w", result.Error)
	}
	return nil
}

func (r *gormPointsRepository) IncrementTotal(ctx context.Context, db *gorm.DB, userID string, delta int) (bool, error) {
	result := db.WithContext(ctx).Model(&model.UserPoints{}).
		Where("user_id = ? AND verified_crew = ?", userID, false).
		Update("total_points", gorm.Expr("total_points + ?", delta))
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error incrementing total points in DB", "error", result.Error, "user_id", userID, "delta", delta)
		return false, fmt.Errorf("gormPointsRepository.IncrementTotal: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormPointsRepository) Update(ctx context.Context, db *gorm.DB, userID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := db.WithContext(ctx).Model(&model.UserPoints{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating user points in DB", "error", result.Error, "user_id", userID)
		return fmt.Errorf("gormPointsRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPointsRepository) FindTop(ctx context.Context, db *gorm.DB, limit int) ([]*model.UserPoints, error) {
	var leaders []*model.UserPoints
	result := db.WithContext(ctx).Order("total_points DESC").Limit(limit).Find(&leaders)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding leaderboard in DB", "error", result.Error, "limit", limit)
		return nil, fmt.Errorf("gormPointsRepository.FindTop: %w", result.Error)
	}
	return leaders, nil
}
