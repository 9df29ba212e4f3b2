//go:generate mockery --name PointEventRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"crew_academy/internal/middleware"
	"crew_academy/internal/model"

	"gorm.io/gorm"
)

// PointEventRepository はポイント付与ログ (追記のみ)
type PointEventRepository interface {
	Append(ctx context.Context, db *gorm.DB, event *model.PointEvent) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID string, limit int) ([]*model.PointEvent, error)
	ExistsByReference(ctx context.Context, db *gorm.DB, userID, action, referenceID string) (bool, error)
}

type gormPointEventRepository struct{}

func NewGormPointEventRepository() PointEventRepository {
	return &gormPointEventRepository{}
}

func (r *gormPointEventRepository) Append(ctx context.Context, db *gorm.DB, event *model.PointEvent) error {
	// EventID は Service 層で採番済み
	if err := db.WithContext(ctx).Create(event).Error; err != nil {
		if isDuplicateKey(err) {
			middleware.GetLogger(ctx).Warn("Point event already recorded for reference",
				"user_id", event.UserID,
				"action", event.Action,
				"reference_id", event.ReferenceID,
			)
			return model.ErrConflict
		}
		middleware.GetLogger(ctx).Error("Error appending point event in DB",
			"error", err,
			"user_id", event.UserID,
			"action", event.Action,
		)
		return fmt.Errorf("gormPointEventRepository.Append: %w", err)
	}
	return nil
}

func (r *gormPointEventRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID string, limit int) ([]*model.PointEvent, error) {
	var events []*model.PointEvent
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("awarded_at DESC").
		Limit(limit).
		Find(&events)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding point history in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormPointEventRepository.FindByUserID: %w", result.Error)
	}
	return events, nil
}

func (r *gormPointEventRepository) ExistsByReference(ctx context.Context, db *gorm.DB, userID, action, referenceID string) (bool, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.PointEvent{}).
		Where("user_id = ? AND action = ? AND reference_id = ?", userID, action, referenceID).
		Count(&count)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error checking point event reference in DB",
			"error", result.Error,
			"user_id", userID,
			"action", action,
			"reference_id", referenceID,
		)
		return false, fmt.Errorf("gormPointEventRepository.ExistsByReference: %w", result.Error)
	}
	return count > 0, nil
}
