//go:generate mockery --name ModuleRepository --output ./mocks --outpkg mocks --case=underscore
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

type ModuleRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, moduleID string) (*model.Module, error)
	FindByCategory(ctx context.Context, db *gorm.DB, category model.ModuleCategory) ([]*model.Module, error)
	FindByCategoryAndOrder(ctx context.Context, db *gorm.DB, category model.ModuleCategory, order int) (*model.Module, error)
	// FindAllOrdered は (category, order) で並べて返す
	FindAllOrdered(ctx context.Context, db *gorm.DB) ([]*model.Module, error)
	// FindAll は並び順を保証しない
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Module, error)
	Save(ctx context.Context, db *gorm.DB, module *model.Module) error
}

type gormModuleRepository struct{}

func NewGormModuleRepository() ModuleRepository {
	return &gormModuleRepository{}
}

func (r *gormModuleRepository) FindByID(ctx context.Context, db *gorm.DB, moduleID string) (*model.Module, error) {
	var module model.Module
	result := db.WithContext(ctx).Where("id = ?", moduleID).First(&module)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding module by ID in DB", "error", result.Error, "module_id", moduleID)
		return nil, fmt.Errorf("gormModuleRepository.FindByID: %w", result.Error)
	}
	return &module, nil
}

func (r *gormModuleRepository) FindByCategory(ctx context.Context, db *gorm.DB, category model.ModuleCategory) ([]*model.Module, error) {
	var modules []*model.Module
	result := db.WithContext(ctx).Where("category = ?", category).Order("sort_order ASC").Find(&modules)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding modules by category in DB", "error", result.Error, "category", category)
		return nil, fmt.Errorf("gormModuleRepository.FindByCategory: %w", result.Error)
	}
	return modules, nil
}

func (r *gormModuleRepository) FindByCategoryAndOrder(ctx context.Context, db *gorm.DB, category model.ModuleCategory, order int) (*model.Module, error) {
	var module model.Module
	result := db.WithContext(ctx).Where("category = ? AND sort_order = ?", category, order).First(&module)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding module by category and order in DB",
			"error", result.Error,
			"category", category,
			"order", order,
		)
		return nil, fmt.Errorf("gormModuleRepository.FindByCategoryAndOrder: %w", result.Error)
	}
	return &module, nil
}

func (r *gormModuleRepository) FindAllOrdered(ctx context.Context, db *gorm.DB) ([]*model.Module, error) {
	var modules []*model.Module
	result := db.WithContext(ctx).Order("category ASC").Order("sort_order ASC").Find(&modules)
	if result.Error != nil {
		return nil, fmt.Errorf("gormModuleRepository.FindAllOrdered: %w", result.Error)
	}
	return modules, nil
}

func (r *gormModuleRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Module, error) {
	var modules []*model.Module
	result := db.WithContext(ctx).Find(&modules)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding modules in DB", "error", result.Error)
		return nil, fmt.Errorf("gormModuleRepository.FindAll: %w", result.Error)
	}
	return modules, nil
}

// Save は主キーで upsert する。カテゴリ内の order 重複は ErrConflict。
func (r *gormModuleRepository) Save(ctx context.Context, db *gorm.DB, module *model.Module) error {
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "category", "sort_order", "lessons", "quiz_id", "visible", "updated_at"}),
	}).Create(module)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			middleware.GetLogger(ctx).Warn("Module order already taken in category",
				"module_id", module.ID,
				"category", module.Category,
				"order", module.Order,
			)
			return model.ErrConflict
		}
		middleware.GetLogger(ctx).Error("Error saving module in DB", "error", result.Error, "module_id", module.ID)
		return fmt.Errorf("gormModuleRepository.Save: %w", result.Error)
	}
	return nil
}
