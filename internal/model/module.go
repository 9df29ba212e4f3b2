// internal/model/module.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

type ModuleCategory string

const (
	CategoryGrooming  ModuleCategory = "grooming"
	CategoryService   ModuleCategory = "service"
	CategorySafety    ModuleCategory = "safety"
	CategoryInterview ModuleCategory = "interview"
	CategoryLanguage  ModuleCategory = "language"
)

var moduleCategories = []ModuleCategory{
	CategoryGrooming, CategoryService, CategorySafety, CategoryInterview, CategoryLanguage,
}

func (c ModuleCategory) Valid() bool {
	for _, mc := range moduleCategories {
		if c == mc {
			return true
		}
	}
	return false
}

// ModuleLesson はモジュールに埋め込まれるレッスン
type ModuleLesson struct {
	ID       string `json:"id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	VideoURL string `json:"videoUrl" validate:"omitempty,url"`
	Duration string `json:"duration"`
	Order    int    `json:"order" validate:"min=1"` // 1始まり
	IsIntro  bool   `json:"isIntro"`
}

// Module はカテゴリ内で順序付けられた研修単位
type Module struct {
	ID          string                           `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name        string                           `gorm:"not null" json:"name"`
	Description string                           `json:"description"`
	Category    ModuleCategory                   `gorm:"type:varchar(32);not null;uniqueIndex:uq_module_category_order,priority:1" json:"category"`
	Order       int                              `gorm:"column:sort_order;not null;uniqueIndex:uq_module_category_order,priority:2" json:"order"`
	Lessons     datatypes.JSONSlice[ModuleLesson] `json:"lessons"`
	QuizID      *string                          `gorm:"type:varchar(64)" json:"quiz_id,omitempty"`
	Visible     bool                             `gorm:"not null" json:"visible"`
	CreatedAt   time.Time                        `json:"created_at"`
	UpdatedAt   time.Time                        `json:"updated_at"`
}

func (Module) TableName() string {
	return "modules"
}

// FindLesson はIDでレッスンを探す
func (m *Module) FindLesson(lessonID string) (ModuleLesson, bool) {
	for _, l := range m.Lessons {
		if l.ID == lessonID {
			return l, true
		}
	}
	return ModuleLesson{}, false
}

// LessonAt は並び順 order のレッスンを返す
func (m *Module) LessonAt(order int) (ModuleLesson, bool) {
	for _, l := range m.Lessons {
		if l.Order == order {
			return l, true
		}
	}
	return ModuleLesson{}, false
}

// SaveModuleRequest は管理者によるモジュール作成・編集のリクエストDTO
type SaveModuleRequest struct {
	Name        string         `json:"name" validate:"required,max=200"`
	Description string         `json:"description" validate:"max=2000"`
	Category    ModuleCategory `json:"category" validate:"required,oneof=grooming service safety interview language"`
	Order       int            `json:"order" validate:"required,min=1"`
	Lessons     []ModuleLesson `json:"lessons" validate:"dive"`
	QuizID      *string        `json:"quiz_id" validate:"omitempty,max=64"`
	Visible     *bool          `json:"visible" validate:"required"`
}
