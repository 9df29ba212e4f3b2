// internal/model/progress.go
package model

import (
	"slices"
	"time"

	"gorm.io/datatypes"
)

// UserModuleProgress はユーザー×モジュールの進捗。主キーは (user_id, module_id)。
type UserModuleProgress struct {
	UserID           string                     `gorm:"type:varchar(128);primaryKey" json:"user_id"`
	ModuleID         string                     `gorm:"type:varchar(64);primaryKey;index" json:"module_id"`
	CompletedCourses datatypes.JSONSlice[string] `json:"completed_courses"`
	CompletedLessons datatypes.JSONSlice[string] `json:"completed_lessons"`
	QuizPassed       bool                       `gorm:"not null" json:"quiz_passed"`
	QuizScore        int                        `gorm:"not null;default:0" json:"quiz_score"`
	QuizAttempts     int                        `gorm:"not null;default:0" json:"quiz_attempts"`
	Unlocked         bool                       `gorm:"not null" json:"unlocked"`
	UnlockedAt       *time.Time                 `json:"unlocked_at,omitempty"`
	LastAttemptAt    *time.Time                 `json:"last_attempt_at,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

func (UserModuleProgress) TableName() string {
	return "user_module_progress"
}

func (p *UserModuleProgress) HasCompletedLesson(lessonID string) bool {
	return slices.Contains(p.CompletedLessons, lessonID)
}

func (p *UserModuleProgress) HasCompletedCourse(courseID string) bool {
	return slices.Contains(p.CompletedCourses, courseID)
}

// ModuleProgressResponse はモジュール進捗取得APIのレスポンスDTO
type ModuleProgressResponse struct {
	ModuleID string              `json:"module_id"`
	Unlocked bool                `json:"unlocked"`
	Progress *UserModuleProgress `json:"progress,omitempty"`
}

// LessonAccessResponse はレッスン視聴可否のレスポンスDTO
type LessonAccessResponse struct {
	LessonID           string `json:"lesson_id"`
	Unlocked           bool   `json:"unlocked"`
	CanWatchNextLesson bool   `json:"can_watch_next_lesson"`
}

// LessonCompleteResponse はレッスン完了APIのレスポンスDTO
type LessonCompleteResponse struct {
	LessonID      string `json:"lesson_id"`
	NewlyComplete bool   `json:"newly_complete"`
}

// SubmitQuizRequest はモジュールクイズ結果送信のリクエストDTO
type SubmitQuizRequest struct {
	Score             *int     `json:"score" validate:"required,min=0,max=100"`
	RequiredCourseIDs []string `json:"required_course_ids"`
}

// SubmitQuizResponse はクイズ結果送信のレスポンスDTO
type SubmitQuizResponse struct {
	ModuleID string `json:"module_id"`
	Score    int    `json:"score"`
	Passed   bool   `json:"passed"`
}

// CourseCompleteResponse はコース完了APIのレスポンスDTO
type CourseCompleteResponse struct {
	CourseID      string `json:"course_id"`
	NewlyComplete bool   `json:"newly_complete"`
}
