// internal/model/points.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ポイント付与の種類
const (
	ActionDailyLogin      = "daily_login"
	ActionLessonWatched   = "lesson_watched"
	ActionQuizPassed      = "quiz_passed"
	ActionModuleCompleted = "module_completed"
	ActionMessageSent     = "message_sent"
	ActionLikeReceived    = "like_received"
	ActionReactionSent    = "reaction_sent"
	ActionFileUploaded    = "file_uploaded"
)

// 付与ポイント (固定値)
const (
	PointsDailyLogin      = 10
	PointsLessonWatched   = 20
	PointsQuizPassed      = 50
	PointsModuleCompleted = 100
	PointsMessageSent     = 2
	PointsLikeReceived    = 5
	PointsReactionSent    = 1
	PointsFileUploaded    = 10
)

// QuizPassScore はクイズ合格とみなす最低スコア
const QuizPassScore = 80

// LoginDateLayout は last_login_date の保存形式 (暦日)
const LoginDateLayout = "2006-01-02"

// UserPoints はユーザーごとのポイント集計。初回アクセス時に作成される。
type UserPoints struct {
	UserID           string    `gorm:"type:varchar(128);primaryKey" json:"user_id"`
	TotalPoints      int       `gorm:"not null;default:0;index" json:"total_points"`
	CurrentRank      Rank      `gorm:"type:varchar(32);not null" json:"current_rank"`
	VerifiedCrew     bool      `gorm:"not null" json:"verified_crew"`
	DailyLoginStreak int       `gorm:"not null;default:0" json:"daily_login_streak"`
	LastLoginDate    string    `gorm:"type:varchar(10)" json:"last_login_date"` // YYYY-MM-DD, 未ログインは空
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (UserPoints) TableName() string {
	return "user_points"
}

// PointEvent はポイント付与の監査ログ。追記のみ。
// ReferenceID はアクティビティ記録 (POST /me/activities) のみ設定され、
// (user_id, action, reference_id) で一意。
type PointEvent struct {
	EventID     uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string            `gorm:"type:varchar(128);not null;index:idx_point_events_user_time,priority:1;uniqueIndex:uq_point_events_reference,priority:1" json:"user_id"`
	Action      string            `gorm:"type:varchar(64);not null;uniqueIndex:uq_point_events_reference,priority:2" json:"action"`
	ReferenceID string            `gorm:"type:varchar(128);not null;default:'';uniqueIndex:uq_point_events_reference,priority:3,where:reference_id <> ''" json:"reference_id,omitempty"`
	Points      int               `gorm:"not null" json:"points"`
	AwardedAt   time.Time         `gorm:"not null;index:idx_point_events_user_time,priority:2" json:"timestamp"`
	Metadata    datatypes.JSONMap `json:"metadata,omitempty"`
}

func (PointEvent) TableName() string {
	return "point_events"
}

// UserPointsResponse は自分のポイント情報のレスポンスDTO
type UserPointsResponse struct {
	UserPoints
	PointsToNextRank int `json:"points_to_next_rank"`
}

func NewUserPointsResponse(p *UserPoints) *UserPointsResponse {
	return &UserPointsResponse{
		UserPoints:       *p,
		PointsToNextRank: PointsToNextRank(p.TotalPoints),
	}
}

// RecordActivityRequest はソーシャル系アクティビティ記録のリクエストDTO
type RecordActivityRequest struct {
	Action      string `json:"action" validate:"required,oneof=message_sent like_received reaction_sent file_uploaded"`
	ReferenceID string `json:"reference_id" validate:"required,max=128"`
}
