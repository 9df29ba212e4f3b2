// internal/model/feature.go
package model

import "time"

// 停止可能な機能名
const (
	FeatureRewards = "rewards"
	FeatureModules = "modules"
)

// FeatureFlag は機能の一時停止状態。RestoreAt を過ぎると自動復旧される。
type FeatureFlag struct {
	Name      string     `gorm:"type:varchar(64);primaryKey" json:"name"`
	Disabled  bool       `gorm:"not null" json:"disabled"`
	Reason    string     `json:"reason,omitempty"`
	RestoreAt *time.Time `gorm:"index" json:"restore_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (FeatureFlag) TableName() string {
	return "feature_flags"
}

// ShutdownFeatureRequest は機能停止のリクエストDTO
type ShutdownFeatureRequest struct {
	Reason    string     `json:"reason" validate:"max=500"`
	RestoreAt *time.Time `json:"restore_at"`
}
