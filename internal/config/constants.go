// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "crew-academy"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort             = ":8080"
	DefaultLogLevel               = "info"
	DefaultTimezone               = "UTC"
	DefaultLeaderboardLimit       = 10
	DefaultHistoryLimit           = 20
	DefaultFeatureRestoreInterval = time.Minute
	DefaultNotifierType           = "log"
	DefaultRedisChannel           = "crew-academy-events"
)
