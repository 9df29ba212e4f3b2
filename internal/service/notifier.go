package service

import (
	"context"
	"log/slog"
	"time"

	"crew_academy/internal/config"
	"crew_academy/internal/middleware"
)

// 通知の種類
const (
	NotificationRankUp         = "rank_up"
	NotificationVerifiedCrew   = "verified_crew"
	NotificationModuleUnlocked = "module_unlocked"
)

// Notification はチャット/通知基盤に流すイベント
type Notification struct {
	Type       string                 `json:"type"`
	UserID     string                 `json:"user_id"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// --- LogNotifier ---
type LogNotifier struct{}

func (n *LogNotifier) Notify(ctx context.Context, notification Notification) error {
	middleware.GetLogger(ctx).Info("--- Notification (LogNotifier) ---",
		"type", notification.Type,
		"user_id", notification.UserID,
		"payload", notification.Payload,
	)
	return nil
}

// --- NewNotifier ファクトリ関数 ---
func NewNotifier(cfg *config.Config) Notifier {
	logger := slog.Default()
	switch cfg.Notifier.Type {
	case "redis":
		logger.Info("Initializing Redis notifier...", "addr", cfg.Notifier.Redis.Addr)
		notifier, err := NewRedisNotifier(&cfg.Notifier.Redis)
		if err != nil {
			logger.Error("Failed to initialize Redis notifier, falling back to LogNotifier", "error", err)
			return &LogNotifier{}
		}
		return notifier
	case "log":
		logger.Info("Initializing Log notifier...")
		return &LogNotifier{}
	default:
		logger.Warn("Unknown notifier type, defaulting to LogNotifier", "type", cfg.Notifier.Type)
		return &LogNotifier{}
	}
}

// notify は通知の失敗をログに残すだけで、呼び出し元の処理は失敗させない
func notify(ctx context.Context, notifier Notifier, n Notification) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, n); err != nil {
		middleware.GetLogger(ctx).Warn("Failed to publish notification", "error", err, "type", n.Type, "user_id", n.UserID)
	}
}
