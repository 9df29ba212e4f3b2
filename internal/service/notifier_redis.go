package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crew_academy/internal/config"
	"crew_academy/internal/middleware"

	goredis "github.com/redis/go-redis/v9"
)

// RedisNotifier は Redis pub/sub に JSON で通知を publish する実装です
type RedisNotifier struct {
	rdb     *goredis.Client
	channel string
}

func NewRedisNotifier(cfg *config.RedisConfig) (*RedisNotifier, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisNotifier{rdb: rdb, channel: cfg.Channel}, nil
}

func (n *RedisNotifier) Notify(ctx context.Context, notification Notification) error {
	raw, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("RedisNotifier.Notify: %w", err)
	}
	if err := n.rdb.Publish(ctx, n.channel, raw).Err(); err != nil {
		return fmt.Errorf("RedisNotifier.Notify: %w", err)
	}
	middleware.GetLogger(ctx).Debug("Notification published to Redis", "channel", n.channel, "type", notification.Type)
	return nil
}

func (n *RedisNotifier) Close() error {
	if n == nil || n.rdb == nil {
		return nil
	}
	return n.rdb.Close()
}
