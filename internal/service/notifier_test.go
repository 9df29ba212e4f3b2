package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"crew_academy/internal/config"

	"github.com/ory/dockertest/v3"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifier(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.NotifierConfig
	}{
		{"log", config.NotifierConfig{Type: "log"}},
		{"未知の種類は log", config.NotifierConfig{Type: "kafka"}},
		{"redis 接続失敗は log にフォールバック", config.NotifierConfig{Type: "redis", Redis: config.RedisConfig{Addr: "127.0.0.1:1"}}},
		{"redis アドレス未設定", config.NotifierConfig{Type: "redis"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotifier(&config.Config{Notifier: tt.cfg})
			assert.IsType(t, &LogNotifier{}, n)
			assert.NoError(t, n.Notify(context.Background(), Notification{Type: NotificationRankUp, UserID: "u1"}))
		})
	}
}

func Test_notify_ToleratesFailures(t *testing.T) {
	ctx := context.Background()
	assert.NotPanics(t, func() {
		notify(ctx, nil, Notification{Type: NotificationRankUp})
	})

	failing := &recordingNotifier{err: errStore}
	assert.NotPanics(t, func() {
		notify(ctx, failing, Notification{Type: NotificationModuleUnlocked, UserID: "u1"})
	})
	assert.Len(t, failing.ofType(NotificationModuleUnlocked), 1)
}

// TestRedisNotifier_Publish は Docker が使える環境でのみ動く
func TestRedisNotifier_Publish(t *testing.T) {
	if testing.Short() || os.Getenv("SKIP_DOCKER_TESTS") != "" {
		t.Skip("skipping docker based test")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
	pool.MaxWait = 60 * time.Second

	resource, err := pool.Run("redis", "7-alpine", nil)
	require.NoError(t, err, "could not start redis")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge redis: %v", err)
		}
	})

	addr := fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp"))
	var notifier *RedisNotifier
	require.NoError(t, pool.Retry(func() error {
		var err error
		notifier, err = NewRedisNotifier(&config.RedisConfig{Addr: addr, Channel: "test-events"})
		return err
	}))
	t.Cleanup(func() { notifier.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sub := goredis.NewClient(&goredis.Options{Addr: addr})
	defer sub.Close()
	pubsub := sub.Subscribe(ctx, "test-events")
	defer pubsub.Close()
	_, err = pubsub.Receive(ctx)
	require.NoError(t, err, "subscription not confirmed")

	want := Notification{
		Type:       NotificationModuleUnlocked,
		UserID:     "u1",
		Payload:    map[string]interface{}{"module_id": "g2"},
		OccurredAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, notifier.Notify(ctx, want))

	msg, err := pubsub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var got Notification
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, want.Type, got.Type)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, "g2", got.Payload["module_id"])
	assert.True(t, want.OccurredAt.Equal(got.OccurredAt))
}
