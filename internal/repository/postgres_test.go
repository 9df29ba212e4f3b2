package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"crew_academy/internal/model"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupPostgres は使い捨ての PostgreSQL コンテナを起動する。Docker が無ければスキップ。
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() || os.Getenv("SKIP_DOCKER_TESTS") != "" {
		t.Skip("skipping docker-backed test")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=crew_academy",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "could not start postgres")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge postgres: %v", err)
		}
	})

	url := fmt.Sprintf("postgres://user:secret@%s/crew_academy?sslmode=disable", resource.GetHostPort("5432/tcp"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var err error
		db, err = NewDB(url, logger)
		return err
	})
	require.NoError(t, err, "could not connect to postgres")
	require.NoError(t, AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestPostgres_IncrementTotalIsAtomic(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewGormPointsRepository()

	require.NoError(t, repo.CreateIfAbsent(ctx, db, &model.UserPoints{UserID: "u1", CurrentRank: model.RankStudent}))

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// 同時の初回作成も失敗しない
			assert.NoError(t, repo.CreateIfAbsent(ctx, db, &model.UserPoints{UserID: "u1", CurrentRank: model.RankStudent}))
			ok, err := repo.IncrementTotal(ctx, db, "u1", model.PointsLessonWatched)
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()

	got, err := repo.FindByUserID(ctx, db, "u1")
	require.NoError(t, err)
	assert.Equal(t, workers*model.PointsLessonWatched, got.TotalPoints)
}

func TestPostgres_ModuleOrderConflict(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewGormModuleRepository()

	require.NoError(t, repo.Save(ctx, db, &model.Module{ID: "g1", Name: "Grooming 1", Category: model.CategoryGrooming, Order: 1, Lessons: []model.ModuleLesson{}}))
	err := repo.Save(ctx, db, &model.Module{ID: "g9", Name: "Dup", Category: model.CategoryGrooming, Order: 1, Lessons: []model.ModuleLesson{}})
	assert.ErrorIs(t, err, model.ErrConflict)
}
