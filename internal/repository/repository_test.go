package repository

import (
	"context"
	"testing"
	"time"

	"crew_academy/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestPointsRepository(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := NewGormPointsRepository()

	_, err := repo.FindByUserID(ctx, db, "u1")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, repo.CreateIfAbsent(ctx, db, &model.UserPoints{UserID: "u1", CurrentRank: model.RankStudent}))
	// 2回目は無視され、既存の値は変わらない
	require.NoError(t, repo.CreateIfAbsent(ctx, db, &model.UserPoints{UserID: "u1", TotalPoints: 999, CurrentRank: model.RankCaptain}))

	ok, err := repo.IncrementTotal(ctx, db, "u1", 30)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.FindByUserID(ctx, db, "u1")
	require.NoError(t, err)
	assert.Equal(t, 30, got.TotalPoints)
	assert.Equal(t, model.RankStudent, got.CurrentRank)

	t.Run("凍結済みは加算しない", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, db, "u1", map[string]interface{}{"verified_crew": true}))
		ok, err := repo.IncrementTotal(ctx, db, "u1", 10)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.FindByUserID(ctx, db, "u1")
		require.NoError(t, err)
		assert.Equal(t, 30, got.TotalPoints)
	})

	t.Run("未作成ユーザー", func(t *testing.T) {
		ok, err := repo.IncrementTotal(ctx, db, "ghost", 10)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.ErrorIs(t, repo.Update(ctx, db, "ghost", map[string]interface{}{"daily_login_streak": 1}), model.ErrNotFound)
	})

	t.Run("ランキング", func(t *testing.T) {
		for id, total := range map[string]int{"a": 500, "b": 2500, "c": 1200} {
			require.NoError(t, repo.CreateIfAbsent(ctx, db, &model.UserPoints{UserID: id, TotalPoints: total, CurrentRank: model.CalculateRank(total)}))
		}
		top, err := repo.FindTop(ctx, db, 2)
		require.NoError(t, err)
		if assert.Len(t, top, 2) {
			assert.Equal(t, "b", top[0].UserID)
			assert.Equal(t, "c", top[1].UserID)
		}
	})
}

func TestPointEventRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := NewGormPointEventRepository()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, action := range []string{model.ActionDailyLogin, model.ActionLessonWatched, model.ActionQuizPassed} {
		require.NoError(t, repo.Append(ctx, db, &model.PointEvent{
			EventID:   uuid.New(),
			UserID:    "u1",
			Action:    action,
			Points:    10,
			AwardedAt: base.Add(time.Duration(i) * time.Minute),
			Metadata:  map[string]interface{}{"seq": i},
		}))
	}
	require.NoError(t, repo.Append(ctx, db, &model.PointEvent{EventID: uuid.New(), UserID: "other", Action: model.ActionMessageSent, Points: 2, AwardedAt: base}))

	events, err := repo.FindByUserID(ctx, db, "u1", 2)
	require.NoError(t, err)
	if assert.Len(t, events, 2) {
		assert.Equal(t, model.ActionQuizPassed, events[0].Action)
		assert.Equal(t, model.ActionLessonWatched, events[1].Action)
		assert.EqualValues(t, 2, events[0].Metadata["seq"])
	}
}

func TestPointEventRepository_ReferenceUnique(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := NewGormPointEventRepository()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	event := func(action, ref string) *model.PointEvent {
		return &model.PointEvent{EventID: uuid.New(), UserID: "u1", Action: action, ReferenceID: ref, Points: 5, AwardedAt: now}
	}

	// 参照なしのイベントは何件でも追記できる
	require.NoError(t, repo.Append(ctx, db, event(model.ActionLessonWatched, "")))
	require.NoError(t, repo.Append(ctx, db, event(model.ActionLessonWatched, "")))

	exists, err := repo.ExistsByReference(ctx, db, "u1", model.ActionLikeReceived, "m-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Append(ctx, db, event(model.ActionLikeReceived, "m-1")))
	require.NoError(t, repo.Append(ctx, db, event(model.ActionReactionSent, "m-1")))
	assert.ErrorIs(t, repo.Append(ctx, db, event(model.ActionLikeReceived, "m-1")), model.ErrConflict)

	exists, err = repo.ExistsByReference(ctx, db, "u1", model.ActionLikeReceived, "m-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByReference(ctx, db, "u2", model.ActionLikeReceived, "m-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestModuleRepository(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := NewGormModuleRepository()

	modules := []*model.Module{
		{ID: "s1", Name: "Service 1", Category: model.CategoryService, Order: 1, Visible: true},
		{ID: "g2", Name: "Grooming 2", Category: model.CategoryGrooming, Order: 2, Visible: true},
		{ID: "g1", Name: "Grooming 1", Category: model.CategoryGrooming, Order: 1, Visible: true,
			Lessons: []model.ModuleLesson{{ID: "l1", Title: "Intro", Order: 1, IsIntro: true}}},
	}
	for _, m := range modules {
		require.NoError(t, repo.Save(ctx, db, m))
	}

	got, err := repo.FindByID(ctx, db, "g1")
	require.NoError(t, err)
	if assert.Len(t, got.Lessons, 1) {
		assert.True(t, got.Lessons[0].IsIntro)
	}

	next, err := repo.FindByCategoryAndOrder(ctx, db, model.CategoryGrooming, 2)
	require.NoError(t, err)
	assert.Equal(t, "g2", next.ID)

	_, err = repo.FindByCategoryAndOrder(ctx, db, model.CategoryGrooming, 3)
	assert.ErrorIs(t, err, model.ErrNotFound)

	all, err := repo.FindAllOrdered(ctx, db)
	require.NoError(t, err)
	var ids []string
	for _, m := range all {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"g1", "g2", "s1"}, ids)

	t.Run("上書き", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, db, &model.Module{ID: "g2", Name: "Renamed", Category: model.CategoryGrooming, Order: 2}))
		got, err := repo.FindByID(ctx, db, "g2")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.False(t, got.Visible)
	})

	t.Run("同じカテゴリで order が重複", func(t *testing.T) {
		err := repo.Save(ctx, db, &model.Module{ID: "g9", Name: "Dup", Category: model.CategoryGrooming, Order: 1})
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}

func TestProgressRepository(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := NewGormProgressRepository()

	_, err := repo.FindByUserAndModule(ctx, db, "u1", "g1")
	assert.ErrorIs(t, err, model.ErrNotFound)

	progress := &model.UserModuleProgress{
		UserID:           "u1",
		ModuleID:         "g1",
		CompletedCourses: []string{},
		CompletedLessons: []string{},
		Unlocked:         true,
	}
	require.NoError(t, repo.CreateIfAbsent(ctx, db, progress))
	require.NoError(t, repo.CreateIfAbsent(ctx, db, &model.UserModuleProgress{UserID: "u1", ModuleID: "g1", Unlocked: false}))

	got, err := repo.FindByUserAndModule(ctx, db, "u1", "g1")
	require.NoError(t, err)
	assert.True(t, got.Unlocked)

	got.CompletedLessons = append(got.CompletedLessons, "l1")
	got.QuizAttempts = 2
	require.NoError(t, repo.Update(ctx, db, got))

	got, err = repo.FindByUserAndModule(ctx, db, "u1", "g1")
	require.NoError(t, err)
	assert.True(t, got.HasCompletedLesson("l1"))
	assert.Equal(t, 2, got.QuizAttempts)
}

func TestProgressRepository_IDsContainingSeparator(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := NewGormProgressRepository()

	// "a" + "x_g2" と "a_x" + "g2" は別レコード
	require.NoError(t, repo.CreateIfAbsent(ctx, db, &model.UserModuleProgress{
		UserID:           "a",
		ModuleID:         "x_g2",
		CompletedCourses: []string{},
		CompletedLessons: []string{"secret"},
		Unlocked:         true,
	}))
	require.NoError(t, repo.CreateIfAbsent(ctx, db, &model.UserModuleProgress{
		UserID:           "a_x",
		ModuleID:         "g2",
		CompletedCourses: []string{},
		CompletedLessons: []string{},
		Unlocked:         false,
	}))

	got, err := repo.FindByUserAndModule(ctx, db, "a_x", "g2")
	require.NoError(t, err)
	assert.Equal(t, "a_x", got.UserID)
	assert.Equal(t, "g2", got.ModuleID)
	assert.False(t, got.Unlocked)
	assert.Empty(t, got.CompletedLessons)

	got, err = repo.FindByUserAndModule(ctx, db, "a", "x_g2")
	require.NoError(t, err)
	assert.True(t, got.HasCompletedLesson("secret"))
}

func TestFeatureRepository_FindExpired(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	repo := NewGormFeatureRepository()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	require.NoError(t, repo.Save(ctx, db, &model.FeatureFlag{Name: model.FeatureRewards, Disabled: true, RestoreAt: &past}))
	require.NoError(t, repo.Save(ctx, db, &model.FeatureFlag{Name: model.FeatureModules, Disabled: true, RestoreAt: &future}))
	require.NoError(t, repo.Save(ctx, db, &model.FeatureFlag{Name: "manual", Disabled: true}))

	flags, err := repo.FindExpired(ctx, db, now)
	require.NoError(t, err)
	if assert.Len(t, flags, 1) {
		assert.Equal(t, model.FeatureRewards, flags[0].Name)
	}

	_, err = repo.FindByName(ctx, db, "unknown")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
