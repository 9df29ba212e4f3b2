// api_integration_test.go
package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crew_academy/internal/handlers"
	"crew_academy/internal/model"
	"crew_academy/internal/repository"
	"crew_academy/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newIntegrationServer は実サービスとインメモリ SQLite でルーター全体を組む
func newIntegrationServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open sqlite")
	require.NoError(t, repository.AutoMigrate(db), "failed to migrate")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := testHandlerConfig()
	cfg.App.Timezone = "UTC"
	notifier := &service.LogNotifier{}

	rewards := service.NewRewardsService(db, repository.NewGormPointsRepository(), repository.NewGormPointEventRepository(), notifier, cfg)
	modules := service.NewModuleService(db, repository.NewGormModuleRepository(), repository.NewGormProgressRepository(), notifier)
	features := service.NewFeatureService(db, repository.NewGormFeatureRepository())

	r := newRouter(
		handlers.NewRewardsHandler(rewards, cfg),
		handlers.NewModuleHandler(modules, rewards),
		handlers.NewAdminHandler(modules, rewards, features),
		features,
	)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func totalPoints(t *testing.T, server *httptest.Server, userID string) int {
	t.Helper()
	body := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/me/points", Headers: userHeaders(userID)}, http.StatusOK)
	var resp model.UserPointsResponse
	decodeBody(t, body, &resp)
	return resp.TotalPoints
}

func TestAPI_ModuleProgressionFlow(t *testing.T) {
	server := newIntegrationServer(t)
	admin := governorHeaders("governor-1")
	user := userHeaders("cadet-1")

	// --- 管理者がモジュールを登録 ---
	sendRequest(t, server, httpRequestDetails{
		Method: http.MethodPut,
		Path:   "/api/v1/admin/modules/g1",
		Body: `{"name":"Grooming Basics","category":"grooming","order":1,"visible":true,"quiz_id":"quiz-g1",
			"lessons":[{"id":"l1","title":"Intro","order":1,"isIntro":true},{"id":"l2","title":"Makeup","order":2}]}`,
		Headers: admin,
	}, http.StatusOK)
	sendRequest(t, server, httpRequestDetails{
		Method:  http.MethodPut,
		Path:    "/api/v1/admin/modules/g2",
		Body:    `{"name":"Grooming Advanced","category":"grooming","order":2,"visible":true}`,
		Headers: admin,
	}, http.StatusOK)

	assert.Equal(t, 0, totalPoints(t, server, "cadet-1"))

	// --- 解放状態 ---
	var progress model.ModuleProgressResponse
	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/modules/g1/progress", Headers: user}, http.StatusOK), &progress)
	assert.True(t, progress.Unlocked, "first module is unlocked from the start")

	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/modules/g2/progress", Headers: user}, http.StatusOK), &progress)
	assert.False(t, progress.Unlocked)

	body := sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/modules/g2/quiz", Body: `{"score":100}`, Headers: user}, http.StatusForbidden)
	verifyErrorResponse(t, body, "MODULE_LOCKED")

	// --- レッスン ---
	var lesson model.LessonCompleteResponse
	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/modules/g1/lessons/l1/complete", Headers: user}, http.StatusOK), &lesson)
	assert.True(t, lesson.NewlyComplete)
	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/modules/g1/lessons/l1/complete", Headers: user}, http.StatusOK), &lesson)
	assert.False(t, lesson.NewlyComplete)
	assert.Equal(t, model.PointsLessonWatched, totalPoints(t, server, "cadet-1"))

	body = sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/modules/g1/lessons/l2/complete", Headers: user}, http.StatusForbidden)
	verifyErrorResponse(t, body, "LESSON_LOCKED")

	// --- クイズ ---
	var quiz model.SubmitQuizResponse
	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/modules/g1/quiz", Body: `{"score":79}`, Headers: user}, http.StatusOK), &quiz)
	assert.False(t, quiz.Passed)
	assert.Equal(t, model.PointsLessonWatched, totalPoints(t, server, "cadet-1"))

	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/modules/g1/quiz", Body: `{"score":85}`, Headers: user}, http.StatusOK), &quiz)
	assert.True(t, quiz.Passed)
	afterPass := model.PointsLessonWatched + model.PointsQuizPassed + model.PointsModuleCompleted
	assert.Equal(t, afterPass, totalPoints(t, server, "cadet-1"))

	// 2回目の合格では付与しない
	sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/modules/g1/quiz", Body: `{"score":95}`, Headers: user}, http.StatusOK)
	assert.Equal(t, afterPass, totalPoints(t, server, "cadet-1"))

	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/modules/g2/progress", Headers: user}, http.StatusOK), &progress)
	assert.True(t, progress.Unlocked, "passing the quiz unlocks the next module")

	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/modules/g1/lessons/l2/complete", Headers: user}, http.StatusOK), &lesson)
	assert.True(t, lesson.NewlyComplete)
	assert.Equal(t, afterPass+model.PointsLessonWatched, totalPoints(t, server, "cadet-1"))

	// --- 履歴 ---
	var history []model.PointEvent
	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/me/points/history", Headers: user}, http.StatusOK), &history)
	assert.Len(t, history, 4)
}

func TestAPI_VerifiedCrewAndFeatureShutdown(t *testing.T) {
	server := newIntegrationServer(t)
	admin := governorHeaders("governor-1")

	sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/me/daily-login", Headers: userHeaders("crew-1")}, http.StatusOK)
	sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/me/activities", Body: `{"action":"message_sent","reference_id":"m-1"}`, Headers: userHeaders("crew-2")}, http.StatusOK)
	assert.Equal(t, model.PointsDailyLogin, totalPoints(t, server, "crew-1"))

	var leaders []model.UserPoints
	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/leaderboard", Headers: userHeaders("crew-1")}, http.StatusOK), &leaders)
	if assert.Len(t, leaders, 2) {
		assert.Equal(t, "crew-1", leaders[0].UserID)
	}

	// --- 採用後はポイントが凍結される ---
	var declared model.UserPointsResponse
	decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/admin/users/crew-1/verified-crew", Headers: admin}, http.StatusOK), &declared)
	assert.True(t, declared.VerifiedCrew)

	sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/me/activities", Body: `{"action":"file_uploaded","reference_id":"f-1"}`, Headers: userHeaders("crew-1")}, http.StatusOK)
	assert.Equal(t, model.PointsDailyLogin, totalPoints(t, server, "crew-1"))

	// --- 機能停止 ---
	sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/admin/features/rewards/shutdown", Body: `{"reason":"maintenance"}`, Headers: admin}, http.StatusOK)
	body := sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/me/points", Headers: userHeaders("crew-1")}, http.StatusServiceUnavailable)
	verifyErrorResponse(t, body, "FEATURE_DISABLED")

	// modules は停止していない
	sendRequest(t, server, httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/modules", Headers: userHeaders("crew-1")}, http.StatusOK)

	sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/admin/features/rewards/restore", Headers: admin}, http.StatusOK)
	assert.Equal(t, model.PointsDailyLogin, totalPoints(t, server, "crew-1"))
}

func TestAPI_ActivityReplayAwardsOnce(t *testing.T) {
	server := newIntegrationServer(t)
	like := `{"action":"like_received","reference_id":"m-1"}`

	for i := 0; i < 3; i++ {
		var resp model.UserPointsResponse
		decodeBody(t, sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/me/activities", Body: like, Headers: userHeaders("u1")}, http.StatusOK), &resp)
		assert.Equal(t, model.PointsLikeReceived, resp.TotalPoints)
	}

	// 別の参照・別のアクション・別ユーザーは独立
	sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/me/activities", Body: `{"action":"like_received","reference_id":"m-2"}`, Headers: userHeaders("u1")}, http.StatusOK)
	sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/me/activities", Body: `{"action":"reaction_sent","reference_id":"m-1"}`, Headers: userHeaders("u1")}, http.StatusOK)
	sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/me/activities", Body: like, Headers: userHeaders("u2")}, http.StatusOK)

	assert.Equal(t, 2*model.PointsLikeReceived+model.PointsReactionSent, totalPoints(t, server, "u1"))
	assert.Equal(t, model.PointsLikeReceived, totalPoints(t, server, "u2"))
}
