// internal/handlers/main_test.go
package handlers_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"crew_academy/internal/config"
	"crew_academy/internal/handlers"
	"crew_academy/internal/middleware"
	"crew_academy/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

// apiMocks はハンドラが依存するサービスのモック
type apiMocks struct {
	rewards  *mocks.RewardsService
	modules  *mocks.ModuleService
	features *mocks.FeatureService
}

func testHandlerConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			LeaderboardLimit: 10,
			HistoryLimit:     20,
		},
	}
}

// newRouter は本番と同じルーティングに任意のサービスを差し込む
func newRouter(rewards *handlers.RewardsHandler, modules *handlers.ModuleHandler, admin *handlers.AdminHandler, features middleware.FeatureChecker) *chi.Mux {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := &handlers.APIRoutes{
		Rewards:  rewards,
		Modules:  modules,
		Admin:    admin,
		Features: features,
		Auth:     middleware.DevUserContextMiddleware,
	}
	r := chi.NewRouter()
	r.Use(middleware.LoggingMiddleware(testLogger))
	r.Route("/api/v1", api.Mount)
	return r
}

// newMockServer はモックサービスで組んだテストサーバーを返す。機能フラグはデフォルトで全て有効。
func newMockServer(t *testing.T) (*httptest.Server, *apiMocks) {
	t.Helper()
	m := &apiMocks{
		rewards:  mocks.NewRewardsService(t),
		modules:  mocks.NewModuleService(t),
		features: mocks.NewFeatureService(t),
	}
	m.features.On("IsEnabled", mock.Anything, mock.Anything).Return(true, nil).Maybe()

	r := newRouter(
		handlers.NewRewardsHandler(m.rewards, testHandlerConfig()),
		handlers.NewModuleHandler(m.modules, m.rewards),
		handlers.NewAdminHandler(m.modules, m.rewards, m.features),
		m.features,
	)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, m
}
