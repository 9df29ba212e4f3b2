package handlers

import (
	"net/http"

	"crew_academy/internal/middleware"
	"crew_academy/internal/model"

	"github.com/go-chi/chi/v5"
)

// APIRoutes は /api/v1 配下のルーティングに必要なもの
type APIRoutes struct {
	Rewards  *RewardsHandler
	Modules  *ModuleHandler
	Admin    *AdminHandler
	Features middleware.FeatureChecker
	// Auth は JWT もしくは開発用ヘッダー認証
	Auth func(http.Handler) http.Handler
}

func (a *APIRoutes) Mount(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(a.Auth)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireFeature(a.Features, model.FeatureRewards))
			r.Get("/me/points", a.Rewards.GetMyPoints)
			r.Post("/me/daily-login", a.Rewards.PostDailyLogin)
			r.Get("/me/points/history", a.Rewards.GetMyPointHistory)
			r.Post("/me/activities", a.Rewards.PostActivity)
			r.Get("/leaderboard", a.Rewards.GetLeaderboard)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireFeature(a.Features, model.FeatureModules))
			r.Route("/modules", func(r chi.Router) {
				r.Get("/", a.Modules.ListModules)
				r.Route("/{module_id}", func(r chi.Router) {
					r.Get("/", a.Modules.GetModule)
					r.Get("/progress", a.Modules.GetModuleProgress)
					r.Post("/lessons/{lesson_id}/complete", a.Modules.CompleteLesson)
					r.Get("/lessons/{lesson_id}/access", a.Modules.GetLessonAccess)
					r.Post("/courses/{course_id}/complete", a.Modules.CompleteCourse)
					r.Post("/quiz", a.Modules.SubmitQuiz)
				})
			})
		})

		// 管理操作は機能停止中でも使える
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(model.RoleGovernor))
			r.Put("/modules/{module_id}", a.Admin.PutModule)
			r.Post("/users/{user_id}/verified-crew", a.Admin.DeclareVerifiedCrew)
			r.Post("/features/{name}/shutdown", a.Admin.ShutdownFeature)
			r.Post("/features/{name}/restore", a.Admin.RestoreFeature)
		})
	})
}
