// internal/handlers/admin_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"crew_academy/internal/middleware"
	"crew_academy/internal/model"
	"crew_academy/internal/service"
	"crew_academy/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// AdminHandler は governor 権限のユーザー向けの操作
type AdminHandler struct {
	modules  service.ModuleService
	rewards  service.RewardsService
	features service.FeatureService
}

func NewAdminHandler(modules service.ModuleService, rewards service.RewardsService, features service.FeatureService) *AdminHandler {
	return &AdminHandler{
		modules:  modules,
		rewards:  rewards,
		features: features,
	}
}

// PutModule はモジュールを作成または上書きする
func (h *AdminHandler) PutModule(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PutModule"))
	moduleID := chi.URLParam(r, "module_id")

	var req model.SaveModuleRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Invalid module request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	module := &model.Module{
		ID:          moduleID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Order:       req.Order,
		Lessons:     req.Lessons,
		QuizID:      req.QuizID,
		Visible:     *req.Visible,
	}
	if module.Lessons == nil {
		module.Lessons = []model.ModuleLesson{}
	}
	if err := h.modules.SaveModule(r.Context(), module); err != nil {
		logger.Error("Error saving module in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	saved, err := h.modules.GetModule(r.Context(), moduleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, saved)
}

// DeclareVerifiedCrew は採用が決まったユーザーのポイントを凍結する
func (h *AdminHandler) DeclareVerifiedCrew(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeclareVerifiedCrew"))
	userID := chi.URLParam(r, "user_id")

	if err := h.rewards.DeclareVerifiedCrew(r.Context(), userID); err != nil {
		logger.Error("Error declaring verified crew in service", slog.Any("error", err), slog.String("target_user_id", userID))
		webutil.HandleError(w, logger, err)
		return
	}

	points, err := h.rewards.GetUserPoints(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Verified crew declared", slog.String("target_user_id", userID))
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserPointsResponse(points))
}

func (h *AdminHandler) ShutdownFeature(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ShutdownFeature"))
	name := chi.URLParam(r, "name")

	var req model.ShutdownFeatureRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	flag, err := h.features.Shutdown(r.Context(), name, req.Reason, req.RestoreAt)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, flag)
}

func (h *AdminHandler) RestoreFeature(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "RestoreFeature"))

	flag, err := h.features.Restore(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, flag)
}
