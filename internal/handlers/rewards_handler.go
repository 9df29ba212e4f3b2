// internal/handlers/rewards_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"crew_academy/internal/config"
	"crew_academy/internal/middleware"
	"crew_academy/internal/model"
	"crew_academy/internal/service"
	"crew_academy/internal/webutil"
)

type RewardsHandler struct {
	service service.RewardsService
	cfg     *config.Config
}

func NewRewardsHandler(s service.RewardsService, cfg *config.Config) *RewardsHandler {
	return &RewardsHandler{
		service: s,
		cfg:     cfg,
	}
}

// GetMyPoints は自分のポイント・階級・次の階級までの残りを返す
func (h *RewardsHandler) GetMyPoints(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetMyPoints"))

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	points, err := h.service.GetUserPoints(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting user points in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserPointsResponse(points))
}

// PostDailyLogin はログインボーナスを記録し、更新後のポイントを返す。同日2回目以降は何も加算されない。
func (h *RewardsHandler) PostDailyLogin(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostDailyLogin"))

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.HandleDailyLogin(r.Context(), userID); err != nil {
		logger.Error("Error handling daily login in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	points, err := h.service.GetUserPoints(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting user points after daily login", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserPointsResponse(points))
}

func (h *RewardsHandler) GetMyPointHistory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetMyPointHistory"))

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}
	limit, err := webutil.QueryLimit(r, h.cfg.App.HistoryLimit, maxListLimit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	events, err := h.service.GetUserPointHistory(r.Context(), userID, limit)
	if err != nil {
		logger.Error("Error getting point history in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if events == nil {
		events = []*model.PointEvent{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, events)
}

func (h *RewardsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetLeaderboard"))

	limit, err := webutil.QueryLimit(r, h.cfg.App.LeaderboardLimit, maxListLimit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	leaders, err := h.service.GetLeaderboard(r.Context(), limit)
	if err != nil {
		logger.Error("Error getting leaderboard in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if leaders == nil {
		leaders = []*model.UserPoints{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, leaders)
}

// PostActivity はチャット等のアクティビティを記録してポイントを付与する
func (h *RewardsHandler) PostActivity(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostActivity"))

	userID, ok := currentUser(w, r, logger)
	if !ok {
		return
	}

	var req model.RecordActivityRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Invalid activity request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	// 同じ reference_id の再送はポイントを付与せず、現在の値を返す
	awarded, err := h.service.RecordActivity(r.Context(), userID, req.Action, req.ReferenceID)
	if err != nil {
		logger.Error("Error recording activity in service", slog.Any("error", err), slog.String("action", req.Action))
		webutil.HandleError(w, logger, err)
		return
	}

	points, err := h.service.GetUserPoints(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Activity recorded",
		slog.String("action", req.Action),
		slog.String("reference_id", req.ReferenceID),
		slog.Bool("awarded", awarded),
	)
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserPointsResponse(points))
}
