package handlers

import (
	"log/slog"
	"net/http"

	"crew_academy/internal/middleware"
	"crew_academy/internal/model"
	"crew_academy/internal/webutil"
)

// maxListLimit は limit クエリの上限
const maxListLimit = 100

// currentUser はコンテキストからユーザーIDを取り出す。取れなければエラーレスポンスを書いて false を返す。
func currentUser(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (string, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication information was not found.", "", model.ErrForbidden))
		return "", false
	}
	return userID, true
}

func isGovernor(r *http.Request) bool {
	return middleware.GetUserRoleFromContext(r.Context()) == model.RoleGovernor
}
