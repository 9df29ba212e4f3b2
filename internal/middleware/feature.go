package middleware

import (
	"context"
	"net/http"

	"crew_academy/internal/model"
	"crew_academy/internal/webutil"
)

// FeatureChecker は機能が有効かどうかを判定する
type FeatureChecker interface {
	IsEnabled(ctx context.Context, name string) (bool, error)
}

// RequireFeature は停止中の機能へのリクエストを 503 で返します。
func RequireFeature(checker FeatureChecker, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context()).With("feature", name)

			enabled, err := checker.IsEnabled(r.Context(), name)
			if err != nil {
				logger.Error("Failed to check feature flag", "error", err)
				webutil.HandleError(w, logger, err)
				return
			}
			if !enabled {
				logger.Info("Request rejected: feature is shut down")
				webutil.HandleError(w, logger, model.NewAppError("FEATURE_DISABLED", "This feature is temporarily unavailable.", "", model.ErrFeatureDisabled))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
