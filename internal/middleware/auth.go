package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"crew_academy/internal/config"
	"crew_academy/internal/model"
	"crew_academy/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// sub をユーザーID、role クレームを権限としてコンテキストにセットします。
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrForbidden))
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer {token}'.", "", model.ErrForbidden))
				return
			}

			claims := &model.JWTCustomClaims{}
			token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				// HS256 以外は受け付けない
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token is invalid.", "", model.ErrForbidden))
				return
			}

			userID, err := claims.GetSubject()
			if err != nil || userID == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "Token does not identify a user.", "", model.ErrForbidden))
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), userID, claims.Role)))
		})
	}
}

// withUser はユーザーIDと権限をコンテキストにセットし、ロガーにも user_id を付与する
func withUser(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	ctx = context.WithValue(ctx, model.UserRoleKey, role)
	return WithLogger(ctx, GetLogger(ctx).With("user_id", userID))
}

// RequireRole は指定した権限を持たないリクエストを 403 で拒否します。
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetUserRoleFromContext(r.Context()) != role {
				logger := GetLogger(r.Context())
				logger.Warn("Access denied: missing role", "required_role", role)
				webutil.HandleError(w, logger, model.NewAppError("FORBIDDEN", "You do not have permission to perform this action.", "", model.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetUserIDFromContext(ctx context.Context) (string, error) {
	value, ok := ctx.Value(model.UserIDKey).(string)
	if !ok || value == "" {
		// ミドルウェアが正しく動作していない等の内部エラー
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "Could not resolve the current user.", "", model.ErrInternalServer)
	}
	return value, nil
}

func GetUserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(model.UserRoleKey).(string)
	return role
}
