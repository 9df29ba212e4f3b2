package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crew_academy/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestQueryLimit(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "", want: 20},
		{query: "?limit=5", want: 5},
		{query: "?limit=1000", want: 100},
		{query: "?limit=0", wantErr: true},
		{query: "?limit=-3", wantErr: true},
		{query: "?limit=ten", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := QueryLimit(httptest.NewRequest(http.MethodGet, "/x"+tt.query, nil), 20, 100)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSONBody(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		var req model.SubmitQuizRequest
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"score":80,"required_course_ids":["c1"]}`))
		require.NoError(t, DecodeJSONBody(r, &req))
		assert.Equal(t, 80, *req.Score)
		assert.Equal(t, []string{"c1"}, req.RequiredCourseIDs)
	})

	t.Run("必須項目のメッセージは表示名を使う", func(t *testing.T) {
		var req model.SubmitQuizRequest
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		err := DecodeJSONBody(r, &req)

		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
		assert.Equal(t, "score", appErr.Detail.Field)
		assert.Equal(t, "Quiz score is required.", appErr.Detail.Message)
	})

	t.Run("壊れたJSON", func(t *testing.T) {
		var req model.SubmitQuizRequest
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"score":`))
		err := DecodeJSONBody(r, &req)

		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INVALID_REQUEST", appErr.Detail.Code)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody model.ErrorDetail
	}{
		{
			name:         "AppError はそのまま返す",
			err:          model.NewAppError("MODULE_LOCKED", "locked", "module_id", model.ErrForbidden),
			expectedCode: http.StatusForbidden,
			expectedBody: model.ErrorDetail{Code: "MODULE_LOCKED", Message: "locked", Field: "module_id"},
		},
		{
			name:         "ラップされたセンチネル",
			err:          fmt.Errorf("lookup: %w", model.ErrNotFound),
			expectedCode: http.StatusNotFound,
			expectedBody: model.ErrorDetail{Code: "Not Found", Message: "lookup: resource not found"},
		},
		{
			name:         "未知のエラーは詳細を隠す",
			err:          errors.New("connection reset"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "An internal server error occurred."},
		},
		{
			name:         "機能停止",
			err:          model.NewAppError("FEATURE_DISABLED", "off", "", model.ErrFeatureDisabled),
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: model.ErrorDetail{Code: "FEATURE_DISABLED", Message: "off"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, discardLogger, tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var resp model.APIErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp.Error)
		})
	}
}
