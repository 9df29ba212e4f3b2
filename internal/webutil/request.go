package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"crew_academy/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディをデコードし、validate タグで検証します
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST", "Request body is required.", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST", fmt.Sprintf("Invalid request body: %v", err), "", model.ErrInvalidInput)
	}

	if err := Validator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NewValidationErrorResponse(verrs)
		}
		return model.NewAppError("INVALID_REQUEST", err.Error(), "", model.ErrInvalidInput)
	}
	return nil
}

// QueryLimit はクエリパラメータ limit を読む。未指定なら def、1..max に収める。
func QueryLimit(r *http.Request, def, max int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, model.NewAppError("INVALID_QUERY", "limit must be a positive integer.", "limit", model.ErrInvalidInput)
	}
	if limit > max {
		limit = max
	}
	return limit, nil
}
