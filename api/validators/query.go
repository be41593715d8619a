package validators

import (
	"net/http"
	"strconv"

	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
)

// IntQuery parses an integer query parameter, falling back when absent.
func IntQuery(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+key)
	}
	return value, nil
}

// StringQuery returns a query parameter, falling back when absent.
func StringQuery(r *http.Request, key, fallback string) string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	return raw
}
