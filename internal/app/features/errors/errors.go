// Package errors centralizes how handlers report failures: JSON error
// bodies for the API, rendered pages for the site, and one logger so
// every failure lands in the structured log with the request path.
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger writes error responses and logs them. Handlers receive one
// instance from bootstrap instead of each inventing its own format.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger backed by the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// JSON writes {"error": msg} with the given status. Server-side failures
// (5xx) log the underlying error; client mistakes log at debug so bad
// input cannot flood the log.
func (e *ErrorLogger) JSON(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if status >= 500 {
		e.log.Error(msg, fields...)
	} else {
		e.log.Debug(msg, fields...)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
