package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/kylegeeksquad87/cricket-scorer-api/internal/domain/failure"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const internalErrorMessage = "Internal server error"

type errorBody struct {
	Error string `json:"error"`
}

type mappedError struct {
	HTTPStatus int
	Message    string
}

// writeJSON encodes into a pooled buffer first so an encoding failure can still become a 500.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		_, _ = buf.WriteString(`{"error":"` + internalErrorMessage + `"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

// writeError renders err and marks the request span failed on 5xx.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, mapped.Message)
	}
	writeJSON(ctx, w, mapped.HTTPStatus, errorBody{Error: mapped.Message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: internalErrorMessage})
}

// mapError picks the status for an error kind. Only hints reach the body; raw store text never does.
func mapError(err error) mappedError {
	var status int
	var fallback string
	switch {
	case errors.Is(err, failure.ErrValidation):
		status, fallback = http.StatusBadRequest, "Invalid request"
	case errors.Is(err, failure.ErrReferential):
		status, fallback = http.StatusBadRequest, "Referenced resource does not exist."
	case errors.Is(err, failure.ErrNotFound):
		status, fallback = http.StatusNotFound, "Resource not found"
	case errors.Is(err, failure.ErrConflict):
		status, fallback = http.StatusConflict, "Resource already exists."
	case errors.Is(err, failure.ErrUnauthorized):
		status, fallback = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, failure.ErrStoreUnavailable):
		status, fallback = http.StatusServiceUnavailable, "Database is unavailable"
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Message: internalErrorMessage}
	}

	message := failure.Hint(err)
	if message == "" {
		message = fallback
	}
	return mappedError{HTTPStatus: status, Message: message}
}
