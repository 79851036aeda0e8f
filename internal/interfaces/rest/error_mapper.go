package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/acquira/payment-gateway/internal/application"
)

// WriteError maps application errors to HTTP responses. Only the safe
// Message reaches the caller; the wrapped detail stays in the server log.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	svcErr, ok := application.IsServiceError(err)
	if !ok {
		svcErr = application.NewInternalError(err)
	}

	if svcErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed", "code", svcErr.Code, "error", svcErr.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(svcErr.HTTPStatus)
	json.NewEncoder(w).Encode(ErrorResponse{Message: svcErr.Message})
}
