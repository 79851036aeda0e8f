// Package rest exposes the payment service over HTTP.
package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acquira/payment-gateway/internal/application"
	"github.com/acquira/payment-gateway/internal/domain"
)

// PaymentService is the slice of the orchestration layer the handlers need.
type PaymentService interface {
	ProcessPayment(ctx context.Context, req *domain.PaymentRequest) (*domain.Payment, error)
	GetPaymentByID(ctx context.Context, id string) (*domain.Payment, error)
}

type Handlers struct {
	payments PaymentService
	logger   *slog.Logger
}

func NewHandlers(payments PaymentService, logger *slog.Logger) *Handlers {
	return &Handlers{
		payments: payments,
		logger:   logger,
	}
}

// NewRouter mounts the public surface: payment submission and retrieval.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Post("/payments", h.ProcessPayment)
	r.Get("/payment/{id}", h.GetPayment)
	return r
}

func (h *Handlers) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req PostPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, application.NewInvalidRequestError("Invalid request body"), h.logger)
		return
	}

	payment, err := h.payments.ProcessPayment(r.Context(), toDomainRequest(&req))
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

func (h *Handlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payment, err := h.payments.GetPaymentByID(r.Context(), id)
	if err != nil {
		WriteError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, toPaymentResponse(payment))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
