package payment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jrombouts/gigpay/internal/job"
	"github.com/jrombouts/gigpay/internal/payment"
	"github.com/jrombouts/gigpay/internal/profile"
)

type Handler struct {
	svc *payment.Service
}

func NewHandler(svc *payment.Service) *Handler {
	return &Handler{svc: svc}
}

type amountRequest struct {
	Amount int64 `json:"amount"`
}

// Pay handles POST /jobs/{jobId}/pay.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "jobId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.PayJob(r.Context(), jobID, req.Amount); err != nil {
		switch {
		case errors.Is(err, job.ErrNotFound):
			writeError(w, http.StatusNotFound, "job not found")
		case errors.Is(err, job.ErrContractNotFound):
			writeError(w, http.StatusNotFound, "contract not found")
		case errors.Is(err, profile.ErrNotFound):
			writeError(w, http.StatusNotFound, "profile not found")
		case errors.Is(err, payment.ErrInsufficientFunds):
			writeError(w, http.StatusBadRequest, "insufficient funds")
		case errors.Is(err, payment.ErrAlreadyPaid):
			writeError(w, http.StatusConflict, "job already paid")
		case errors.Is(err, payment.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "amount must be positive")
		default:
			slog.Error("payment failed", "job_id", jobID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}

		return
	}

	writeJSON(w, map[string]any{"message": "Payment successful"})
}

// Deposit handles POST /balances/deposit/{userId}.
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	balance, err := h.svc.Deposit(r.Context(), clientID, req.Amount)
	if err != nil {
		var limitErr *payment.LimitError

		switch {
		case errors.As(err, &limitErr):
			writeError(w, http.StatusBadRequest, limitErr.Error())
		case errors.Is(err, profile.ErrNotFound):
			writeError(w, http.StatusNotFound, "profile not found")
		case errors.Is(err, payment.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "amount must be positive")
		default:
			slog.Error("deposit failed", "client_id", clientID, "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}

		return
	}

	writeJSON(w, map[string]any{"message": "Deposit successful", "balance": balance})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}
