package job

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jrombouts/gigpay/internal/http/auth"
	"github.com/jrombouts/gigpay/internal/job"
)

type Handler struct {
	svc *job.Service
}

func NewHandler(svc *job.Service) *Handler {
	return &Handler{svc: svc}
}

// ListUnpaid handles GET /jobs/unpaid?contractor_id=X. The caller is the
// client side; the contractor comes from the query.
func (h *Handler) ListUnpaid(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerProfile(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "profile_id header is required")
		return
	}

	contractorID, err := uuid.Parse(r.URL.Query().Get("contractor_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid contractor_id")
		return
	}

	jobs, err := h.svc.ListUnpaid(r.Context(), caller.ID, contractorID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(jobs)); err != nil {
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
