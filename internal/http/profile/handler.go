package profile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jrombouts/gigpay/internal/profile"
)

type Handler struct {
	svc *profile.Service
}

func NewHandler(svc *profile.Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /profiles. The type query parameter is optional.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var role *profile.Role

	if s := r.URL.Query().Get("type"); s != "" {
		rl := profile.Role(s)
		if rl != profile.RoleClient && rl != profile.RoleContractor {
			writeError(w, http.StatusBadRequest, "type must be client or contractor")
			return
		}

		role = &rl
	}

	profiles, err := h.svc.List(r.Context(), role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(profiles)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Get handles GET /profile/{profileId}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}

		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
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
