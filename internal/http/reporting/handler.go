package reporting

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jrombouts/gigpay/internal/reporting"
)

type Handler struct {
	svc *reporting.Service
}

func NewHandler(svc *reporting.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/best-profession", h.bestProfession)
	r.Get("/best-clients", h.bestClients)
}

func (h *Handler) bestProfession(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseWindow(w, r)
	if !ok {
		return
	}

	best, err := h.svc.BestProfession(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, reporting.ErrNoData) {
			writeError(w, http.StatusNotFound, "no paid jobs in the given range")
			return
		}

		writeError(w, http.StatusInternalServerError, "internal server error")

		return
	}

	writeJSON(w, map[string]string{"bestProfession": best.Profession})
}

func (h *Handler) bestClients(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parseWindow(w, r)
	if !ok {
		return
	}

	limit := 0

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}

		limit = n
	}

	clients, err := h.svc.BestClients(r.Context(), start, end, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, toResponseList(clients))
}

// parseWindow reads the required start and end query parameters. Both RFC
// 3339 timestamps and bare dates are accepted.
func parseWindow(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	start, err := parseTime(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "start must be an RFC 3339 timestamp or a date")
		return time.Time{}, time.Time{}, false
	}

	end, err := parseTime(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "end must be an RFC 3339 timestamp or a date")
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Parse(time.DateOnly, s)
}

type clientResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Paid     int64  `json:"paid"`
}

func toResponseList(clients []*reporting.ClientTotal) []clientResponse {
	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = clientResponse{
			ID:       c.ID.String(),
			FullName: c.FullName,
			Paid:     c.Paid,
		}
	}

	return resp
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
