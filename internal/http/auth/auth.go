// Package auth implements the opaque profile_id header scheme the external
// UI authenticates with.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jrombouts/gigpay/internal/profile"
)

// HeaderName is the header carrying the caller's profile id.
const HeaderName = "profile_id"

type ctxKey struct{}

// RequireProfile rejects requests without a resolvable profile_id header and
// stores the caller's profile in the request context.
func RequireProfile(profiles *profile.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(HeaderName)
			if raw == "" {
				http.Error(w, "profile_id header is required", http.StatusUnauthorized)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				http.Error(w, "invalid profile_id header", http.StatusUnauthorized)
				return
			}

			p, err := profiles.Get(r.Context(), id)
			if err != nil {
				if errors.Is(err, profile.ErrNotFound) {
					http.Error(w, "unknown profile", http.StatusUnauthorized)
					return
				}

				http.Error(w, "internal error", http.StatusInternalServerError)

				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerProfile returns the profile stored by RequireProfile.
func CallerProfile(ctx context.Context) (*profile.Profile, bool) {
	p, ok := ctx.Value(ctxKey{}).(*profile.Profile)
	return p, ok
}
