package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	jobHandler "github.com/jrombouts/gigpay/internal/http/job"
	paymentHandler "github.com/jrombouts/gigpay/internal/http/payment"
	profileHandler "github.com/jrombouts/gigpay/internal/http/profile"
	reportingHandler "github.com/jrombouts/gigpay/internal/http/reporting"
)

func New(
	requireProfile func(http.Handler) http.Handler,
	profileV1 *profileHandler.Handler,
	jobV1 *jobHandler.Handler,
	paymentV1 *paymentHandler.Handler,
	adminV1 *reportingHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	router.Get("/profiles", profileV1.List)

	router.Group(func(r chi.Router) {
		r.Use(requireProfile)

		r.Get("/profile/{profileId}", profileV1.Get)
		r.Get("/jobs/unpaid", jobV1.ListUnpaid)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))

			r.Post("/jobs/{jobId}/pay", paymentV1.Pay)
			r.Post("/balances/deposit/{userId}", paymentV1.Deposit)
		})
	})

	router.Route("/admin", adminV1.Routes)

	return router
}
