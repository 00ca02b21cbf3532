package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jrombouts/gigpay/internal/config"
	"github.com/jrombouts/gigpay/internal/database"
	gigpayHttp "github.com/jrombouts/gigpay/internal/http"
	"github.com/jrombouts/gigpay/internal/http/auth"
	jobHandler "github.com/jrombouts/gigpay/internal/http/job"
	paymentHandler "github.com/jrombouts/gigpay/internal/http/payment"
	profileHandler "github.com/jrombouts/gigpay/internal/http/profile"
	reportingHandler "github.com/jrombouts/gigpay/internal/http/reporting"
	"github.com/jrombouts/gigpay/internal/job"
	jobStore "github.com/jrombouts/gigpay/internal/job/store"
	"github.com/jrombouts/gigpay/internal/payment"
	paymentStore "github.com/jrombouts/gigpay/internal/payment/store"
	"github.com/jrombouts/gigpay/internal/profile"
	profileStore "github.com/jrombouts/gigpay/internal/profile/store"
	"github.com/jrombouts/gigpay/internal/reporting"
	reportingStore "github.com/jrombouts/gigpay/internal/reporting/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		profileService   = profile.NewService(profileStore.New(db))
		jobService       = job.NewService(jobStore.New(db))
		paymentService   = payment.NewService(paymentStore.New(db))
		reportingService = reporting.NewService(reportingStore.New(db))
	)

	var (
		profileV1 = profileHandler.NewHandler(profileService)
		jobV1     = jobHandler.NewHandler(jobService)
		paymentV1 = paymentHandler.NewHandler(paymentService)
		adminV1   = reportingHandler.NewHandler(reportingService)
	)

	router := gigpayHttp.New(auth.RequireProfile(profileService), profileV1, jobV1, paymentV1, adminV1)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
