package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jrombouts/gigpay/internal/job"
	"github.com/jrombouts/gigpay/internal/profile"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx is a single ledger transaction. Reads take row locks so concurrent
// payments and deposits touching the same rows serialize. A Tx must be
// finished with Commit or Rollback; anything short of Commit leaves the
// ledger untouched.
type Tx interface {
	JobForUpdate(ctx context.Context, id uuid.UUID) (*job.Job, error)
	Contract(ctx context.Context, id uuid.UUID) (*job.Contract, error)

	// ProfilesForUpdate locks the given profiles in ascending-id order and
	// returns them keyed by id. Any missing profile is profile.ErrNotFound.
	ProfilesForUpdate(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*profile.Profile, error)

	AddBalance(ctx context.Context, id uuid.UUID, delta int64) (int64, error)
	MarkJobPaid(ctx context.Context, id uuid.UUID) error
	UnpaidTotal(ctx context.Context, clientID uuid.UUID) (int64, error)

	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// PayJob moves amount cents from the client on the job's contract to the
// contractor and marks the job paid, all inside one ledger transaction.
// Balance deltas sum to zero; on any failure nothing is applied.
func (s *Service) PayJob(ctx context.Context, jobID uuid.UUID, amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin payment: %w", err)
	}
	defer tx.Rollback()

	j, err := tx.JobForUpdate(ctx, jobID)
	if err != nil {
		return err
	}

	if j.IsPaid() {
		return ErrAlreadyPaid
	}

	c, err := tx.Contract(ctx, j.ContractID)
	if err != nil {
		return err
	}

	parties, err := tx.ProfilesForUpdate(ctx, c.ClientID, c.ContractorID)
	if err != nil {
		return err
	}

	if parties[c.ClientID].Balance < amount {
		return ErrInsufficientFunds
	}

	if _, err := tx.AddBalance(ctx, c.ContractorID, amount); err != nil {
		return fmt.Errorf("crediting contractor: %w", err)
	}

	if _, err := tx.AddBalance(ctx, c.ClientID, -amount); err != nil {
		return fmt.Errorf("debiting client: %w", err)
	}

	if err := tx.MarkJobPaid(ctx, jobID); err != nil {
		return fmt.Errorf("marking job paid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit payment: %w", err)
	}

	return nil
}

// Deposit credits amount cents to the client's balance and returns the new
// balance. The amount is capped at 25% of the client's outstanding
// unpaid-job total, computed inside the same transaction.
func (s *Service) Deposit(ctx context.Context, clientID uuid.UUID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin deposit: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ProfilesForUpdate(ctx, clientID); err != nil {
		return 0, err
	}

	outstanding, err := tx.UnpaidTotal(ctx, clientID)
	if err != nil {
		return 0, fmt.Errorf("computing outstanding total: %w", err)
	}

	ceiling := outstanding / 4
	if amount > ceiling {
		return 0, &LimitError{Ceiling: ceiling}
	}

	balance, err := tx.AddBalance(ctx, clientID, amount)
	if err != nil {
		return 0, fmt.Errorf("crediting client: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit deposit: %w", err)
	}

	return balance, nil
}
