package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jrombouts/gigpay/internal/job"
	"github.com/jrombouts/gigpay/internal/payment"
	"github.com/jrombouts/gigpay/internal/profile"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Begin(ctx context.Context) (payment.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning ledger tx: %w", err)
	}

	return &ledgerTx{tx: dbTx}, nil
}

// ledgerTx implements payment.Tx on a single *sql.Tx.
type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) Commit() error   { return t.tx.Commit() }
func (t *ledgerTx) Rollback() error { return t.tx.Rollback() }

func (t *ledgerTx) JobForUpdate(ctx context.Context, id uuid.UUID) (*job.Job, error) {
	query := `
		SELECT id, contract_id, description, price, paid, paid_at, created_at, updated_at
		FROM jobs
		WHERE id = $1
		FOR UPDATE
	`

	var j job.Job

	var paid sql.NullBool

	err := t.tx.QueryRowContext(ctx, query, id).Scan(
		&j.ID, &j.ContractID, &j.Description, &j.Price, &paid, &j.PaidAt,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrNotFound
		}

		return nil, fmt.Errorf("locking job: %w", err)
	}

	if paid.Valid {
		j.Paid = &paid.Bool
	}

	return &j, nil
}

func (t *ledgerTx) Contract(ctx context.Context, id uuid.UUID) (*job.Contract, error) {
	query := `
		SELECT id, client_id, contractor_id, terms, status, created_at, updated_at
		FROM contracts
		WHERE id = $1
	`

	var c job.Contract

	var statusStr string

	err := t.tx.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.ClientID, &c.ContractorID, &c.Terms, &statusStr,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrContractNotFound
		}

		return nil, fmt.Errorf("getting contract: %w", err)
	}

	c.Status = job.ContractStatus(statusStr)

	return &c, nil
}

// ProfilesForUpdate locks all requested profile rows in one statement with a
// deterministic ORDER BY id, so two transactions locking the same pair never
// deadlock on acquisition order.
func (t *ledgerTx) ProfilesForUpdate(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*profile.Profile, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))

	for _, id := range ids {
		_, dup := seen[id]
		if dup {
			continue
		}

		seen[id] = struct{}{}

		unique = append(unique, id)
	}

	placeholders := make([]string, len(unique))
	args := make([]any, len(unique))

	for i, id := range unique {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `
		SELECT id, first_name, last_name, profession, balance, type, created_at, updated_at
		FROM profiles
		WHERE id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY id
		FOR UPDATE
	`

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("locking profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[uuid.UUID]*profile.Profile, len(unique))

	for rows.Next() {
		var p profile.Profile

		var roleStr string

		if err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.Profession, &p.Balance, &roleStr,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}

		p.Role = profile.Role(roleStr)
		profiles[p.ID] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile rows: %w", err)
	}

	if len(profiles) != len(unique) {
		return nil, profile.ErrNotFound
	}

	return profiles, nil
}

func (t *ledgerTx) AddBalance(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	query := `
		UPDATE profiles
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING balance
	`

	var balance int64

	err := t.tx.QueryRowContext(ctx, query, delta, id).Scan(&balance)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, profile.ErrNotFound
		}

		return 0, fmt.Errorf("updating balance: %w", err)
	}

	return balance, nil
}

func (t *ledgerTx) MarkJobPaid(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE jobs
		SET paid = TRUE, paid_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	res, err := t.tx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("marking job paid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking job paid: %w", err)
	}

	if affected == 0 {
		return job.ErrNotFound
	}

	return nil
}

func (t *ledgerTx) UnpaidTotal(ctx context.Context, clientID uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(j.price), 0)
		FROM jobs j
		JOIN contracts c ON j.contract_id = c.id
		WHERE c.client_id = $1 AND j.paid IS NOT TRUE
	`

	var total int64
	if err := t.tx.QueryRowContext(ctx, query, clientID).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing unpaid jobs: %w", err)
	}

	return total, nil
}
