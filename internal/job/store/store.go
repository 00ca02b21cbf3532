package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jrombouts/gigpay/internal/job"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanJob reads a job row from the scanner.
// Expected column order: id, contract_id, description, price, paid, paid_at, created_at, updated_at
func scanJob(s scanner) (*job.Job, error) {
	var j job.Job

	var paid sql.NullBool

	if err := s.Scan(
		&j.ID, &j.ContractID, &j.Description, &j.Price, &paid, &j.PaidAt,
		&j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if paid.Valid {
		j.Paid = &paid.Bool
	}

	return &j, nil
}

const selectJobColumns = `
	j.id, j.contract_id, j.description, j.price, j.paid, j.paid_at, j.created_at, j.updated_at
`

func (s *Store) ListUnpaid(ctx context.Context, clientID, contractorID uuid.UUID) ([]*job.Job, error) {
	query := `SELECT ` + selectJobColumns + `
		FROM jobs j
		JOIN contracts c ON j.contract_id = c.id
		WHERE c.client_id = $1 AND c.contractor_id = $2
			AND c.status = $3
			AND j.paid IS NOT TRUE
		ORDER BY j.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, clientID, contractorID, job.StatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("listing unpaid jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*job.Job

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}

		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating job rows: %w", err)
	}

	return jobs, nil
}
