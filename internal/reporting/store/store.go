package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jrombouts/gigpay/internal/reporting"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) TopProfession(ctx context.Context, start, end time.Time) (*reporting.ProfessionEarnings, error) {
	query := `
		SELECT p.profession, SUM(j.price) AS earned
		FROM jobs j
		JOIN contracts c ON j.contract_id = c.id
		JOIN profiles p ON c.contractor_id = p.id
		WHERE j.paid IS TRUE AND j.created_at BETWEEN $1 AND $2
		GROUP BY p.profession
		ORDER BY earned DESC, p.profession ASC
		LIMIT 1
	`

	var pe reporting.ProfessionEarnings

	err := s.db.QueryRowContext(ctx, query, start, end).Scan(&pe.Profession, &pe.Earned)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, reporting.ErrNoData
		}

		return nil, fmt.Errorf("aggregating professions: %w", err)
	}

	return &pe, nil
}

func (s *Store) TopClients(ctx context.Context, start, end time.Time, limit int) ([]*reporting.ClientTotal, error) {
	query := `
		SELECT p.id, p.first_name || ' ' || p.last_name AS full_name, SUM(j.price) AS paid
		FROM jobs j
		JOIN contracts c ON j.contract_id = c.id
		JOIN profiles p ON c.client_id = p.id
		WHERE j.paid IS TRUE AND j.created_at BETWEEN $1 AND $2
		GROUP BY p.id, p.first_name, p.last_name
		ORDER BY paid DESC, p.id ASC
		LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("aggregating clients: %w", err)
	}
	defer rows.Close()

	var clients []*reporting.ClientTotal

	for rows.Next() {
		var ct reporting.ClientTotal

		if err := rows.Scan(&ct.ID, &ct.FullName, &ct.Paid); err != nil {
			return nil, fmt.Errorf("scanning client total: %w", err)
		}

		clients = append(clients, &ct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}
