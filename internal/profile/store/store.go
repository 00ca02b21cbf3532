package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jrombouts/gigpay/internal/profile"
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

// scanProfile reads a profile row from the scanner.
// Expected column order: id, first_name, last_name, profession, balance, type, created_at, updated_at
func scanProfile(s scanner) (*profile.Profile, error) {
	var p profile.Profile

	var roleStr string

	if err := s.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Profession, &p.Balance, &roleStr,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Role = profile.Role(roleStr)

	return &p, nil
}

const selectProfileColumns = `
	p.id, p.first_name, p.last_name, p.profession, p.balance, p.type, p.created_at, p.updated_at
`

func (s *Store) GetProfile(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + selectProfileColumns + `
		FROM profiles p
		WHERE p.id = $1`

	p, err := scanProfile(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrNotFound
		}

		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return p, nil
}

func (s *Store) ListProfiles(ctx context.Context, role *profile.Role) ([]*profile.Profile, error) {
	query := `SELECT ` + selectProfileColumns + `
		FROM profiles p`

	var args []any

	if role != nil {
		query += " WHERE p.type = $1"

		args = append(args, *role)
	}

	query += " ORDER BY p.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*profile.Profile

	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}

		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile rows: %w", err)
	}

	return profiles, nil
}
