package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrombouts/gigpay/internal/job"
	"github.com/jrombouts/gigpay/internal/job/store"
)

var jobCols = []string{"id", "contract_id", "description", "price", "paid", "paid_at", "created_at", "updated_at"}

func TestListUnpaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clientID := uuid.New()
	contractorID := uuid.New()
	contractID := uuid.New()
	jobID := uuid.New()

	mock.ExpectQuery(`JOIN contracts c ON j\.contract_id = c\.id`).
		WithArgs(clientID, contractorID, string(job.StatusInProgress)).
		WillReturnRows(sqlmock.NewRows(jobCols).
			AddRow(jobID, contractID, "fence repair", int64(5000), nil, nil, time.Now(), nil))

	jobs, err := store.New(db).ListUnpaid(context.Background(), clientID, contractorID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, jobID, jobs[0].ID)
	assert.Equal(t, int64(5000), jobs[0].Price)
	assert.False(t, jobs[0].IsPaid())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUnpaid_NoMatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clientID := uuid.New()
	contractorID := uuid.New()

	mock.ExpectQuery(`JOIN contracts c ON j\.contract_id = c\.id`).
		WithArgs(clientID, contractorID, string(job.StatusInProgress)).
		WillReturnRows(sqlmock.NewRows(jobCols))

	jobs, err := store.New(db).ListUnpaid(context.Background(), clientID, contractorID)
	require.NoError(t, err)
	assert.Empty(t, jobs)
	require.NoError(t, mock.ExpectationsWereMet())
}
