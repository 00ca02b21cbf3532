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
	"github.com/jrombouts/gigpay/internal/payment"
	"github.com/jrombouts/gigpay/internal/payment/store"
	"github.com/jrombouts/gigpay/internal/profile"
)

var (
	jobCols      = []string{"id", "contract_id", "description", "price", "paid", "paid_at", "created_at", "updated_at"}
	contractCols = []string{"id", "client_id", "contractor_id", "terms", "status", "created_at", "updated_at"}
	profileCols  = []string{"id", "first_name", "last_name", "profession", "balance", "type", "created_at", "updated_at"}
)

type ids struct {
	job        uuid.UUID
	contract   uuid.UUID
	client     uuid.UUID
	contractor uuid.UUID
}

func newIDs() ids {
	return ids{
		job:        uuid.New(),
		contract:   uuid.New(),
		client:     uuid.New(),
		contractor: uuid.New(),
	}
}

func expectJobRow(mock sqlmock.Sqlmock, id ids, price int64) {
	mock.ExpectQuery(`FROM jobs`).
		WithArgs(id.job).
		WillReturnRows(sqlmock.NewRows(jobCols).
			AddRow(id.job, id.contract, "fence repair", price, nil, nil, time.Now(), nil))
}

func expectContractRow(mock sqlmock.Sqlmock, id ids) {
	mock.ExpectQuery(`FROM contracts`).
		WithArgs(id.contract).
		WillReturnRows(sqlmock.NewRows(contractCols).
			AddRow(id.contract, id.client, id.contractor, "", "in_progress", time.Now(), nil))
}

func expectProfilePairRows(mock sqlmock.Sqlmock, id ids, clientBalance int64) {
	mock.ExpectQuery(`WHERE id IN \(\$1, \$2\)`).
		WithArgs(id.client, id.contractor).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(id.client, "Ada", "Lovelace", "", clientBalance, "client", time.Now(), nil).
			AddRow(id.contractor, "Joe", "Smith", "welder", int64(0), "contractor", time.Now(), nil))
}

func TestPayJob_CommitsBothBalanceWrites(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := newIDs()

	mock.ExpectBegin()
	expectJobRow(mock, id, 5000)
	expectContractRow(mock, id)
	expectProfilePairRows(mock, id, 10000)
	mock.ExpectQuery(`SET balance = balance \+ \$1`).
		WithArgs(int64(5000), id.contractor).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(5000)))
	mock.ExpectQuery(`SET balance = balance \+ \$1`).
		WithArgs(int64(-5000), id.client).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(5000)))
	mock.ExpectExec(`SET paid = TRUE`).
		WithArgs(id.job).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := payment.NewService(store.New(db))
	require.NoError(t, svc.PayJob(context.Background(), id.job, 5000))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayJob_InsufficientFundsRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := newIDs()

	mock.ExpectBegin()
	expectJobRow(mock, id, 5000)
	expectContractRow(mock, id)
	expectProfilePairRows(mock, id, 4999)
	mock.ExpectRollback()

	svc := payment.NewService(store.New(db))
	err = svc.PayJob(context.Background(), id.job, 5000)
	assert.ErrorIs(t, err, payment.ErrInsufficientFunds)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayJob_MissingJobRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := newIDs()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM jobs`).
		WithArgs(id.job).
		WillReturnRows(sqlmock.NewRows(jobCols))
	mock.ExpectRollback()

	svc := payment.NewService(store.New(db))
	err = svc.PayJob(context.Background(), id.job, 5000)
	assert.ErrorIs(t, err, job.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayJob_AlreadyPaidRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := newIDs()
	paidAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM jobs`).
		WithArgs(id.job).
		WillReturnRows(sqlmock.NewRows(jobCols).
			AddRow(id.job, id.contract, "fence repair", int64(5000), true, paidAt, time.Now(), nil))
	mock.ExpectRollback()

	svc := payment.NewService(store.New(db))
	err = svc.PayJob(context.Background(), id.job, 5000)
	assert.ErrorIs(t, err, payment.ErrAlreadyPaid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeposit_CreditsUpToCeiling(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clientID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE id IN \(\$1\)`).
		WithArgs(clientID).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(clientID, "Ada", "Lovelace", "", int64(50), "client", time.Now(), nil))
	mock.ExpectQuery(`COALESCE\(SUM\(j\.price\), 0\)`).
		WithArgs(clientID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(400)))
	mock.ExpectQuery(`SET balance = balance \+ \$1`).
		WithArgs(int64(100), clientID).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(150)))
	mock.ExpectCommit()

	svc := payment.NewService(store.New(db))
	balance, err := svc.Deposit(context.Background(), clientID, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(150), balance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeposit_OverCeilingRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clientID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE id IN \(\$1\)`).
		WithArgs(clientID).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(clientID, "Ada", "Lovelace", "", int64(50), "client", time.Now(), nil))
	mock.ExpectQuery(`COALESCE\(SUM\(j\.price\), 0\)`).
		WithArgs(clientID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(400)))
	mock.ExpectRollback()

	svc := payment.NewService(store.New(db))

	var limitErr *payment.LimitError

	_, err = svc.Deposit(context.Background(), clientID, 101)
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, int64(100), limitErr.Ceiling)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeposit_UnknownClientRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clientID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE id IN \(\$1\)`).
		WithArgs(clientID).
		WillReturnRows(sqlmock.NewRows(profileCols))
	mock.ExpectRollback()

	svc := payment.NewService(store.New(db))
	_, err = svc.Deposit(context.Background(), clientID, 100)
	assert.ErrorIs(t, err, profile.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
