package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrombouts/gigpay/internal/profile"
	"github.com/jrombouts/gigpay/internal/profile/store"
)

var profileCols = []string{"id", "first_name", "last_name", "profession", "balance", "type", "created_at", "updated_at"}

func TestGetProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()

	mock.ExpectQuery(`FROM profiles p`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(id, "Ada", "Lovelace", "", int64(10000), "client", time.Now(), nil))

	p, err := store.New(db).GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, profile.RoleClient, p.Role)
	assert.Equal(t, int64(10000), p.Balance)
	assert.Equal(t, "Ada Lovelace", p.FullName())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfile_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()

	mock.ExpectQuery(`FROM profiles p`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(profileCols))

	_, err = store.New(db).GetProfile(context.Background(), id)
	assert.ErrorIs(t, err, profile.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListProfiles_FiltersByRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE p\.type = \$1`).
		WithArgs(string(profile.RoleContractor)).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(uuid.New(), "Joe", "Smith", "welder", int64(0), "contractor", time.Now(), nil))

	role := profile.RoleContractor
	profiles, err := store.New(db).ListProfiles(context.Background(), &role)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "welder", profiles[0].Profession)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListProfiles_All(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM profiles p`).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(uuid.New(), "Ada", "Lovelace", "", int64(10000), "client", time.Now(), nil).
			AddRow(uuid.New(), "Joe", "Smith", "welder", int64(0), "contractor", time.Now(), nil))

	profiles, err := store.New(db).ListProfiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}
