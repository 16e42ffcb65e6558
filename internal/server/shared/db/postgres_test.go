package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubOpen(t *testing.T, db *sql.DB, err error) {
	t.Helper()
	orig := sqlOpen
	t.Cleanup(func() { sqlOpen = orig })
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driver)
		return db, err
	}
}

func TestOpenPostgres(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	stubOpen(t, mockDB, nil)

	mock.ExpectPing()

	got, err := OpenPostgres(context.Background(), "postgres://x")
	require.NoError(t, err)
	assert.Same(t, mockDB, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_PingFails(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	stubOpen(t, mockDB, nil)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()

	_, err = OpenPostgres(context.Background(), "postgres://x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db ping error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_OpenFails(t *testing.T) {
	stubOpen(t, nil, errors.New("bad dsn"))

	_, err := OpenPostgres(context.Background(), "::")
	assert.ErrorContains(t, err, "db open error")
}
