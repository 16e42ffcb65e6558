package documents

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docColumns = []string{"id", "owner_id", "file_name", "title", "content_type", "size", "storage_key", "version", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

func sampleDoc() *models.Document {
	return &models.Document{
		ID:          "d-1",
		OwnerID:     "u-1",
		FileName:    "report.pdf",
		Title:       "report.pdf",
		ContentType: "application/pdf",
		Size:        42,
		StorageKey:  "documents/2026/01/02/d-1",
		Version:     1,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func docRow(rows *sqlmock.Rows, d *models.Document) *sqlmock.Rows {
	return rows.AddRow(d.ID, d.OwnerID, d.FileName, d.Title, d.ContentType, d.Size, d.StorageKey, d.Version, d.CreatedAt)
}

func TestCreate(t *testing.T) {
	query := `INSERT INTO documents \(id, owner_id, file_name, title, content_type, size, storage_key, version\)`

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		want := sampleDoc()
		in := *want
		in.Version, in.CreatedAt = 0, time.Time{}

		mock.ExpectQuery(query).
			WithArgs(in.ID, in.OwnerID, in.FileName, in.Title, in.ContentType, in.Size, in.StorageKey).
			WillReturnRows(sqlmock.NewRows([]string{"version", "created_at"}).AddRow(int64(1), want.CreatedAt))

		got, err := repo.Create(context.Background(), &in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("fk violation"))

		_, err := repo.Create(context.Background(), sampleDoc())
		assert.ErrorContains(t, err, "db error: fk violation")
	})
}

func TestGetByID(t *testing.T) {
	query := `SELECT id, owner_id, file_name, title, content_type, size, storage_key, version, created_at FROM documents WHERE id = \$1`

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		d := sampleDoc()
		mock.ExpectQuery(query).WithArgs("d-1").WillReturnRows(docRow(sqlmock.NewRows(docColumns), d))

		got, err := repo.GetByID(context.Background(), "d-1")
		require.NoError(t, err)
		assert.Equal(t, d, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(query).WithArgs("nope").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), "nope")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("boom"))

		_, err := repo.GetByID(context.Background(), "d-1")
		assert.ErrorContains(t, err, "boom")
	})
}

func TestListByOwnerAndAll(t *testing.T) {
	d1 := sampleDoc()
	d2 := sampleDoc()
	d2.ID, d2.OwnerID = "d-2", "u-2"

	t.Run("by owner", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`FROM documents WHERE owner_id = \$1 ORDER BY created_at, id`).
			WithArgs("u-1").
			WillReturnRows(docRow(sqlmock.NewRows(docColumns), d1))

		got, err := repo.ListByOwner(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, []*models.Document{d1}, got)
	})

	t.Run("all", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`FROM documents ORDER BY created_at, id`).
			WillReturnRows(docRow(docRow(sqlmock.NewRows(docColumns), d1), d2))

		got, err := repo.ListAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []*models.Document{d1, d2}, got)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`FROM documents`).WillReturnError(errors.New("boom"))

		_, err := repo.ListAll(context.Background())
		assert.ErrorContains(t, err, "failed to select documents")
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(`FROM documents`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("d-1"))

		_, err := repo.ListAll(context.Background())
		assert.Error(t, err)
	})
}

func TestUpdateTitle(t *testing.T) {
	query := `UPDATE documents SET title = \$2, version = version \+ 1 WHERE id = \$1 AND version = \$3 RETURNING version`

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(query).WithArgs("d-1", "renamed", int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(2)))

		v, err := repo.UpdateTitle(context.Background(), "d-1", "renamed", 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), v)
	})

	t.Run("stale version", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(query).WithArgs("d-1", "renamed", int64(1)).WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateTitle(context.Background(), "d-1", "renamed", 1)
		assert.ErrorIs(t, err, common.ErrVersionConflict)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("boom"))

		_, err := repo.UpdateTitle(context.Background(), "d-1", "renamed", 1)
		assert.ErrorContains(t, err, "boom")
		assert.NotErrorIs(t, err, common.ErrVersionConflict)
	})
}

func TestDelete(t *testing.T) {
	query := `DELETE FROM documents WHERE id = \$1`

	tests := []struct {
		name    string
		result  sql.Result
		err     error
		wantErr error
		wantMsg string
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "missing", result: sqlmock.NewResult(0, 0), wantErr: common.ErrorNotFound},
		{name: "exec error", err: errors.New("boom"), wantMsg: "failed to delete document"},
		{name: "rows affected error", result: sqlmock.NewErrorResult(errors.New("ra")), wantMsg: "failed to get rows affected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			exp := mock.ExpectExec(query).WithArgs("d-1")
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.Delete(context.Background(), "d-1")
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.ErrorContains(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
