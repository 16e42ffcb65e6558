// Package documents contains the PostgreSQL-backed document metadata repository.
package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/dbx"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
)

const selectColumns = `SELECT id, owner_id, file_name, title, content_type, size, storage_key, version, created_at FROM documents`

// PostgresRepository implements document storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts doc with version 1 and fills in Version and CreatedAt.
func (r *PostgresRepository) Create(ctx context.Context, doc *models.Document) (*models.Document, error) {
	query :=
		`INSERT INTO documents (id, owner_id, file_name, title, content_type, size, storage_key, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, 1)
		 RETURNING version, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		doc.ID, doc.OwnerID, doc.FileName, doc.Title, doc.ContentType, doc.Size, doc.StorageKey).
		Scan(&doc.Version, &doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	query := selectColumns + ` WHERE id = $1`

	doc := &models.Document{}
	if err := scanDocument(r.db.QueryRowContext(ctx, query, id), doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Document, error) {
	return r.list(ctx, selectColumns+` WHERE owner_id = $1 ORDER BY created_at, id`, ownerID)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Document, error) {
	return r.list(ctx, selectColumns+` ORDER BY created_at, id`)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Document, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", err)
	}
	defer rows.Close()

	var result []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		if err := scanDocument(rows, doc); err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateTitle renames the document if its stored version still equals
// version, and returns the new version. A stale version yields
// common.ErrVersionConflict.
func (r *PostgresRepository) UpdateTitle(ctx context.Context, id, title string, version int64) (int64, error) {
	query :=
		`UPDATE documents SET title = $2, version = version + 1
		 WHERE id = $1 AND version = $3
		 RETURNING version
		 `

	var newVersion int64
	if err := r.db.QueryRowContext(ctx, query, id, title, version).Scan(&newVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrVersionConflict
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return newVersion, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM documents WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner, doc *models.Document) error {
	return s.Scan(&doc.ID, &doc.OwnerID, &doc.FileName, &doc.Title, &doc.ContentType,
		&doc.Size, &doc.StorageKey, &doc.Version, &doc.CreatedAt)
}
