package documents

import (
	"context"

	"github.com/dmitrijs2005/tuchka/internal/server/models"
)

// Repository persists document metadata.
type Repository interface {
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)
	GetByID(ctx context.Context, id string) (*models.Document, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Document, error)
	ListAll(ctx context.Context) ([]*models.Document, error)
	UpdateTitle(ctx context.Context, id, title string, version int64) (int64, error)
	Delete(ctx context.Context, id string) error
}
