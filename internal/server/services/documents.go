package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/dbx"
	"github.com/dmitrijs2005/tuchka/internal/logging"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tuchka/internal/server/storage"
	"github.com/google/uuid"
)

// BlobStore holds document contents by key.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Upload is one file of a multi-file upload.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadResult struct {
	Count int
	Size  int64
	IDs   []string
}

// DocumentService stores documents owned by accounts. Owners are identified
// by user name; every owner-scoped call fails with common.ErrForbidden for
// documents belonging to someone else.
type DocumentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       BlobStore
	logger      logging.Logger

	now func() time.Time
}

func NewDocumentService(db *sql.DB, m repomanager.RepositoryManager, blobs BlobStore, logger logging.Logger) *DocumentService {
	return &DocumentService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *DocumentService) ownerID(ctx context.Context, userName string) (string, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, userName)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// Upload stores every file and then records all of them in one transaction.
// If recording fails the stored objects are removed again.
func (s *DocumentService) Upload(ctx context.Context, userName string, files []Upload) (*UploadResult, error) {
	ownerID, err := s.ownerID(ctx, userName)
	if err != nil {
		return nil, err
	}

	docs := make([]*models.Document, 0, len(files))
	for _, f := range files {
		doc := &models.Document{
			ID:          uuid.NewString(),
			OwnerID:     ownerID,
			FileName:    f.FileName,
			Title:       f.FileName,
			ContentType: f.ContentType,
			Size:        f.Size,
			StorageKey:  storage.NewStorageKey(s.now().UTC()),
		}
		if err := s.blobs.Put(ctx, doc.StorageKey, f.Body, f.Size, f.ContentType); err != nil {
			s.removeBlobs(ctx, docs)
			return nil, err
		}
		docs = append(docs, doc)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Documents(tx)
		for _, doc := range docs {
			if _, err := repo.Create(ctx, doc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.removeBlobs(ctx, docs)
		return nil, fmt.Errorf("error creating documents: %w", err)
	}

	res := &UploadResult{Count: len(docs)}
	for _, doc := range docs {
		res.Size += doc.Size
		res.IDs = append(res.IDs, doc.ID)
	}
	return res, nil
}

func (s *DocumentService) removeBlobs(ctx context.Context, docs []*models.Document) {
	for _, doc := range docs {
		if err := s.blobs.Delete(ctx, doc.StorageKey); err != nil {
			s.logger.Warn(ctx, "orphaned document object", "key", doc.StorageKey, "error", err)
		}
	}
}

func (s *DocumentService) List(ctx context.Context, userName string) ([]*models.Document, error) {
	ownerID, err := s.ownerID(ctx, userName)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Documents(s.db).ListByOwner(ctx, ownerID)
}

func (s *DocumentService) ListAll(ctx context.Context) ([]*models.Document, error) {
	return s.repomanager.Documents(s.db).ListAll(ctx)
}

// Get returns the metadata of a document owned by userName.
func (s *DocumentService) Get(ctx context.Context, userName, id string) (*models.Document, error) {
	ownerID, err := s.ownerID(ctx, userName)
	if err != nil {
		return nil, err
	}

	doc, err := s.repomanager.Documents(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.OwnerID != ownerID {
		return nil, common.ErrForbidden
	}
	return doc, nil
}

// Open returns the metadata and the contents of a document owned by
// userName. The caller closes the reader.
func (s *DocumentService) Open(ctx context.Context, userName, id string) (*models.Document, io.ReadCloser, error) {
	doc, err := s.Get(ctx, userName, id)
	if err != nil {
		return nil, nil, err
	}

	body, err := s.blobs.Get(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return doc, body, nil
}

// Rename changes the title if version is still current and returns the
// updated document. A stale version yields common.ErrVersionConflict; the
// caller should re-read and retry.
func (s *DocumentService) Rename(ctx context.Context, userName, id, title string, version int64) (*models.Document, error) {
	doc, err := s.Get(ctx, userName, id)
	if err != nil {
		return nil, err
	}

	newVersion, err := s.repomanager.Documents(s.db).UpdateTitle(ctx, id, title, version)
	if err != nil {
		return nil, err
	}

	doc.Title = title
	doc.Version = newVersion
	return doc, nil
}

func (s *DocumentService) Delete(ctx context.Context, userName, id string) error {
	doc, err := s.Get(ctx, userName, id)
	if err != nil {
		return err
	}
	return s.delete(ctx, doc)
}

// AdminDelete removes any document regardless of owner.
func (s *DocumentService) AdminDelete(ctx context.Context, id string) error {
	doc, err := s.repomanager.Documents(s.db).GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.delete(ctx, doc)
}

func (s *DocumentService) delete(ctx context.Context, doc *models.Document) error {
	if err := s.repomanager.Documents(s.db).Delete(ctx, doc.ID); err != nil {
		return err
	}
	s.removeBlobs(ctx, []*models.Document{doc})
	return nil
}
