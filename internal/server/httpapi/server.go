// Package httpapi exposes the account and document services over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/tuchka/internal/logging"
	"github.com/dmitrijs2005/tuchka/internal/server/auth"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
	"github.com/dmitrijs2005/tuchka/internal/server/services"
	"go.opentelemetry.io/otel/trace"
)

// defaultMaxBodyBytes caps JSON request bodies.
const defaultMaxBodyBytes = 1 << 20

// defaultMaxUploadBytes caps a whole multipart document upload.
const defaultMaxUploadBytes = 64 << 20

type Registrar interface {
	Register(ctx context.Context, userName, email, password string) error
	RegisterAdmin(ctx context.Context, userName, email, password string) error
}

type Authenticator interface {
	Login(ctx context.Context, userName, password string) (*services.Session, error)
}

type PasswordManager interface {
	ChangePassword(ctx context.Context, userName, current, newPassword, confirm string) error
	AdminResetPassword(ctx context.Context, userName, newPassword, confirm string) error
	IssueResetToken(ctx context.Context, userName string) (string, error)
	ResetPassword(ctx context.Context, userName, token, newPassword, confirm string) error
}

type DocumentManager interface {
	Upload(ctx context.Context, userName string, files []services.Upload) (*services.UploadResult, error)
	List(ctx context.Context, userName string) ([]*models.Document, error)
	ListAll(ctx context.Context) ([]*models.Document, error)
	Get(ctx context.Context, userName, id string) (*models.Document, error)
	Open(ctx context.Context, userName, id string) (*models.Document, io.ReadCloser, error)
	Rename(ctx context.Context, userName, id, title string, version int64) (*models.Document, error)
	Delete(ctx context.Context, userName, id string) error
	AdminDelete(ctx context.Context, id string) error
}

type Deps struct {
	Logger         logging.Logger
	Verifier       *auth.Verifier
	Registration   Registrar
	Authentication Authenticator
	Passwords      PasswordManager
	// Documents is optional; without it the document routes are not mounted.
	Documents      DocumentManager
	MaxBodyBytes   int64
	MaxUploadBytes int64
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

type Server struct {
	logger         logging.Logger
	verifier       *auth.Verifier
	registration   Registrar
	authentication Authenticator
	passwords      PasswordManager
	documents      DocumentManager
	maxBodyBytes   int64
	maxUploadBytes int64
	tracerProvider trace.TracerProvider
}

func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if deps.Verifier == nil {
		return nil, errors.New("token verifier is required")
	}
	if deps.Registration == nil || deps.Authentication == nil || deps.Passwords == nil {
		return nil, errors.New("account services are required")
	}

	s := &Server{
		logger:         deps.Logger,
		verifier:       deps.Verifier,
		registration:   deps.Registration,
		authentication: deps.Authentication,
		passwords:      deps.Passwords,
		documents:      deps.Documents,
		maxBodyBytes:   deps.MaxBodyBytes,
		maxUploadBytes: deps.MaxUploadBytes,
		tracerProvider: deps.TracerProvider,
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = defaultMaxBodyBytes
	}
	if s.maxUploadBytes <= 0 {
		s.maxUploadBytes = defaultMaxUploadBytes
	}
	return s, nil
}
