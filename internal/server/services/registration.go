package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/logging"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
)

type RegistrationService struct {
	store  CredentialStore
	roles  *RoleBootstrapper
	logger logging.Logger
}

func NewRegistrationService(store CredentialStore, roles *RoleBootstrapper, logger logging.Logger) *RegistrationService {
	return &RegistrationService{store: store, roles: roles, logger: logger}
}

// Register creates a plain account. The user name is checked before the
// email, so a request clashing on both reports the user name.
func (s *RegistrationService) Register(ctx context.Context, userName, email, password string) error {
	_, err := s.create(ctx, userName, email, password)
	return err
}

// RegisterAdmin creates an account and grants it the Admin role, creating
// the built-in roles first if needed.
func (s *RegistrationService) RegisterAdmin(ctx context.Context, userName, email, password string) error {
	user, err := s.create(ctx, userName, email, password)
	if err != nil {
		return err
	}

	if err := s.roles.GrantAdmin(ctx, user); err != nil {
		s.logger.Error(ctx, "granting admin role failed", "user", userName, "error", err)
		return err
	}

	s.logger.Info(ctx, "admin registered", "user", userName)
	return nil
}

func (s *RegistrationService) create(ctx context.Context, userName, email, password string) (*models.User, error) {
	if err := s.ensureAbsent(ctx, s.store.FindByName, userName, common.ErrDuplicateUsername); err != nil {
		return nil, err
	}
	if err := s.ensureAbsent(ctx, s.store.FindByEmail, email, common.ErrDuplicateEmail); err != nil {
		return nil, err
	}

	return s.store.Create(ctx, userName, email, password)
}

func (s *RegistrationService) ensureAbsent(ctx context.Context,
	find func(context.Context, string) (*models.User, error), key string, dup error) error {

	_, err := find(ctx, key)
	switch {
	case err == nil:
		return dup
	case errors.Is(err, common.ErrorNotFound):
		return nil
	default:
		return err
	}
}
