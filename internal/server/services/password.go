package services

import (
	"context"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/logging"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
)

// ResetTokenSender delivers a freshly issued reset token out of band.
type ResetTokenSender interface {
	SendResetToken(ctx context.Context, user *models.User, token string) error
}

type PasswordService struct {
	store  CredentialStore
	sender ResetTokenSender
	logger logging.Logger
}

type PasswordOption func(*PasswordService)

// WithResetTokenSender makes IssueResetToken hand every token to sender as
// well as returning it.
func WithResetTokenSender(sender ResetTokenSender) PasswordOption {
	return func(s *PasswordService) { s.sender = sender }
}

func NewPasswordService(store CredentialStore, logger logging.Logger, opts ...PasswordOption) *PasswordService {
	s := &PasswordService{store: store, logger: logger}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ChangePassword replaces the password of userName after verifying current.
func (s *PasswordService) ChangePassword(ctx context.Context, userName, current, newPassword, confirm string) error {
	user, err := s.store.FindByName(ctx, userName)
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return common.ErrPasswordMismatch
	}
	return s.store.ChangePassword(ctx, user, current, newPassword)
}

// AdminResetPassword sets a new password without knowing the current one.
// Callers must have checked that the requester is an Admin.
func (s *PasswordService) AdminResetPassword(ctx context.Context, userName, newPassword, confirm string) error {
	user, err := s.store.FindByName(ctx, userName)
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return common.ErrPasswordMismatch
	}
	if err := s.store.ValidatePassword(ctx, user, newPassword); err != nil {
		return err
	}

	token, err := s.store.GeneratePasswordResetToken(ctx, user)
	if err != nil {
		return err
	}
	if err := s.store.ResetPassword(ctx, user, token, newPassword); err != nil {
		return err
	}

	s.logger.Info(ctx, "password reset by admin", "user", userName)
	return nil
}

// IssueResetToken returns a single-use reset token for userName.
func (s *PasswordService) IssueResetToken(ctx context.Context, userName string) (string, error) {
	user, err := s.store.FindByName(ctx, userName)
	if err != nil {
		return "", err
	}

	token, err := s.store.GeneratePasswordResetToken(ctx, user)
	if err != nil {
		return "", err
	}

	if s.sender != nil {
		if err := s.sender.SendResetToken(ctx, user, token); err != nil {
			return "", err
		}
	}
	return token, nil
}

// ResetPassword redeems token and sets the new password.
func (s *PasswordService) ResetPassword(ctx context.Context, userName, token, newPassword, confirm string) error {
	user, err := s.store.FindByName(ctx, userName)
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return common.ErrPasswordMismatch
	}
	if token == "" {
		return common.ErrInvalidToken
	}
	return s.store.ResetPassword(ctx, user, token, newPassword)
}
