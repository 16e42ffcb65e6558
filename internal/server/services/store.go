// Package services contains server-side business logic: registration,
// authentication, the password lifecycle and the document store.
package services

import (
	"context"

	"github.com/dmitrijs2005/tuchka/internal/server/models"
)

// CredentialStore owns accounts, password hashes, role membership and reset
// tokens. Lookups of missing accounts return common.ErrorNotFound; rejected
// credentials return a *common.PolicyError.
type CredentialStore interface {
	FindByName(ctx context.Context, userName string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, userName, email, password string) (*models.User, error)
	CheckPassword(ctx context.Context, user *models.User, password string) (bool, error)
	ChangePassword(ctx context.Context, user *models.User, current, newPassword string) error
	ValidatePassword(ctx context.Context, user *models.User, password string) error

	RoleExists(ctx context.Context, name string) (bool, error)
	CreateRole(ctx context.Context, name string) error
	AddToRole(ctx context.Context, user *models.User, role string) error
	GetRoles(ctx context.Context, user *models.User) ([]string, error)
	IsInRole(ctx context.Context, user *models.User, role string) (bool, error)

	GeneratePasswordResetToken(ctx context.Context, user *models.User) (string, error)
	ResetPassword(ctx context.Context, user *models.User, token, newPassword string) error
}
