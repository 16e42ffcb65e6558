package services

import (
	"context"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
)

// RoleBootstrapper creates the built-in roles on first use.
type RoleBootstrapper struct {
	store CredentialStore
}

func NewRoleBootstrapper(store CredentialStore) *RoleBootstrapper {
	return &RoleBootstrapper{store: store}
}

// EnsureRoles creates Admin and User if they are missing.
func (b *RoleBootstrapper) EnsureRoles(ctx context.Context) error {
	for _, name := range []string{common.RoleAdmin, common.RoleUser} {
		exists, err := b.store.RoleExists(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := b.store.CreateRole(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// GrantAdmin ensures the built-in roles and makes user an Admin. Running it
// again for the same user changes nothing.
func (b *RoleBootstrapper) GrantAdmin(ctx context.Context, user *models.User) error {
	if err := b.EnsureRoles(ctx); err != nil {
		return err
	}

	exists, err := b.store.RoleExists(ctx, common.RoleAdmin)
	if err != nil || !exists {
		return err
	}
	return b.store.AddToRole(ctx, user, common.RoleAdmin)
}
