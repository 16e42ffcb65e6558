package roles

import (
	"context"

	"github.com/dmitrijs2005/tuchka/internal/server/models"
)

// Repository persists roles and role membership.
type Repository interface {
	GetByName(ctx context.Context, name string) (*models.Role, error)
	Create(ctx context.Context, role *models.Role) error
	AddUser(ctx context.Context, userID, roleID string) error
	ListUserRoles(ctx context.Context, userID string) ([]string, error)
	IsInRole(ctx context.Context, userID, roleName string) (bool, error)
}
