package identity

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/dbx"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/documents"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/roles"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/users"
)

// memRepos is an in-memory RepositoryManager; the DBTX handle is ignored.
type memRepos struct {
	mu         sync.Mutex
	users      map[string]*models.User
	roles      map[string]*models.Role
	membership map[string]map[string]bool
}

func newMemRepos() *memRepos {
	return &memRepos{
		users:      map[string]*models.User{},
		roles:      map[string]*models.Role{},
		membership: map[string]map[string]bool{},
	}
}

func (m *memRepos) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepos) Users(dbx.DBTX) users.Repository              { return memUsers{m} }
func (m *memRepos) Roles(dbx.DBTX) roles.Repository              { return memRoles{m} }
func (m *memRepos) Documents(dbx.DBTX) documents.Repository      { return nil }

type memUsers struct{ m *memRepos }

func (r memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, x := range r.m.users {
		if x.UserName == u.UserName {
			return nil, common.ErrDuplicateUsername
		}
		if x.Email == u.Email {
			return nil, common.ErrDuplicateEmail
		}
	}
	u.CreatedAt = time.Now()
	cp := *u
	r.m.users[u.ID] = &cp
	return u, nil
}

func (r memUsers) find(match func(*models.User) bool) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, x := range r.m.users {
		if match(x) {
			cp := *x
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memUsers) GetUserByLogin(_ context.Context, name string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.UserName == name })
}

func (r memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r memUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r memUsers) UpdatePassword(_ context.Context, id, hash, stamp string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash, u.SecurityStamp = hash, stamp
	return nil
}

type memRoles struct{ m *memRepos }

func (r memRoles) GetByName(_ context.Context, name string) (*models.Role, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if role, ok := r.m.roles[name]; ok {
		cp := *role
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (r memRoles) Create(_ context.Context, role *models.Role) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.roles[role.Name]; !ok {
		cp := *role
		r.m.roles[role.Name] = &cp
	}
	return nil
}

func (r memRoles) AddUser(_ context.Context, userID, roleID string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.membership[userID] == nil {
		r.m.membership[userID] = map[string]bool{}
	}
	r.m.membership[userID][roleID] = true
	return nil
}

func (r memRoles) ListUserRoles(_ context.Context, userID string) ([]string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var names []string
	for _, role := range r.m.roles {
		if r.m.membership[userID][role.ID] {
			names = append(names, role.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r memRoles) IsInRole(ctx context.Context, userID, roleName string) (bool, error) {
	names, _ := r.ListUserRoles(ctx, userID)
	for _, n := range names {
		if n == roleName {
			return true, nil
		}
	}
	return false, nil
}
