package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/server/identity"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
	"github.com/google/uuid"
)

// memStore is an in-memory CredentialStore. Passwords are kept in clear in
// PasswordHash; policy checks use identity.DefaultPolicy.
type memStore struct {
	mu sync.Mutex

	users       map[string]*models.User
	roleCreates map[string]int
	membership  map[string]map[string]bool
	tokens      map[string]resetRecord
	mutations   int

	// fail, when set for a method name, is returned by that method.
	fail map[string]error
}

type resetRecord struct {
	userID string
	stamp  string
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]*models.User{},
		roleCreates: map[string]int{},
		membership:  map[string]map[string]bool{},
		tokens:      map[string]resetRecord{},
		fail:        map[string]error{},
	}
}

func (m *memStore) FindByName(_ context.Context, userName string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["FindByName"]; err != nil {
		return nil, err
	}
	u, ok := m.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memStore) Create(_ context.Context, userName, email, password string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reasons := identity.DefaultPolicy.CheckAccount(userName, email)
	reasons = append(reasons, identity.DefaultPolicy.CheckPassword(password)...)
	if len(reasons) > 0 {
		return nil, common.NewPolicyError(reasons...)
	}

	u := &models.User{
		ID:            uuid.NewString(),
		UserName:      userName,
		Email:         email,
		PasswordHash:  password,
		SecurityStamp: uuid.NewString(),
	}
	m.users[userName] = u
	m.mutations++
	cp := *u
	return &cp, nil
}

func (m *memStore) CheckPassword(_ context.Context, user *models.User, password string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[user.UserName].PasswordHash == password, nil
}

func (m *memStore) ChangePassword(_ context.Context, user *models.User, current, newPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := m.users[user.UserName]
	if stored.PasswordHash != current {
		return common.NewPolicyError("Incorrect password.")
	}
	return m.setPasswordLocked(stored, newPassword)
}

func (m *memStore) setPasswordLocked(u *models.User, password string) error {
	if reasons := identity.DefaultPolicy.CheckPassword(password); len(reasons) > 0 {
		return common.NewPolicyError(reasons...)
	}
	u.PasswordHash = password
	u.SecurityStamp = uuid.NewString()
	m.mutations++
	return nil
}

func (m *memStore) RoleExists(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["RoleExists"]; err != nil {
		return false, err
	}
	return m.roleCreates[name] > 0, nil
}

func (m *memStore) CreateRole(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roleCreates[name]++
	return nil
}

func (m *memStore) AddToRole(_ context.Context, user *models.User, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.roleCreates[role] == 0 {
		return fmt.Errorf("role %s: %w", role, common.ErrorNotFound)
	}
	if m.membership[user.ID] == nil {
		m.membership[user.ID] = map[string]bool{}
	}
	m.membership[user.ID][role] = true
	return nil
}

func (m *memStore) GetRoles(_ context.Context, user *models.User) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["GetRoles"]; err != nil {
		return nil, err
	}
	var roles []string
	for r := range m.membership[user.ID] {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles, nil
}

func (m *memStore) IsInRole(_ context.Context, user *models.User, role string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.membership[user.ID][role], nil
}

func (m *memStore) ValidatePassword(_ context.Context, _ *models.User, password string) error {
	if reasons := identity.DefaultPolicy.CheckPassword(password); len(reasons) > 0 {
		return common.NewPolicyError(reasons...)
	}
	return nil
}

func (m *memStore) GeneratePasswordResetToken(_ context.Context, user *models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail["GeneratePasswordResetToken"]; err != nil {
		return "", err
	}
	token := uuid.NewString()
	stored := m.users[user.UserName]
	m.tokens[token] = resetRecord{userID: stored.ID, stamp: stored.SecurityStamp}
	return token, nil
}

func (m *memStore) ResetPassword(_ context.Context, user *models.User, token, newPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if reasons := identity.DefaultPolicy.CheckPassword(newPassword); len(reasons) > 0 {
		return common.NewPolicyError(reasons...)
	}

	stored := m.users[user.UserName]
	rec, ok := m.tokens[token]
	if !ok {
		return common.ErrInvalidToken
	}
	delete(m.tokens, token)
	if rec.userID != stored.ID || rec.stamp != stored.SecurityStamp {
		return common.ErrInvalidToken
	}
	return m.setPasswordLocked(stored, newPassword)
}
