package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/logging"
	"github.com/dmitrijs2005/tuchka/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokenConfig = TokenConfig{
	Secret:   []byte("0123456789abcdef0123456789abcdef"),
	Issuer:   "tuchka",
	Audience: "tuchka-clients",
}

func newAuthentication(store *memStore) *AuthenticationService {
	return NewAuthenticationService(store, testTokenConfig, logging.Nop())
}

func verify(t *testing.T, token string) *auth.Principal {
	t.Helper()
	p, err := auth.NewVerifier(testTokenConfig.Secret, testTokenConfig.Issuer, testTokenConfig.Audience).Verify(token)
	require.NoError(t, err)
	return p
}

func TestLogin_ClaimsAndExpiry(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, newRegistration(store).RegisterAdmin(ctx, "bob", "bob@x.com", "Pw1!"))
	u := store.users["bob"]
	require.NoError(t, store.AddToRole(ctx, u, common.RoleUser))

	svc := newAuthentication(store)
	before := time.Now().Truncate(time.Second)
	s, err := svc.Login(ctx, "bob", "Pw1!")
	require.NoError(t, err)
	after := time.Now()

	p := verify(t, s.Token)
	assert.Equal(t, "bob", p.Name)
	assert.ElementsMatch(t, []string{common.RoleAdmin, common.RoleUser}, p.Roles)
	assert.NotEmpty(t, p.TokenID)

	assert.False(t, p.ExpiresAt.Before(before.Add(SessionLifetime)))
	assert.False(t, p.ExpiresAt.After(after.Add(SessionLifetime)))

	assert.Equal(t, "bob", s.UserName)
	assert.Equal(t, p.ExpiresAt.UTC().Format(ExpirationLayout), s.Expiration)
	assert.True(t, s.IsAdmin)
}

func TestLogin_FixedClock(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, newRegistration(store).Register(ctx, "alice", "alice@x.com", "Pw1!"))

	svc := newAuthentication(store)
	svc.now = func() time.Time { return time.Date(2026, 1, 1, 12, 0, 0, 0, time.FixedZone("X", 3*3600)) }
	svc.newID = func() string { return "fixed-jti" }

	s, err := svc.Login(ctx, "alice", "Pw1!")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-08T09:00:00", s.Expiration)

	_, err = auth.NewVerifier(testTokenConfig.Secret, testTokenConfig.Issuer, testTokenConfig.Audience).Verify(s.Token)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestLogin_FreshTokenIDPerLogin(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, newRegistration(store).Register(ctx, "alice", "alice@x.com", "Pw1!"))
	svc := newAuthentication(store)

	a, err := svc.Login(ctx, "alice", "Pw1!")
	require.NoError(t, err)
	b, err := svc.Login(ctx, "alice", "Pw1!")
	require.NoError(t, err)

	assert.NotEqual(t, verify(t, a.Token).TokenID, verify(t, b.Token).TokenID)
}

func TestLogin_UnauthenticatedOutcomesIdentical(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, newRegistration(store).Register(ctx, "alice", "alice@x.com", "Pw1!"))
	svc := newAuthentication(store)

	s1, errWrongPassword := svc.Login(ctx, "alice", "wrong")
	s2, errUnknownUser := svc.Login(ctx, "mallory", "Pw1!")

	assert.Nil(t, s1)
	assert.Nil(t, s2)
	assert.Equal(t, errWrongPassword, errUnknownUser)
	assert.ErrorIs(t, errWrongPassword, common.ErrUnauthenticated)
}

func TestLogin_StoreFailurePropagates(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, newRegistration(store).Register(ctx, "alice", "alice@x.com", "Pw1!"))
	store.fail["GetRoles"] = errors.New("db down")

	_, err := newAuthentication(store).Login(ctx, "alice", "Pw1!")
	assert.EqualError(t, err, "db down")
	assert.NotErrorIs(t, err, common.ErrUnauthenticated)
}

func TestLogin_SigningFailureIsInternal(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	require.NoError(t, newRegistration(store).Register(ctx, "alice", "alice@x.com", "Pw1!"))

	svc := NewAuthenticationService(store, TokenConfig{Issuer: "tuchka"}, logging.Nop())
	session, err := svc.Login(ctx, "alice", "Pw1!")
	assert.Nil(t, session)
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.NotErrorIs(t, err, common.ErrUnauthenticated)
}

func TestExample_AliceAndBob(t *testing.T) {
	store := newMemStore()
	reg := newRegistration(store)
	svc := newAuthentication(store)
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, "alice", "alice@x.com", "Pw1!"))
	s, err := svc.Login(ctx, "alice", "Pw1!")
	require.NoError(t, err)
	assert.False(t, s.IsAdmin)
	assert.Empty(t, verify(t, s.Token).Roles)

	require.NoError(t, reg.RegisterAdmin(ctx, "bob", "bob@x.com", "Pw1!"))
	s, err = svc.Login(ctx, "bob", "Pw1!")
	require.NoError(t, err)
	assert.True(t, s.IsAdmin)
	assert.Equal(t, []string{common.RoleAdmin}, verify(t, s.Token).Roles)
}
