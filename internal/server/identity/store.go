// Package identity is the credential store behind the account services:
// accounts, password hashes, roles and password reset tokens.
package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"github.com/dmitrijs2005/tuchka/internal/cryptox"
	"github.com/dmitrijs2005/tuchka/internal/dbx"
	"github.com/dmitrijs2005/tuchka/internal/logging"
	"github.com/dmitrijs2005/tuchka/internal/server/models"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/resettokens"
	"github.com/google/uuid"
)

// resetTokenBytes is the entropy of a reset token; the token is its hex form.
const resetTokenBytes = 32

const incorrectPassword = "Incorrect password."

// Store keeps accounts and roles in PostgreSQL and reset tokens in Redis.
type Store struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	tokens   resettokens.Store
	hasher   *cryptox.Hasher
	policy   Policy
	tokenTTL time.Duration
	logger   logging.Logger
}

type Option func(*Store)

func WithPolicy(p Policy) Option {
	return func(s *Store) { s.policy = p }
}

func WithHasher(h *cryptox.Hasher) Option {
	return func(s *Store) { s.hasher = h }
}

func WithResetTokenTTL(ttl time.Duration) Option {
	return func(s *Store) { s.tokenTTL = ttl }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func NewStore(db *sql.DB, repos repomanager.RepositoryManager, tokens resettokens.Store, opts ...Option) *Store {
	s := &Store{
		db:       db,
		repos:    repos,
		tokens:   tokens,
		hasher:   cryptox.NewHasher(cryptox.DefaultParams),
		policy:   DefaultPolicy,
		tokenTTL: 24 * time.Hour,
		logger:   logging.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) FindByName(ctx context.Context, userName string) (*models.User, error) {
	return s.repos.Users(s.db).GetUserByLogin(ctx, userName)
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repos.Users(s.db).GetUserByEmail(ctx, email)
}

// Create validates and stores a new account with a fresh security stamp.
// All policy violations are reported together as a *common.PolicyError.
func (s *Store) Create(ctx context.Context, userName, email, password string) (*models.User, error) {
	reasons := s.policy.CheckAccount(userName, email)
	reasons = append(reasons, s.policy.CheckPassword(password)...)
	if len(reasons) > 0 {
		return nil, common.NewPolicyError(reasons...)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:            uuid.NewString(),
		UserName:      userName,
		Email:         email,
		PasswordHash:  hash,
		SecurityStamp: uuid.NewString(),
	}

	user, err = s.repos.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "account created", "user_id", user.ID)
	return user, nil
}

func (s *Store) CheckPassword(ctx context.Context, user *models.User, password string) (bool, error) {
	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return false, fmt.Errorf("verify password for %s: %w", user.ID, err)
	}
	return ok, nil
}

// ChangePassword replaces the password after checking current. A wrong
// current password is a policy failure, not an authentication failure.
func (s *Store) ChangePassword(ctx context.Context, user *models.User, current, newPassword string) error {
	ok, err := s.CheckPassword(ctx, user, current)
	if err != nil {
		return err
	}
	if !ok {
		return common.NewPolicyError(incorrectPassword)
	}

	return s.setPassword(ctx, user, newPassword)
}

func (s *Store) setPassword(ctx context.Context, user *models.User, password string) error {
	if reasons := s.policy.CheckPassword(password); len(reasons) > 0 {
		return common.NewPolicyError(reasons...)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	stamp := uuid.NewString()

	if err := s.repos.Users(s.db).UpdatePassword(ctx, user.ID, hash, stamp); err != nil {
		return err
	}

	user.PasswordHash = hash
	user.SecurityStamp = stamp
	return nil
}

func (s *Store) RoleExists(ctx context.Context, name string) (bool, error) {
	_, err := s.repos.Roles(s.db).GetByName(ctx, name)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

func (s *Store) CreateRole(ctx context.Context, name string) error {
	return s.repos.Roles(s.db).Create(ctx, &models.Role{ID: uuid.NewString(), Name: name})
}

// AddToRole grants an existing role; granting it twice is not an error.
func (s *Store) AddToRole(ctx context.Context, user *models.User, role string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r, err := s.repos.Roles(tx).GetByName(ctx, role)
		if err != nil {
			return fmt.Errorf("role %s: %w", role, err)
		}
		return s.repos.Roles(tx).AddUser(ctx, user.ID, r.ID)
	})
}

func (s *Store) GetRoles(ctx context.Context, user *models.User) ([]string, error) {
	return s.repos.Roles(s.db).ListUserRoles(ctx, user.ID)
}

// ValidatePassword reports the policy violations of password as a
// *common.PolicyError without touching any state.
func (s *Store) ValidatePassword(_ context.Context, _ *models.User, password string) error {
	if reasons := s.policy.CheckPassword(password); len(reasons) > 0 {
		return common.NewPolicyError(reasons...)
	}
	return nil
}

func (s *Store) IsInRole(ctx context.Context, user *models.User, role string) (bool, error) {
	return s.repos.Roles(s.db).IsInRole(ctx, user.ID, role)
}

// GeneratePasswordResetToken issues a single-use token bound to the user's
// current security stamp. Only the token's digest is persisted.
func (s *Store) GeneratePasswordResetToken(ctx context.Context, user *models.User) (string, error) {
	token, err := common.MakeRandHexString(resetTokenBytes)
	if err != nil {
		return "", err
	}

	rec := resettokens.Record{UserID: user.ID, SecurityStamp: user.SecurityStamp}
	if err := s.tokens.Save(ctx, cryptox.HashToken(token), rec, s.tokenTTL); err != nil {
		return "", err
	}

	s.logger.Debug(ctx, "reset token issued", "user_id", user.ID)
	return token, nil
}

// ResetPassword redeems token and sets a new password. The token is consumed
// even when it turns out to belong to another account or to a stale stamp.
func (s *Store) ResetPassword(ctx context.Context, user *models.User, token, newPassword string) error {
	if err := s.ValidatePassword(ctx, user, newPassword); err != nil {
		return err
	}

	rec, err := s.tokens.Consume(ctx, cryptox.HashToken(token))
	if err != nil {
		return err
	}

	current, err := s.repos.Users(s.db).GetUserByID(ctx, user.ID)
	if err != nil {
		return err
	}
	if rec.UserID != current.ID || rec.SecurityStamp != current.SecurityStamp {
		s.logger.Warn(ctx, "stale or foreign reset token", "user_id", user.ID)
		return common.ErrInvalidToken
	}

	if err := s.setPassword(ctx, current, newPassword); err != nil {
		return err
	}
	user.PasswordHash, user.SecurityStamp = current.PasswordHash, current.SecurityStamp
	return nil
}
