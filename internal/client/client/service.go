package client

import "context"

// Session is what a successful login returns.
type Session struct {
	Token      string
	UserName   string
	Expiration string
	IsAdmin    bool
}

type Client interface {
	Close() error
	// SetToken attaches a session token to every following call.
	SetToken(token string)
	Register(ctx context.Context, userName, email, password string) error
	RegisterAdmin(ctx context.Context, userName, email, password string) error
	Login(ctx context.Context, userName, password string) (*Session, error)
	ChangePassword(ctx context.Context, userName, current, newPassword, confirm string) error
	AdminResetPassword(ctx context.Context, userName, newPassword, confirm string) error
	ResetPasswordToken(ctx context.Context, userName string) (string, error)
	ResetPassword(ctx context.Context, userName, token, newPassword, confirm string) error
}
