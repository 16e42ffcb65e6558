package cli

import (
	"context"
	"errors"
	"fmt"
)

func (a *App) register(ctx context.Context, args []string) error {
	return a.doRegister(ctx, args, a.client.Register)
}

func (a *App) registerAdmin(ctx context.Context, args []string) error {
	return a.doRegister(ctx, args, a.client.RegisterAdmin)
}

func (a *App) doRegister(ctx context.Context, args []string, call func(ctx context.Context, userName, email, password string) error) error {
	userName, err := a.text(args, "Enter username")
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.password("Enter password")
	if err != nil {
		return err
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	if err := call(ctx, userName, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "User created successfully!")
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	userName, err := a.text(args, "Enter username")
	if err != nil {
		return err
	}
	password, err := a.password("Enter password")
	if err != nil {
		return err
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	session, err := a.client.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", session.UserName)
	fmt.Fprintf(a.out, "Token: %s\n", session.Token)
	fmt.Fprintf(a.out, "Expires: %s\n", session.Expiration)
	fmt.Fprintf(a.out, "Admin: %t\n", session.IsAdmin)
	return nil
}

func (a *App) changePassword(ctx context.Context, args []string) error {
	userName, err := a.text(args, "Enter username")
	if err != nil {
		return err
	}
	current, err := a.password("Enter current password")
	if err != nil {
		return err
	}
	pw, confirm, err := a.newPassword()
	if err != nil {
		return err
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	if err := a.client.ChangePassword(ctx, userName, current, pw, confirm); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password successfully changed.")
	return nil
}

func (a *App) resetToken(ctx context.Context, args []string) error {
	userName, err := a.text(args, "Enter username")
	if err != nil {
		return err
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	token, err := a.client.ResetPasswordToken(ctx, userName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Reset token: %s\n", token)
	return nil
}

func (a *App) resetPassword(ctx context.Context, args []string) error {
	userName, err := a.text(args, "Enter username")
	if err != nil {
		return err
	}
	token, err := getSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}
	pw, confirm, err := a.newPassword()
	if err != nil {
		return err
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	if err := a.client.ResetPassword(ctx, userName, token, pw, confirm); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password successfully reset.")
	return nil
}

var errTokenRequired = errors.New("admin-reset needs a session token: pass -token from 'login'")

func (a *App) adminReset(ctx context.Context, args []string) error {
	if a.token == "" {
		return fmt.Errorf("%w: %w", ErrUsage, errTokenRequired)
	}

	userName, err := a.text(args, "Enter username")
	if err != nil {
		return err
	}
	pw, confirm, err := a.newPassword()
	if err != nil {
		return err
	}

	ctx, cancel := a.rpcContext(ctx)
	defer cancel()

	if err := a.client.AdminResetPassword(ctx, userName, pw, confirm); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password successfully reset.")
	return nil
}
