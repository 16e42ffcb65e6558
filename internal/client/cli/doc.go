// Package cli implements the Tuchka command-line client.
//
// Each invocation runs one command against the server's gRPC API:
//
//	register          create an account in the User role
//	register-admin    create an account in the Admin role
//	login             print a session token
//	change-password   change a password knowing the current one
//	reset-token       issue a one-time password reset token
//	reset-password    redeem a reset token
//	admin-reset       reset someone's password (needs an Admin -token)
//
// A user name may be given as the first argument; everything else is
// prompted for. Passwords are read without echo.
package cli
