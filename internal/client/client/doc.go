// Package client contains the CLI's connection to the Tuchka server.
//
// # Overview
//
// Client is the transport-agnostic contract used by the CLI. GRPCClient
// implements it on top of the AuthService gRPC API: it owns the connection,
// attaches the session token as "authorization: Bearer <token>" metadata via
// a unary interceptor, and maps gRPC status codes to errors.
//
// # Error Handling
//
// Transport failures are reported as ErrUnavailable, rejected credentials
// and missing roles wrap ErrUnauthorized. Any other failure carries the
// server's message verbatim so it can be shown to the user.
package client
