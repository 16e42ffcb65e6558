// Package grpc serves the account operations over gRPC.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/dmitrijs2005/tuchka/internal/logging"
	pb "github.com/dmitrijs2005/tuchka/internal/proto"
	"github.com/dmitrijs2005/tuchka/internal/server/auth"
	"github.com/dmitrijs2005/tuchka/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type Registrar interface {
	Register(ctx context.Context, userName, email, password string) error
	RegisterAdmin(ctx context.Context, userName, email, password string) error
}

type Authenticator interface {
	Login(ctx context.Context, userName, password string) (*services.Session, error)
}

type PasswordManager interface {
	ChangePassword(ctx context.Context, userName, current, newPassword, confirm string) error
	AdminResetPassword(ctx context.Context, userName, newPassword, confirm string) error
	IssueResetToken(ctx context.Context, userName string) (string, error)
	ResetPassword(ctx context.Context, userName, token, newPassword, confirm string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer

	address        string
	logger         logging.Logger
	verifier       *auth.Verifier
	registration   Registrar
	authentication Authenticator
	passwords      PasswordManager
}

var _ pb.AuthServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(address string, l logging.Logger, v *auth.Verifier, r Registrar, a Authenticator, p PasswordManager) *GRPCServer {
	return &GRPCServer{
		address:        address,
		logger:         l.With("module", "grpc_server"),
		verifier:       v,
		registration:   r,
		authentication: a,
		passwords:      p,
	}
}

func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.recoveryInterceptor, s.adminInterceptor),
	)

	pb.RegisterAuthServiceServer(srv, s)

	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.AuthService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return srv, hs
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.newServer()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(lis)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}
