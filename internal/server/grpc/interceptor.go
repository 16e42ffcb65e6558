package grpc

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/tuchka/internal/common"
	pb "github.com/dmitrijs2005/tuchka/internal/proto"
	"github.com/dmitrijs2005/tuchka/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// authorizationKey is the metadata key carrying "Bearer <token>".
const authorizationKey = "authorization"

var adminMethods = map[string]bool{
	pb.AuthService_ResetPasswordAdmin_FullMethodName: true,
}

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get(authorizationKey) {
		if token, found := strings.CutPrefix(v, common.BearerPrefix); found && token != "" {
			return token
		}
	}
	return ""
}

// adminInterceptor guards admin-only methods with a bearer token carrying
// the Admin role. Other methods pass through untouched.
func (s *GRPCServer) adminInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !adminMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	token := bearerToken(ctx)
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	p, err := s.verifier.Verify(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "Invalid token!")
	}
	if !p.HasRole(common.RoleAdmin) {
		return nil, status.Error(codes.PermissionDenied, "Forbidden")
	}

	return handler(auth.WithPrincipal(ctx, p), req)
}

func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "panic recovered in gRPC handler", "method", info.FullMethod, "error", r)
			err = status.Error(codes.Internal, "Internal server error")
		}
	}()
	return handler(ctx, req)
}
