package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tuchka/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func isUnauthenticated(err error) bool {
	return errors.Is(err, common.ErrUnauthenticated)
}

// toStatus maps service errors to gRPC status codes. Unknown errors are
// logged and hidden behind codes.Internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateUsername):
		return status.Error(codes.AlreadyExists, "User already exist!")
	case errors.Is(err, common.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, "Email already exist!")
	case errors.Is(err, common.ErrDuplicate):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "User does not exist")
	case errors.Is(err, common.ErrPasswordMismatch), errors.Is(err, common.ErrCredentialPolicy):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.InvalidArgument, "Invalid token!")
	case errors.Is(err, common.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrorInternal):
		fallthrough
	default:
		s.logger.Error(ctx, "rpc failed", "error", err)
		return status.Error(codes.Internal, "Internal server error")
	}
}
