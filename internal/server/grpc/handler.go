package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/tuchka/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	replySuccess = "Success"
)

func ok(message string) *pb.StatusResponse {
	return &pb.StatusResponse{Status: replySuccess, Message: message}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.StatusResponse, error) {
	s.logger.Info(ctx, "Registration request", "username", req.GetUsername())

	if err := s.registration.Register(ctx, req.GetUsername(), req.GetEmail(), req.GetPassword()); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return ok("User created successfully!"), nil
}

func (s *GRPCServer) RegisterAdmin(ctx context.Context, req *pb.RegisterRequest) (*pb.StatusResponse, error) {
	s.logger.Info(ctx, "Admin registration request", "username", req.GetUsername())

	if err := s.registration.RegisterAdmin(ctx, req.GetUsername(), req.GetEmail(), req.GetPassword()); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return ok("User created successfully!"), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	session, err := s.authentication.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		if isUnauthenticated(err) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{
		Token:      session.Token,
		Username:   session.UserName,
		Expiration: session.Expiration,
		IsAdmin:    session.IsAdmin,
	}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.StatusResponse, error) {
	err := s.passwords.ChangePassword(ctx, req.GetUsername(), req.GetCurrentPassword(), req.GetNewPassword(), req.GetConfirmNewPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return ok("Password successfully changed."), nil
}

func (s *GRPCServer) ResetPasswordAdmin(ctx context.Context, req *pb.ResetPasswordAdminRequest) (*pb.StatusResponse, error) {
	err := s.passwords.AdminResetPassword(ctx, req.GetUsername(), req.GetNewPassword(), req.GetConfirmNewPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return ok("Password successfully reset."), nil
}

func (s *GRPCServer) ResetPasswordToken(ctx context.Context, req *pb.ResetPasswordTokenRequest) (*pb.ResetPasswordTokenResponse, error) {
	token, err := s.passwords.IssueResetToken(ctx, req.GetUsername())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ResetPasswordTokenResponse{Token: token}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.StatusResponse, error) {
	err := s.passwords.ResetPassword(ctx, req.GetUsername(), req.GetToken(), req.GetNewPassword(), req.GetConfirmNewPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return ok("Password successfully reset."), nil
}
