package client

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tuchka/internal/common"
	pb "github.com/dmitrijs2005/tuchka/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	api         pb.AuthServiceClient

	mu    sync.RWMutex
	token string
}

var _ Client = (*GRPCClient)(nil)

func withBearer(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) bearerInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token != "" {
		ctx = withBearer(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.bearerInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.api = pb.NewAuthServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, userName, email, password string) error {
	_, err := s.api.Register(ctx, &pb.RegisterRequest{Username: userName, Email: email, Password: password})
	return mapError(err)
}

func (s *GRPCClient) RegisterAdmin(ctx context.Context, userName, email, password string) error {
	_, err := s.api.RegisterAdmin(ctx, &pb.RegisterRequest{Username: userName, Email: email, Password: password})
	return mapError(err)
}

// Login authenticates and keeps the returned token for later calls.
func (s *GRPCClient) Login(ctx context.Context, userName, password string) (*Session, error) {
	resp, err := s.api.Login(ctx, &pb.LoginRequest{Username: userName, Password: password})
	if err != nil {
		return nil, mapError(err)
	}

	s.SetToken(resp.GetToken())

	return &Session{
		Token:      resp.GetToken(),
		UserName:   resp.GetUsername(),
		Expiration: resp.GetExpiration(),
		IsAdmin:    resp.GetIsAdmin(),
	}, nil
}

func (s *GRPCClient) ChangePassword(ctx context.Context, userName, current, newPassword, confirm string) error {
	_, err := s.api.ChangePassword(ctx, &pb.ChangePasswordRequest{
		Username:           userName,
		CurrentPassword:    current,
		NewPassword:        newPassword,
		ConfirmNewPassword: confirm,
	})
	return mapError(err)
}

func (s *GRPCClient) AdminResetPassword(ctx context.Context, userName, newPassword, confirm string) error {
	_, err := s.api.ResetPasswordAdmin(ctx, &pb.ResetPasswordAdminRequest{
		Username:           userName,
		NewPassword:        newPassword,
		ConfirmNewPassword: confirm,
	})
	return mapError(err)
}

func (s *GRPCClient) ResetPasswordToken(ctx context.Context, userName string) (string, error) {
	resp, err := s.api.ResetPasswordToken(ctx, &pb.ResetPasswordTokenRequest{Username: userName})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetToken(), nil
}

func (s *GRPCClient) ResetPassword(ctx context.Context, userName, token, newPassword, confirm string) error {
	_, err := s.api.ResetPassword(ctx, &pb.ResetPasswordRequest{
		Username:           userName,
		Token:              token,
		NewPassword:        newPassword,
		ConfirmNewPassword: confirm,
	})
	return mapError(err)
}
