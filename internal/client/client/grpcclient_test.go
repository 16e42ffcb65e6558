package client

import (
	"context"
	"errors"
	"net"
	"testing"

	pb "github.com/dmitrijs2005/tuchka/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

type fakeServer struct {
	pb.UnimplementedAuthServiceServer

	lastAuth []string
	lastReq  proto.Message
	err      error
}

func (f *fakeServer) record(ctx context.Context, req proto.Message) {
	md, _ := metadata.FromIncomingContext(ctx)
	f.lastAuth = md.Get("authorization")
	f.lastReq = req
}

func (f *fakeServer) Register(ctx context.Context, in *pb.RegisterRequest) (*pb.StatusResponse, error) {
	f.record(ctx, in)
	return &pb.StatusResponse{Status: "Success"}, f.err
}

func (f *fakeServer) RegisterAdmin(ctx context.Context, in *pb.RegisterRequest) (*pb.StatusResponse, error) {
	f.record(ctx, in)
	return &pb.StatusResponse{Status: "Success"}, f.err
}

func (f *fakeServer) Login(ctx context.Context, in *pb.LoginRequest) (*pb.LoginResponse, error) {
	f.record(ctx, in)
	if f.err != nil {
		return nil, f.err
	}
	return &pb.LoginResponse{Token: "tok-" + in.GetUsername(), Username: in.GetUsername(), Expiration: "2026-01-08T00:00:00", IsAdmin: true}, nil
}

func (f *fakeServer) ChangePassword(ctx context.Context, in *pb.ChangePasswordRequest) (*pb.StatusResponse, error) {
	f.record(ctx, in)
	return &pb.StatusResponse{}, f.err
}

func (f *fakeServer) ResetPasswordAdmin(ctx context.Context, in *pb.ResetPasswordAdminRequest) (*pb.StatusResponse, error) {
	f.record(ctx, in)
	return &pb.StatusResponse{}, f.err
}

func (f *fakeServer) ResetPasswordToken(ctx context.Context, in *pb.ResetPasswordTokenRequest) (*pb.ResetPasswordTokenResponse, error) {
	f.record(ctx, in)
	return &pb.ResetPasswordTokenResponse{Token: "reset-" + in.GetUsername()}, f.err
}

func (f *fakeServer) ResetPassword(ctx context.Context, in *pb.ResetPasswordRequest) (*pb.StatusResponse, error) {
	f.record(ctx, in)
	return &pb.StatusResponse{}, f.err
}

func newTestClient(t *testing.T) (*GRPCClient, *fakeServer) {
	t.Helper()

	fake := &fakeServer{}
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterAuthServiceServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()

	c, err := NewGRPCClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		srv.Stop()
	})
	return c, fake
}

func assertRequest(t *testing.T, want, got proto.Message) {
	t.Helper()
	assert.True(t, proto.Equal(want, got), "want %v, got %v", want, got)
}

func TestLogin_StoresTokenForLaterCalls(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Register(ctx, "alice", "a@x.io", "Pass1!"))
	assert.Empty(t, fake.lastAuth)
	assertRequest(t, &pb.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "Pass1!"}, fake.lastReq)

	session, err := c.Login(ctx, "alice", "Pass1!")
	require.NoError(t, err)
	assert.Equal(t, &Session{Token: "tok-alice", UserName: "alice", Expiration: "2026-01-08T00:00:00", IsAdmin: true}, session)

	require.NoError(t, c.AdminResetPassword(ctx, "bob", "New1!", "New1!"))
	assert.Equal(t, []string{"Bearer tok-alice"}, fake.lastAuth)
	assertRequest(t, &pb.ResetPasswordAdminRequest{Username: "bob", NewPassword: "New1!", ConfirmNewPassword: "New1!"}, fake.lastReq)
}

func TestSetToken(t *testing.T) {
	c, fake := newTestClient(t)

	c.SetToken("given")
	require.NoError(t, c.ChangePassword(context.Background(), "alice", "old", "New1!", "New1!"))
	assert.Equal(t, []string{"Bearer given"}, fake.lastAuth)
}

func TestResetFlow(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	token, err := c.ResetPasswordToken(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "reset-alice", token)

	require.NoError(t, c.ResetPassword(ctx, "alice", token, "New1!", "New1!"))
	assertRequest(t, &pb.ResetPasswordRequest{Username: "alice", Token: "reset-alice", NewPassword: "New1!", ConfirmNewPassword: "New1!"}, fake.lastReq)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{"unauthenticated", status.Error(codes.Unauthenticated, "unauthorized"), ErrUnauthorized, "unauthorized: unauthorized"},
		{"forbidden", status.Error(codes.PermissionDenied, "Forbidden"), ErrUnauthorized, "unauthorized: Forbidden"},
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable, "server unavailable"},
		{"server message", status.Error(codes.AlreadyExists, "User already exist!"), nil, "User already exist!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, fake := newTestClient(t)
			fake.err = tt.err

			err := c.RegisterAdmin(context.Background(), "alice", "a@x.io", "Pass1!")
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.True(t, errors.Is(err, tt.wantIs))
			}
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestMapError_NonStatus(t *testing.T) {
	plain := errors.New("plain")
	assert.Same(t, plain, mapError(plain))
	assert.NoError(t, mapError(nil))
}
