package client

import (
	"context"
	"net"
	"testing"

	"github.com/dmitrijs2005/bloghub/internal/common"
	pb "github.com/dmitrijs2005/bloghub/internal/proto"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

type echoServer struct {
	pb.UnimplementedUserServiceServer
	requestIDs chan []string
}

func (s *echoServer) GetUser(ctx context.Context, in *pb.GetUserRequest) (*pb.GetUserResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	s.requestIDs <- md.Get(common.RequestIDHeaderName)
	return &pb.GetUserResponse{User: &pb.User{Nickname: in.Nickname}}, nil
}

func start(t *testing.T, status healthpb.HealthCheckResponse_ServingStatus) (*Client, *echoServer) {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	echo := &echoServer{requestIDs: make(chan []string, 1)}
	pb.RegisterUserServiceServer(srv, echo)

	hs := health.NewServer()
	hs.SetServingStatus(pb.UserService_ServiceName, status)
	healthpb.RegisterHealthServer(srv, hs)

	go func() { _ = srv.Serve(lis) }()

	c, err := New("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		srv.Stop()
	})
	return c, echo
}

func TestRequestIDIsForwarded(t *testing.T) {
	c, echo := start(t, healthpb.HealthCheckResponse_SERVING)

	ctx := context.WithValue(context.Background(), chimiddleware.RequestIDKey, "req-42")
	resp, err := c.Users.GetUser(ctx, &pb.GetUserRequest{Nickname: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.User.Nickname)
	assert.Equal(t, []string{"req-42"}, <-echo.requestIDs)

	_, err = c.Users.GetUser(context.Background(), &pb.GetUserRequest{Nickname: "bob"})
	require.NoError(t, err)
	assert.Empty(t, <-echo.requestIDs)
}

func TestCheck(t *testing.T) {
	c, _ := start(t, healthpb.HealthCheckResponse_SERVING)
	assert.NoError(t, c.Check(context.Background()))

	down, _ := start(t, healthpb.HealthCheckResponse_NOT_SERVING)
	assert.Error(t, down.Check(context.Background()))
}
