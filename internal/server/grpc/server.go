package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/bloghub/internal/logging"
	pb "github.com/dmitrijs2005/bloghub/internal/proto"
	"github.com/dmitrijs2005/bloghub/internal/server/models"
	"github.com/dmitrijs2005/bloghub/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DefaultMaxWorkers bounds concurrent calls when no limit is configured.
const DefaultMaxWorkers = 10

type userSvc interface {
	Create(ctx context.Context, in services.CreateUserInput) (*models.Account, error)
	Get(ctx context.Context, nickname string) (*models.Account, error)
	List(ctx context.Context) ([]*models.Account, error)
	Update(ctx context.Context, id int64, in services.UpdateUserInput) (*models.Account, error)
	Delete(ctx context.Context, nickname string) (string, error)
	Login(ctx context.Context, nickname, password string) (*models.Account, error)
	Follow(ctx context.Context, follower, followed string) (*models.Account, error)
	Unfollow(ctx context.Context, follower, followed string) (*models.Account, error)
	AvatarUploadURL(ctx context.Context, nickname, contentType string) (*models.AvatarUpload, error)
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	address    string
	users      userSvc
	logger     logging.Logger
	maxWorkers int
	health     *health.Server
}

func NewGRPCServer(address string, l logging.Logger, us userSvc, maxWorkers int) *GRPCServer {
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}
	return &GRPCServer{
		address:    address,
		logger:     l.With("module", "grpc_server"),
		users:      us,
		maxWorkers: maxWorkers,
		health:     health.NewServer(),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	workers := uint32(s.maxWorkers)

	srv := grpc.NewServer(
		grpc.NumStreamWorkers(workers),
		grpc.MaxConcurrentStreams(workers),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.recoveryInterceptor),
	)

	pb.RegisterUserServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(pb.UserService_ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts calls on lis and stops gracefully when ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			s.health.Shutdown()
			srv.GracefulStop()
		case <-done:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String(), "workers", s.maxWorkers)

	err := srv.Serve(lis)
	close(done)
	<-stopped
	return err
}
