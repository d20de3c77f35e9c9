// Package client connects the gateway to the user service over gRPC.
package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bloghub/internal/common"
	pb "github.com/dmitrijs2005/bloghub/internal/proto"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
)

// Client owns one connection shared by the user service stub and the health
// client.
type Client struct {
	conn   *grpc.ClientConn
	Users  pb.UserServiceClient
	health healthpb.HealthClient
}

// New creates a lazily connecting client for addr. Extra options are applied
// after the defaults.
func New(addr string, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial user service: %w", err)
	}

	return &Client{
		conn:   conn,
		Users:  pb.NewUserServiceClient(conn),
		health: healthpb.NewHealthClient(conn),
	}, nil
}

// Check reports whether the user service answers its health check as SERVING.
func (c *Client) Check(ctx context.Context) error {
	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.UserService_ServiceName})
	if err != nil {
		return err
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("user service status %s", resp.GetStatus())
	}
	return nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// requestIDInterceptor forwards the HTTP request id as gRPC metadata.
func requestIDInterceptor(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	if id := chimiddleware.GetReqID(ctx); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, id)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}
