package proto

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

type echoServer struct {
	UnimplementedUserServiceServer
}

func (echoServer) GetUser(_ context.Context, in *GetUserRequest) (*GetUserResponse, error) {
	return &GetUserResponse{User: &User{Id: 1, Nickname: in.Nickname, MemberSince: "2024-03-01"}}, nil
}

func (echoServer) DeleteUser(_ context.Context, in *DeleteUserRequest) (*DeleteUserResponse, error) {
	return nil, status.Error(codes.NotFound, "User not found")
}

func dial(t *testing.T, srv UserServiceServer, opts ...grpc.ServerOption) UserServiceClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer(opts...)
	RegisterUserServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewUserServiceClient(conn)
}

func TestClient_RoundTrip(t *testing.T) {
	c := dial(t, echoServer{})

	resp, err := c.GetUser(context.Background(), &GetUserRequest{Nickname: "john"})
	require.NoError(t, err)
	assert.Equal(t, "john", resp.User.GetNickname())
	assert.Equal(t, "2024-03-01", resp.User.MemberSince)
}

func TestClient_StatusPropagates(t *testing.T) {
	c := dial(t, echoServer{})

	_, err := c.DeleteUser(context.Background(), &DeleteUserRequest{Nickname: "john"})
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "User not found", st.Message())
}

func TestClient_Unimplemented(t *testing.T) {
	c := dial(t, echoServer{})

	_, err := c.FollowUser(context.Background(), &FollowUserRequest{Follower: "a", Followed: "b"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestServer_InterceptorSeesFullMethod(t *testing.T) {
	var seen string
	c := dial(t, echoServer{}, grpc.UnaryInterceptor(
		func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			seen = info.FullMethod
			return handler(ctx, req)
		}))

	_, err := c.GetUser(context.Background(), &GetUserRequest{Nickname: "john"})
	require.NoError(t, err)
	assert.Equal(t, UserService_GetUser_FullMethodName, seen)
}

func TestDescriptor_Registered(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName(UserService_ServiceName)
	require.NoError(t, err)

	sd, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	assert.Equal(t, len(UserService_ServiceDesc.Methods), sd.Methods().Len())
	assert.Equal(t, UserService_ServiceName, UserService_ServiceDesc.ServiceName)

	m := sd.Methods().ByName("GetAvatarUploadURL")
	require.NotNil(t, m)
	assert.Equal(t, protoreflect.FullName("bloghub.users.GetAvatarUploadURLResponse"), m.Output().FullName())
}

func TestUser_WireRoundTrip(t *testing.T) {
	in := &GetCollectionUsersResponse{Users: []*User{
		{Id: 1, Nickname: "john", ProfileImgUrl: "https://img", MemberSince: "2024-03-01"},
	}}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &GetCollectionUsersResponse{}
	require.NoError(t, proto.Unmarshal(b, out))
	assert.True(t, proto.Equal(in, out))
	assert.Equal(t, "john", out.GetUsers()[0].GetNickname())
}
