// Package proto is the RPC contract of the user service. users.pb.go and
// users_grpc.pb.go are generated from proto/users.proto.
package proto

//go:generate protoc -I ../.. --go_out=../.. --go_opt=module=github.com/dmitrijs2005/bloghub --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/bloghub ../../proto/users.proto

// UserService_ServiceName is the fully qualified service name, also used as
// the health check service key.
const UserService_ServiceName = "bloghub.users.UserService"

// MemberSinceLayout is the wire format of User.MemberSince.
const MemberSinceLayout = "2006-01-02"
