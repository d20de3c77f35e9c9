package grpc

import (
	"context"
	"time"

	pb "github.com/dmitrijs2005/bloghub/internal/proto"
	"github.com/dmitrijs2005/bloghub/internal/server/models"
	"github.com/dmitrijs2005/bloghub/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toUser(a *models.Account) *pb.User {
	return &pb.User{
		Id:            a.ID,
		Name:          a.Name,
		Nickname:      a.Nickname,
		About:         a.About,
		ProfileImgUrl: a.ProfileImageURL,
		Followers:     a.FollowerCount,
		Following:     a.FollowingCount,
		MemberSince:   a.MemberSince.UTC().Format(pb.MemberSinceLayout),
	}
}

// fail logs unexpected errors and converts err to a status.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, op+" failed", "error", err)
	}
	return st
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {
	a, err := s.users.Get(ctx, req.Nickname)
	if err != nil {
		return nil, s.fail(ctx, "GetUser", err)
	}
	return &pb.GetUserResponse{User: toUser(a)}, nil
}

func (s *GRPCServer) GetCollectionUsers(ctx context.Context, _ *pb.GetCollectionUsersRequest) (*pb.GetCollectionUsersResponse, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "GetCollectionUsers", err)
	}

	out := make([]*pb.User, 0, len(all))
	for _, a := range all {
		out = append(out, toUser(a))
	}
	return &pb.GetCollectionUsersResponse{Users: out}, nil
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.CreateUserResponse, error) {
	a, err := s.users.Create(ctx, services.CreateUserInput{
		Name:            req.Name,
		Nickname:        req.Nickname,
		Password:        req.Password,
		About:           req.About,
		ProfileImageURL: req.ProfileImgUrl,
	})
	if err != nil {
		return nil, s.fail(ctx, "CreateUser", err)
	}

	s.logger.Info(ctx, "Registered", "nickname", a.Nickname, "id", a.ID)
	return &pb.CreateUserResponse{User: toUser(a)}, nil
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UpdateUserResponse, error) {
	a, err := s.users.Update(ctx, req.Id, services.UpdateUserInput{
		Name:            req.Name,
		Nickname:        req.Nickname,
		About:           req.About,
		ProfileImageURL: req.ProfileImgUrl,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return nil, s.fail(ctx, "UpdateUser", err)
	}
	return &pb.UpdateUserResponse{User: toUser(a)}, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {
	msg, err := s.users.Delete(ctx, req.Nickname)
	if err != nil {
		return nil, s.fail(ctx, "DeleteUser", err)
	}
	return &pb.DeleteUserResponse{Success: true, Message: msg}, nil
}

func (s *GRPCServer) LoginUser(ctx context.Context, req *pb.LoginUserRequest) (*pb.LoginUserResponse, error) {
	a, err := s.users.Login(ctx, req.Nickname, req.Password)
	if err != nil {
		return nil, s.fail(ctx, "LoginUser", err)
	}
	return &pb.LoginUserResponse{User: toUser(a)}, nil
}

func (s *GRPCServer) FollowUser(ctx context.Context, req *pb.FollowUserRequest) (*pb.FollowUserResponse, error) {
	a, err := s.users.Follow(ctx, req.Follower, req.Followed)
	if err != nil {
		return nil, s.fail(ctx, "FollowUser", err)
	}
	return &pb.FollowUserResponse{User: toUser(a)}, nil
}

func (s *GRPCServer) UnfollowUser(ctx context.Context, req *pb.UnfollowUserRequest) (*pb.UnfollowUserResponse, error) {
	a, err := s.users.Unfollow(ctx, req.Follower, req.Followed)
	if err != nil {
		return nil, s.fail(ctx, "UnfollowUser", err)
	}
	return &pb.UnfollowUserResponse{User: toUser(a)}, nil
}

func (s *GRPCServer) GetAvatarUploadURL(ctx context.Context, req *pb.GetAvatarUploadURLRequest) (*pb.GetAvatarUploadURLResponse, error) {
	up, err := s.users.AvatarUploadURL(ctx, req.Nickname, req.ContentType)
	if err != nil {
		return nil, s.fail(ctx, "GetAvatarUploadURL", err)
	}
	return &pb.GetAvatarUploadURLResponse{
		Key:       up.Key,
		UploadUrl: up.UploadURL,
		ObjectUrl: up.ObjectURL,
		ExpiresAt: up.ExpiresAt.UTC().Format(time.RFC3339),
	}, nil
}
