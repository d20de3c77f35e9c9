package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/bloghub/internal/common"
	"github.com/dmitrijs2005/bloghub/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC status codes and client-facing
// details. Order matters: the more specific sentinels come first.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	case errors.Is(err, services.ErrNotFollowing):
		return status.Error(codes.NotFound, "Not following this user")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "User not found")
	case errors.Is(err, common.ErrorSelfFollow):
		return status.Error(codes.InvalidArgument, "You cannot follow yourself")
	case errors.Is(err, common.ErrorInvalidCredentials):
		return status.Error(codes.InvalidArgument, "Invalid nickname or password")
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, services.ErrAlreadyFollowing):
		return status.Error(codes.AlreadyExists, "Already following")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "Nickname already taken")
	case errors.Is(err, common.ErrorDatabase):
		msg := strings.TrimPrefix(err.Error(), common.ErrorDatabase.Error()+": ")
		return status.Error(codes.Internal, "Database error: "+msg)
	default:
		return status.Error(codes.Internal, "Internal server error")
	}
}
