package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storefront/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps a service error onto a gRPC status. Infrastructure errors
// are logged and reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	msg := common.PublicMessage(err)

	switch common.KindOf(err) {
	case common.KindValidation:
		if errors.Is(err, common.ErrDuplicateEmail) {
			return status.Error(codes.AlreadyExists, msg)
		}
		return status.Error(codes.InvalidArgument, msg)
	case common.KindAuth:
		return status.Error(codes.Unauthenticated, msg)
	case common.KindState:
		if errors.Is(err, common.ErrNotFound) {
			return status.Error(codes.NotFound, msg)
		}
		return status.Error(codes.FailedPrecondition, msg)
	default:
		s.logger.Error(ctx, op+" failed", "error", err)
		return status.Error(codes.Internal, msg)
	}
}
