package rpc

import (
	"context"
	"errors"

	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/errs"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus converts a taxonomy error into a gRPC status error. Faults are
// checked first so a marked fault never surfaces as a client error.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, errs.ErrReservationFailed):
		return status.Error(codes.Unavailable, "Inventory reservation failed")
	case errs.Is(err, errs.ErrDependencyUnavailable):
		return status.Error(codes.Unavailable, "Inventory service unavailable")
	case errs.Is(err, errs.ErrStorageFailure):
		return status.Error(codes.Internal, "storage failure")
	case errs.Is(err, errs.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, rootMessage(err))
	case errs.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// fromStatus converts a status error returned by a peer back into the
// taxonomy. Anything not attributable to the request itself means the
// peer is unavailable.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.InvalidArgument:
		return errs.Mark(errs.New(st.Message()), errs.ErrInvalidArgument)
	case codes.NotFound:
		return errs.Mark(errs.New(st.Message()), errs.ErrNotFound)
	case codes.Internal:
		return errs.Mark(errs.Wrap(err, "peer storage failure"), errs.ErrStorageFailure)
	default:
		return errs.Mark(errs.Wrap(err, "peer unavailable"), errs.ErrDependencyUnavailable)
	}
}

func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
