package common_test

import (
	"errors"
	"testing"

	"github.com/takuya-okamoto/zumenkan/internal/common"
)

func TestWrapErrorKeepsKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := common.WrapError(common.ErrDatabase, cause, "listing drawings")

	if !errors.Is(err, common.ErrDatabase) {
		t.Error("wrapped error lost its kind")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	if err.Error() != "listing drawings: database error: connection refused" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestWrapErrorNilCause(t *testing.T) {
	if err := common.WrapError(common.ErrDatabase, nil, "noop"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := common.NewAppError("INVALID_TRANSITION", "approved -> analyzing", common.ErrInvalidInput)
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Error("AppError must unwrap to its cause")
	}
	var appErr *common.AppError
	if !errors.As(err, &appErr) || appErr.Code != "INVALID_TRANSITION" {
		t.Errorf("unexpected app error %v", err)
	}
}
