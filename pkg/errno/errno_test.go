package errno

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConvertErr(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		if got := ConvertErr(nil); got.ErrCode != SuccessCode {
			t.Errorf("ConvertErr(nil) = %+v, want success", got)
		}
	})
	t.Run("ErrNoPassthrough", func(t *testing.T) {
		if got := ConvertErr(NotFoundErr); got.ErrCode != NotFoundErrCode {
			t.Errorf("ConvertErr(NotFoundErr) = %+v, want code %d", got, NotFoundErrCode)
		}
	})
	t.Run("WrappedErrNo", func(t *testing.T) {
		wrapped := errors.WithMessage(ForbiddenErr, "delete video")
		if got := ConvertErr(wrapped); got.ErrCode != ForbiddenErrCode {
			t.Errorf("ConvertErr(wrapped) = %+v, want code %d", got, ForbiddenErrCode)
		}
	})
	t.Run("PlainError", func(t *testing.T) {
		got := ConvertErr(errors.New("dial tcp: connection refused"))
		if got.ErrCode != ServiceErrCode {
			t.Errorf("ConvertErr(plain) code = %d, want %d", got.ErrCode, ServiceErrCode)
		}
		if got.ErrMsg != "dial tcp: connection refused" {
			t.Errorf("ConvertErr(plain) msg = %q, want the original message", got.ErrMsg)
		}
	})
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	custom := RequestErr.WithMessage("Name is required")
	if custom.ErrMsg != "Name is required" {
		t.Errorf("custom msg = %q", custom.ErrMsg)
	}
	if RequestErr.ErrMsg != "Bad request" {
		t.Errorf("base RequestErr mutated to %q", RequestErr.ErrMsg)
	}
}
