package errno

import (
	"testing"

	"github.com/pkg/errors"
)

// TestConvertErr 各种error都要折叠成带状态码的ErrNo
func TestConvertErr(t *testing.T) {
	t.Run("nil is success", func(t *testing.T) {
		if got := ConvertErr(nil); got.ErrCode != SuccessCode {
			t.Errorf("ConvertErr(nil).ErrCode = %d, want %d", got.ErrCode, SuccessCode)
		}
	})

	t.Run("errno passes through", func(t *testing.T) {
		got := ConvertErr(RecordNotFoundErr)
		if got.ErrCode != RecordNotFoundErrCode {
			t.Errorf("ErrCode = %d, want %d", got.ErrCode, RecordNotFoundErrCode)
		}
	})

	t.Run("wrapped errno keeps its code", func(t *testing.T) {
		wrapped := errors.WithMessage(ForbiddenErr, "delete video failed")
		got := ConvertErr(wrapped)
		if got.ErrCode != ForbiddenErrCode {
			t.Errorf("ErrCode = %d, want %d", got.ErrCode, ForbiddenErrCode)
		}
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		got := ConvertErr(errors.New("dial tcp: connection refused"))
		if got.ErrCode != ServiceErrCode {
			t.Errorf("ErrCode = %d, want %d", got.ErrCode, ServiceErrCode)
		}
		if got.ErrMsg != "dial tcp: connection refused" {
			t.Errorf("ErrMsg = %q, want original message", got.ErrMsg)
		}
	})
}

// TestWithMessage 改消息不应该影响原变量
func TestWithMessage(t *testing.T) {
	custom := ParamErr.WithMessage("title is required")
	if custom.ErrMsg != "title is required" {
		t.Errorf("ErrMsg = %q", custom.ErrMsg)
	}
	if custom.ErrCode != ParamErrCode {
		t.Errorf("ErrCode = %d, want %d", custom.ErrCode, ParamErrCode)
	}
	if ParamErr.ErrMsg == "title is required" {
		t.Error("WithMessage mutated the shared ParamErr value")
	}
}
