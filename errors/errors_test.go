package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeUnsupportedAlgorithm, "unknown hash algorithm")

	require.Equal(t, CodeUnsupportedAlgorithm, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, "unknown hash algorithm", err.Message())
	require.Equal(t, "[UNSUPPORTED_ALGORITHM] unknown hash algorithm", err.Error())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "unsupported scheme %q", "http")
	require.Equal(t, `unsupported scheme "http"`, err.Message())
}

func TestDefaultClassification(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want ErrorClassification
	}{
		{CodeIO, ClassificationRetryable},
		{CodeNotFound, ClassificationPermanent},
		{CodeForbidden, ClassificationPermanent},
		{CodeDeleteFailed, ClassificationPermanent},
		{CodeInvalidInput, ClassificationPermanent},
		{CodeUnsupportedAlgorithm, ClassificationPermanent},
		{ErrorCode("SOMETHING_NEW"), ClassificationPermanent},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			require.Equal(t, tt.want, New(tt.code, "x").Classification())
		})
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("device not ready")
	err := Wrap(cause, CodeIO, "failed to read file")

	require.Equal(t, CodeIO, err.Code())
	require.True(t, err.Classification().IsRetryable())
	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, "[IO_ERROR] failed to read file: device not ready", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeIO, "x"))
	require.Nil(t, Wrapf(nil, CodeIO, "x %d", 1))
	require.Nil(t, WrapWithContext(nil, CodeIO, "x", map[string]any{"k": "v"}))
}

func TestWrap_PreservesClassification(t *testing.T) {
	inner := New(CodeNotFound, "missing")
	outer := Wrap(inner, CodeDeleteFailed, "remove failed")

	require.Equal(t, CodeDeleteFailed, outer.Code())
	require.False(t, outer.Classification().IsRetryable())

	retryable := Wrap(New(CodeIO, "flaky"), CodeDeleteFailed, "remove failed")
	require.True(t, retryable.Classification().IsRetryable())
}

func TestWrap_KeepsStdlibSentinels(t *testing.T) {
	err := Wrap(fs.ErrNotExist, CodeNotFound, "no such file")
	require.True(t, stderrors.Is(err, fs.ErrNotExist))
	require.True(t, Is(err, fs.ErrNotExist))
}

func TestWrapWithContext_CopiesMap(t *testing.T) {
	ctx := map[string]any{"path": "a.txt"}
	err := WrapWithContext(stderrors.New("boom"), CodeIO, "read failed", ctx)

	ctx["path"] = "mutated"
	require.Equal(t, "a.txt", err.Context()["path"])

	got := err.Context()
	got["path"] = "also mutated"
	require.Equal(t, "a.txt", err.Context()["path"])
}
