package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	err := Wrap(stderrors.New("x"), CodeForbidden, "denied")

	var platformErr PlatformError
	require.True(t, As(err, &platformErr))
	require.Equal(t, CodeForbidden, platformErr.Code())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "platform error",
			err:  New(CodeNotFound, "not found"),
			want: CodeNotFound,
		},
		{
			name: "wrapped platform error",
			err:  Wrap(New(CodeNotFound, "missing"), CodeDeleteFailed, "remove failed"),
			want: CodeDeleteFailed,
		},
		{
			name: "standard error",
			err:  stderrors.New("plain"),
			want: CodeUnknown,
		},
		{
			name: "nil error",
			err:  nil,
			want: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	require.True(t, IsRetryable(New(CodeIO, "io")))
	require.False(t, IsRetryable(New(CodeUnsupportedAlgorithm, "bad token")))
	require.False(t, IsRetryable(stderrors.New("plain")))
	require.False(t, IsRetryable(nil))
}

func TestWithContext(t *testing.T) {
	err := New(CodeUnsupportedAlgorithm, "unknown hash algorithm")
	withAlg := WithContext(err, "algorithm", "SHA-999")
	withBoth := WithContext(withAlg, "path", "a.txt")

	require.Nil(t, err.Context())
	require.Equal(t, map[string]any{"algorithm": "SHA-999"}, withAlg.Context())
	require.Equal(t, map[string]any{"algorithm": "SHA-999", "path": "a.txt"}, withBoth.Context())
	require.Equal(t, CodeUnsupportedAlgorithm, withBoth.Code())
}

func TestWithContext_StandardError(t *testing.T) {
	cause := stderrors.New("plain")
	err := WithContext(cause, "path", "a.txt")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, "plain", err.Message())
	require.True(t, Is(err, cause))
}

func TestWithContext_Nil(t *testing.T) {
	require.Nil(t, WithContext(nil, "k", "v"))
}
