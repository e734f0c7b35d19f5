package digest

import (
	stderrors "errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/jmgilman/go/extfile/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  Algorithm
	}{
		{"CRC32", CRC32},
		{"crc-32", CRC32},
		{"MD5", MD5},
		{"md5", MD5},
		{"SHA-1", SHA1},
		{"sha1", SHA1},
		{"SHA-224", SHA224},
		{"SHA-256", SHA256},
		{"sha256", SHA256},
		{"SHA256", SHA256},
		{"Sha-256", SHA256},
		{" sha-256 ", SHA256},
		{"SHA-384", SHA384},
		{"sha512", SHA512},
		{"SHA-512/224", SHA512_224},
		{"sha512224", SHA512_224},
		{"SHA-512/256", SHA512_256},
		{"sha-512256", SHA512_256},
		{"SHA3-224", SHA3_224},
		{"sha3256", SHA3_256},
		{"SHA3-384", SHA3_384},
		{"sha3-512", SHA3_512},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unsupported(t *testing.T) {
	for _, token := range []string{"SHA-999", "", "sha", "blake2b", "sha3"} {
		t.Run(token, func(t *testing.T) {
			alg, err := Parse(token)
			require.Error(t, err)
			assert.Equal(t, Unknown, alg)
			assert.Equal(t, errors.CodeUnsupportedAlgorithm, errors.GetCode(err))
			assert.False(t, errors.IsRetryable(err))

			var platformErr errors.PlatformError
			require.True(t, errors.As(err, &platformErr))
			assert.Equal(t, token, platformErr.Context()["algorithm"])
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, SHA3_256, MustParse("SHA3-256"))
	assert.Panics(t, func() { MustParse("SHA-999") })
}

// Every canonical name must parse back to its own algorithm, which keeps the
// two tables in sync.
func TestStringRoundTrip(t *testing.T) {
	for _, alg := range Algorithms() {
		got, err := Parse(alg.String())
		require.NoError(t, err, alg.String())
		assert.Equal(t, alg, got)
	}
}

func TestAlgorithms(t *testing.T) {
	algs := Algorithms()
	assert.Len(t, algs, 13)
	assert.Equal(t, CRC32, algs[0])
	assert.Equal(t, SHA3_512, algs[len(algs)-1])
	assert.Contains(t, algs, Default)
}

func TestAlgorithm_Properties(t *testing.T) {
	assert.False(t, Unknown.Valid())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, 0, Unknown.Size())
	assert.False(t, CRC32.Cryptographic())
	assert.True(t, SHA256.Cryptographic())
	assert.False(t, Unknown.Cryptographic())

	for _, alg := range Algorithms() {
		sum, err := SumBytes([]byte("x"), alg)
		require.NoError(t, err)
		assert.Len(t, sum, alg.Size()*2, alg.String())
	}
}

func TestSum_KnownVectors(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want string
	}{
		{CRC32, "352441c2"},
		{MD5, "900150983cd24fb0d6963f7d28e17f72"},
		{SHA1, "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA224, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{SHA256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{SHA3_256, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			got, err := Sum(strings.NewReader("abc"), tt.alg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			fromBytes, err := SumBytes([]byte("abc"), tt.alg)
			require.NoError(t, err)
			assert.Equal(t, got, fromBytes)
		})
	}
}

func TestSum_TokensAgree(t *testing.T) {
	var sums []string
	for _, token := range []string{"SHA-256", "sha256", "SHA256"} {
		sum, err := Sum(strings.NewReader("same content"), MustParse(token))
		require.NoError(t, err)
		sums = append(sums, sum)
	}
	assert.Equal(t, sums[0], sums[1])
	assert.Equal(t, sums[0], sums[2])
}

func TestSum_ReadError(t *testing.T) {
	cause := stderrors.New("device error")
	_, err := Sum(iotest.ErrReader(cause), SHA256)

	require.Error(t, err)
	assert.Equal(t, errors.CodeIO, errors.GetCode(err))
	assert.True(t, errors.Is(err, cause))
}

func TestSum_PreservesPlatformError(t *testing.T) {
	cause := errors.New(errors.CodeForbidden, "denied")
	_, err := Sum(iotest.ErrReader(cause), SHA256)

	assert.Equal(t, errors.CodeForbidden, errors.GetCode(err))
}

func TestSum_InvalidAlgorithm(t *testing.T) {
	_, err := Sum(strings.NewReader("abc"), Unknown)
	assert.Equal(t, errors.CodeUnsupportedAlgorithm, errors.GetCode(err))

	_, err = SumBytes(nil, Algorithm(99))
	assert.Equal(t, errors.CodeUnsupportedAlgorithm, errors.GetCode(err))
}
