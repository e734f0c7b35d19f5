// Package digest computes hex-encoded content digests for the hash
// algorithms supported by file comparison.
//
// Algorithms are a closed set. Parse is the only place string tokens are
// mapped to algorithms; it accepts any case and treats '-' and '/' as
// optional, so "SHA-256", "sha256" and "Sha-256" all name SHA256, and
// "SHA-512/224" and "sha512224" both name SHA512_224.
//
// CRC32 is a checksum, not a cryptographic hash. Two different files collide
// with a probability of roughly 1 in 4 billion, far higher than for any of
// the SHA-2 or SHA-3 variants. It is offered because it is fast on large
// files; callers that need confidence should use SHA-256 or stronger.
package digest

import (
	"crypto/md5"  //nolint:gosec // offered for compatibility, documented as weak
	"crypto/sha1" //nolint:gosec // offered for compatibility, documented as weak
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"hash/crc32"
	"io"
	"strings"

	"github.com/jmgilman/go/extfile/errors"
	"golang.org/x/crypto/sha3"
)

// Algorithm selects a digest function.
type Algorithm int

const (
	// Unknown is the zero value and names no algorithm.
	Unknown Algorithm = iota
	CRC32
	MD5
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	SHA512_224
	SHA512_256
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
)

// Default is the algorithm used when the caller does not choose one.
const Default = SHA256

type spec struct {
	name string
	size int
	ctor func() hash.Hash
}

var specs = map[Algorithm]spec{
	CRC32:      {"CRC32", crc32.Size, func() hash.Hash { return crc32.NewIEEE() }},
	MD5:        {"MD5", md5.Size, md5.New},
	SHA1:       {"SHA-1", sha1.Size, sha1.New},
	SHA224:     {"SHA-224", sha256.Size224, sha256.New224},
	SHA256:     {"SHA-256", sha256.Size, sha256.New},
	SHA384:     {"SHA-384", sha512.Size384, sha512.New384},
	SHA512:     {"SHA-512", sha512.Size, sha512.New},
	SHA512_224: {"SHA-512/224", sha512.Size224, sha512.New512_224},
	SHA512_256: {"SHA-512/256", sha512.Size256, sha512.New512_256},
	SHA3_224:   {"SHA3-224", 28, sha3.New224},
	SHA3_256:   {"SHA3-256", 32, sha3.New256},
	SHA3_384:   {"SHA3-384", 48, sha3.New384},
	SHA3_512:   {"SHA3-512", 64, sha3.New512},
}

// tokens maps normalized tokens to algorithms. Register new algorithms here
// and in specs.
var tokens = map[string]Algorithm{
	"crc32":     CRC32,
	"md5":       MD5,
	"sha1":      SHA1,
	"sha224":    SHA224,
	"sha256":    SHA256,
	"sha384":    SHA384,
	"sha512":    SHA512,
	"sha512224": SHA512_224,
	"sha512256": SHA512_256,
	"sha3224":   SHA3_224,
	"sha3256":   SHA3_256,
	"sha3384":   SHA3_384,
	"sha3512":   SHA3_512,
}

var normalizer = strings.NewReplacer("-", "", "/", "")

// Parse resolves a token such as "SHA-256" or "sha3-512" to an Algorithm.
// Unknown tokens fail with errors.CodeUnsupportedAlgorithm; there is no
// fallback.
func Parse(token string) (Algorithm, error) {
	key := normalizer.Replace(strings.ToLower(strings.TrimSpace(token)))
	if alg, ok := tokens[key]; ok {
		return alg, nil
	}
	return Unknown, errors.WithContext(
		errors.Newf(errors.CodeUnsupportedAlgorithm, "unsupported hash algorithm %q", token),
		"algorithm", token,
	)
}

// MustParse is like Parse but panics on unknown tokens. It is meant for
// package-level variables initialised from constants.
func MustParse(token string) Algorithm {
	alg, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return alg
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, 0, len(specs))
	for a := CRC32; a <= SHA3_512; a++ {
		algs = append(algs, a)
	}
	return algs
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	_, ok := specs[a]
	return ok
}

// String returns the canonical name, e.g. "SHA-256".
func (a Algorithm) String() string {
	if s, ok := specs[a]; ok {
		return s.name
	}
	return "unknown"
}

// Size returns the digest length in bytes, or 0 for an invalid algorithm.
func (a Algorithm) Size() int {
	return specs[a].size
}

// Cryptographic reports whether a is a cryptographic hash. Only CRC32 is
// not.
func (a Algorithm) Cryptographic() bool {
	return a.Valid() && a != CRC32
}

// New returns a fresh hash.Hash for a.
func (a Algorithm) New() (hash.Hash, error) {
	s, ok := specs[a]
	if !ok {
		return nil, errors.Newf(errors.CodeUnsupportedAlgorithm, "unsupported hash algorithm %d", int(a))
	}
	return s.ctor(), nil
}

// Sum reads r to EOF and returns its lowercase hex digest. Read failures are
// wrapped with errors.CodeIO unless r already returned a PlatformError.
func Sum(r io.Reader, a Algorithm) (string, error) {
	h, err := a.New()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		var platformErr errors.PlatformError
		if errors.As(err, &platformErr) {
			return "", err
		}
		return "", errors.WithContext(errors.Wrap(err, errors.CodeIO, "failed to read input"), "algorithm", a.String())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumBytes returns the lowercase hex digest of data.
func SumBytes(data []byte, a Algorithm) (string, error) {
	h, err := a.New()
	if err != nil {
		return "", err
	}
	_, _ = h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
