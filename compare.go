package extfile

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/jmgilman/go/extfile/digest"
	"github.com/jmgilman/go/extfile/errors"
)

// Comparator decides whether two files have the same content, either by
// comparing digests or by comparing bytes. It holds only configuration and
// is safe for concurrent use.
type Comparator struct {
	alg     digest.Algorithm
	bufSize int
	log     logr.Logger
}

// NewComparator returns a Comparator configured by opts.
func NewComparator(opts ...Option) *Comparator {
	o := newOptions(opts)
	return &Comparator{
		alg:     o.algorithm,
		bufSize: o.bufferSize,
		log:     o.logger,
	}
}

// EqualsByHash compares the digests of a and b using the configured
// algorithm.
func (c *Comparator) EqualsByHash(a, b FileRef) (bool, error) {
	return c.EqualsByHashWith(a, b, c.alg)
}

// EqualsByHashWith compares the digests of a and b using alg. CRC32 is
// accepted but only detects accidental changes.
func (c *Comparator) EqualsByHashWith(a, b FileRef, alg digest.Algorithm) (bool, error) {
	if !alg.Valid() {
		return false, errors.Newf(errors.CodeUnsupportedAlgorithm, "unsupported hash algorithm %d", int(alg))
	}

	sumA, err := a.HashWith(alg)
	if err != nil {
		return false, err
	}
	sumB, err := b.HashWith(alg)
	if err != nil {
		return false, err
	}

	equal := sumA == sumB
	c.log.V(1).Info("compared digests", "a", a.path, "b", b.path, "algorithm", alg.String(), "equal", equal)
	return equal, nil
}

// EqualsByHashName is EqualsByHashWith with the algorithm given by name.
// Unknown names fail with errors.CodeUnsupportedAlgorithm before either
// file is read.
func (c *Comparator) EqualsByHashName(a, b FileRef, token string) (bool, error) {
	alg, err := digest.Parse(token)
	if err != nil {
		return false, err
	}
	return c.EqualsByHashWith(a, b, alg)
}

// EqualsDigest reports whether the digest of a under alg equals want, a hex
// string in either case.
func (c *Comparator) EqualsDigest(a FileRef, want string, alg digest.Algorithm) (bool, error) {
	if !alg.Valid() {
		return false, errors.Newf(errors.CodeUnsupportedAlgorithm, "unsupported hash algorithm %d", int(alg))
	}

	sum, err := a.HashWith(alg)
	if err != nil {
		return false, err
	}

	equal := strings.EqualFold(sum, strings.TrimSpace(want))
	c.log.V(1).Info("compared digest", "path", a.path, "algorithm", alg.String(), "equal", equal)
	return equal, nil
}

// EqualsExact compares a and b byte by byte and stops at the first
// difference. Files of different sizes are unequal without being read.
// Directories are rejected with errors.CodeInvalidInput.
func (c *Comparator) EqualsExact(a, b FileRef) (bool, error) {
	infoA, err := a.Stat()
	if err != nil {
		return false, err
	}
	infoB, err := b.Stat()
	if err != nil {
		return false, err
	}
	if infoA.IsDir() {
		return false, directoryError(a.path)
	}
	if infoB.IsDir() {
		return false, directoryError(b.path)
	}
	if infoA.Size() != infoB.Size() {
		c.log.V(1).Info("sizes differ", "a", a.path, "b", b.path)
		return false, nil
	}

	fa, err := a.Open()
	if err != nil {
		return false, err
	}
	defer func() { _ = fa.Close() }()

	fb, err := b.Open()
	if err != nil {
		return false, err
	}
	defer func() { _ = fb.Close() }()

	equal, err := c.compareStreams(fa, a.path, fb, b.path)
	if err != nil {
		return false, err
	}
	c.log.V(1).Info("compared content", "a", a.path, "b", b.path, "equal", equal)
	return equal, nil
}

func (c *Comparator) compareStreams(ra io.Reader, pathA string, rb io.Reader, pathB string) (bool, error) {
	bufA := make([]byte, c.bufSize)
	bufB := make([]byte, c.bufSize)
	for {
		na, errA := io.ReadFull(ra, bufA)
		if errA != nil && !endOfStream(errA) {
			return false, fsError(errA, "read", pathA)
		}
		nb, errB := io.ReadFull(rb, bufB)
		if errB != nil && !endOfStream(errB) {
			return false, fsError(errB, "read", pathB)
		}

		if na != nb || !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}
		// A short read means the stream is exhausted.
		doneA := errA != nil
		doneB := errB != nil
		if doneA || doneB {
			return doneA && doneB, nil
		}
	}
}

func directoryError(path string) error {
	return errors.WithContext(errors.New(errors.CodeInvalidInput, "cannot compare the content of a directory"), "path", path)
}

func endOfStream(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

var defaultComparator = NewComparator()

// EqualsByHash compares a and b by SHA-256 digest.
func EqualsByHash(a, b FileRef) (bool, error) {
	return defaultComparator.EqualsByHash(a, b)
}

// EqualsByHashWith compares a and b by digest using alg.
func EqualsByHashWith(a, b FileRef, alg digest.Algorithm) (bool, error) {
	return defaultComparator.EqualsByHashWith(a, b, alg)
}

// EqualsByHashName compares a and b by digest using the named algorithm.
func EqualsByHashName(a, b FileRef, token string) (bool, error) {
	return defaultComparator.EqualsByHashName(a, b, token)
}

// EqualsDigest compares the digest of a under alg with want.
func EqualsDigest(a FileRef, want string, alg digest.Algorithm) (bool, error) {
	return defaultComparator.EqualsDigest(a, want, alg)
}

// EqualsExact compares a and b byte by byte.
func EqualsExact(a, b FileRef) (bool, error) {
	return defaultComparator.EqualsExact(a, b)
}

// Matches reports whether r and other have the same SHA-256 digest.
func (r FileRef) Matches(other FileRef) (bool, error) {
	return EqualsByHash(r, other)
}

// MatchesWith reports whether r and other have the same digest under alg.
func (r FileRef) MatchesWith(other FileRef, alg digest.Algorithm) (bool, error) {
	return EqualsByHashWith(r, other, alg)
}

// MatchesName reports whether r and other have the same digest under the
// named algorithm.
func (r FileRef) MatchesName(other FileRef, token string) (bool, error) {
	return EqualsByHashName(r, other, token)
}

// MatchesExact reports whether r and other have identical bytes.
func (r FileRef) MatchesExact(other FileRef) (bool, error) {
	return EqualsExact(r, other)
}
