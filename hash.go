package extfile

import (
	"io"

	"github.com/jmgilman/go/extfile/digest"
)

// Hash returns the lowercase hex SHA-256 digest of the content.
func (r FileRef) Hash() (string, error) {
	return r.HashWith(digest.Default)
}

// HashWith returns the lowercase hex digest of the content using alg.
// Directories are rejected with errors.CodeInvalidInput.
func (r FileRef) HashWith(alg digest.Algorithm) (string, error) {
	info, err := r.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", directoryError(r.path)
	}

	var sum string
	err = r.withReader(func(rd io.Reader) error {
		var err error
		sum, err = digest.Sum(rd, alg)
		return err
	})
	if err != nil {
		return "", fsError(err, "hash", r.path)
	}
	return sum, nil
}

// HashName is HashWith with the algorithm given by name, e.g. "SHA-512".
func (r FileRef) HashName(token string) (string, error) {
	alg, err := digest.Parse(token)
	if err != nil {
		return "", err
	}
	return r.HashWith(alg)
}
