package extfile

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/extfile/errors"
)

// fsError classifies a filesystem error and records the path and operation.
// Errors that already are PlatformErrors keep their code.
func fsError(err error, op, path string) error {
	if err == nil {
		return nil
	}

	var platformErr errors.PlatformError
	if errors.As(err, &platformErr) {
		return errors.WithContext(errors.WithContext(err, "path", path), "op", op)
	}

	code := errors.CodeIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = errors.CodeNotFound
	case errors.Is(err, fs.ErrPermission):
		code = errors.CodeForbidden
	}
	return errors.WrapWithContext(err, code, fmt.Sprintf("%s %s failed", op, path), map[string]any{
		"path": path,
		"op":   op,
	})
}
