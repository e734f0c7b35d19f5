// Package errors provides the structured error type returned by every
// operation in this module.
//
// Errors carry a code, a retry classification and optional context metadata
// (typically the path and the operation that failed). They remain compatible
// with the standard library: errors.Is, errors.As and errors.Unwrap all walk
// through wrapped causes, so a missing file can still be detected with
// errors.Is(err, fs.ErrNotExist).
//
// Creating and wrapping:
//
//	err := errors.New(errors.CodeUnsupportedAlgorithm, "unknown hash algorithm")
//
//	data, err := fsys.ReadFile(name)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to read file")
//	}
//
// Inspecting:
//
//	switch errors.GetCode(err) {
//	case errors.CodeNotFound:
//	    // ...
//	}
//
//	if errors.IsRetryable(err) {
//	    // transient I/O failure, the caller may try again
//	}
package errors
