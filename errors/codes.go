package errors

// ErrorCode represents a specific error condition.
// Codes are strings so they read well in logs.
type ErrorCode string

const (
	// Filesystem errors.

	// CodeNotFound indicates the path does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeForbidden indicates permission to the path was denied.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeIO indicates a read or other I/O failure not covered by a more
	// specific code.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeDeleteFailed indicates a filesystem entry could not be removed.
	CodeDeleteFailed ErrorCode = "DELETE_FAILED"

	// Input errors.

	// CodeInvalidInput indicates the caller supplied an unusable argument,
	// such as a non-file URI.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeUnsupportedAlgorithm indicates a hash algorithm token that does not
	// name any supported algorithm.
	CodeUnsupportedAlgorithm ErrorCode = "UNSUPPORTED_ALGORITHM"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// ErrorClassification indicates whether an operation that failed with an
// error may succeed if attempted again.
type ErrorClassification string

const (
	// ClassificationRetryable marks failures that may be transient, such as a
	// device error while reading.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will not change on retry,
	// such as an unknown algorithm or a missing file.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry may help.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIO: ClassificationRetryable,

	CodeNotFound:             ClassificationPermanent,
	CodeForbidden:            ClassificationPermanent,
	CodeDeleteFailed:         ClassificationPermanent,
	CodeInvalidInput:         ClassificationPermanent,
	CodeUnsupportedAlgorithm: ClassificationPermanent,
	CodeInternal:             ClassificationPermanent,
	CodeUnknown:              ClassificationPermanent,
}

// getDefaultClassification returns the classification for code, falling
// back to ClassificationPermanent for codes without an entry.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
