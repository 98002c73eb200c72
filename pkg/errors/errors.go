package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies the failures that can occur while summing or
// verifying cartridge images. This helps callers decide how to report a
// failure and which input to blame.
type ErrorCategory int

const (
	// ErrorSource indicates errors obtaining the image bytes, such as a
	// missing file, a permission problem, or a failed read from a stream.
	ErrorSource ErrorCategory = iota + 1

	// ErrorDecompress indicates errors while decoding a compressed image,
	// such as truncated or corrupt zstd or gzip data.
	ErrorDecompress

	// ErrorChecksum indicates errors raised by the accumulation itself,
	// such as an odd-length input in word-wise mode or an image whose size
	// does not fit the mirrored section layout.
	ErrorChecksum

	// ErrorManifest indicates errors reading, writing, or validating a
	// checksum manifest, such as malformed YAML or an entry whose stored
	// complement does not match its checksum.
	ErrorManifest
)

// String returns the string representation of the error category.
// This is useful for logging and error reporting.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorSource:
		return "source"
	case ErrorDecompress:
		return "decompress"
	case ErrorChecksum:
		return "checksum"
	case ErrorManifest:
		return "manifest"
	default:
		return "unknown"
	}
}

// SumError wraps a failure in one of the image checksum operations with
// the operation name, the image (or manifest) it concerns, and a category.
type SumError struct {
	Err       error
	Operation string
	Image     string
	Category  ErrorCategory
}

// NewSumError builds a SumError for the given category and operation.
// Image may be empty when no single input is to blame.
func NewSumError(category ErrorCategory, operation, image string, err error) *SumError {
	return &SumError{
		Err:       err,
		Operation: operation,
		Image:     image,
		Category:  category,
	}
}

func (e *SumError) Error() string {
	if e.Image == "" {
		return fmt.Sprintf("[%s] %s: %v", e.Category, e.Operation, e.Err)
	}
	return fmt.Sprintf("[%s] %s %s: %v", e.Category, e.Operation, e.Image, e.Err)
}

// Unwrap exposes the underlying error so callers can match sentinel
// errors with errors.Is.
func (e *SumError) Unwrap() error {
	return e.Err
}

// CategoryOf extracts the category from an error chain. It returns 0 when
// no SumError is present.
func CategoryOf(err error) ErrorCategory {
	var se *SumError
	if errors.As(err, &se) {
		return se.Category
	}
	return 0
}
