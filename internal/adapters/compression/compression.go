package compression

import (
	"fmt"
	"runtime"

	"github.com/iamNilotpal/romsum/internal/core/domain"
)

// File name extensions recognized as compressed images.
const (
	ExtZstd = ".zst"
	ExtGzip = ".gz"
)

// Returns DecompressOptions initialized with recommended default values.
func DefaultOptions() *domain.DecompressOptions {
	return &domain.DecompressOptions{
		Enable:             true,
		DecoderConcurrency: uint8(runtime.NumCPU()),
	}
}

// Checks if the decompression options are valid and returns an error if any
// option is outside acceptable bounds.
func Validate(input *domain.DecompressOptions) error {
	if input.DecoderConcurrency > uint8(runtime.NumCPU()) {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency,
		)
	}
	return nil
}
