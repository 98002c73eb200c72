package image

import (
	"fmt"

	"github.com/iamNilotpal/romsum/internal/adapters/checksum"
	"github.com/iamNilotpal/romsum/internal/adapters/compression"
	"github.com/iamNilotpal/romsum/internal/core/domain"
)

func Validate(opts *domain.Options) error {
	if err := validateBufferSize(opts.BufferSize); err != nil {
		return err
	}

	if opts.MaxImageSize < MinImageSizeLimit {
		return fmt.Errorf("max image size must be at least 4MB (4194304 bytes), got %d bytes", opts.MaxImageSize)
	}

	if opts.Workers < 1 || opts.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", MaxWorkers, opts.Workers)
	}

	if opts.Sum != nil {
		if err := checksum.Validate(opts.Sum); err != nil {
			return err
		}
	}

	if opts.Decompress != nil && opts.Decompress.Enable {
		if err := compression.Validate(opts.Decompress); err != nil {
			return err
		}
	}

	return nil
}

func validateBufferSize(size uint32) error {
	// Check minimum size
	if size < DefaultMinBufferSize {
		return fmt.Errorf("buffer size must be at least 4KB (4096 bytes), got %d bytes", size)
	}

	// Check maximum size
	if size > DefaultMaxBufferSize {
		return fmt.Errorf("buffer size must not exceed 16MB (16777216 bytes), got %d bytes", size)
	}

	// Power-of-two sizes keep pooled buffers aligned with allocator size
	// classes.
	if size&(size-1) != 0 {
		return fmt.Errorf("buffer size must be a power of 2, got %d bytes", size)
	}

	return nil
}
