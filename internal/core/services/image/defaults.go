package image

import (
	"github.com/iamNilotpal/romsum/internal/adapters/checksum"
	"github.com/iamNilotpal/romsum/internal/adapters/compression"
	"github.com/iamNilotpal/romsum/internal/core/domain"
)

const (
	DefaultWorkers = 4
	MaxWorkers     = 32

	DefaultMinBufferSize = 4096     // 4KB
	DefaultMaxBufferSize = 16777216 // 16MB
	DefaultBufferSize    = 1048576  // 1MB

	MinImageSizeLimit   = 4194304  // 4MB
	DefaultMaxImageSize = 67108864 // 64MB
)

func prepareDefaults(opts *domain.Options) *domain.Options {
	if opts.BufferSize == 0 {
		opts.BufferSize = DefaultBufferSize
	}

	if opts.BufferSize < DefaultMinBufferSize {
		opts.BufferSize = DefaultMinBufferSize
	}

	if opts.BufferSize > DefaultMaxBufferSize {
		opts.BufferSize = DefaultMaxBufferSize
	}

	if opts.MaxImageSize == 0 {
		opts.MaxImageSize = DefaultMaxImageSize
	}

	if opts.Workers == 0 {
		opts.Workers = DefaultWorkers
	}

	if opts.Sum == nil {
		opts.Sum = checksum.DefaultOptions()
	} else if opts.Sum.Mode == "" && opts.Sum.Custom == nil {
		opts.Sum.Mode = checksum.ByteWise
	}

	if opts.Decompress == nil {
		opts.Decompress = compression.DefaultOptions()
	}

	return opts
}
