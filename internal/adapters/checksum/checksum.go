package checksum

import (
	"fmt"

	"github.com/iamNilotpal/romsum/internal/core/domain"
	"github.com/iamNilotpal/romsum/internal/core/ports"
)

const (
	// ByteWise sums every byte of the image as its own contribution
	ByteWise domain.Mode = "byte-wise"

	// WordWise sums consecutive byte pairs as big-endian 16-bit words
	WordWise domain.Mode = "word-wise"

	// Mirror weights a trailing power-of-two section twice, matching how
	// hardware maps smaller ROM chips into a larger address space
	Mirror domain.Mode = "mirror"
)

// Returns recommended checksum settings.
func DefaultOptions() *domain.SumOptions {
	return &domain.SumOptions{
		Mode: ByteWise,
	}
}

func Validate(input *domain.SumOptions) error {
	if input.Custom == nil {
		switch input.Mode {
		case ByteWise, WordWise, Mirror:
		default:
			return fmt.Errorf("unsupported checksum mode: %s", input.Mode)
		}
	}
	return nil
}

// New builds the accumulator for the configured mode. A Custom port takes
// precedence over Mode.
func New(opts *domain.SumOptions) ports.ChecksumPort {
	if opts.Custom != nil {
		return opts.Custom
	}

	switch opts.Mode {
	case WordWise:
		return NewWordWise(opts.AllowOddLength)
	case Mirror:
		return NewMirror()
	default:
		return NewByteWise()
	}
}
