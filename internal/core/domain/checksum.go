package domain

import (
	"github.com/iamNilotpal/romsum/internal/core/ports"
)

// Mode identifies a checksum accumulation strategy
type Mode string

// SumOptions defines configuration for image checksum accumulation.
type SumOptions struct {
	// Mode selects how image bytes contribute to the 16-bit sum.
	// Defaults to the byte-wise mode if not specified.
	Mode Mode

	// AllowOddLength keeps the historical word-wise behavior of silently
	// dropping a trailing unpaired byte. When false, word-wise sums over
	// an odd number of bytes fail instead, which surfaces truncated or
	// padded images that older tooling let through.
	//
	// Only meaningful in word-wise mode.
	// Default: false
	AllowOddLength bool

	// Custom allows using a custom ChecksumPort implementation.
	// If provided, it takes precedence over Mode.
	Custom ports.ChecksumPort
}
