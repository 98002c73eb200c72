package ports

import "io"

// Defines the interface for calculating and verifying 16-bit image checksums.
// This allows us to swap accumulation modes without changing core logic.
type ChecksumPort interface {
	// Calculate returns the checksum of data under the implementation's mode.
	// Modes with shape requirements report inputs they cannot sum, such as
	// an odd-length input in strict word-wise mode.
	Calculate(data []byte) (uint16, error)

	// Sum consumes r until EOF and returns the checksum of the stream.
	Sum(r io.Reader) (uint16, error)

	// Verify reports whether the checksum of data matches expected.
	Verify(data []byte, expected uint16) (bool, error)

	// Name returns the mode name, such as "byte-wise".
	Name() string
}
