// Package domain defines the core types and configurations for the image
// checksum system.
package domain

// Options defines the configuration parameters for the image checksum
// service. It provides control over accumulation, input handling, and
// concurrency.
type Options struct {
	// BufferSize controls the size of the in-memory staging buffer used
	// when an image arrives as a stream instead of a file. Larger buffers
	// reduce reallocation while reading big images but increase memory
	// usage. Must be a power of two between 4KB and 16MB.
	//
	// Default: 1MB
	BufferSize uint32

	// MaxImageSize bounds the number of decoded bytes accepted from a
	// single image. Inputs beyond the bound are rejected rather than
	// summed, which catches an archive expanding far past any plausible
	// cartridge size. Must be at least 4MB.
	//
	// Default: 64MB
	MaxImageSize uint32

	// Workers bounds how many images are summed concurrently when a batch
	// of files is processed. Must be between 1 and 32.
	//
	// Default: 4
	Workers uint8

	// Sum selects and configures the accumulation mode.
	Sum *SumOptions

	// Decompress configures transparent decoding of compressed images.
	Decompress *DecompressOptions
}
