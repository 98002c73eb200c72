package domain

// DecompressOptions configures transparent decoding of compressed images.
// Images are often archived compressed; decoding before summing lets the
// checksum describe the original cartridge bytes rather than the archive.
type DecompressOptions struct {
	// Enable toggles decoding of images whose name carries a recognized
	// compression extension (.zst, .gz). When false, such files are summed
	// as raw bytes like any other input.
	Enable bool

	// DecoderConcurrency specifies the number of concurrent zstd decompression
	// workers. Higher values may improve decode speed for large images but
	// increase memory usage. Must be between 1 and 16. Default is the number
	// of CPU cores if set to 0.
	DecoderConcurrency uint8
}
