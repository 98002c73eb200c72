package ports

// Defines the interface for decoding compressed images before summing.
// This allows us to swap codecs without changing core logic.
type DecompressionPort interface {
	// Decompress restores the original image bytes.
	// Returns decompressed data and any error that occurred.
	Decompress(data []byte) ([]byte, error)

	// Close cleans up decoder resources.
	Close() error

	// Name returns the codec name, such as "zstd".
	Name() string
}
