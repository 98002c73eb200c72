package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipDecompression implements DecompressionPort for gzip compressed
// images. The adapter is stateless, so a single instance can be shared.
type GzipDecompression struct{}

func NewGzipDecompression() *GzipDecompression {
	return &GzipDecompression{}
}

// Decompress restores the original image bytes from gzip compressed data.
// Concatenated gzip members are decoded as one stream.
//
// Returns an error if:
// - The input data is not valid gzip compressed data
// - Decompression fails for any other reason
func (g *GzipDecompression) Decompress(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return decompressed, nil
}

func (g *GzipDecompression) Close() error {
	return nil
}

func (g *GzipDecompression) Name() string {
	return "gzip"
}
