// Package compression provides the decode side of image handling: cartridge
// images are often archived as .zst or .gz files, and the checksum must
// describe the original bytes, not the archive. It offers thread-safe
// decoders behind the DecompressionPort interface.
package compression

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/iamNilotpal/romsum/internal/core/domain"
)

type Options struct {
	DecoderConcurrency uint8
}

// ZstdDecompression implements DecompressionPort using the zstd algorithm.
// A single decoder instance is shared across images; DecodeAll is safe for
// concurrent use, so one adapter serves a whole batch.
type ZstdDecompression struct {
	mu      sync.RWMutex  // Protects decoder state against Close.
	decoder *zstd.Decoder // Thread-safe decoder instance.
}

// NewZstdDecompression creates a new zstd decoder with the given
// concurrency. Zero concurrency selects the number of CPU cores.
//
// Returns an error if:
// - The concurrency is out of range
// - The decoder initialization fails
func NewZstdDecompression(opts Options) (*ZstdDecompression, error) {
	if err := Validate(&domain.DecompressOptions{DecoderConcurrency: opts.DecoderConcurrency}); err != nil {
		return nil, err
	}

	concurrency := int(opts.DecoderConcurrency)
	if concurrency == 0 {
		concurrency = runtime.NumCPU()
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(concurrency))
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdDecompression{decoder: decoder}, nil
}

// Decompress restores the original image bytes from zstd compressed data.
// The operation is thread-safe and can be called concurrently.
//
// Returns an error if:
// - The input data is not valid zstd compressed data
// - Decompression fails for any other reason
func (z *ZstdDecompression) Decompress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	decompressed, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return decompressed, nil
}

// Close releases the decoder resources. After closing, the instance cannot
// be used for decompression.
func (z *ZstdDecompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	z.decoder.Close()
	return nil
}

func (z *ZstdDecompression) Name() string {
	return "zstd"
}
