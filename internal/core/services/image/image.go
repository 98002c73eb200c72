package image

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iamNilotpal/romsum/internal/adapters/checksum"
	"github.com/iamNilotpal/romsum/internal/adapters/compression"
	"github.com/iamNilotpal/romsum/internal/adapters/fs"
	"github.com/iamNilotpal/romsum/internal/core/domain"
	"github.com/iamNilotpal/romsum/internal/core/ports"
	"github.com/iamNilotpal/romsum/pkg/errors"
	"github.com/iamNilotpal/romsum/pkg/pool"
	"github.com/iamNilotpal/romsum/pkg/sum16"
	"github.com/iamNilotpal/romsum/pkg/system"
)

// Service computes cartridge image checksums. It resolves each input to
// raw image bytes, reading files and decoding recognized archives, then
// runs the configured accumulation mode over them and pairs the checksum
// with its complement.
type Service struct {
	// Core components and configuration
	options      *domain.Options                    // Configuration controlling service behavior
	fs           ports.FileSystemPort               // Image byte access
	active       ports.ChecksumPort                 // Accumulator for the configured default mode
	accumulators map[domain.Mode]ports.ChecksumPort // All built-in accumulators, for per-entry mode selection
	decoders     map[string]ports.DecompressionPort // Decoders keyed by file extension
	buffers      *pool.BufferPool                   // Staging buffers for streamed images
	logger       *zap.SugaredLogger
}

func New(opts *domain.Options, logger *zap.SugaredLogger) (*Service, error) {
	if opts == nil {
		opts = &domain.Options{}
	}
	opts = prepareDefaults(opts)

	if err := Validate(opts); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	accumulators := map[domain.Mode]ports.ChecksumPort{
		checksum.ByteWise: checksum.NewByteWise(),
		checksum.WordWise: checksum.NewWordWise(opts.Sum.AllowOddLength),
		checksum.Mirror:   checksum.NewMirror(),
	}

	// The active accumulator also registers under its own name so manifest
	// verification can reach a custom implementation by mode.
	active := checksum.New(opts.Sum)
	accumulators[domain.Mode(active.Name())] = active

	decoders := map[string]ports.DecompressionPort{}
	if opts.Decompress.Enable {
		zstdDecoder, err := compression.NewZstdDecompression(compression.Options{
			DecoderConcurrency: opts.Decompress.DecoderConcurrency,
		})
		if err != nil {
			return nil, fmt.Errorf("error creating zstd decoder : %w", err)
		}
		decoders[compression.ExtZstd] = zstdDecoder
		decoders[compression.ExtGzip] = compression.NewGzipDecompression()
	}

	return &Service{
		options:      opts,
		fs:           fs.NewLocalFileSystem(),
		active:       active,
		accumulators: accumulators,
		decoders:     decoders,
		buffers:      pool.NewBufferPool(int(opts.BufferSize)),
		logger:       logger,
	}, nil
}

// Sum reads, decodes, and checksums a single image file under the
// configured default mode.
func (s *Service) Sum(ctx context.Context, path string) (*domain.Result, error) {
	return s.sum(ctx, path, s.active)
}

// SumWithMode checksums one image under an explicit mode, regardless of
// the configured default. Manifest verification uses this to honor the
// mode each entry was produced with.
func (s *Service) SumWithMode(ctx context.Context, path string, mode domain.Mode) (*domain.Result, error) {
	accumulator, ok := s.accumulators[mode]
	if !ok {
		return nil, errors.NewValidationError("mode", mode, fmt.Errorf("unsupported checksum mode: %s", mode))
	}
	return s.sum(ctx, path, accumulator)
}

// SumReader checksums an image that arrives as a stream, such as stdin.
// The stream is staged through a pooled buffer because strict length
// checks and the mirrored section layout depend on the complete image.
// Streams are never decompressed; they are summed as raw image bytes.
func (s *Service) SumReader(ctx context.Context, r io.Reader, name string) (*domain.Result, error) {
	var result *domain.Result

	err := system.RunWithContext(ctx, func(opCtx context.Context) error {
		buf := s.buffers.Get()
		defer s.buffers.Put(buf)

		limit := int64(s.options.MaxImageSize)
		n, err := buf.ReadFrom(io.LimitReader(r, limit+1))
		if err != nil {
			return errors.NewSumError(errors.ErrorSource, "read", name, err)
		}
		if n > limit {
			return errors.NewSumError(
				errors.ErrorSource, "read", name,
				fmt.Errorf("image size exceeds limit of %d bytes", limit),
			)
		}

		if err := opCtx.Err(); err != nil {
			return err
		}

		result, err = s.sumBytes(s.active, name, buf.Bytes())
		return err
	})

	return result, err
}

// SumAll checksums a batch of image files concurrently, bounded by the
// configured worker count. Results keep the order of paths. The batch
// fails as a whole on the first error.
func (s *Service) SumAll(ctx context.Context, paths []string) ([]*domain.Result, error) {
	results := make([]*domain.Result, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(int(s.options.Workers))

	for i, path := range paths {
		group.Go(func() error {
			result, err := s.Sum(groupCtx, path)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close releases decoder resources. The service must not be used after
// closing.
func (s *Service) Close() error {
	for _, decoder := range s.decoders {
		if err := decoder.Close(); err != nil {
			return fmt.Errorf("error closing %s decoder : %w", decoder.Name(), err)
		}
	}
	return nil
}

func (s *Service) sum(ctx context.Context, path string, accumulator ports.ChecksumPort) (*domain.Result, error) {
	var result *domain.Result

	err := system.RunWithContext(ctx, func(opCtx context.Context) error {
		data, err := s.load(path)
		if err != nil {
			return err
		}

		// Reading a large archive may have taken a while; bail out before
		// summing if the caller has given up.
		if err := opCtx.Err(); err != nil {
			return err
		}

		result, err = s.sumBytes(accumulator, path, data)
		return err
	})

	return result, err
}

// load resolves a path to raw image bytes, decoding the archive when the
// extension names a known codec.
func (s *Service) load(path string) ([]byte, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.NewSumError(errors.ErrorSource, "read", path, err)
	}

	if decoder := s.decoderFor(path); decoder != nil {
		decoded, err := decoder.Decompress(data)
		if err != nil {
			return nil, errors.NewSumError(errors.ErrorDecompress, "decode", path, err)
		}
		s.logger.Debugw("decoded compressed image",
			"image", path, "codec", decoder.Name(), "compressed", len(data), "size", len(decoded))
		data = decoded
	}

	return data, nil
}

func (s *Service) decoderFor(path string) ports.DecompressionPort {
	return s.decoders[strings.ToLower(filepath.Ext(path))]
}

func (s *Service) sumBytes(accumulator ports.ChecksumPort, name string, data []byte) (*domain.Result, error) {
	if limit := int(s.options.MaxImageSize); len(data) > limit {
		return nil, errors.NewSumError(
			errors.ErrorSource, "sum", name,
			fmt.Errorf("image size %d exceeds limit of %d bytes", len(data), limit),
		)
	}

	// Cartridge images come in whole-kilobyte sizes; anything else often
	// means a copier header or truncation upstream.
	if len(data)%1024 != 0 {
		s.logger.Debugw("image size is not a multiple of 1KiB", "image", name, "size", len(data))
	}

	sum, err := accumulator.Calculate(data)
	if err != nil {
		return nil, errors.NewSumError(errors.ErrorChecksum, "sum", name, err)
	}

	return &domain.Result{
		Name:       name,
		Size:       int64(len(data)),
		Mode:       domain.Mode(accumulator.Name()),
		Checksum:   sum,
		Complement: sum16.Complement(sum),
	}, nil
}
