// Package manifest persists image checksums as a YAML document and checks
// images against a previously written document. Entries record the mode
// they were produced with, so manifests survive configuration changes.
package manifest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/romsum/internal/adapters/fs"
	"github.com/iamNilotpal/romsum/internal/core/domain"
	"github.com/iamNilotpal/romsum/internal/core/ports"
	"github.com/iamNilotpal/romsum/internal/core/services/image"
	"github.com/iamNilotpal/romsum/pkg/errors"
)

type Service struct {
	fs     ports.FileSystemPort
	images *image.Service
	logger *zap.SugaredLogger
}

func New(images *image.Service, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		fs:     fs.NewLocalFileSystem(),
		images: images,
		logger: logger,
	}
}

// Write persists results as a manifest at path.
func (s *Service) Write(path string, results []*domain.Result) error {
	manifest := Manifest{
		Version:     Version,
		GeneratedAt: time.Now().UTC(),
		Images:      make([]Entry, 0, len(results)),
	}
	for _, result := range results {
		manifest.Images = append(manifest.Images, Entry{
			Name:       result.Name,
			Size:       result.Size,
			Mode:       result.Mode,
			Checksum:   Hex16(result.Checksum),
			Complement: Hex16(result.Complement),
		})
	}

	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return errors.NewSumError(errors.ErrorManifest, "encode", path, err)
	}

	if err := s.fs.WriteFile(path, 0o644, data); err != nil {
		return errors.NewSumError(errors.ErrorManifest, "write", path, err)
	}

	s.logger.Infow("manifest written", "manifest", path, "images", len(manifest.Images))
	return nil
}

// Load reads a manifest and validates its internal consistency: the
// version must be known and every entry's complement must match its
// checksum, which catches hand-edited or corrupted documents.
func (s *Service) Load(path string) (*Manifest, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.NewSumError(errors.ErrorManifest, "read", path, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.NewSumError(errors.ErrorManifest, "decode", path, err)
	}

	if manifest.Version != Version {
		return nil, errors.NewSumError(
			errors.ErrorManifest, "decode", path,
			fmt.Errorf("unsupported manifest version %d, expected %d", manifest.Version, Version),
		)
	}

	for _, entry := range manifest.Images {
		if uint16(entry.Checksum)^uint16(entry.Complement) != 0xFFFF {
			return nil, errors.NewSumError(
				errors.ErrorManifest, "decode", path,
				fmt.Errorf(
					"entry %s: checksum %#04x and complement %#04x do not XOR to 0xFFFF",
					entry.Name, uint16(entry.Checksum), uint16(entry.Complement),
				),
			)
		}
	}

	return &manifest, nil
}

// Verify recomputes every entry of the manifest at path and reports the
// outcomes in manifest order. Verification continues past failing entries
// so one report covers the whole set; the returned error is reserved for
// manifest-level problems and context cancellation.
//
// Entry names resolve like any relative path, against the current working
// directory.
func (s *Service) Verify(ctx context.Context, path string) ([]VerifyResult, error) {
	manifest, err := s.Load(path)
	if err != nil {
		return nil, err
	}

	results := make([]VerifyResult, 0, len(manifest.Images))
	for _, entry := range manifest.Images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := VerifyResult{Entry: entry}

		exists, err := s.fs.Exists(entry.Name)
		switch {
		case err != nil:
			result.Err = errors.NewSumError(errors.ErrorSource, "stat", entry.Name, err)
		case !exists:
			result.Missing = true
		default:
			summed, err := s.images.SumWithMode(ctx, entry.Name, entry.Mode)
			if err != nil {
				result.Err = err
			} else {
				result.Checksum = summed.Checksum
				result.Size = summed.Size
				result.OK = summed.Checksum == uint16(entry.Checksum) && summed.Size == entry.Size
			}
		}

		if !result.OK {
			s.logger.Debugw("verification mismatch",
				"image", entry.Name, "missing", result.Missing, "error", result.Err)
		}
		results = append(results, result)
	}

	return results, nil
}
