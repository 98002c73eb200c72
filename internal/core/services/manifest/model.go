package manifest

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/romsum/internal/core/domain"
)

// Version of the manifest format this build writes and accepts.
const Version = 1

// Hex16 renders a 16-bit checksum as 0x-prefixed hex in YAML, matching
// how checksums are quoted in cartridge documentation.
type Hex16 uint16

func (h Hex16) MarshalYAML() (any, error) {
	return fmt.Sprintf("0x%04x", uint16(h)), nil
}

func (h *Hex16) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		// Hand-edited manifests sometimes carry unquoted integers.
		var n uint16
		if err := value.Decode(&n); err != nil {
			return err
		}
		*h = Hex16(n)
		return nil
	}

	parsed, err := strconv.ParseUint(raw, 0, 16)
	if err != nil {
		return fmt.Errorf("invalid 16-bit checksum %q: %w", raw, err)
	}

	*h = Hex16(parsed)
	return nil
}

// Manifest is the persisted record of image checksums.
type Manifest struct {
	Version     int       `yaml:"version"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Images      []Entry   `yaml:"images"`
}

// Entry records the checksum of one image.
type Entry struct {
	Name       string      `yaml:"name"`
	Size       int64       `yaml:"size"`
	Mode       domain.Mode `yaml:"mode"`
	Checksum   Hex16       `yaml:"checksum"`
	Complement Hex16       `yaml:"complement"`
}

// VerifyResult reports the outcome of re-checking one manifest entry.
type VerifyResult struct {
	Entry    Entry
	Checksum uint16 // Recomputed checksum; zero when the image was not summed.
	Size     int64  // Recomputed image size; zero when the image was not summed.
	OK       bool   // Checksum and size both match the entry.
	Missing  bool   // The image file no longer exists.
	Err      error  // Failure while re-summing the image.
}
