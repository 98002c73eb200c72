package checksum

import (
	"io"

	"github.com/iamNilotpal/romsum/pkg/sum16"
)

type wordWise struct {
	name     string
	allowOdd bool
}

// NewWordWise builds the big-endian word accumulator. With allowOdd a
// trailing unpaired byte is dropped instead of failing the sum.
func NewWordWise(allowOdd bool) *wordWise {
	return &wordWise{
		name:     string(WordWise),
		allowOdd: allowOdd,
	}
}

func (c *wordWise) Calculate(data []byte) (uint16, error) {
	if c.allowOdd {
		return sum16.WordWiseCompat(data), nil
	}
	return sum16.WordWise(data)
}

func (c *wordWise) Sum(r io.Reader) (uint16, error) {
	digest := sum16.NewWordWise()
	if _, err := io.Copy(digest, r); err != nil {
		return 0, err
	}
	if digest.Odd() && !c.allowOdd {
		return 0, sum16.ErrOddLength
	}
	return digest.Sum16(), nil
}

func (c *wordWise) Verify(data []byte, expected uint16) (bool, error) {
	checksum, err := c.Calculate(data)
	if err != nil {
		return false, err
	}
	return checksum == expected, nil
}

func (c *wordWise) Name() string {
	return c.name
}
