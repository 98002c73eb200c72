package checksum

import (
	"io"

	"github.com/iamNilotpal/romsum/pkg/sum16"
)

type byteWise struct {
	name string
}

func NewByteWise() *byteWise {
	return &byteWise{
		name: string(ByteWise),
	}
}

func (c *byteWise) Calculate(data []byte) (uint16, error) {
	return sum16.ByteWise(data), nil
}

func (c *byteWise) Sum(r io.Reader) (uint16, error) {
	digest := sum16.NewByteWise()
	if _, err := io.Copy(digest, r); err != nil {
		return 0, err
	}
	return digest.Sum16(), nil
}

func (c *byteWise) Verify(data []byte, expected uint16) (bool, error) {
	return sum16.ByteWise(data) == expected, nil
}

func (c *byteWise) Name() string {
	return c.name
}
