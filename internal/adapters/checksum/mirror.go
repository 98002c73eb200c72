package checksum

import (
	"io"

	"github.com/iamNilotpal/romsum/pkg/pool"
	"github.com/iamNilotpal/romsum/pkg/sum16"
)

// stagingSize is the initial capacity of pooled buffers used to collect a
// streamed image before the mirrored sum runs. The mirrored layout needs
// the full image in memory because section boundaries depend on total size.
const stagingSize = 1 << 20

type mirror struct {
	name    string
	buffers *pool.BufferPool
}

func NewMirror() *mirror {
	return &mirror{
		name:    string(Mirror),
		buffers: pool.NewBufferPool(stagingSize),
	}
}

func (c *mirror) Calculate(data []byte) (uint16, error) {
	return sum16.Mirror(data)
}

func (c *mirror) Sum(r io.Reader) (uint16, error) {
	buf := c.buffers.Get()
	defer c.buffers.Put(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return 0, err
	}
	return sum16.Mirror(buf.Bytes())
}

func (c *mirror) Verify(data []byte, expected uint16) (bool, error) {
	checksum, err := sum16.Mirror(data)
	if err != nil {
		return false, err
	}
	return checksum == expected, nil
}

func (c *mirror) Name() string {
	return c.name
}
