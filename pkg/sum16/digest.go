package sum16

import "hash"

// Hash16 is the common interface implemented by the streaming digests in
// this package. It extends hash.Hash with direct access to the 16-bit sum.
type Hash16 interface {
	hash.Hash
	Sum16() uint16
}

// byteDigest represents the partial evaluation of a byte-wise checksum.
type byteDigest struct {
	sum uint16
}

// NewByteWise returns a digest computing the byte-wise checksum of the
// bytes written to it. The digest is not safe for concurrent use.
func NewByteWise() Hash16 {
	return &byteDigest{}
}

func (d *byteDigest) Write(p []byte) (int, error) {
	for _, b := range p {
		d.sum += uint16(b)
	}
	return len(p), nil
}

// Sum16 returns the checksum of the bytes written so far.
func (d *byteDigest) Sum16() uint16 {
	return d.sum
}

func (d *byteDigest) Sum(in []byte) []byte {
	s := d.Sum16()
	return append(in, byte(s>>8), byte(s))
}

func (d *byteDigest) Size() int {
	return Size
}

func (d *byteDigest) BlockSize() int {
	return 1
}

func (d *byteDigest) Reset() {
	d.sum = 0
}

// WordDigest represents the partial evaluation of a word-wise checksum.
// Writes may split words anywhere; an unpaired byte is carried until the
// next write completes the word. The digest is not safe for concurrent use.
type WordDigest struct {
	sum     uint16
	pending byte
	odd     bool
}

// NewWordWise returns a digest computing the big-endian word-wise checksum
// of the bytes written to it.
func NewWordWise() *WordDigest {
	return &WordDigest{}
}

func (d *WordDigest) Write(p []byte) (int, error) {
	n := len(p)
	if d.odd && len(p) > 0 {
		d.sum += uint16(d.pending)<<8 | uint16(p[0])
		d.odd = false
		p = p[1:]
	}
	for len(p) >= 2 {
		d.sum += uint16(p[0])<<8 | uint16(p[1])
		p = p[2:]
	}
	if len(p) == 1 {
		d.pending = p[0]
		d.odd = true
	}
	return n, nil
}

// Sum16 returns the checksum of the complete words written so far. A
// pending unpaired byte does not contribute; callers that must reject odd
// totals check Odd first.
func (d *WordDigest) Sum16() uint16 {
	return d.sum
}

// Odd reports whether the total number of bytes written is odd, leaving a
// trailing byte that cannot form a word.
func (d *WordDigest) Odd() bool {
	return d.odd
}

func (d *WordDigest) Sum(in []byte) []byte {
	s := d.Sum16()
	return append(in, byte(s>>8), byte(s))
}

func (d *WordDigest) Size() int {
	return Size
}

func (d *WordDigest) BlockSize() int {
	return 2
}

func (d *WordDigest) Reset() {
	d.sum = 0
	d.pending = 0
	d.odd = false
}
