// Package sum16 implements the 16-bit accumulation checksums carried by
// cartridge images. The checksum of an image is the sum of its contents
// modulo 65536; what counts as one contribution depends on the mode. The
// byte-wise form adds every byte on its own, the word-wise form adds
// consecutive byte pairs as big-endian 16-bit words, and the mirrored form
// weights a trailing power-of-two section twice to mimic how smaller ROM
// chips are mapped into a larger address space.
//
// Images also store the bitwise complement of the checksum so that the two
// fields always XOR to 0xFFFF. Complement derives one from the other.
package sum16

import "errors"

// Size of the checksum in bytes.
const Size = 2

// MinSection is the smallest section the mirrored sum recognizes: 32 KiB,
// the capacity of the smallest ROM chip the mirrored layout maps.
const MinSection = 0x8000

var (
	// ErrOddLength reports a word-wise sum over an odd number of bytes. The
	// trailing byte cannot form a 16-bit word. Callers that want the
	// historical behavior of silently dropping it use WordWiseCompat.
	ErrOddLength = errors.New("sum16: odd input length for word-wise sum")

	// ErrMirrorSize reports an image whose size cannot be split into a
	// power-of-two section optionally followed by a smaller power-of-two
	// section, which the mirrored sum requires.
	ErrMirrorSize = errors.New("sum16: image size does not fit the mirrored section layout")
)

// ByteWise returns the modulo-65536 sum of every byte in data.
// An empty input sums to 0.
func ByteWise(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}

// WordWise returns the modulo-65536 sum of data read as big-endian 16-bit
// words. Byte pairs are consumed in order, so unlike ByteWise the result
// depends on byte positions. An odd-length input fails with ErrOddLength.
func WordWise(data []byte) (uint16, error) {
	if len(data)%2 != 0 {
		return 0, ErrOddLength
	}
	return wordSum(data), nil
}

// WordWiseCompat behaves like WordWise but silently drops a trailing
// unpaired byte instead of failing. It exists for parity with tooling
// that truncated images to an even length.
func WordWiseCompat(data []byte) uint16 {
	return wordSum(data[:len(data)&^1])
}

func wordSum(data []byte) uint16 {
	var sum uint16
	for i := 0; i+1 < len(data); i += 2 {
		sum += uint16(data[i])<<8 | uint16(data[i+1])
	}
	return sum
}

// Mirror returns the byte-wise sum of an image laid out as a main section
// followed by an optional smaller section that hardware maps twice. The main
// section is the largest MinSection*2^k that fits the image; the remainder,
// when present, must itself be MinSection*2^k and its bytes count twice.
//
// An image that is exactly one section sums like ByteWise. Any size that
// leaves a remainder outside that shape fails with ErrMirrorSize, including
// images smaller than MinSection.
func Mirror(data []byte) (uint16, error) {
	main := MinSection
	for main*2 <= len(data) {
		main *= 2
	}
	if main == len(data) {
		return ByteWise(data), nil
	}

	mirrored := MinSection
	for main+mirrored*2 <= len(data) {
		mirrored *= 2
	}
	if main+mirrored != len(data) {
		return 0, ErrMirrorSize
	}

	return ByteWise(data[:main]) + 2*ByteWise(data[main:]), nil
}

// Complement returns the bitwise complement of a checksum. The checksum and
// complement of a valid image XOR to 0xFFFF, so applying Complement twice
// yields the original value.
func Complement(sum uint16) uint16 {
	return sum ^ 0xFFFF
}
