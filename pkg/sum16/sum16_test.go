package sum16

import (
	"bytes"
	"math/rand"
	"testing"
)

// simple reference: accumulate in uint32, reduce at the end
func refByteWise(b []byte) uint16 {
	var s uint32
	for _, v := range b {
		s += uint32(v)
	}
	return uint16(s % 65536)
}

func refWordWise(b []byte) uint16 {
	var s uint32
	for i := 0; i+1 < len(b); i += 2 {
		s += uint32(b[i])<<8 | uint32(b[i+1])
	}
	return uint16(s % 65536)
}

func TestByteWiseMatchesRef(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 4096; n++ {
		buf := make([]byte, n)
		r.Read(buf)
		got := ByteWise(buf)
		want := refByteWise(buf)
		if got != want {
			t.Fatalf("n=%d got=%#04x want=%#04x", n, got, want)
		}
	}
}

func TestWordWiseMatchesRef(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for n := 0; n < 4096; n += 2 {
		buf := make([]byte, n)
		r.Read(buf)
		got, err := WordWise(buf)
		if err != nil {
			t.Fatalf("n=%d unexpected error: %v", n, err)
		}
		want := refWordWise(buf)
		if got != want {
			t.Fatalf("n=%d got=%#04x want=%#04x", n, got, want)
		}
	}
}

func TestByteWiseKnownValues(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want uint16
	}{
		{"empty", nil, 0},
		{"single", []byte{0xA5}, 0x00A5},
		{"pair", []byte{0x01, 0x02}, 0x0003},
		{"max sum", bytes.Repeat([]byte{0xFF}, 257), 0xFFFF},
		{"wraparound to zero", bytes.Repeat([]byte{0xFF}, 65536), 0x0000},
	}
	for _, tc := range cases {
		if got := ByteWise(tc.data); got != tc.want {
			t.Errorf("%s: got=%#04x want=%#04x", tc.name, got, tc.want)
		}
	}
}

func TestWordWiseKnownValues(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want uint16
	}{
		{"empty", nil, 0},
		{"one word", []byte{0x01, 0x02}, 0x0102},
		{"two words", []byte{0x01, 0x02, 0x03, 0x04}, 0x0406},
		{"wraparound to zero", []byte{0xFF, 0xFF, 0x00, 0x01}, 0x0000},
	}
	for _, tc := range cases {
		got, err := WordWise(tc.data)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got=%#04x want=%#04x", tc.name, got, tc.want)
		}
	}
}

func TestWordWiseOddLength(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	if _, err := WordWise(data); err != ErrOddLength {
		t.Fatalf("got err=%v want=%v", err, ErrOddLength)
	}
	// compat mode drops the unpaired trailing byte
	if got := WordWiseCompat(data); got != 0x0102 {
		t.Fatalf("compat got=%#04x want=0x0102", got)
	}
	if got := WordWiseCompat([]byte{0x42}); got != 0 {
		t.Fatalf("compat single byte got=%#04x want=0", got)
	}
}

// Byte-wise sums ignore ordering, word-wise sums do not.
func TestOrderSensitivity(t *testing.T) {
	a := []byte{0x01, 0x02}
	b := []byte{0x02, 0x01}
	if ByteWise(a) != ByteWise(b) {
		t.Fatalf("byte-wise sum depends on order: %#04x vs %#04x", ByteWise(a), ByteWise(b))
	}
	wa, _ := WordWise(a)
	wb, _ := WordWise(b)
	if wa == wb {
		t.Fatalf("word-wise sum should depend on order: both %#04x", wa)
	}
}

// Summing a concatenation equals summing the parts, modulo 65536.
func TestConcatenation(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	buf := make([]byte, 8192)
	r.Read(buf)
	for i := 0; i < 64; i++ {
		cut := r.Intn(len(buf)) &^ 1
		if got, want := ByteWise(buf), ByteWise(buf[:cut])+ByteWise(buf[cut:]); got != want {
			t.Fatalf("byte-wise cut=%d got=%#04x want=%#04x", cut, got, want)
		}
		full, _ := WordWise(buf)
		head, _ := WordWise(buf[:cut])
		tail, _ := WordWise(buf[cut:])
		if full != head+tail {
			t.Fatalf("word-wise cut=%d got=%#04x want=%#04x", cut, full, head+tail)
		}
	}
}

func TestComplement(t *testing.T) {
	for _, sum := range []uint16{0x0000, 0x0001, 0xA0DA, 0xFFFF} {
		c := Complement(sum)
		if sum^c != 0xFFFF {
			t.Errorf("sum=%#04x complement=%#04x does not XOR to 0xFFFF", sum, c)
		}
		if Complement(c) != sum {
			t.Errorf("complement is not an involution for %#04x", sum)
		}
	}
	if Complement(0x0000) != 0xFFFF {
		t.Errorf("Complement(0) = %#04x, want 0xFFFF", Complement(0))
	}
}

func TestMirrorWholeSection(t *testing.T) {
	for _, size := range []int{MinSection, MinSection * 2, MinSection * 8} {
		r := rand.New(rand.NewSource(int64(size)))
		buf := make([]byte, size)
		r.Read(buf)
		got, err := Mirror(buf)
		if err != nil {
			t.Fatalf("size=%#x unexpected error: %v", size, err)
		}
		if want := ByteWise(buf); got != want {
			t.Fatalf("size=%#x got=%#04x want=%#04x", size, got, want)
		}
	}
}

func TestMirrorTwoSections(t *testing.T) {
	// 64 KiB main section plus a 32 KiB section counted twice.
	buf := make([]byte, 0x18000)
	buf[0] = 5
	buf[0x10000] = 7
	got, err := Mirror(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := uint16(5 + 2*7); got != want {
		t.Fatalf("got=%#04x want=%#04x", got, want)
	}
}

// A mirrored image sums like the same image with its tail appended again.
func TestMirrorMatchesDoubledTail(t *testing.T) {
	layouts := []struct{ main, mirrored int }{
		{MinSection * 2, MinSection},
		{MinSection * 4, MinSection},
		{MinSection * 4, MinSection * 2},
	}
	for _, l := range layouts {
		r := rand.New(rand.NewSource(int64(l.main + l.mirrored)))
		buf := make([]byte, l.main+l.mirrored)
		r.Read(buf)
		got, err := Mirror(buf)
		if err != nil {
			t.Fatalf("main=%#x mirrored=%#x unexpected error: %v", l.main, l.mirrored, err)
		}
		doubled := append(append([]byte{}, buf...), buf[l.main:]...)
		if want := ByteWise(doubled); got != want {
			t.Fatalf("main=%#x mirrored=%#x got=%#04x want=%#04x", l.main, l.mirrored, got, want)
		}
	}
}

func TestMirrorRejectsBadSizes(t *testing.T) {
	for _, size := range []int{0, 1, 100, MinSection - 1, MinSection + 0x100, MinSection + MinSection/2, MinSection * 7} {
		if _, err := Mirror(make([]byte, size)); err != ErrMirrorSize {
			t.Errorf("size=%#x got err=%v want=%v", size, err, ErrMirrorSize)
		}
	}
}

func TestByteDigestMatchesOneShot(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	buf := make([]byte, 16384)
	r.Read(buf)

	d := NewByteWise()
	for rest := buf; len(rest) > 0; {
		n := r.Intn(len(rest)) + 1
		d.Write(rest[:n])
		rest = rest[n:]
	}
	if got, want := d.Sum16(), ByteWise(buf); got != want {
		t.Fatalf("got=%#04x want=%#04x", got, want)
	}

	d.Reset()
	if d.Sum16() != 0 {
		t.Fatalf("sum after reset = %#04x", d.Sum16())
	}
}

func TestWordDigestMatchesOneShot(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	buf := make([]byte, 16384)
	r.Read(buf)

	// Arbitrary chunking, including odd chunks that leave a byte pending.
	d := NewWordWise()
	for rest := buf; len(rest) > 0; {
		n := r.Intn(len(rest)) + 1
		d.Write(rest[:n])
		rest = rest[n:]
	}
	if d.Odd() {
		t.Fatal("even total reported as odd")
	}
	want, _ := WordWise(buf)
	if got := d.Sum16(); got != want {
		t.Fatalf("got=%#04x want=%#04x", got, want)
	}
}

func TestWordDigestCarry(t *testing.T) {
	d := NewWordWise()
	d.Write([]byte{0x01})
	if !d.Odd() {
		t.Fatal("pending byte not reported")
	}
	if d.Sum16() != 0 {
		t.Fatalf("pending byte contributed to sum: %#04x", d.Sum16())
	}
	d.Write([]byte{0x02})
	if d.Odd() {
		t.Fatal("completed word still reported as odd")
	}
	if d.Sum16() != 0x0102 {
		t.Fatalf("got=%#04x want=0x0102", d.Sum16())
	}

	d.Reset()
	d.Write([]byte{0x01, 0x02, 0x03})
	if got := d.Sum16(); got != 0x0102 || !d.Odd() {
		t.Fatalf("got=%#04x odd=%v want=0x0102 odd=true", got, d.Odd())
	}
}

func TestDigestSumAppends(t *testing.T) {
	d := NewByteWise()
	d.Write([]byte{0xFF, 0xFF, 0x01})
	got := d.Sum([]byte{0xAA})
	want := []byte{0xAA, 0x01, 0xFF}
	if !bytes.Equal(got, want) {
		t.Fatalf("got=%x want=%x", got, want)
	}
	if d.Size() != Size || d.BlockSize() != 1 {
		t.Fatalf("size=%d block=%d", d.Size(), d.BlockSize())
	}
	if w := NewWordWise(); w.BlockSize() != 2 {
		t.Fatalf("word block=%d", w.BlockSize())
	}
}

func BenchmarkByteWise_32K(b *testing.B)  { benchByteWise(b, MinSection) }
func BenchmarkByteWise_512K(b *testing.B) { benchByteWise(b, MinSection*16) }
func BenchmarkWordWise_512K(b *testing.B) { benchWordWise(b, MinSection*16) }
func BenchmarkMirror_96K(b *testing.B)    { benchMirror(b, MinSection*3) }

func benchByteWise(b *testing.B, n int) {
	buf := bytes.Repeat([]byte{0x55, 0xAA}, n/2)
	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		_ = ByteWise(buf)
	}
}

func benchWordWise(b *testing.B, n int) {
	buf := bytes.Repeat([]byte{0x55, 0xAA}, n/2)
	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		_, _ = WordWise(buf)
	}
}

func benchMirror(b *testing.B, n int) {
	buf := bytes.Repeat([]byte{0x55, 0xAA}, n/2)
	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		_, _ = Mirror(buf)
	}
}
