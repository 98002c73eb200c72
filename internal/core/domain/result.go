package domain

// Result holds the outcome of summing one image.
type Result struct {
	// Name identifies the input: the path as given, or "-" for stdin.
	Name string

	// Size is the number of bytes summed, after any decompression.
	Size int64

	// Mode is the accumulation mode that produced the checksum.
	Mode Mode

	// Checksum is the 16-bit accumulation over the image bytes.
	Checksum uint16

	// Complement is Checksum with all bits inverted. The two values XOR
	// to 0xFFFF.
	Complement uint16
}
