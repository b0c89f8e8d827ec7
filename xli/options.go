package xli

import "fmt"

// Options configures the LZW code stream layout.
type Options struct {
	// Bits is the code width in bits, valid range [10, 16]. 0 means MaxBits.
	// Chunk payloads always use ChunkBits per the XLI format.
	Bits int
}

// DefaultOptions returns options for default behavior: 16-bit codes.
func DefaultOptions() *Options {
	return &Options{Bits: MaxBits}
}

// codeWidth resolves and validates the configured code width.
func (o *Options) codeWidth() (int, error) {
	bits := o.Bits
	if bits == 0 {
		bits = MaxBits
	}

	if bits < MinBits || bits > MaxBits {
		return 0, fmt.Errorf("%w: got %d", ErrCodeWidth, bits)
	}

	return bits, nil
}
