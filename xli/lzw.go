package xli

import "fmt"

// Decoder decompresses one variable-width LZW code stream. Each Decoder
// exclusively owns its input, bit cursor and dictionary for its lifetime;
// it is not safe for concurrent use and is consumed by a single Decode call.
type Decoder struct {
	input []byte
	pos   int

	accum uint32 // Left-aligned bit accumulator; codes are extracted from the top.
	nbits uint   // Valid bits currently buffered in accum.

	bits    uint // Code width in bits.
	maxCode int  // Highest usable code; anything above ends the stream.

	table [][]byte // Code -> byte sequence; entries 0..255 are the single-byte seeds.
}

// NewDecoder returns a Decoder reading fixed-width codes from data.
// Options nil means DefaultOptions (16-bit codes). An empty input is valid
// and decodes to an empty output.
func NewDecoder(data []byte, opts *Options) (*Decoder, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	bits, err := opts.codeWidth()
	if err != nil {
		return nil, err
	}
	maxCode := 1<<uint(bits) - 2

	table := make([][]byte, seedCodes, maxCode)
	for i := range table {
		table[i] = []byte{byte(i)}
	}

	return &Decoder{
		input:   data,
		bits:    uint(bits),
		maxCode: maxCode,
		table:   table,
	}, nil
}

// Decode consumes the entire input and returns the decompressed bytes.
func (d *Decoder) Decode() ([]byte, error) {
	out := make([]byte, 0, 2*len(d.input))

	var prev []byte
	for {
		code, ok := d.readCode()
		if !ok || code > d.maxCode {
			// Bit stream exhausted, or the end-of-data code: decode is complete.
			return out, nil
		}

		var cur []byte
		switch {
		case code < len(d.table):
			cur = d.table[code]
		case code == len(d.table) && prev != nil && len(d.table) < d.maxCode:
			// The code references the entry about to be registered; its value
			// is the previous sequence extended with its own first byte.
			cur = append(append(make([]byte, 0, len(prev)+1), prev...), prev[0])
		default:
			return nil, fmt.Errorf("%w: code %d with %d entries", ErrInvalidCode, code, len(d.table))
		}

		out = append(out, cur...)

		if prev != nil && len(d.table) < d.maxCode {
			entry := append(make([]byte, 0, len(prev)+1), prev...)
			d.table = append(d.table, append(entry, cur[0]))
		}
		prev = cur
	}
}

// readCode extracts the next fixed-width code, MSB-first. ok is false when
// fewer than bits valid bits remain, the normal end-of-stream condition.
func (d *Decoder) readCode() (code int, ok bool) {
	for d.nbits < d.bits && d.pos < len(d.input) {
		d.accum |= uint32(d.input[d.pos]) << (24 - d.nbits)
		d.nbits += 8
		d.pos++
	}
	if d.nbits < d.bits {
		return 0, false
	}

	code = int(d.accum >> (32 - d.bits))
	d.accum <<= d.bits
	d.nbits -= d.bits

	return code, true
}
