package xli

import (
	"bytes"
	"encoding/binary"

	"github.com/icza/bitio"
)

// Compress produces an LZW code stream that Decode reverses, terminated with
// the end-of-data code. Options nil means DefaultOptions (16-bit codes).
func Compress(data []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	bits, err := opts.codeWidth()
	if err != nil {
		return nil, err
	}
	maxCode := 1<<uint(bits) - 2
	endCode := uint64(1<<uint(bits) - 1)

	table := make(map[string]uint64, seedCodes)
	for i := 0; i < seedCodes; i++ {
		table[string([]byte{byte(i)})] = uint64(i)
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	width := uint8(bits)

	var cur []byte
	for _, b := range data {
		ext := append(cur, b)
		if _, ok := table[string(ext)]; ok {
			cur = ext
			continue
		}

		if err := w.WriteBits(table[string(cur)], width); err != nil {
			return nil, err
		}
		if len(table) < maxCode {
			table[string(ext)] = uint64(len(table))
		}
		cur = append(cur[:0], b)
	}

	if len(cur) > 0 {
		if err := w.WriteBits(table[string(cur)], width); err != nil {
			return nil, err
		}
	}
	if err := w.WriteBits(endCode, width); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// EncodeLeads frames leads into an XLI waveform buffer: one chunk per lead,
// each carrying a delta-encoded, byte-split, 10-bit LZW compressed payload.
// The reserved header bytes are written as zero.
func EncodeLeads(leads []Lead) ([]byte, error) {
	var out bytes.Buffer
	for _, lead := range leads {
		stored, seed := deltaEncode(lead)
		payload, err := Compress(pack(stored), &Options{Bits: ChunkBits})
		if err != nil {
			return nil, err
		}

		var hdr [HeaderSize]byte
		binary.LittleEndian.PutUint32(hdr[0:], uint32(int32(len(payload)))) // #nosec G115 -- payload fits int32
		binary.LittleEndian.PutUint16(hdr[6:], uint16(seed))
		out.Write(hdr[:])
		out.Write(payload)
	}

	return out.Bytes(), nil
}

// pack splits samples into the high-byte half followed by the low-byte half.
func pack(s Lead) []byte {
	n := len(s)
	raw := make([]byte, 2*n)
	for i, v := range s {
		raw[i] = byte(uint16(v) >> 8)
		raw[i+n] = byte(uint16(v))
	}

	return raw
}

// deltaEncode derives the stored representation and seed that deltaDecode
// turns back into s. The stored value at i primes the seed the decoder uses
// two positions later; the final stored value primes nothing and carries only
// the bias.
func deltaEncode(s Lead) (Lead, int16) {
	stored := make(Lead, len(s))
	copy(stored, s)
	if len(s) < 3 {
		return stored, 0
	}

	seed := 2*s[1] - s[0] - s[2]
	for i := 2; i < len(s)-1; i++ {
		stored[i] = 2*s[i] - s[i-1] - s[i+1] + deltaBias
	}
	stored[len(s)-1] = deltaBias

	return stored, seed
}
