package xli

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"
)

// Lead is one channel's reconstructed waveform, in raw sample units.
type Lead []int16

// ExtractLeads decodes a full XLI waveform buffer into its leads, one per
// chunk, in the order chunks appear in the buffer. Any framing or payload
// error fails the whole call; no partial leads are returned.
func ExtractLeads(buf []byte) ([]Lead, error) {
	if len(buf) == 0 {
		return nil, ErrNoInput
	}

	chunks, err := frame(buf)
	if err != nil {
		return nil, err
	}

	// Chunks share no state, so they decode in parallel. Results are placed
	// by index to preserve chunk order.
	leads := make([]Lead, len(chunks))
	errs := make([]error, len(chunks))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(chunks) {
		workers = len(chunks)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				leads[i], errs[i] = chunks[i].decode()
			}
		}()
	}
	for i := range chunks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return leads, nil
}

// DecodeChunk decodes one chunk from the beginning of buf. It returns the
// lead and the number of consumed bytes (header + payload). Unlike
// ExtractLeads, trailing bytes after the first chunk are ignored.
func DecodeChunk(buf []byte) (Lead, int, error) {
	c, n, err := nextChunk(buf, 0)
	if err != nil {
		return nil, 0, err
	}

	lead, err := c.decode()
	if err != nil {
		return nil, 0, err
	}

	return lead, n, nil
}

// chunk is one framed unit: the compressed payload and the delta seed from
// its header. The payload slices into the caller's buffer; it is never
// written to.
type chunk struct {
	payload []byte
	seed    int16
}

// frame splits buf into chunks. Chunk boundaries must exactly partition the
// buffer; a declared payload size past the end of the buffer is a format error.
func frame(buf []byte) ([]chunk, error) {
	var chunks []chunk
	for off := 0; off < len(buf); {
		c, n, err := nextChunk(buf, off)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
		off += n
	}

	return chunks, nil
}

// nextChunk reads the chunk header at off and returns the framed chunk plus
// its total size in bytes. Bytes 4-5 of the header are reserved and skipped.
func nextChunk(buf []byte, off int) (chunk, int, error) {
	rest := len(buf) - off
	if rest < HeaderSize {
		return chunk{}, 0, fmt.Errorf("%w: %d header bytes at offset %d", ErrChunkTruncated, rest, off)
	}

	size := int(int32(binary.LittleEndian.Uint32(buf[off:])))
	seed := int16(binary.LittleEndian.Uint16(buf[off+6:]))

	if size < 0 || size > rest-HeaderSize {
		return chunk{}, 0, fmt.Errorf("%w: payload %d bytes, %d remain at offset %d",
			ErrChunkTruncated, size, rest-HeaderSize, off)
	}

	c := chunk{
		payload: buf[off+HeaderSize : off+HeaderSize+size],
		seed:    seed,
	}

	return c, HeaderSize + size, nil
}

// decode runs the chunk payload through a fresh 10-bit LZW decoder, unpacks
// the split byte halves into samples and reverses the delta transform.
func (c chunk) decode() (Lead, error) {
	dec, err := NewDecoder(c.payload, &Options{Bits: ChunkBits})
	if err != nil {
		return nil, err
	}

	raw, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	samples := unpack(raw)
	deltaDecode(samples, c.seed)

	return samples, nil
}

// unpack reassembles 16-bit samples from the split halves of the decompressed
// bytes: the first half holds the high bytes, the second half the low bytes.
func unpack(raw []byte) Lead {
	n := len(raw) / 2
	samples := make(Lead, n)
	for i := 0; i < n; i++ {
		samples[i] = int16(uint16(raw[i])<<8 | uint16(raw[i+n]))
	}

	return samples
}

// deltaDecode reverses the second-order delta transform in place. The first
// two samples pass through. Every later sample is rebuilt from the two
// preceding reconstructed samples and a running seed; the seed tracks the
// original stored value at the previous position, biased by deltaBias.
// All arithmetic wraps in int16, matching the encoder.
func deltaDecode(s Lead, seed int16) {
	last := seed
	for i := 2; i < len(s); i++ {
		z := 2*s[i-1] - s[i-2] - last
		last = s[i] - deltaBias
		s[i] = z
	}
}
