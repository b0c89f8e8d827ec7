/*
Package xli decodes the Philips XLI waveform compression used in Sierra ECG
XML documents.

An XLI buffer is a sequence of chunks, one per lead. Each chunk is an 8-byte
header (int32 LE payload size, 2 reserved bytes, int16 LE delta seed) followed
by exactly that many payload bytes. The payload is LZW-compressed with 10-bit
codes, MSB-first, dictionary seeded with the 256 single-byte codes and bounded
at 2^bits-2 entries. Decompressed bytes split into two halves: high bytes of
the samples first, then low bytes. Samples are finished with a second-order
delta reconstruction seeded from the chunk header.

Use ExtractLeads(buf) to decode a whole waveform buffer into its leads.
Use DecodeChunk(buf) to decode one chunk from the front of buf and get the
consumed byte count.
Use NewDecoder(data, opts) and Decode() for a raw LZW stream at any supported
code width.

# Examples

Decode a full waveform buffer:

	leads, err := xli.ExtractLeads(raw)
	if err != nil {
		return err
	}

Decode a raw LZW stream with the default 16-bit code width:

	dec, err := xli.NewDecoder(data, nil)
	if err != nil {
		return err
	}
	out, err := dec.Decode()

Round-trip a lead set:

	buf, err := xli.EncodeLeads(leads)
	if err != nil {
		return err
	}
	back, err := xli.ExtractLeads(buf)
	// back equals leads
*/
package xli
