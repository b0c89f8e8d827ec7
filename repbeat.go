package sierraecg

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// extractRepbeats collects representative beats keyed by lead name. A missing
// repbeats element yields an empty map.
func extractRepbeats(doc *xmlDocument) (map[string]Repbeat, error) {
	rb := doc.repbeats()
	if rb == nil {
		return map[string]Repbeat{}, nil
	}
	if rb.DataEncoding != "Base64" {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "repbeat data encoding %q", rb.DataEncoding)
	}

	out := make(map[string]Repbeat, len(rb.Beats))
	for _, b := range rb.Beats {
		beat := Repbeat{
			Label:        b.LeadName,
			SamplingFreq: rb.SamplesPerSec,
			Resolution:   rb.Resolution,
			Method:       rb.Method,
		}

		// 1.04 nests the sample text in a waveform child; 1.03 stores it
		// directly in the repbeat element.
		text := b.Text
		beat.Duration = b.Duration
		if b.Waveform != nil {
			text = b.Waveform.Text
			beat.Duration = b.Waveform.Duration
		}

		data, err := decodeBase64(text)
		if err != nil {
			return nil, errors.Wrapf(err, "decode repbeat %s", b.LeadName)
		}
		beat.Samples = toInt16(data)

		out[beat.Label] = beat
	}

	return out, nil
}

// toInt16 reads an int16 LE sample stream.
func toInt16(data []byte) []int16 {
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}

	return samples
}
