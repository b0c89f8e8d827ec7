package sierraecg

import (
	"encoding/base64"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/Krzysieq77/sierra-ecg-tools/xli"
)

// Lead is one ECG channel.
type Lead struct {
	Label        string
	SamplingFreq int // Samples per second.
	Duration     int // Milliseconds per channel.
	Samples      []int16
}

// Repbeat is a representative beat for one lead.
type Repbeat struct {
	Label        string
	SamplingFreq int
	Duration     int
	Resolution   float64
	Method       string
	Samples      []int16
}

// File is a parsed Sierra ECG document.
type File struct {
	DocType  string
	DocVer   string
	Leads    []Lead
	Repbeats map[string]Repbeat // Keyed by lead name; nil unless requested.
}

// Options configures document parsing.
type Options struct {
	// IncludeRepbeats extracts representative beats when present.
	IncludeRepbeats bool
}

// DefaultOptions returns options for default behavior: leads only.
func DefaultOptions() *Options {
	return &Options{}
}

var (
	supportedTypes    = []string{"SierraECG", "PhilipsECG"}
	supportedVersions = []string{"1.03", "1.04", "1.04.01", "1.04.02"}
)

// ReadFile reads a Sierra ECG document from disk. Options nil means
// DefaultOptions (leads only).
func ReadFile(name string, opts *Options) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open sierra ecg file")
	}
	defer f.Close()

	return Parse(f, opts)
}

// Parse reads a Sierra ECG document from r.
func Parse(r io.Reader, opts *Options) (*File, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "parse restingecgdata")
	}

	docType := doc.DocumentInfo.Type
	docVer := doc.DocumentInfo.Version
	if !contains(supportedTypes, docType) || !contains(supportedVersions, docVer) {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "files of type %s %s", docType, docVer)
	}

	leads, err := decodeWaveforms(&doc)
	if err != nil {
		return nil, err
	}
	deriveLimbLeads(leads)

	f := &File{
		DocType: docType,
		DocVer:  docVer,
		Leads:   leads,
	}

	if opts.IncludeRepbeats {
		f.Repbeats, err = extractRepbeats(&doc)
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

// decodeWaveforms recovers the per-lead sample data from the parsedwaveforms
// element, dispatching on the compression method.
func decodeWaveforms(doc *xmlDocument) ([]Lead, error) {
	pw := doc.parsedWaveforms()
	if pw == nil {
		return nil, errors.Wrap(ErrMissingElement, "parsedwaveforms")
	}
	if pw.DataEncoding != "Base64" {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "waveform data encoding %q", pw.DataEncoding)
	}

	sig := &doc.Acquisition.Signal
	if sig.SamplingRate <= 0 {
		return nil, errors.Wrap(ErrMissingElement, "signalcharacteristics/samplingrate")
	}
	if pw.DurationPerChannel <= 0 {
		return nil, errors.Wrap(ErrMissingAttribute, "parsedwaveforms durationperchannel")
	}

	data, err := decodeBase64(pw.Text)
	if err != nil {
		return nil, errors.Wrap(err, "decode waveform data")
	}

	labels := leadLabels(sig, pw)

	var samples [][]int16
	switch method := pw.compressionMethod(); method {
	case "Uncompressed":
		count := pw.DurationPerChannel * sig.SamplingRate / 1000
		samples = splitLeads(data, len(labels), count)
	case "XLI":
		decoded, err := xli.ExtractLeads(data)
		if err != nil {
			return nil, errors.Wrap(err, "decode xli waveform data")
		}
		samples = make([][]int16, len(decoded))
		for i, lead := range decoded {
			samples[i] = lead
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "waveform compression %q", method)
	}

	leads := make([]Lead, 0, len(labels))
	for i, label := range labels {
		lead := Lead{
			Label:        label,
			SamplingFreq: sig.SamplingRate,
			Duration:     pw.DurationPerChannel,
		}
		if i < len(samples) {
			lead.Samples = samples[i]
		}
		leads = append(leads, lead)
	}

	return leads, nil
}

// decodeBase64 decodes XML text content, dropping the whitespace the
// document interleaves with the encoded data.
func decodeBase64(text string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, text)

	return base64.StdEncoding.DecodeString(clean)
}

// splitLeads slices an uncompressed int16 LE sample stream into leadCount
// leads of count samples each.
func splitLeads(data []byte, leadCount, count int) [][]int16 {
	if count <= 0 {
		return nil
	}
	all := toInt16(data)

	var leads [][]int16
	for off := 0; off < leadCount*count && off < len(all); off += count {
		end := off + count
		if end > len(all) {
			end = len(all)
		}
		leads = append(leads, all[off:end])
	}

	return leads
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}

	return false
}
