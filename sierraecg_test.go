package sierraecg

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/Krzysieq77/sierra-ecg-tools/xli"
)

const docTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<restingecgdata>
  <documentinfo>
    <documenttype>%s</documenttype>
    <documentversion>%s</documentversion>
  </documentinfo>
  <dataacquisition>
    <signalcharacteristics>
      <samplingrate>500</samplingrate>
      <numberchannelsallocated>%d</numberchannelsallocated>
      <acquisitiontype>STD-12</acquisitiontype>
    </signalcharacteristics>
  </dataacquisition>
  <waveforms>
    <parsedwaveforms durationperchannel="10" dataencoding="Base64"%s leadlabels="%s" numberofleads="%d">
      %s
    </parsedwaveforms>
    %s
  </waveforms>
</restingecgdata>`

func xliDocument(t *testing.T, labels []string, leads []xli.Lead, extra string) string {
	t.Helper()
	buf, err := xli.EncodeLeads(leads)
	if err != nil {
		t.Fatal(err)
	}

	return fmt.Sprintf(docTemplate, "SierraECG", "1.04", len(leads),
		` compressmethod="XLI"`, strings.Join(labels, " "), len(labels),
		base64.StdEncoding.EncodeToString(buf), extra)
}

func TestParseXLIDocument(t *testing.T) {
	leads := []xli.Lead{
		{120, 130, 125, 110, 95, 80, 80, 80, 90, 200},
		{-5, -10, 0, 25, 60, 100, 100, 90, 40, -30},
	}
	doc := xliDocument(t, []string{"I", "II"}, leads, "")

	f, err := Parse(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.DocType != "SierraECG" || f.DocVer != "1.04" {
		t.Fatalf("got %s %s", f.DocType, f.DocVer)
	}
	if len(f.Leads) != 2 {
		t.Fatalf("got %d leads", len(f.Leads))
	}
	for i, lead := range f.Leads {
		if lead.SamplingFreq != 500 || lead.Duration != 10 {
			t.Fatalf("lead %d: freq=%d duration=%d", i, lead.SamplingFreq, lead.Duration)
		}
		if !reflect.DeepEqual(lead.Samples, []int16(leads[i])) {
			t.Fatalf("lead %d: got %v, want %v", i, lead.Samples, leads[i])
		}
	}
	if f.Leads[0].Label != "I" || f.Leads[1].Label != "II" {
		t.Fatalf("labels %s %s", f.Leads[0].Label, f.Leads[1].Label)
	}
}

func TestParseTwelveLeadDerivation(t *testing.T) {
	// The stream stores III, aVR, aVL and aVF as residuals; Parse must
	// rebuild the true leads.
	stored := []xli.Lead{
		{2, 4},             // I
		{6, 8},             // II
		{1, 1},             // III residual
		{1, 1},             // aVR residual
		{1, 1},             // aVL residual
		{1, 1},             // aVF residual
		{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
	}
	labels := []string{"I", "II", "III", "aVR", "aVL", "aVF", "V1", "V2", "V3", "V4", "V5", "V6"}
	doc := xliDocument(t, labels, stored, "")

	f, err := Parse(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string][]int16{
		"I":   {2, 4},
		"II":  {6, 8},
		"III": {3, 3},
		"aVR": {-5, -7},
		"aVL": {-2, -1},
		"aVF": {3, 4},
	}
	for _, lead := range f.Leads[:6] {
		if !reflect.DeepEqual(lead.Samples, want[lead.Label]) {
			t.Fatalf("%s: got %v, want %v", lead.Label, lead.Samples, want[lead.Label])
		}
	}
}

func TestParseUncompressedDocument(t *testing.T) {
	// 10 ms at 500 Hz = 5 samples per lead, int16 LE stream.
	samples := [][]int16{
		{1, -1, 2, -2, 3},
		{100, 200, 300, 400, 500},
	}
	raw := make([]byte, 0, 20)
	for _, lead := range samples {
		for _, v := range lead {
			raw = binary.LittleEndian.AppendUint16(raw, uint16(v))
		}
	}

	doc := fmt.Sprintf(docTemplate, "PhilipsECG", "1.03", 2, "", "I II", 2,
		base64.StdEncoding.EncodeToString(raw), "")

	f, err := Parse(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Leads) != 2 {
		t.Fatalf("got %d leads", len(f.Leads))
	}
	for i, lead := range f.Leads {
		if !reflect.DeepEqual(lead.Samples, samples[i]) {
			t.Fatalf("lead %d: got %v, want %v", i, lead.Samples, samples[i])
		}
	}
}

func TestParseUnsupportedVersion(t *testing.T) {
	doc := fmt.Sprintf(docTemplate, "SierraECG", "2.00", 1, "", "I", 1, "", "")
	if _, err := Parse(strings.NewReader(doc), nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseUnsupportedCompression(t *testing.T) {
	doc := fmt.Sprintf(docTemplate, "SierraECG", "1.04", 1,
		` compressmethod="Huffman"`, "I", 1, "AA==", "")
	if _, err := Parse(strings.NewReader(doc), nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("want ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseMissingWaveforms(t *testing.T) {
	doc := `<restingecgdata>
  <documentinfo><documenttype>SierraECG</documenttype><documentversion>1.04</documentversion></documentinfo>
  <dataacquisition><signalcharacteristics><samplingrate>500</samplingrate></signalcharacteristics></dataacquisition>
</restingecgdata>`
	if _, err := Parse(strings.NewReader(doc), nil); !errors.Is(err, ErrMissingElement) {
		t.Fatalf("want ErrMissingElement, got %v", err)
	}
}

func TestParseRepbeats(t *testing.T) {
	beat := []int16{10, 20, 30, 40}
	raw := make([]byte, 0, 8)
	for _, v := range beat {
		raw = binary.LittleEndian.AppendUint16(raw, uint16(v))
	}
	repbeats := fmt.Sprintf(`<repbeats dataencoding="Base64" samplespersec="500" resolution="5" repbeatmethod="average">
      <repbeat leadname="I"><waveform duration="1200">%s</waveform></repbeat>
    </repbeats>`, base64.StdEncoding.EncodeToString(raw))

	doc := xliDocument(t, []string{"I"}, []xli.Lead{{1, 2, 3, 4}}, repbeats)

	f, err := Parse(strings.NewReader(doc), &Options{IncludeRepbeats: true})
	if err != nil {
		t.Fatal(err)
	}
	got, ok := f.Repbeats["I"]
	if !ok {
		t.Fatalf("repbeat I missing, have %v", f.Repbeats)
	}
	if got.Duration != 1200 || got.SamplingFreq != 500 || got.Resolution != 5 || got.Method != "average" {
		t.Fatalf("metadata: %+v", got)
	}
	if !reflect.DeepEqual(got.Samples, beat) {
		t.Fatalf("got %v, want %v", got.Samples, beat)
	}
}

func TestParseRepbeatsAbsent(t *testing.T) {
	doc := xliDocument(t, []string{"I"}, []xli.Lead{{1, 2, 3, 4}}, "")
	f, err := Parse(strings.NewReader(doc), &Options{IncludeRepbeats: true})
	if err != nil {
		t.Fatal(err)
	}
	if f.Repbeats == nil || len(f.Repbeats) != 0 {
		t.Fatalf("want empty map, got %v", f.Repbeats)
	}
}
