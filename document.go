package sierraecg

import "encoding/xml"

// xmlDocument binds the restingecgdata document. The parsedwaveforms and
// repbeats elements moved under <waveforms> in the 1.04 schema, so both
// locations are bound and resolved through accessors.
type xmlDocument struct {
	XMLName xml.Name `xml:"restingecgdata"`

	DocumentInfo struct {
		Type    string `xml:"documenttype"`
		Version string `xml:"documentversion"`
	} `xml:"documentinfo"`

	Acquisition struct {
		Signal xmlSignal `xml:"signalcharacteristics"`
	} `xml:"dataacquisition"`

	Parsed    *xmlParsedWaveforms `xml:"waveforms>parsedwaveforms"`
	ParsedOld *xmlParsedWaveforms `xml:"parsedwaveforms"`

	Repbeats    *xmlRepbeats `xml:"waveforms>repbeats"`
	RepbeatsOld *xmlRepbeats `xml:"repbeats"`
}

// parsedWaveforms returns the parsedwaveforms element from either schema
// location, or nil.
func (d *xmlDocument) parsedWaveforms() *xmlParsedWaveforms {
	if d.Parsed != nil {
		return d.Parsed
	}

	return d.ParsedOld
}

// repbeats returns the repbeats element from either schema location, or nil.
func (d *xmlDocument) repbeats() *xmlRepbeats {
	if d.Repbeats != nil {
		return d.Repbeats
	}

	return d.RepbeatsOld
}

// xmlSignal binds dataacquisition/signalcharacteristics.
type xmlSignal struct {
	SamplingRate      int    `xml:"samplingrate"`
	ChannelsAllocated int    `xml:"numberchannelsallocated"`
	AcquisitionType   string `xml:"acquisitiontype"`
}

// xmlParsedWaveforms binds the parsedwaveforms element; its text is the
// Base64-encoded waveform data.
type xmlParsedWaveforms struct {
	DurationPerChannel int    `xml:"durationperchannel,attr"`
	DataEncoding       string `xml:"dataencoding,attr"`
	CompressMethod     string `xml:"compressmethod,attr"`
	Compression        string `xml:"compression,attr"`
	LeadLabels         string `xml:"leadlabels,attr"`
	NumberOfLeads      int    `xml:"numberofleads,attr"`
	Text               string `xml:",chardata"`
}

// compressionMethod resolves the compression attribute across schema
// versions: compressmethod, then compression, defaulting to Uncompressed.
func (p *xmlParsedWaveforms) compressionMethod() string {
	if p.CompressMethod != "" {
		return p.CompressMethod
	}
	if p.Compression != "" {
		return p.Compression
	}

	return "Uncompressed"
}

// xmlRepbeats binds the repbeats element.
type xmlRepbeats struct {
	DataEncoding  string       `xml:"dataencoding,attr"`
	SamplesPerSec int          `xml:"samplespersec,attr"`
	Resolution    float64      `xml:"resolution,attr"`
	Method        string       `xml:"repbeatmethod,attr"`
	Beats         []xmlRepbeat `xml:"repbeat"`
}

// xmlRepbeat binds one repbeat. 1.04 documents nest the sample text in a
// waveform child; 1.03 documents put it directly in the repbeat element.
type xmlRepbeat struct {
	LeadName string       `xml:"leadname,attr"`
	Duration int          `xml:"duration,attr"`
	Waveform *xmlWaveform `xml:"waveform"`
	Text     string       `xml:",chardata"`
}

// xmlWaveform binds the repbeat waveform child.
type xmlWaveform struct {
	Duration int    `xml:"duration,attr"`
	Text     string `xml:",chardata"`
}
