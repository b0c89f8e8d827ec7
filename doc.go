/*
Package sierraecg reads Philips Sierra ECG XML documents.

Supported document types are SierraECG and PhilipsECG, versions 1.03 through
1.04.02. The parsed waveform element carries the lead data as Base64 text,
either uncompressed (int16 LE sample stream) or XLI-compressed; XLI decoding
is handled by the xli subpackage. After decoding, the derived limb leads
(III, aVR, aVL, aVF) are rebuilt from the measured leads, as the stream
stores them as residuals.

Use ReadFile(name, opts) to read a document from disk.
Use Parse(r, opts) to read from any io.Reader.
Set Options.IncludeRepbeats to also extract representative beats.

# Examples

Read a file and walk its leads:

	f, err := sierraecg.ReadFile("ecg.xml", nil)
	if err != nil {
		return err
	}
	for _, lead := range f.Leads {
		fmt.Println(lead.Label, len(lead.Samples))
	}

Include representative beats:

	f, err := sierraecg.ReadFile("ecg.xml", &sierraecg.Options{IncludeRepbeats: true})
	if err != nil {
		return err
	}
	beat, ok := f.Repbeats["I"]
*/
package sierraecg
