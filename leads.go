package sierraecg

import (
	"fmt"
	"strings"
)

// standardLimbLeads are the first six channels of a STD-12 or 10-WIRE
// acquisition.
var standardLimbLeads = [...]string{"I", "II", "III", "aVR", "aVL", "aVF"}

// leadLabels resolves the lead names: the leadlabels attribute truncated to
// numberofleads when present, otherwise names generated from the acquisition
// type for every allocated channel.
func leadLabels(sig *xmlSignal, pw *xmlParsedWaveforms) []string {
	if pw.LeadLabels != "" {
		labels := strings.Fields(pw.LeadLabels)
		if n := pw.NumberOfLeads; n > 0 && n < len(labels) {
			labels = labels[:n]
		}
		return labels
	}

	labels := make([]string, sig.ChannelsAllocated)
	for i := range labels {
		labels[i] = leadName(sig.AcquisitionType, i+1)
	}

	return labels
}

// leadName returns the conventional name of the 1-based channel index for
// the given acquisition type.
func leadName(acquisitionType string, index int) string {
	if acquisitionType == "STD-12" || acquisitionType == "10-WIRE" {
		switch {
		case index >= 1 && index <= len(standardLimbLeads):
			return standardLimbLeads[index-1]
		case index > 6 && index <= 12:
			return fmt.Sprintf("V%d", index-6)
		}
	}

	return fmt.Sprintf("Channel %d", index)
}

// deriveLimbLeads rebuilds the derived limb leads in place. The waveform
// stream stores III, aVR, aVL and aVF as residuals against the measured
// leads I and II. Sums wrap in int16 and halving floors toward negative
// infinity, matching the acquisition firmware.
func deriveLimbLeads(leads []Lead) {
	if len(leads) < len(standardLimbLeads) {
		return
	}

	i, ii, iii := leads[0].Samples, leads[1].Samples, leads[2].Samples
	avr, avl, avf := leads[3].Samples, leads[4].Samples, leads[5].Samples
	n := len(i)
	for _, s := range [][]int16{ii, iii, avr, avl, avf} {
		if len(s) != n {
			return
		}
	}

	for k := 0; k < n; k++ {
		iii[k] = ii[k] - i[k] - iii[k]
	}
	for k := 0; k < n; k++ {
		avr[k] = -avr[k] - (i[k]+ii[k])>>1
	}
	for k := 0; k < n; k++ {
		avl[k] = (i[k]-iii[k])>>1 - avl[k]
	}
	for k := 0; k < n; k++ {
		avf[k] = (ii[k]+iii[k])>>1 - avf[k]
	}
}
