package pitch

import "math"

// PeakFilter controls which notes the peak picker (C4) is allowed to accept.
type PeakFilter struct {
	// Fundamental restricts all accepted peaks to the pitch class of the
	// first accepted peak in a hop.
	Fundamental bool

	// NoteFilter, when enabled, additionally restricts acceptance to the
	// pitch classes and octaves marked true in Notes/Octaves.
	NoteFilter bool
	Notes      [Octave]bool
	Octaves    []bool
}

// pickPeaks implements C4: it scans mag/freq/derivative for strict local
// maxima that clear the amplitude and filter gates, up to MaxPeaks, and
// returns them in bin (frequency) order. hpsEnabled disables the
// octave-search limit tightening, matching the source's `!downsample` guard.
func pickPeaks(
	mag, freq, derivative []float64,
	referenceA float64,
	temperIdx, key int,
	registry *TemperamentRegistry,
	hpsEnabled bool,
	filter PeakFilter,
) []Peak {
	peaks := make([]Peak, 0, MaxPeaks)

	maxAmp := 0.0
	limit := Bins - 1

	for i := 1; i < limit; i++ {
		cf := -Octave * math.Log2(referenceA/freq[i])
		if math.IsNaN(cf) || math.IsInf(cf, 0) {
			continue
		}

		note := int(math.Round(cf)) + C5Offset
		if note < 0 {
			continue
		}

		if filter.Fundamental && len(peaks) > 0 && note%Octave != peaks[0].NoteNumber%Octave {
			continue
		}

		if filter.NoteFilter {
			n := note % Octave
			o := note / Octave
			if o >= len(filter.Octaves) {
				continue
			}
			if !filter.Notes[n] || !filter.Octaves[o] {
				continue
			}
		}

		if mag[i] > maxAmp {
			maxAmp = mag[i]
		}

		if len(peaks) >= MaxPeaks {
			continue
		}
		if mag[i] <= MinAmplitude || mag[i] <= maxAmp/4 {
			continue
		}
		if derivative[i] <= 0 || derivative[i+1] >= 0 {
			continue
		}

		refHz, err := registry.ReferenceHz(referenceA, math.Round(cf), note, temperIdx, key)
		if err != nil {
			continue
		}

		peaks = append(peaks, Peak{
			FrequencyHz: freq[i],
			ReferenceHz: refHz,
			NoteNumber:  note,
			cents:       -Octave * math.Log2(refHz/freq[i]) * 100,
		})

		if !hpsEnabled && limit > i*2 {
			limit = i*2 - 1
		}
	}

	return peaks
}
