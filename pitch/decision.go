package pitch

import "math"

// decideFundamental implements C6: given the peaks accepted for a hop, it
// chooses the fundamental candidate, computes its temperament-adjusted
// reference and cents deviation, and applies the cents validity gate.
//
// maxMagnitude is the largest bin magnitude of the hop's spectrum (after HPS,
// when enabled); it becomes the result's Confidence.
//
// The reference implementation also derives a lower/upper spectrum-display
// band from round(cf) ∓ 0.55; that band only feeds GUI rendering, which is
// out of scope here, so it is not computed.
func decideFundamental(
	peaks []Peak,
	referenceA float64,
	temperIdx, key int,
	registry *TemperamentRegistry,
	maxMagnitude float64,
) PitchResult {
	if len(peaks) == 0 {
		return PitchResult{Peaks: peaks}
	}

	f := peaks[0].FrequencyHz
	cf := -Octave * math.Log2(referenceA/f)
	if math.IsNaN(cf) || math.IsInf(cf, 0) {
		return PitchResult{Peaks: peaks}
	}

	note := int(math.Round(cf)) + C5Offset
	if note < 0 {
		return PitchResult{Peaks: peaks}
	}

	refHz, err := registry.ReferenceHz(referenceA, math.Round(cf), note, temperIdx, key)
	if err != nil {
		return PitchResult{Peaks: peaks}
	}

	df := math.Inf(1)
	for _, p := range peaks {
		if d := math.Abs(p.FrequencyHz - refHz); d < df {
			df = d
			f = p.FrequencyHz
		}
	}

	cents := -Octave * math.Log2(refHz/f) * 100
	if !isFinite(cents) || math.Abs(cents) > 50 {
		return PitchResult{Peaks: peaks}
	}

	return PitchResult{
		Valid:       true,
		FrequencyHz: f,
		ReferenceHz: refHz,
		Cents:       cents,
		NoteNumber:  note,
		Octave:      note / Octave,
		NoteName:    noteNameOf(note),
		Confidence:  maxMagnitude,
		Peaks:       peaks,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
