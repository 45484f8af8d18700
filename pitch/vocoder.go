package pitch

import "math"

// refineBins implements the phase-vocoder bin refiner (C2): for each bin in
// [1, Bins), combine the current and previous frame's phase to recover a
// frequency estimate with resolution finer than the raw bin spacing.
//
// prevPhase is read but never mutated here; the caller is responsible for
// copying phase into prevPhase once refinement has consumed it, and must do
// so before the next hop (see [Detector.Process]).
func refineBins(mag, phase, prevPhase []float64, refinedFreq, derivative []float64) {
	for i := 1; i < Bins; i++ {
		dp := prevPhase[i] - phase[i]
		dp -= binExpectedPhaseAdvance(i)

		// Fold dp into [-pi, pi] by rounding the pi-multiple count to the
		// nearest even integer (the standard phase-vocoder trick), so df
		// stays within +-Oversample/2 bins.
		qpd := int64(dp / math.Pi)
		if qpd >= 0 {
			qpd += qpd & 1
		} else {
			qpd -= qpd & 1
		}
		dp -= math.Pi * float64(qpd)

		df := float64(Oversample) * dp / (2 * math.Pi)
		refinedFreq[i] = float64(i)*binSpacing + df*binSpacing

		derivative[i] = mag[i] - mag[i-1]
	}
}
