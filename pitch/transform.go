package pitch

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/go-tuner/dsp/spectrum"
	"github.com/cwbudde/go-tuner/dsp/window"
)

// transformer performs the windowed real-input FFT of C1: a fixed-size
// buffer of FFTSize samples produces magnitude and phase for bins [0, Bins).
//
// Bin 0 (DC) is always zeroed. dmax tracks the running peak amplitude used
// to normalize the *next* frame, per spec: the divisor applied to frame t is
// max(dmax observed in frame t-1, normFloor).
type transformer struct {
	plan   *algofft.Plan[complex128]
	window []float64

	in  []complex128
	out []complex128

	re []float64
	im []float64

	dmax float64
}

func newTransformer() (*transformer, error) {
	plan, err := algofft.NewPlan64(FFTSize)
	if err != nil {
		return nil, fmt.Errorf("pitch: failed to create FFT plan: %w", err)
	}

	return &transformer{
		plan:   plan,
		window: window.Generate(window.TypeHann, FFTSize, window.WithPeriodic()),
		in:     make([]complex128, FFTSize),
		out:    make([]complex128, FFTSize),
		re:     make([]float64, Bins),
		im:     make([]float64, Bins),
		dmax:   normFloor,
	}, nil
}

// transform computes magnitude and phase for buf, a buffer of exactly
// FFTSize samples. mag and phase must have length Bins; mag[0]/phase[0] are
// always zeroed.
func (t *transformer) transform(buf []float64, mag, phase []float64) error {
	norm := t.dmax
	if norm < normFloor {
		norm = normFloor
	}

	newPeak := 0.0
	for i, s := range buf {
		if a := math.Abs(s); a > newPeak {
			newPeak = a
		}
		t.in[i] = complex(s/norm*t.window[i], 0)
	}
	t.dmax = newPeak

	if err := t.plan.Forward(t.out, t.in); err != nil {
		return fmt.Errorf("pitch: forward FFT failed: %w", err)
	}

	mag[0] = 0
	phase[0] = 0
	for i := 1; i < Bins; i++ {
		re := real(t.out[i]) / fftScale
		im := imag(t.out[i]) / fftScale
		t.re[i] = re
		t.im[i] = im
		// Phase is measured on the conjugate bin, so a steady tone's phase
		// falls by its per-hop advance; refineBins takes prevPhase - phase
		// and relies on that sign.
		phase[i] = math.Atan2(-im, re)
	}

	spectrum.MagnitudeFromParts(mag[1:Bins], t.re[1:Bins], t.im[1:Bins])

	return nil
}
