package pitch

import (
	"math"
	"testing"

	"github.com/cwbudde/go-tuner/internal/testutil"
)

func sineBuffer(freqHz float64, n int) []float64 {
	return testutil.DeterministicSine(freqHz, SampleRate, 1.0, n)
}

func TestTransformIsDeterministic(t *testing.T) {
	buf := sineBuffer(440, FFTSize)

	xf1, err := newTransformer()
	if err != nil {
		t.Fatalf("newTransformer: %v", err)
	}
	xf2, err := newTransformer()
	if err != nil {
		t.Fatalf("newTransformer: %v", err)
	}

	mag1, phase1 := make([]float64, Bins), make([]float64, Bins)
	mag2, phase2 := make([]float64, Bins), make([]float64, Bins)

	if err := xf1.transform(buf, mag1, phase1); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if err := xf2.transform(buf, mag2, phase2); err != nil {
		t.Fatalf("transform: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, mag1, mag2, 0)
	testutil.RequireSliceNearlyEqual(t, phase1, phase2, 0)
	testutil.RequireFinite(t, mag1)
	testutil.RequireFinite(t, phase1)
}

func TestTransformZerosDCBin(t *testing.T) {
	xf, err := newTransformer()
	if err != nil {
		t.Fatalf("newTransformer: %v", err)
	}
	buf := sineBuffer(440, FFTSize)
	mag, phase := make([]float64, Bins), make([]float64, Bins)
	if err := xf.transform(buf, mag, phase); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if mag[0] != 0 || phase[0] != 0 {
		t.Fatalf("DC bin not zeroed: mag[0]=%v phase[0]=%v", mag[0], phase[0])
	}
}

func TestTransformPeaksNearExpectedBin(t *testing.T) {
	xf, err := newTransformer()
	if err != nil {
		t.Fatalf("newTransformer: %v", err)
	}
	buf := sineBuffer(440, FFTSize)
	mag, phase := make([]float64, Bins), make([]float64, Bins)
	if err := xf.transform(buf, mag, phase); err != nil {
		t.Fatalf("transform: %v", err)
	}

	expectedBin := int(math.Round(440 / binSpacing))
	peakBin := 0
	for i := range mag {
		if mag[i] > mag[peakBin] {
			peakBin = i
		}
	}
	if d := peakBin - expectedBin; d < -2 || d > 2 {
		t.Fatalf("peak bin = %d, want within 2 of %d", peakBin, expectedBin)
	}
}

func TestRefineBinsFoldInterval(t *testing.T) {
	mag := make([]float64, Bins)
	phase := make([]float64, Bins)
	prevPhase := make([]float64, Bins)
	refinedFreq := make([]float64, Bins)
	derivative := make([]float64, Bins)

	for i := range phase {
		phase[i] = math.Mod(float64(i)*0.73, 2*math.Pi) - math.Pi
		prevPhase[i] = math.Mod(float64(i)*0.31, 2*math.Pi) - math.Pi
		mag[i] = float64(i % 5)
	}

	refineBins(mag, phase, prevPhase, refinedFreq, derivative)

	maxFold := float64(Oversample) * binSpacing / 2
	for i := 1; i < Bins; i++ {
		nominal := float64(i) * binSpacing
		if d := math.Abs(refinedFreq[i] - nominal); d > maxFold+1e-6 {
			t.Fatalf("bin %d: |refined-nominal|=%v exceeds fold width %v", i, d, maxFold)
		}
	}
}
