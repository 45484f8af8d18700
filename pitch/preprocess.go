package pitch

import "github.com/cwbudde/go-tuner/dsp/core"

// lowPassFilter is a one-pole 3 dB/octave low-pass applied to raw samples
// before they enter the sample ring (C3). State persists across hops.
type lowPassFilter struct {
	xPrev, yPrev float64
}

// process filters one sample. The recursive tap is flushed of denormals on
// every call since a filter left running across long silences otherwise
// settles into subnormal territory and slows the hot per-sample loop.
func (f *lowPassFilter) process(sample float64) float64 {
	x := sample / lowPassGain
	y := core.FlushDenormals((f.xPrev + x) + lowPassPole*f.yPrev)
	f.xPrev = x
	f.yPrev = y
	return y
}

func (f *lowPassFilter) reset() {
	f.xPrev = 0
	f.yPrev = 0
}

// hpsAccumulator holds the four downsampled-sum scratch buffers used by the
// harmonic product spectrum (C3). Buffers are sized once for Bins and reused
// across hops to avoid per-hop allocation.
type hpsAccumulator struct {
	ds2, ds3, ds4, ds5 []float64
}

func newHPSAccumulator() *hpsAccumulator {
	return &hpsAccumulator{
		ds2: make([]float64, Bins/2),
		ds3: make([]float64, Bins/3),
		ds4: make([]float64, Bins/4),
		ds5: make([]float64, Bins/5),
	}
}

// apply sharpens mag in place by multiplying it with four downsampled copies
// of itself (d in {2,3,4,5}), then recomputes derivative. Bin 0 is untouched.
func (h *hpsAccumulator) apply(mag, derivative []float64) {
	downsample(mag, h.ds2, 2)
	downsample(mag, h.ds3, 3)
	downsample(mag, h.ds4, 4)
	downsample(mag, h.ds5, 5)

	for i := 1; i < len(mag); i++ {
		mag[i] *= dsValueAt(h.ds2, i)
		mag[i] *= dsValueAt(h.ds3, i)
		mag[i] *= dsValueAt(h.ds4, i)
		mag[i] *= dsValueAt(h.ds5, i)
		derivative[i] = mag[i] - mag[i-1]
	}
}

// downsample sums d consecutive mag bins into each entry of ds.
func downsample(mag, ds []float64, d int) {
	for i := range ds {
		sum := 0.0
		base := i * d
		for j := 0; j < d; j++ {
			sum += mag[base+j]
		}
		ds[i] = sum
	}
}

// dsValueAt returns ds[i], or 0 when i falls outside the (shorter)
// downsampled range, matching the original implementation.
func dsValueAt(ds []float64, i int) float64 {
	if i < len(ds) {
		return ds[i]
	}
	return 0
}
