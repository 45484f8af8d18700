// Package pitch implements the real-time and offline pitch-detection core
// of an instrument tuner: overlap-added FFT windowing, phase-vocoder bin
// refinement, optional harmonic-product-spectrum sharpening, constrained
// peak selection, temperament-aware reference computation, and the
// frame-level note/cents decision.
//
// The package is a pure function of its inputs. It does not capture audio,
// render anything, or persist settings; callers own those concerns and feed
// sample blocks through [Detector.Process].
package pitch
