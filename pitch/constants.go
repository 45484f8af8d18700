package pitch

import "math"

const (
	// SampleRate is the fixed internal sample rate in Hz (S in spec terms).
	SampleRate = 11025.0

	// FFTSize is the analysis window length in samples (N).
	FFTSize = 16384

	// Oversample is the number of hops per FFT window (N/H).
	Oversample = 16

	// HopSize is the number of new samples consumed per hop (H = N/Oversample).
	HopSize = FFTSize / Oversample

	// Bins is the number of usable spectrum bins (R = N*7/16).
	Bins = FFTSize * 7 / 16

	// fftScale is the fixed post-transform divisor applied to every bin.
	fftScale = 2048.0

	// normFloor prevents blow-up on near-silent buffers.
	normFloor = 4096.0

	// MaxPeaks is the maximum number of simultaneous peaks tracked (M).
	MaxPeaks = 8

	// MinAmplitude is the minimum magnitude a bin must clear to be a peak candidate.
	MinAmplitude = 0.5

	// Octave is the number of pitch classes per octave.
	Octave = 12

	// C5Offset places A4 at note number 57 when C0 = 0.
	C5Offset = 57

	// AOffset is the pitch class of A (0=C .. 11=B).
	AOffset = 9

	// EqualTemperamentIndex is the fixed, documented built-in-table index of
	// 12-tone equal temperament.
	EqualTemperamentIndex = 8

	// lowPassGain and lowPassPole are the one-pole 3dB/oct low-pass constants.
	lowPassGain = 30.23332184
	lowPassPole = 0.9338478249

	// clusterThresholdHz is the offline aggregator's cluster radius.
	clusterThresholdHz = 1.5

	// maxClusters caps the offline aggregator's cluster arena.
	maxClusters = 64

	// harmonicRatioTolerance is the ±fraction used to detect octave/twelfth harmonics.
	harmonicRatioTolerance = 0.05

	// invalidFrameHoldoff is the number of consecutive invalid frames tolerated
	// before the exposed result is zeroed.
	invalidFrameHoldoff = 16
)

// binSpacing is the nominal frequency per bin (fps = S/N).
var binSpacing = SampleRate / FFTSize

// binExpectedPhaseAdvance returns the expected phase advance per hop for bin i.
func binExpectedPhaseAdvance(i int) float64 {
	return 2 * math.Pi * float64(i) * HopSize / FFTSize
}

// NoteNames are the twelve pitch-class names, indexed C=0 .. B=11.
var NoteNames = [Octave]string{
	"C", "C#", "D", "Eb", "E", "F",
	"F#", "G", "Ab", "A", "Bb", "B",
}
