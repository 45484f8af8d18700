package pitch

import (
	"fmt"

	"github.com/cwbudde/go-tuner/dsp/buffer"
)

// DetectorConfig holds the tunable, caller-supplied parameters of a Detector.
type DetectorConfig struct {
	ReferenceA    float64
	Temperament   int
	Key           int
	LowPassFilter bool
	HPS           bool
	PeakFilter    PeakFilter
}

// DetectorOption mutates a DetectorConfig.
type DetectorOption func(*DetectorConfig)

// DefaultDetectorConfig returns the settings the real-time path starts with.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		ReferenceA:  440.0,
		Temperament: EqualTemperamentIndex,
		Key:         0,
	}
}

// WithReferenceA sets the reference A frequency in Hz.
func WithReferenceA(hz float64) DetectorOption {
	return func(cfg *DetectorConfig) {
		if hz > 0 {
			cfg.ReferenceA = hz
		}
	}
}

// WithTemperament sets the active temperament index.
func WithTemperament(index int) DetectorOption {
	return func(cfg *DetectorConfig) { cfg.Temperament = index }
}

// WithKey sets the transposition key (pitch class 0..11).
func WithKey(key int) DetectorOption {
	return func(cfg *DetectorConfig) { cfg.Key = mod12(key, Octave) }
}

// WithLowPassFilter enables the C3 one-pole pre-filter.
func WithLowPassFilter(enabled bool) DetectorOption {
	return func(cfg *DetectorConfig) { cfg.LowPassFilter = enabled }
}

// WithHPS enables the C3 harmonic-product-spectrum sharpener.
func WithHPS(enabled bool) DetectorOption {
	return func(cfg *DetectorConfig) { cfg.HPS = enabled }
}

// WithPeakFilter sets the fundamental/note/octave acceptance filter used by
// the peak picker.
func WithPeakFilter(filter PeakFilter) DetectorOption {
	return func(cfg *DetectorConfig) { cfg.PeakFilter = filter }
}

// ApplyDetectorOptions applies zero or more options to the default config.
func ApplyDetectorOptions(opts ...DetectorOption) DetectorConfig {
	cfg := DefaultDetectorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Detector is the frame driver of C7: a single-threaded, cooperative state
// machine that turns successive hops of H=HopSize samples into PitchResults.
// It is a pure function of (new samples, state); it never blocks and never
// spawns goroutines.
type Detector struct {
	cfg      DetectorConfig
	registry *TemperamentRegistry

	ring      *buffer.Buffer
	prevPhase []float64

	mag          []float64
	phase        []float64
	refinedFreq  []float64
	derivative   []float64

	xform   *transformer
	hps     *hpsAccumulator
	lowpass lowPassFilter

	displayLock   bool
	invalidStreak int
	result        PitchResult
}

// NewDetector constructs a Detector ready to accept samples via Process.
func NewDetector(registry *TemperamentRegistry, opts ...DetectorOption) (*Detector, error) {
	xform, err := newTransformer()
	if err != nil {
		return nil, fmt.Errorf("pitch: creating detector: %w", err)
	}

	return &Detector{
		cfg:         ApplyDetectorOptions(opts...),
		registry:    registry,
		ring:        buffer.New(FFTSize),
		prevPhase:   make([]float64, Bins),
		mag:         make([]float64, Bins),
		phase:       make([]float64, Bins),
		refinedFreq: make([]float64, Bins),
		derivative:  make([]float64, Bins),
		xform:       xform,
		hps:         newHPSAccumulator(),
	}, nil
}

// SetDisplayLock freezes the exposed Result: while locked, Process still runs
// the full pipeline (so internal state stays current) but discards its
// output instead of publishing it.
func (d *Detector) SetDisplayLock(locked bool) { d.displayLock = locked }

// Config returns the detector's current configuration.
func (d *Detector) Config() DetectorConfig { return d.cfg }

// Configure replaces the detector's configuration.
func (d *Detector) Configure(opts ...DetectorOption) {
	for _, opt := range opts {
		if opt != nil {
			opt(&d.cfg)
		}
	}
}

// Result returns the most recently published PitchResult.
func (d *Detector) Result() PitchResult { return d.result }

// Process implements on_samples: it shifts newSamples (length HopSize) into
// the ring buffer through the optional low-pass filter, runs the pipeline,
// and returns the hop's result (the same value stored in Result).
func (d *Detector) Process(newSamples []float64) (PitchResult, error) {
	if len(newSamples) != HopSize {
		return PitchResult{}, fmt.Errorf("pitch: Process expects %d samples, got %d", HopSize, len(newSamples))
	}

	samples := d.ring.Samples()
	copy(samples, samples[HopSize:])
	tail := samples[FFTSize-HopSize:]
	for i, s := range newSamples {
		if d.cfg.LowPassFilter {
			tail[i] = d.lowpass.process(s)
		} else {
			tail[i] = s
		}
	}

	if err := d.xform.transform(samples, d.mag, d.phase); err != nil {
		return PitchResult{}, err
	}

	refineBins(d.mag, d.phase, d.prevPhase, d.refinedFreq, d.derivative)
	copy(d.prevPhase, d.phase)

	if d.cfg.HPS {
		d.hps.apply(d.mag, d.derivative)
	}

	peaks := pickPeaks(d.mag, d.refinedFreq, d.derivative, d.cfg.ReferenceA, d.cfg.Temperament, d.cfg.Key, d.registry, d.cfg.HPS, d.cfg.PeakFilter)

	maxMagnitude := 0.0
	for _, m := range d.mag {
		if m > maxMagnitude {
			maxMagnitude = m
		}
	}

	result := decideFundamental(peaks, d.cfg.ReferenceA, d.cfg.Temperament, d.cfg.Key, d.registry, maxMagnitude)

	if d.displayLock {
		return d.result, nil
	}

	if result.Valid {
		d.invalidStreak = 0
		d.result = result
	} else {
		d.invalidStreak++
		if d.invalidStreak >= invalidFrameHoldoff {
			d.result = PitchResult{}
		}
	}

	return d.result, nil
}
