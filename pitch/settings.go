package pitch

// Settings is the small persisted key/value contract described by the
// external settings store: zoom level, strobe mode, colour scheme, low-pass
// filter toggle, and the reference A frequency (stored as tenths of a Hz, so
// 440.0 Hz round-trips as 4400). The storage backend itself is out of scope;
// callers pass the options from DetectorOptions to NewDetector.
type Settings struct {
	Zoom             int
	Strobe           bool
	Colours          string
	Filter           bool
	ReferenceTenths  int
}

// ReferenceHz decodes the stored reference frequency.
func (s Settings) ReferenceHz() float64 {
	return float64(s.ReferenceTenths) / 10.0
}

// SetReferenceHz encodes hz as round(hz * 10) for storage.
func (s *Settings) SetReferenceHz(hz float64) {
	s.ReferenceTenths = int(hz*10 + 0.5)
}

// DetectorOptions converts Settings into the DetectorOptions a Detector
// understands.
func (s Settings) DetectorOptions() []DetectorOption {
	return []DetectorOption{
		WithReferenceA(s.ReferenceHz()),
		WithLowPassFilter(s.Filter),
	}
}
