package pitch

import (
	"math"
	"sort"
)

// DetectedNote is one surviving entry from the offline cluster aggregator.
type DetectedNote struct {
	NoteName    string
	Octave      int
	NoteNumber  int
	FrequencyHz float64
	Cents       float64
}

// frequencyCluster accumulates peaks whose frequency fell within
// clusterThresholdHz of its running mean at the time of insertion.
type frequencyCluster struct {
	freqSum  float64
	centsSum float64
	count    int
	note     int
}

func (c *frequencyCluster) meanFreq() float64 { return c.freqSum / float64(c.count) }
func (c *frequencyCluster) meanCents() float64 { return c.centsSum / float64(c.count) }

// ClusterAggregator implements C8: it accumulates every peak from a sequence
// of per-frame PitchResults into frequency clusters, then on Finish prunes
// clusters that did not survive often enough and filters out ones that are
// just octave/twelfth harmonics of an already-kept cluster.
type ClusterAggregator struct {
	clusters    []frequencyCluster
	validFrames int
}

// NewClusterAggregator returns an empty aggregator.
func NewClusterAggregator() *ClusterAggregator {
	return &ClusterAggregator{clusters: make([]frequencyCluster, 0, maxClusters)}
}

// Add folds every peak of one frame's result into the running clusters. It
// is a no-op for invalid results.
func (a *ClusterAggregator) Add(result PitchResult) {
	if !result.Valid {
		return
	}
	a.validFrames++

	for _, p := range result.Peaks {
		found := -1
		for i := range a.clusters {
			if math.Abs(a.clusters[i].meanFreq()-p.FrequencyHz) < clusterThresholdHz {
				found = i
				break
			}
		}

		if found >= 0 {
			a.clusters[found].freqSum += p.FrequencyHz
			a.clusters[found].centsSum += p.cents
			a.clusters[found].count++
			continue
		}

		if len(a.clusters) >= maxClusters {
			continue
		}
		a.clusters = append(a.clusters, frequencyCluster{
			freqSum:  p.FrequencyHz,
			centsSum: p.cents,
			count:    1,
			note:     p.NoteNumber,
		})
	}
}

// ValidFrames returns the number of valid results folded in so far.
func (a *ClusterAggregator) ValidFrames() int { return a.validFrames }

// Finish prunes, sorts, and harmonic-filters the accumulated clusters,
// returning at most MaxPeaks detected notes ordered lowest-frequency first.
func (a *ClusterAggregator) Finish() []DetectedNote {
	minCount := a.validFrames / 4

	survivors := make([]frequencyCluster, 0, len(a.clusters))
	for _, c := range a.clusters {
		if c.count >= minCount {
			survivors = append(survivors, c)
		}
	}

	sort.Slice(survivors, func(i, j int) bool {
		return survivors[i].meanFreq() < survivors[j].meanFreq()
	})

	kept := make([]frequencyCluster, 0, len(survivors))
	for _, c := range survivors {
		if isHarmonicOfKept(kept, c.meanFreq()) {
			continue
		}
		kept = append(kept, c)
	}

	notes := make([]DetectedNote, 0, len(kept))
	for _, c := range kept {
		if len(notes) >= MaxPeaks {
			break
		}
		notes = append(notes, DetectedNote{
			NoteName:    noteNameOf(c.note),
			Octave:      c.note / Octave,
			NoteNumber:  c.note,
			FrequencyHz: c.meanFreq(),
			Cents:       c.meanCents(),
		})
	}
	return notes
}

// isHarmonicOfKept reports whether freq is within harmonicRatioTolerance of
// 2x or 3x any already-kept cluster's mean frequency.
func isHarmonicOfKept(kept []frequencyCluster, freq float64) bool {
	for _, k := range kept {
		base := k.meanFreq()
		if base == 0 {
			continue
		}
		ratio := freq / base
		if nearRatio(ratio, 2.0) || nearRatio(ratio, 3.0) {
			return true
		}
	}
	return false
}

func nearRatio(ratio, target float64) bool {
	return math.Abs(ratio-target) <= harmonicRatioTolerance*target
}
