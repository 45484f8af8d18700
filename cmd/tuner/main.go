// Command tuner analyzes one or more WAV files offline and prints the
// detected notes as JSON.
//
// Usage:
//
//	tuner [-r FREQ] [-a] FILE...
//
// Flags:
//
//	-r FREQ   reference A frequency in Hz (default 440.0)
//	-a        wrap all per-file results in one JSON object keyed by
//	          each file's basename without its extension
//	-h        print usage
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/go-tuner/dsp/buffer"
	"github.com/cwbudde/go-tuner/pitch"
)

func main() {
	reference := flag.Float64("r", 440.0, "reference A frequency in Hz")
	aggregate := flag.Bool("a", false, "wrap multi-file output in one JSON object keyed by basename")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tuner [-r FREQ] [-a] FILE...\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	// Shared across every file in the batch: each file's trailing partial
	// hop (the samples left after the last full hop) borrows a zero-padded
	// scratch buffer here instead of allocating one per file.
	tailPool := buffer.NewPool()

	if *aggregate {
		out := make(map[string]pitch.FileResult, len(files))
		for _, path := range files {
			key := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			out[key] = analyzeFile(path, *reference, tailPool)
		}
		printJSON(out)
		return
	}

	for _, path := range files {
		printJSON(analyzeFile(path, *reference, tailPool))
	}
}

func analyzeFile(path string, referenceA float64, tailPool *buffer.Pool) pitch.FileResult {
	f, err := os.Open(path)
	if err != nil {
		return pitch.FileResult{Valid: false, Error: err.Error()}
	}
	defer f.Close()

	audio, err := pitch.DecodeWAV(f)
	if err != nil {
		return pitch.FileResult{Valid: false, Error: err.Error()}
	}

	samples := pitch.Resample(audio.Samples, audio.SampleRate, pitch.SampleRate)
	// DecodeWAV yields samples in [-1, 1]; the detector's normalization floor
	// and MinAmplitude are set for raw 16-bit PCM magnitudes, so scale back.
	for i := range samples {
		samples[i] *= 32768
	}

	registry := pitch.NewTemperamentRegistry()
	detector, err := pitch.NewDetector(registry, pitch.WithReferenceA(referenceA))
	if err != nil {
		return pitch.FileResult{Valid: false, Error: err.Error()}
	}

	aggregator := pitch.NewClusterAggregator()
	numChunks := len(samples) / pitch.HopSize
	for i := 0; i < numChunks; i++ {
		hop := samples[i*pitch.HopSize : (i+1)*pitch.HopSize]
		result, err := detector.Process(hop)
		if err != nil {
			return pitch.FileResult{Valid: false, Error: err.Error()}
		}
		aggregator.Add(result)
	}

	if remainder := samples[numChunks*pitch.HopSize:]; len(remainder) > 0 {
		tail := tailPool.Get(pitch.HopSize)
		copy(tail.Samples(), remainder)
		result, err := detector.Process(tail.Samples())
		tailPool.Put(tail)
		if err != nil {
			return pitch.FileResult{Valid: false, Error: err.Error()}
		}
		aggregator.Add(result)
	}

	notes := aggregator.Finish()
	return pitch.NewFileResult(notes, aggregator.ValidFrames())
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to encode output: %v\n", err)
	}
}
