package pitch

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrNotWAV is returned when the RIFF/WAVE magic bytes are missing.
var ErrNotWAV = errors.New("pitch: not a valid WAV file")

// ErrUnsupportedFormat is returned for anything other than 16-bit PCM or
// 32-bit IEEE float.
var ErrUnsupportedFormat = errors.New("pitch: unsupported WAV format")

// DecodedAudio is a decoded, mono WAV file at its original sample rate.
type DecodedAudio struct {
	Samples    []float64
	SampleRate int
}

// DecodeWAV parses a RIFF/WAVE container (C10): it requires the RIFF/WAVE
// magic, locates the fmt and data chunks, decodes 16-bit PCM (format 1) or
// 32-bit float (format 3), and down-mixes to mono by taking the first
// channel of each frame.
func DecodeWAV(r io.Reader) (DecodedAudio, error) {
	var magic [12]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return DecodedAudio{}, fmt.Errorf("pitch: reading WAV header: %w", err)
	}
	if string(magic[0:4]) != "RIFF" || string(magic[8:12]) != "WAVE" {
		return DecodedAudio{}, ErrNotWAV
	}

	var (
		audioFormat   uint16
		numChannels   uint16
		sampleRate    uint32
		bitsPerSample uint16
		haveFmt       bool
		dataSize      uint32
		haveData      bool
	)

	for !haveData {
		var id [4]byte
		var size uint32
		if _, err := io.ReadFull(r, id[:]); err != nil {
			return DecodedAudio{}, fmt.Errorf("pitch: scanning WAV chunks: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return DecodedAudio{}, fmt.Errorf("pitch: scanning WAV chunks: %w", err)
		}

		switch string(id[:]) {
		case "fmt ":
			var fields [16]byte
			if _, err := io.ReadFull(r, fields[:]); err != nil {
				return DecodedAudio{}, fmt.Errorf("pitch: reading fmt chunk: %w", err)
			}
			audioFormat = binary.LittleEndian.Uint16(fields[0:2])
			numChannels = binary.LittleEndian.Uint16(fields[2:4])
			sampleRate = binary.LittleEndian.Uint32(fields[4:8])
			bitsPerSample = binary.LittleEndian.Uint16(fields[14:16])
			haveFmt = true
			if size > 16 {
				if err := skip(r, int64(size-16)); err != nil {
					return DecodedAudio{}, err
				}
			}
		case "data":
			dataSize = size
			haveData = true
		default:
			if err := skip(r, int64(size)); err != nil {
				return DecodedAudio{}, fmt.Errorf("pitch: skipping chunk %q: %w", id, err)
			}
		}
	}

	if !haveFmt || numChannels == 0 {
		return DecodedAudio{}, ErrUnsupportedFormat
	}

	bytesPerSample := int(bitsPerSample) / 8
	if bytesPerSample == 0 {
		return DecodedAudio{}, ErrUnsupportedFormat
	}
	numSamples := int(dataSize) / bytesPerSample / int(numChannels)

	raw := make([]byte, int(dataSize))
	if _, err := io.ReadFull(r, raw); err != nil {
		return DecodedAudio{}, fmt.Errorf("pitch: reading WAV data: %w", err)
	}

	samples := make([]float64, numSamples)
	stride := int(numChannels)

	switch {
	case bitsPerSample == 16:
		for i := 0; i < numSamples; i++ {
			off := (i * stride) * 2
			v := int16(binary.LittleEndian.Uint16(raw[off : off+2]))
			samples[i] = float64(v) / 32768.0
		}
	case bitsPerSample == 32 && audioFormat == 3:
		for i := 0; i < numSamples; i++ {
			off := (i * stride) * 4
			bits := binary.LittleEndian.Uint32(raw[off : off+4])
			samples[i] = float64(math.Float32frombits(bits))
		}
	default:
		return DecodedAudio{}, fmt.Errorf("%w: bits=%d format=%d", ErrUnsupportedFormat, bitsPerSample, audioFormat)
	}

	return DecodedAudio{Samples: samples, SampleRate: int(sampleRate)}, nil
}

func skip(r io.Reader, n int64) error {
	_, err := io.CopyN(io.Discard, r, n)
	return err
}

// Resample converts audio at srcRate to targetRate using integer decimation
// when the ratio is exact, otherwise truncating nearest-neighbour selection.
// This deliberately mirrors the source's simple resampler; polyphase
// resampling is out of scope.
func Resample(samples []float64, srcRate, targetRate int) []float64 {
	if srcRate == targetRate || len(samples) == 0 {
		return samples
	}

	if srcRate > 0 && targetRate > 0 {
		ratio := srcRate / targetRate
		if ratio > 0 && srcRate == ratio*targetRate {
			out := make([]float64, len(samples)/ratio)
			for i := range out {
				out[i] = samples[i*ratio]
			}
			return out
		}
	}

	ratio := float64(srcRate) / float64(targetRate)
	count := int(float64(len(samples)) / ratio)
	out := make([]float64, count)
	for i := range out {
		srcIdx := int(float64(i) * ratio)
		if srcIdx < len(samples) {
			out[i] = samples[srcIdx]
		}
	}
	return out
}
