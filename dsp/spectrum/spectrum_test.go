package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{3, -1, 0}
	im := []float64{4, -1, 0}
	dst := make([]float64, 3)
	MagnitudeFromParts(dst, re, im)

	if math.Abs(dst[0]-5) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[0]=%f want=5", dst[0])
	}

	if math.Abs(dst[1]-math.Sqrt(2)) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[1]=%f want=%f", dst[1], math.Sqrt(2))
	}

	if math.Abs(dst[2]-0) > 1e-12 {
		t.Fatalf("MagnitudeFromParts[2]=%f want=0", dst[2])
	}
}
