package core

import "testing"

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-40); got != 0 {
		t.Fatalf("FlushDenormals(1e-40) = %v, want 0", got)
	}
	if got := FlushDenormals(-1e-40); got != 0 {
		t.Fatalf("FlushDenormals(-1e-40) = %v, want 0", got)
	}
	if got := FlushDenormals(0.5); got != 0.5 {
		t.Fatalf("FlushDenormals(0.5) = %v, want 0.5", got)
	}
}
