// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package intentionally does not implement FFT itself. It operates on
// real/imaginary bin arrays produced by an external FFT backend.
package spectrum
