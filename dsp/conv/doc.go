// Package conv provides the direct linear convolution used by the
// window-search smoother.
//
// Kernels in this module are short symmetric weight windows, so only the
// O(N*M) time-domain algorithm is offered. Kernels of 4 taps or more run
// through the algo-vecmath block kernels.
//
// # Usage
//
//	full, err := conv.Direct(signal, kernel)                  // len(signal)+len(kernel)-1
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame) // centred, len(signal)
package conv
