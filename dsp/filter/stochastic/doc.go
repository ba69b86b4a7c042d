// Package stochastic recovers a smoothed estimate of a signal from one batch
// of noisy samples on a uniform grid.
//
// Two estimators are available:
//
//   - [MethodLeastSquares] (default) fits order basis functions, a
//     half-range cosine series or Legendre polynomials, by QR least squares
//     and evaluates the fit at every sample position. Diagnostics are the
//     fitted coefficients against the basis frequency (cosine) or degree
//     (Legendre).
//   - [MethodWindowSearch] is a symmetric weighted moving average whose
//     window has order taps. Weights are found by seeded random search that
//     trades noisiness ω against deviation δ over a λ grid. Diagnostics are
//     the (ω, δ) pairs of the best weights at each λ.
//
// Both are deterministic: the same samples, order, domain and options
// always give bit-identical results. The denoised sequence has the length of
// the input.
package stochastic
