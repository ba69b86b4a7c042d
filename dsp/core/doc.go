// Package core holds the types and sentinel errors shared by the sampler,
// the stochastic filter and the bounds estimator: [Point], [Domain] and the
// Err* values matched with errors.Is.
package core
