// Package signal samples scalar functions on a uniform grid and supplies
// seeded noise for emulating a noisy sensor.
//
// [Sample] evaluates a [Func] at evenly spaced positions of a half-open
// [core.Domain]. A [Generator] owns the random source, so a run is
// reproducible under a fixed seed:
//
//	g := signal.NewGenerator(signal.WithSeed(7), signal.WithAmplitude(0.25))
//	clean, _ := signal.Lookup("sin+0.5")
//	values, points, err := signal.Sample(g.Noisy(clean), core.Domain{End: math.Pi}, 100)
package signal
