// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

// config.go reduces the NewMotionValue API footprint using functional
// options, the same pattern the teacher uses for NewEngine.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

// Config holds the tunables a host can override when constructing a
// MotionValue.
type Config struct {
	stableThreshold float64
}

// defaultConfig matches spec.md's documented default stable_threshold.
var defaultConfig = Config{
	stableThreshold: 0.01,
}

// Option configures a MotionValue at construction time.
//
//	mv, err := motionspec.NewMotionValue(input, gesture, spec,
//	    motionspec.WithStableThreshold(0.001),
//	)
type Option func(*Config)

// WithStableThreshold overrides the displacement/velocity envelope below
// which a spring is considered settled and collapsed to AtRest.
func WithStableThreshold(t float64) Option {
	return func(c *Config) { c.stableThreshold = t }
}
