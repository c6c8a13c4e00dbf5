// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

// Mapping is a pure, deterministic, continuous function mapping one scalar
// input to one scalar output. Implementations must be O(1) and
// allocation-free: engine.go evaluates a segment's mapping once per frame
// on the hot path.
//
// Mapping is modeled as a closed variant set (Identity, Fixed, Linear) plus
// an escape hatch (Func) for host-supplied pure mappings, the way the
// teacher keeps a small fixed set of concrete types behind one interface
// rather than an open class hierarchy.
type Mapping interface {
	// Map evaluates the mapping at x.
	Map(x float64) float64
}

type identityMapping struct{}

func (identityMapping) Map(x float64) float64 { return x }

// Identity is the mapping y = x.
var Identity Mapping = identityMapping{}

type fixedMapping struct{ value float64 }

func (m fixedMapping) Map(float64) float64 { return m.value }

// Fixed returns a mapping that is constant at value regardless of input.
func Fixed(value float64) Mapping { return fixedMapping{value: value} }

type linearMapping struct{ factor, offset float64 }

func (m linearMapping) Map(x float64) float64 { return m.factor*x + m.offset }

// Linear returns the mapping y = factor*x + offset.
func Linear(factor, offset float64) Mapping { return linearMapping{factor: factor, offset: offset} }

type funcMapping func(float64) float64

func (f funcMapping) Map(x float64) float64 { return f(x) }

// Func wraps a host-supplied pure function as a Mapping. The caller is
// responsible for keeping f pure, continuous and allocation-free; the
// engine treats it exactly like any built-in variant.
func Func(f func(float64) float64) Mapping { return funcMapping(f) }
