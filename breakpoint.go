// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"math"

	"github.com/galvanized-logic/motionspec/spring"
)

// GuaranteeKind selects what a Guarantee measures progress against.
type GuaranteeKind int

const (
	// GuaranteeNone means the breakpoint's spring never tightens.
	GuaranteeNone GuaranteeKind = iota
	// GuaranteeInputDelta tightens as input progresses a fixed delta past
	// the breakpoint's position.
	GuaranteeInputDelta
	// GuaranteeGestureDistance tightens as the GestureContext's distance
	// accumulator progresses past its value at the breakpoint crossing.
	GuaranteeGestureDistance
)

// Guarantee is the declarative policy that tightens a breakpoint's spring
// as progress past the breakpoint grows. Construct with NoGuarantee,
// InputDelta or GestureDistance.
type Guarantee struct {
	kind  GuaranteeKind
	value float64
}

// NoGuarantee returns a Guarantee whose spring never tightens.
func NoGuarantee() Guarantee { return Guarantee{kind: GuaranteeNone} }

// InputDelta returns a Guarantee that fully tightens (reaches Snap) once
// current input has progressed delta past the breakpoint, in the
// direction of travel. delta must be strictly positive.
func InputDelta(delta float64) (Guarantee, error) {
	if delta <= 0 {
		return Guarantee{}, ErrProgrammer
	}
	return Guarantee{kind: GuaranteeInputDelta, value: delta}, nil
}

// GestureDistance returns a Guarantee that fully tightens once the
// GestureContext's distance accumulator has progressed distance past its
// value at the breakpoint crossing. distance must be strictly positive.
func GestureDistance(distance float64) (Guarantee, error) {
	if distance <= 0 {
		return Guarantee{}, ErrProgrammer
	}
	return Guarantee{kind: GuaranteeGestureDistance, value: distance}, nil
}

// Kind reports which progress measure this guarantee uses.
func (g Guarantee) Kind() GuaranteeKind { return g.kind }

// Denominator returns the delta/distance that fully tightens the spring,
// meaningless when Kind() == GuaranteeNone.
func (g Guarantee) Denominator() float64 { return g.value }

// Breakpoint is a boundary in input space: the stiffness/damping used to
// animate the discontinuity entered there, and the guarantee that
// tightens that spring as travel past it accumulates.
type Breakpoint struct {
	Key       Key
	Position  float64
	Spring    spring.Parameters
	Guarantee Guarantee
}

// NewBreakpoint returns a Breakpoint with an auto-derived key. Use
// NewNamedBreakpoint to supply an explicit, host-meaningful key.
func NewBreakpoint(position float64, sp spring.Parameters, g Guarantee) Breakpoint {
	return NewNamedBreakpoint(autoKey(position), position, sp, g)
}

// NewNamedBreakpoint returns a Breakpoint identified by an explicit key.
// key must not be MinKey or MaxKey; that invariant is enforced at
// DirectionalMotionSpec construction, not here, since a Breakpoint value
// alone cannot know its position in a table.
func NewNamedBreakpoint(key Key, position float64, sp spring.Parameters, g Guarantee) Breakpoint {
	return Breakpoint{Key: key, Position: position, Spring: sp, Guarantee: g}
}

// minLimit returns the MinLimit sentinel with the given spring, used by a
// directional spec's first slot.
func minLimit(sp spring.Parameters) Breakpoint {
	return Breakpoint{Key: MinKey, Position: math.Inf(-1), Spring: sp, Guarantee: NoGuarantee()}
}

// maxLimit returns the MaxLimit sentinel with the given spring, used by a
// directional spec's last slot.
func maxLimit(sp spring.Parameters) Breakpoint {
	return Breakpoint{Key: MaxKey, Position: math.Inf(1), Spring: sp, Guarantee: NoGuarantee()}
}

// isMinSentinel reports whether b is positioned and keyed as MinLimit.
func isMinSentinel(b Breakpoint) bool {
	return b.Key == MinKey && math.IsInf(b.Position, -1)
}

// isMaxSentinel reports whether b is positioned and keyed as MaxLimit.
func isMaxSentinel(b Breakpoint) bool {
	return b.Key == MaxKey && math.IsInf(b.Position, 1)
}
