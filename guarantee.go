// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import "github.com/galvanized-logic/motionspec/math/lin"

// GuaranteeState tracks progress past a breakpoint toward fully tightening
// its spring. The zero value is Inactive (no guarantee in effect).
type GuaranteeState struct {
	Active   bool
	Start    float64
	MaxDelta float64
}

// InactiveGuarantee is the canonical "no guarantee in effect" state.
var InactiveGuarantee = GuaranteeState{}

// resetGuaranteeOrigin starts a fresh GuaranteeState for kind, with its
// origin at atValue (a breakpoint position for InputDelta, the current or
// interpolated gesture distance for GestureDistance). GuaranteeNone yields
// InactiveGuarantee.
func resetGuaranteeOrigin(kind GuaranteeKind, atValue float64) GuaranteeState {
	if kind == GuaranteeNone {
		return InactiveGuarantee
	}
	return GuaranteeState{Active: true, Start: atValue}
}

// observeGuarantee folds one frame's (or sub-step's) progress into g.
// max_delta only ever grows, which is what makes tightening monotonic.
// For InputDelta, progress is input - Start, with direction's sign
// determining which way is "forward" past Start: input rises travelling Max
// and falls travelling Min, so the sign must flip to measure forward
// progress either way. For GestureDistance, distance is already a
// monotone-ish magnitude accumulator regardless of travel direction (see
// GestureContext.Distance), so no sign flip applies: progress is simply
// distance - Start.
func observeGuarantee(g GuaranteeState, kind GuaranteeKind, direction InputDirection, input, distance float64) GuaranteeState {
	if !g.Active || kind == GuaranteeNone {
		return g
	}
	var delta float64
	if kind == GuaranteeGestureDistance {
		delta = distance - g.Start
	} else {
		delta = (input - g.Start) * direction.Sign()
	}
	if delta < 0 {
		delta = 0
	}
	if delta > g.MaxDelta {
		g.MaxDelta = delta
	}
	return g
}

// tighteningFraction computes f = clamp(max_delta/denominator, 0, 1) for
// guarantee g measured against state. An inactive state or a non-positive
// denominator never tightens.
func tighteningFraction(state GuaranteeState, g Guarantee) float64 {
	if !state.Active || g.kind == GuaranteeNone {
		return 0
	}
	denom := g.Denominator()
	if denom <= 0 {
		return 0
	}
	return lin.Clamp(state.MaxDelta/denom, 0, 1)
}
