// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"fmt"

	"github.com/galvanized-logic/motionspec/math/lin"
	"github.com/galvanized-logic/motionspec/spring"
)

// crossedBreakpoints returns every breakpoint between lastInput and
// currentInput that travel just entered or passed through, ordered by the
// order they were crossed while travelling in direction (ascending for
// DirMax, descending for DirMin). Per the §4.C tie-break, x == p belongs to
// the segment starting at p. Travelling DirMax, landing exactly on p
// therefore counts as crossing it (currentInput inclusive, lastInput
// exclusive); travelling DirMin, p is crossed only once input drops
// strictly below it, so starting exactly on p counts and landing on it does
// not (lastInput inclusive, currentInput exclusive).
func crossedBreakpoints(table []Breakpoint, lastInput, currentInput float64, direction InputDirection) []Breakpoint {
	var crossed []Breakpoint
	if direction == DirMax {
		for _, bp := range table {
			if bp.Position > lastInput && bp.Position <= currentInput {
				crossed = append(crossed, bp)
			}
		}
		return crossed
	}
	for i := len(table) - 1; i >= 0; i-- {
		bp := table[i]
		if bp.Position <= lastInput && bp.Position > currentInput {
			crossed = append(crossed, bp)
		}
	}
	return crossed
}

// originFor picks the progress-measure value a guarantee resets its origin
// to: a breakpoint position for InputDelta, the (possibly interpolated)
// gesture distance for GestureDistance.
func originFor(kind GuaranteeKind, atPosition, atDistance float64) float64 {
	if kind == GuaranteeGestureDistance {
		return atDistance
	}
	return atPosition
}

// traverseOutcome carries the state runTraverse threads through one or
// more crossed breakpoints, ready for the engine's final tightening step.
type traverseOutcome struct {
	guarantee       GuaranteeState
	targetValue     float64
	spring          spring.State
	stepTimeNs      int64
	stepDistance    float64
	outgoingSpring  spring.Parameters
	outgoingGuaran  Guarantee
}

// runTraverse implements spec.md §4.G's Traverse sub-stepping: for each
// breakpoint crossed within one frame, it estimates the sub-frame crossing
// time, tightens and advances the spring up to that instant using the
// segment being left, folds the mapping discontinuity at the breakpoint
// into target_value/spring displacement so output stays continuous, and
// resets the guarantee origin to the newly entered segment's entry
// breakpoint. The caller is responsible for the final tightening step
// covering the remainder of the frame (see engine.go).
func runTraverse(
	dirSpec *DirectionalMotionSpec,
	direction InputDirection,
	lastInput, currentInput float64,
	lastFrameTimeNs, frameTimeNs int64,
	lastDistance, currentDistance float64,
	guarantee GuaranteeState,
	outgoingSpring spring.Parameters,
	outgoingGuarantee Guarantee,
	targetValue float64,
	springState spring.State,
	threshold float64,
) (traverseOutcome, error) {
	crossed := crossedBreakpoints(dirSpec.breakpoints, lastInput, currentInput, direction)
	elapsedTotal := frameTimeNs - lastFrameTimeNs

	stepTimeNs := lastFrameTimeNs
	stepDistance := lastDistance

	for _, b := range crossed {
		alpha := lin.Clamp((b.Position-lastInput)/(currentInput-lastInput), 0, 1)
		virtualTimeNs := lastFrameTimeNs + int64(alpha*float64(elapsedTotal))
		virtualDistance := lastDistance + alpha*(currentDistance-lastDistance)

		// c. outgoing guarantee observed up to the virtual crossing, then tightened.
		guarantee = observeGuarantee(guarantee, outgoingGuarantee.kind, direction, b.Position, virtualDistance)
		f := tighteningFraction(guarantee, outgoingGuarantee)
		params := spring.Tighten(outgoingSpring, f)

		// d. advance from the last sub-step to the virtual crossing time.
		springState = spring.Advance(springState, virtualTimeNs-stepTimeNs, params)
		if spring.IsStable(springState, params, threshold) {
			springState = spring.AtRest
		}

		// e. fold the discontinuity at b into target_value / spring displacement.
		oldMapping, newMapping, err := dirSpec.mappingsAcrossBreakpoint(b.Key, direction)
		if err != nil {
			return traverseOutcome{}, fmt.Errorf("motionspec: traverse: %w", err)
		}
		delta := newMapping.Map(b.Position) - oldMapping.Map(b.Position)
		targetValue += delta
		springState.Displacement -= delta

		// f. reset guarantee origin to b's own semantics; b is now the
		// entry breakpoint of the segment being left at the next crossing.
		guarantee = resetGuaranteeOrigin(b.Guarantee.kind, originFor(b.Guarantee.kind, b.Position, virtualDistance))
		outgoingGuarantee = b.Guarantee
		outgoingSpring = b.Spring
		stepTimeNs = virtualTimeNs
		stepDistance = virtualDistance
	}

	return traverseOutcome{
		guarantee:      guarantee,
		targetValue:    targetValue,
		spring:         springState,
		stepTimeNs:     stepTimeNs,
		stepDistance:   stepDistance,
		outgoingSpring: outgoingSpring,
		outgoingGuaran: outgoingGuarantee,
	}, nil
}
