// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/galvanized-logic/motionspec/spring"
)

// CurrentInput is the host-supplied source of the live scalar input (e.g.
// a gesture position). It must be cheap and non-blocking; the engine
// calls it once per Tick.
type CurrentInput func() float64

// DiscontinuityAnimation is the engine's running account of an in-flight
// (or settled) output discontinuity: the output delta attributable to
// crossed breakpoints so far, and the spring currently carrying whatever
// of that delta hasn't settled yet.
type DiscontinuityAnimation struct {
	TargetValue   float64
	SpringStart   spring.State
	SpringParams  spring.Parameters
	SpringStartNs int64
}

// MotionValue is the per-frame engine: it maps a live scalar input through
// the currently installed MotionSpec, smoothing discontinuities with
// spring animations and honoring breakpoint guarantees. It holds two
// generations of state as described in spec.md §4.G: Tick computes the new
// generation from the previous one plus fresh inputs and commits it in one
// step, so last_*/current_* never partially overlap.
type MotionValue struct {
	currentInput CurrentInput
	gestureCtx   GestureContext
	spec         atomic.Pointer[MotionSpec]
	threshold    float64

	running atomic.Bool

	lastFrameTimeNs     int64
	lastInput           float64
	lastGestureDistance float64
	lastSegment         SegmentData
	lastGuarantee       GuaranteeState
	lastAnimation       DiscontinuityAnimation
	lastSpring          spring.State

	lastOutput       float64
	lastOutputTarget float64

	inspector *Inspector
}

// NewMotionValue constructs a MotionValue reading input from currentInput
// and direction/distance from gestureCtx, initialized against spec at
// whatever currentInput()/gestureCtx.Direction() report right now.
func NewMotionValue(currentInput CurrentInput, gestureCtx GestureContext, spec *MotionSpec, opts ...Option) (*MotionValue, error) {
	if currentInput == nil || gestureCtx == nil || spec == nil {
		return nil, fmt.Errorf("motionspec: NewMotionValue: %w", ErrProgrammer)
	}
	cfg := defaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	input := currentInput()
	direction := gestureCtx.Direction()
	seg, err := spec.segmentAtInput(input, direction)
	if err != nil {
		return nil, fmt.Errorf("motionspec: NewMotionValue: %w", err)
	}

	mv := &MotionValue{
		currentInput:        currentInput,
		gestureCtx:           gestureCtx,
		threshold:            cfg.stableThreshold,
		lastInput:            input,
		lastGestureDistance:  gestureCtx.Distance(),
		lastSegment:          seg,
		lastGuarantee:        resetGuaranteeOrigin(seg.Entry.Guarantee.Kind(), originFor(seg.Entry.Guarantee.Kind(), seg.Entry.Position, gestureCtx.Distance())),
		lastSpring:           spring.AtRest,
	}
	mv.spec.Store(spec)
	mv.lastOutput = seg.Mapping.Map(input)
	mv.lastOutputTarget = mv.lastOutput
	return mv, nil
}

// SetSpec replaces the installed spec with a pointer-swap; no other state
// changes. The next Tick classifies the transition as a Spec change if the
// new spec resolves the current input differently than the old one would.
func (mv *MotionValue) SetSpec(spec *MotionSpec) { mv.spec.Store(spec) }

// Output returns the animated value committed by the most recent Tick (or
// the construction-time direct mapping if Tick has never been called).
func (mv *MotionValue) Output() float64 { return mv.lastOutput }

// OutputTarget returns the value Output is converging toward, ignoring
// any in-flight spring displacement.
func (mv *MotionValue) OutputTarget() float64 { return mv.lastOutputTarget }

// IsStable reports whether the spring carrying the current discontinuity
// has settled to AtRest.
func (mv *MotionValue) IsStable() bool { return mv.lastSpring.IsAtRest() }

// Tick advances the engine by one frame: it reads fresh input/direction/
// distance, resolves the new segment, classifies the transition, applies
// guarantee tightening (crossing any intervening breakpoints one at a
// time), advances the spring, composes the output, and commits the new
// generation. It returns the composed output for this frame.
func (mv *MotionValue) Tick(frameTimeNs int64) (float64, error) {
	spec := mv.spec.Load()
	input := mv.currentInput()
	if math.IsNaN(input) || math.IsInf(input, 0) {
		return 0, fmt.Errorf("motionspec: Tick: current_input: %w", ErrInvalidInput)
	}
	direction := mv.gestureCtx.Direction()
	distance := mv.gestureCtx.Distance()

	newSegment, err := spec.onChangeSegment(mv.lastSegment, input, direction)
	if err != nil {
		return 0, fmt.Errorf("motionspec: Tick: %w", err)
	}

	change := classifySegmentChange(mv.lastSegment, newSegment, input)

	guarantee := mv.lastGuarantee
	targetValue := mv.lastAnimation.TargetValue
	springState := mv.lastSpring
	springSource := newSegment.Entry.Spring
	stepTimeNs := mv.lastFrameTimeNs

	switch change {
	case ChangeSame:
		guarantee = observeGuarantee(guarantee, newSegment.Entry.Guarantee.Kind(), direction, input, distance)

	case ChangeSameOppositeDirection, ChangeSpec:
		delta := newSegment.Mapping.Map(input) - mv.lastSegment.Mapping.Map(input)
		targetValue += delta
		springState.Displacement -= delta
		guarantee = InactiveGuarantee
		springSource = spec.resetSpring

	case ChangeDirection:
		delta := newSegment.Mapping.Map(input) - mv.lastSegment.Mapping.Map(input)
		targetValue += delta
		springState.Displacement -= delta
		kind := newSegment.Entry.Guarantee.Kind()
		guarantee = resetGuaranteeOrigin(kind, originFor(kind, input, distance))

	case ChangeTraverse:
		dirSpec := spec.directionalFor(direction)
		outcome, terr := runTraverse(
			dirSpec, direction,
			mv.lastInput, input,
			mv.lastFrameTimeNs, frameTimeNs,
			mv.lastGestureDistance, distance,
			guarantee,
			mv.lastSegment.Entry.Spring, mv.lastSegment.Entry.Guarantee,
			targetValue, springState, mv.threshold,
		)
		if terr != nil {
			return 0, terr
		}
		guarantee = outcome.guarantee
		targetValue = outcome.targetValue
		springState = outcome.spring
		stepTimeNs = outcome.stepTimeNs
	}

	// Final tightening step: bring the spring from stepTimeNs to
	// frameTimeNs using the (possibly just-reset) guarantee and the
	// current segment's entry breakpoint, per spec.md §4.G.
	if change == ChangeTraverse {
		guarantee = observeGuarantee(guarantee, newSegment.Entry.Guarantee.Kind(), direction, input, distance)
	}
	f := tighteningFraction(guarantee, newSegment.Entry.Guarantee)
	params := spring.Tighten(springSource, f)
	springState = spring.Advance(springState, frameTimeNs-stepTimeNs, params)
	if spring.IsStable(springState, params, mv.threshold) {
		springState = spring.AtRest
	}

	output := newSegment.Mapping.Map(input) + springState.Displacement
	outputTarget := newSegment.Mapping.Map(input)

	mv.lastFrameTimeNs = frameTimeNs
	mv.lastInput = input
	mv.lastGestureDistance = distance
	mv.lastSegment = newSegment
	mv.lastGuarantee = guarantee
	mv.lastAnimation = DiscontinuityAnimation{
		TargetValue:   targetValue,
		SpringStart:   springState,
		SpringParams:  params,
		SpringStartNs: frameTimeNs,
	}
	mv.lastSpring = springState
	mv.lastOutput = output
	mv.lastOutputTarget = outputTarget

	if mv.inspector != nil {
		mv.inspector.refresh(mv.snapshotNow())
	}

	return output, nil
}
