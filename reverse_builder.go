// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"fmt"

	"github.com/galvanized-logic/motionspec/spring"
)

// ReverseBuilder is the mirror of Builder: it lays out breakpoints and
// mappings starting from the high end (MaxLimit) downward. Once
// CompleteWith finishes the spec, the breakpoint table is reordered
// ascending so it is identical in shape to one a forward Builder would
// have produced — MotionSpec requires both directional halves to share
// one ascending table regardless of which builder authored which half.
type ReverseBuilder struct {
	defaultSpring  spring.Parameters
	breakpoints    []Breakpoint // descending: [MaxLimit, ..., lowest named]
	mappings       []Mapping    // recorded high-segment-first
	pendingMapping Mapping
	jump           *jumpState
	awaitingTarget *targetJumpState
	err            error
	done           bool
}

// NewReverseBuilder starts a reverse builder positioned at MaxLimit.
// initialMapping governs the highest segment (the first one closed by
// ToBreakpoint, or the whole range if CompleteWith is called immediately).
func NewReverseBuilder(defaultSpring spring.Parameters, initialMapping Mapping) *ReverseBuilder {
	return &ReverseBuilder{
		defaultSpring:  defaultSpring,
		breakpoints:    []Breakpoint{maxLimit(defaultSpring)},
		pendingMapping: initialMapping,
	}
}

func (b *ReverseBuilder) currentBreakpoint() *Breakpoint { return &b.breakpoints[len(b.breakpoints)-1] }

func (b *ReverseBuilder) fail(err error) *ReverseBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *ReverseBuilder) lastMapping() Mapping {
	if len(b.mappings) > 0 {
		return b.mappings[len(b.mappings)-1]
	}
	return b.pendingMapping
}

// ContinueWith sets the mapping for the segment starting (descending) at
// the current breakpoint and optionally customizes its spring/guarantee.
func (b *ReverseBuilder) ContinueWith(mapping Mapping, opts ...BreakpointOption) *ReverseBuilder {
	if b.err != nil || b.done {
		return b
	}
	if b.jump != nil || b.awaitingTarget != nil {
		return b.fail(fmt.Errorf("motionspec: ContinueWith: a pending jump must be resolved first: %w", ErrProgrammer))
	}
	applyBreakpointOptions(b.currentBreakpoint(), opts)
	b.pendingMapping = mapping
	return b
}

// JumpTo starts a value discontinuity at the current breakpoint.
func (b *ReverseBuilder) JumpTo(value float64, opts ...BreakpointOption) *ReverseBuilder {
	if b.err != nil || b.done {
		return b
	}
	if b.jump != nil || b.awaitingTarget != nil {
		return b.fail(fmt.Errorf("motionspec: JumpTo: a pending jump must be resolved first: %w", ErrProgrammer))
	}
	applyBreakpointOptions(b.currentBreakpoint(), opts)
	b.jump = &jumpState{atPosition: b.currentBreakpoint().Position, value: value}
	b.pendingMapping = nil
	return b
}

// JumpBy is JumpTo(value-of-the-prior-segment's-mapping-at-this-breakpoint + delta).
func (b *ReverseBuilder) JumpBy(delta float64, opts ...BreakpointOption) *ReverseBuilder {
	if b.err != nil || b.done {
		return b
	}
	base := b.lastMapping().Map(b.currentBreakpoint().Position)
	return b.JumpTo(base+delta, opts...)
}

// ContinueWithConstantValue resolves a pending jump with Fixed(value).
func (b *ReverseBuilder) ContinueWithConstantValue() *ReverseBuilder {
	if b.err != nil || b.done {
		return b
	}
	if b.jump == nil {
		return b.fail(fmt.Errorf("motionspec: ContinueWithConstantValue: no pending jump: %w", ErrProgrammer))
	}
	b.pendingMapping = Fixed(b.jump.value)
	b.jump = nil
	return b
}

// ContinueWithFractionalInput resolves a pending jump with a continuity-
// preserving Linear mapping.
func (b *ReverseBuilder) ContinueWithFractionalInput(frac float64) *ReverseBuilder {
	if b.err != nil || b.done {
		return b
	}
	if b.jump == nil {
		return b.fail(fmt.Errorf("motionspec: ContinueWithFractionalInput: no pending jump: %w", ErrProgrammer))
	}
	offset := b.jump.value - frac*b.jump.atPosition
	b.pendingMapping = Linear(frac, offset)
	b.jump = nil
	return b
}

// ContinueWithTargetValue buffers a pending jump's value until the next
// ToBreakpoint call.
func (b *ReverseBuilder) ContinueWithTargetValue(target float64) *ReverseBuilder {
	if b.err != nil || b.done {
		return b
	}
	if b.jump == nil {
		return b.fail(fmt.Errorf("motionspec: ContinueWithTargetValue: no pending jump: %w", ErrProgrammer))
	}
	b.awaitingTarget = &targetJumpState{atPosition: b.jump.atPosition, valueAfterJump: b.jump.value, target: target}
	b.jump = nil
	return b
}

// ToBreakpoint records a new breakpoint strictly below the current one,
// closing the pending segment.
func (b *ReverseBuilder) ToBreakpoint(position float64, key ...Key) *ReverseBuilder {
	if b.err != nil || b.done {
		return b
	}
	if b.jump != nil {
		return b.fail(fmt.Errorf("motionspec: ToBreakpoint: a pending jump must be resolved first: %w", ErrProgrammer))
	}
	if position >= b.currentBreakpoint().Position {
		return b.fail(fmt.Errorf("motionspec: ToBreakpoint: positions must strictly decrease in a reverse builder: %w", ErrInvalidSpec))
	}
	k := autoKey(position)
	if len(key) > 0 {
		k = key[0]
	}

	var mapping Mapping
	switch {
	case b.awaitingTarget != nil:
		aj := b.awaitingTarget
		frac := (aj.target - aj.valueAfterJump) / (position - aj.atPosition)
		offset := aj.valueAfterJump - frac*aj.atPosition
		mapping = Linear(frac, offset)
		b.awaitingTarget = nil
	case b.pendingMapping != nil:
		mapping = b.pendingMapping
		b.pendingMapping = nil
	default:
		return b.fail(fmt.Errorf("motionspec: ToBreakpoint: no mapping pending for the segment ending here: %w", ErrProgrammer))
	}

	b.breakpoints = append(b.breakpoints, Breakpoint{Key: k, Position: position, Spring: b.defaultSpring, Guarantee: NoGuarantee()})
	b.mappings = append(b.mappings, mapping)
	return b
}

// CompleteWith closes the final (lowest) segment down to MinLimit,
// reorders the accumulated table ascending, and returns the finished,
// validated spec. The final segment uses the mapping already pending for
// it (the initial mapping, a ContinueWith, or a resolved jump) when there
// is one, and mapping otherwise.
func (b *ReverseBuilder) CompleteWith(mapping Mapping) (*DirectionalMotionSpec, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.done {
		return nil, fmt.Errorf("motionspec: CompleteWith: builder already completed: %w", ErrProgrammer)
	}
	if b.jump != nil || b.awaitingTarget != nil {
		return nil, fmt.Errorf("motionspec: CompleteWith: a pending jump must be resolved first: %w", ErrProgrammer)
	}
	b.done = true
	if b.pendingMapping != nil {
		mapping = b.pendingMapping
	}

	descendingBreakpoints := append(b.breakpoints, minLimit(b.defaultSpring))
	recordedMappings := append(b.mappings, mapping)

	ascBreakpoints := make([]Breakpoint, len(descendingBreakpoints))
	for i, bp := range descendingBreakpoints {
		ascBreakpoints[len(descendingBreakpoints)-1-i] = bp
	}
	ascMappings := make([]Mapping, len(recordedMappings))
	for i, m := range recordedMappings {
		ascMappings[len(recordedMappings)-1-i] = m
	}
	return NewDirectionalMotionSpec(ascBreakpoints, ascMappings)
}
