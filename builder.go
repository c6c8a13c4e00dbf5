// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"fmt"

	"github.com/galvanized-logic/motionspec/spring"
)

// BreakpointOption customizes the breakpoint a ContinueWith/JumpTo/JumpBy
// call is currently sitting at.
type BreakpointOption func(*Breakpoint)

// WithGuarantee overrides the current breakpoint's guarantee (default
// NoGuarantee).
func WithGuarantee(g Guarantee) BreakpointOption {
	return func(bp *Breakpoint) { bp.Guarantee = g }
}

// WithSpring overrides the current breakpoint's spring (default the
// builder's default spring).
func WithSpring(sp spring.Parameters) BreakpointOption {
	return func(bp *Breakpoint) { bp.Spring = sp }
}

func applyBreakpointOptions(bp *Breakpoint, opts []BreakpointOption) {
	for _, opt := range opts {
		opt(bp)
	}
}

type jumpState struct {
	atPosition float64
	value      float64
}

type targetJumpState struct {
	atPosition     float64
	valueAfterJump float64
	target         float64
}

// Builder is the forward fluent state machine that constructs a
// DirectionalMotionSpec low-to-high. It starts positioned at the MinLimit
// sentinel with initialMapping pending for whichever segment is closed
// first (by ToBreakpoint or, for a trivial spec with no interior
// breakpoints, directly by CompleteWith). See reverse_builder.go for the
// high-to-low mirror.
//
// Builder is not safe for concurrent use; it is a short-lived, single-use
// value discarded after CompleteWith.
type Builder struct {
	defaultSpring  spring.Parameters
	breakpoints    []Breakpoint
	mappings       []Mapping
	pendingMapping Mapping
	jump           *jumpState
	awaitingTarget *targetJumpState
	err            error
	done           bool
}

// NewBuilder starts a forward builder. defaultSpring is used for every
// breakpoint unless WithSpring overrides it; initialMapping governs the
// first segment (MinLimit up to the first breakpoint, or the whole range
// if CompleteWith is called with no interior breakpoints).
func NewBuilder(defaultSpring spring.Parameters, initialMapping Mapping) *Builder {
	return &Builder{
		defaultSpring:  defaultSpring,
		breakpoints:    []Breakpoint{minLimit(defaultSpring)},
		pendingMapping: initialMapping,
	}
}

func (b *Builder) currentBreakpoint() *Breakpoint { return &b.breakpoints[len(b.breakpoints)-1] }

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// lastMapping returns the mapping governing the segment ending at the
// current breakpoint, used by JumpBy to compute a continuity-relative
// target. Before any segment has closed this is the builder's
// initialMapping (evaluated at MinLimit is degenerate and not meaningful;
// JumpBy at the very start is an unusual call).
func (b *Builder) lastMapping() Mapping {
	if len(b.mappings) > 0 {
		return b.mappings[len(b.mappings)-1]
	}
	return b.pendingMapping
}

// ContinueWith sets the mapping for the segment starting at the current
// breakpoint and optionally customizes that breakpoint's spring/guarantee.
func (b *Builder) ContinueWith(mapping Mapping, opts ...BreakpointOption) *Builder {
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

// JumpTo starts a value discontinuity at the current breakpoint: the
// segment will continue at value rather than whatever the prior mapping
// produced there. Resolve with one of the ContinueWithX operators.
func (b *Builder) JumpTo(value float64, opts ...BreakpointOption) *Builder {
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
func (b *Builder) JumpBy(delta float64, opts ...BreakpointOption) *Builder {
	if b.err != nil || b.done {
		return b
	}
	base := b.lastMapping().Map(b.currentBreakpoint().Position)
	return b.JumpTo(base+delta, opts...)
}

// ContinueWithConstantValue resolves a pending jump with Fixed(value),
// holding the jumped-to value constant for the new segment.
func (b *Builder) ContinueWithConstantValue() *Builder {
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

// ContinueWithFractionalInput resolves a pending jump with a Linear
// mapping of the given slope, offset so the mapping is continuous with the
// jumped-to value at the current breakpoint.
func (b *Builder) ContinueWithFractionalInput(frac float64) *Builder {
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

// ContinueWithTargetValue resolves a pending jump by buffering its value
// until the next ToBreakpoint call, at which point a Linear mapping is
// emitted interpolating between (this breakpoint, jumped-to value) and
// (the next breakpoint, target).
func (b *Builder) ContinueWithTargetValue(target float64) *Builder {
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

// ToBreakpoint records a new breakpoint at position, closing the segment
// that was pending (from ContinueWith, a resolved jump, or a buffered
// ContinueWithTargetValue). key defaults to an auto-derived key from
// position.
func (b *Builder) ToBreakpoint(position float64, key ...Key) *Builder {
	if b.err != nil || b.done {
		return b
	}
	if b.jump != nil {
		return b.fail(fmt.Errorf("motionspec: ToBreakpoint: a pending jump must be resolved first: %w", ErrProgrammer))
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

// CompleteWith closes the final segment (from the current breakpoint up
// to MaxLimit) and returns the finished, validated spec. The final segment
// uses the mapping already pending for it (the initial mapping, a
// ContinueWith, or a resolved jump) when there is one, and mapping
// otherwise.
func (b *Builder) CompleteWith(mapping Mapping) (*DirectionalMotionSpec, error) {
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
	breakpoints := append(b.breakpoints, maxLimit(b.defaultSpring))
	mappings := append(b.mappings, mapping)
	return NewDirectionalMotionSpec(breakpoints, mappings)
}
