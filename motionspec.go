// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"fmt"
	"log/slog"

	"github.com/galvanized-logic/motionspec/spring"
)

// SegmentChangeHook lets a host override which segment a spec resolves to
// after a direction or input change. The returned segment must satisfy
// IsValidForInput(input, newDirection); an invalid return is logged and
// the default resolution is used instead.
type SegmentChangeHook func(last SegmentData, input float64, newDirection InputDirection) (SegmentData, error)

// MotionSpec is the bidirectional spec: a pair of directional specs (which
// may be the same instance, making the spec unidirectional), a spring used
// to animate mapping-swap discontinuities that aren't associated with
// crossing a breakpoint, and an optional hook overriding segment
// resolution.
type MotionSpec struct {
	maxDirection *DirectionalMotionSpec
	minDirection *DirectionalMotionSpec
	resetSpring  spring.Parameters
	hook         SegmentChangeHook
}

// NewMotionSpec constructs a bidirectional MotionSpec. maxDir and minDir
// must share an identical breakpoint table (same keys and positions in the
// same order); pass the same pointer for both to build a unidirectional
// spec.
func NewMotionSpec(maxDir, minDir *DirectionalMotionSpec, resetSpring spring.Parameters, hook SegmentChangeHook) (*MotionSpec, error) {
	if maxDir == nil || minDir == nil {
		return nil, fmt.Errorf("motionspec: NewMotionSpec: %w", ErrProgrammer)
	}
	if !maxDir.sameTableAs(minDir) {
		return nil, fmt.Errorf("motionspec: max/min directional specs must share one breakpoint table: %w", ErrInvalidSpec)
	}
	return &MotionSpec{maxDirection: maxDir, minDirection: minDir, resetSpring: resetSpring, hook: hook}, nil
}

// IsUnidirectional reports whether both directions share the same
// DirectionalMotionSpec instance.
func (m *MotionSpec) IsUnidirectional() bool { return m.maxDirection == m.minDirection }

// Validate re-checks the invariants a MotionSpec assembled without the
// fluent builder (e.g. programmatically) must satisfy, so a host can
// validate before installing it with MotionValue.SetSpec.
func (m *MotionSpec) Validate() error {
	if !m.maxDirection.sameTableAs(m.minDirection) {
		return fmt.Errorf("motionspec: max/min directional specs must share one breakpoint table: %w", ErrInvalidSpec)
	}
	return nil
}

func (m *MotionSpec) directionalFor(dir InputDirection) *DirectionalMotionSpec {
	if dir == DirMax {
		return m.maxDirection
	}
	return m.minDirection
}

// segmentAtInput is the default segment resolution: look up x in the
// directional spec matching dir.
func (m *MotionSpec) segmentAtInput(input float64, dir InputDirection) (SegmentData, error) {
	return m.directionalFor(dir).segmentAtInput(input, dir, m)
}

// onChangeSegment resolves the segment for (input, newDirection), applying
// the host hook if one was supplied and its result is valid.
func (m *MotionSpec) onChangeSegment(last SegmentData, input float64, newDirection InputDirection) (SegmentData, error) {
	if m.hook == nil {
		return m.segmentAtInput(input, newDirection)
	}
	seg, err := m.hook(last, input, newDirection)
	if err != nil {
		return SegmentData{}, fmt.Errorf("motionspec: segment_change_hook: %w", err)
	}
	if !seg.IsValidForInput(input, newDirection) {
		slog.Warn("motionspec: segment_change_hook returned a segment invalid for input; falling back to default resolution",
			"input", input, "direction", newDirection)
		return m.segmentAtInput(input, newDirection)
	}
	return seg, nil
}
