// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import "fmt"

// DirectionalMotionSpec is a one-direction piecewise mapping: an ordered,
// sentinel-bounded breakpoint table paired with one mapping per segment.
// It is immutable once constructed.
type DirectionalMotionSpec struct {
	breakpoints []Breakpoint
	mappings    []Mapping
}

// NewDirectionalMotionSpec validates and constructs a DirectionalMotionSpec.
// breakpoints must start with MinLimit and end with MaxLimit (as produced
// by minLimit/maxLimit), have strictly increasing positions, and carry
// exactly one fewer mapping than breakpoints. Any violation fails with
// ErrInvalidSpec.
func NewDirectionalMotionSpec(breakpoints []Breakpoint, mappings []Mapping) (*DirectionalMotionSpec, error) {
	if len(breakpoints) < 2 {
		return nil, fmt.Errorf("motionspec: directional spec needs at least two breakpoints: %w", ErrInvalidSpec)
	}
	if !isMinSentinel(breakpoints[0]) {
		return nil, fmt.Errorf("motionspec: first breakpoint must be MinLimit: %w", ErrInvalidSpec)
	}
	last := len(breakpoints) - 1
	if !isMaxSentinel(breakpoints[last]) {
		return nil, fmt.Errorf("motionspec: last breakpoint must be MaxLimit: %w", ErrInvalidSpec)
	}
	for i := 1; i < last; i++ {
		if breakpoints[i].Key == MinKey || breakpoints[i].Key == MaxKey {
			return nil, fmt.Errorf("motionspec: only the first/last breakpoint may be a sentinel: %w", ErrInvalidSpec)
		}
	}
	for i := 1; i < len(breakpoints); i++ {
		if breakpoints[i].Position <= breakpoints[i-1].Position {
			return nil, fmt.Errorf("motionspec: breakpoint positions must be strictly increasing: %w", ErrInvalidSpec)
		}
	}
	if len(mappings) != len(breakpoints)-1 {
		return nil, fmt.Errorf("motionspec: expected %d mappings, got %d: %w", len(breakpoints)-1, len(mappings), ErrInvalidSpec)
	}
	return &DirectionalMotionSpec{breakpoints: breakpoints, mappings: mappings}, nil
}

// Breakpoints returns the spec's breakpoint table. Callers must not mutate
// the returned slice.
func (d *DirectionalMotionSpec) Breakpoints() []Breakpoint { return d.breakpoints }

// sameTableAs reports whether d and other share an identical breakpoint
// table (by key and position), which MotionSpec requires of its two
// directional halves.
func (d *DirectionalMotionSpec) sameTableAs(other *DirectionalMotionSpec) bool {
	if d == other {
		return true
	}
	if len(d.breakpoints) != len(other.breakpoints) {
		return false
	}
	for i, bp := range d.breakpoints {
		o := other.breakpoints[i]
		if bp.Key != o.Key || bp.Position != o.Position {
			return false
		}
	}
	return true
}

// mappingsAcrossBreakpoint returns the mapping of the segment being left
// and the mapping of the segment being entered when key is crossed while
// travelling in direction. key must name an interior breakpoint (not a
// sentinel).
func (d *DirectionalMotionSpec) mappingsAcrossBreakpoint(key Key, direction InputDirection) (leaving, entering Mapping, err error) {
	idx := findBreakpointIndexByKey(d.breakpoints, key)
	if idx <= 0 || idx >= len(d.breakpoints)-1 {
		return nil, nil, fmt.Errorf("motionspec: %q is not a crossable interior breakpoint: %w", key, ErrProgrammer)
	}
	if direction == DirMax {
		return d.mappings[idx-1], d.mappings[idx], nil
	}
	return d.mappings[idx], d.mappings[idx-1], nil
}

// segmentAtInput finds the segment containing x and labels its entry/exit
// breakpoints according to dir. x must be finite.
func (d *DirectionalMotionSpec) segmentAtInput(x float64, dir InputDirection, owner *MotionSpec) (SegmentData, error) {
	idx, err := findBreakpointIndexByPosition(d.breakpoints, x)
	if err != nil {
		return SegmentData{}, fmt.Errorf("motionspec: segment_at_input: %w", err)
	}
	if idx >= len(d.breakpoints)-1 {
		idx = len(d.breakpoints) - 2
	}
	lower, upper := d.breakpoints[idx], d.breakpoints[idx+1]
	seg := SegmentData{Direction: dir, Mapping: d.mappings[idx], Owner: owner}
	if dir == DirMax {
		seg.Entry, seg.Exit = lower, upper
	} else {
		seg.Entry, seg.Exit = upper, lower
	}
	return seg, nil
}
