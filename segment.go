// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import "math"

// SegmentKey identifies a segment by the pair of breakpoints that bound it
// plus the direction it is travelled in. Two segments between the same
// breakpoints but travelled in opposite directions share (lowerKey,
// upperKey) but differ in Direction.
type SegmentKey struct {
	LowerKey  Key
	UpperKey  Key
	Direction InputDirection
}

// SegmentData is a materialized segment: the breakpoint entered and the
// breakpoint exited (labeled by direction of travel, not by position), the
// direction, the governing mapping, and the MotionSpec that produced it.
type SegmentData struct {
	Entry     Breakpoint
	Exit      Breakpoint
	Direction InputDirection
	Mapping   Mapping
	Owner     *MotionSpec
}

// Key returns the SegmentKey identifying this segment, independent of
// which of Entry/Exit is numerically lower.
func (s SegmentData) Key() SegmentKey {
	lo, hi := s.Entry, s.Exit
	if lo.Position > hi.Position {
		lo, hi = hi, lo
	}
	return SegmentKey{LowerKey: lo.Key, UpperKey: hi.Key, Direction: s.Direction}
}

// IsValidForInput reports whether x, travelled in dir, belongs to this
// segment: dir must match, and x must lie in [lower, upper) — the
// numerically lower bound is always inclusive and the upper bound
// exclusive, regardless of which bound is labeled Entry vs Exit for this
// direction.
func (s SegmentData) IsValidForInput(x float64, dir InputDirection) bool {
	if dir != s.Direction {
		return false
	}
	lo, hi := s.Entry.Position, s.Exit.Position
	if lo > hi {
		lo, hi = hi, lo
	}
	return x >= lo && x < hi
}

// findBreakpointIndexByPosition returns the highest index i such that
// table[i].Position <= x, via binary search. x must be finite. For a
// sentinel-only table (len==2) any finite x returns 0.
func findBreakpointIndexByPosition(table []Breakpoint, x float64) (int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrInvalidInput
	}
	lo, hi := 0, len(table)-1
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if table[mid].Position <= x {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best, nil
}

// findBreakpointIndexByKey returns the index of the breakpoint with the
// given key, or -1 when absent.
func findBreakpointIndexByKey(table []Breakpoint, key Key) int {
	for i, bp := range table {
		if bp.Key == key {
			return i
		}
	}
	return -1
}

// findSegmentIndex returns the index i such that table[i] and table[i+1]
// are the breakpoints named by key (in either order), ignoring direction,
// or -1 when the pair is not adjacent in table.
func findSegmentIndex(table []Breakpoint, key SegmentKey) int {
	for i := 0; i < len(table)-1; i++ {
		a, b := table[i].Key, table[i+1].Key
		if (a == key.LowerKey && b == key.UpperKey) || (a == key.UpperKey && b == key.LowerKey) {
			return i
		}
	}
	return -1
}
