// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

// SegmentChangeType classifies how current_segment relates to
// last_segment on a given tick, per the precedence order below (each case
// is tried in turn; the first match wins).
type SegmentChangeType int

const (
	// ChangeSame: current and last are the identical segment.
	ChangeSame SegmentChangeType = iota
	// ChangeSameOppositeDirection: same (lower,upper) breakpoints, travel
	// reversed.
	ChangeSameOppositeDirection
	// ChangeSpec: the installed spec changed and would have resolved this
	// input differently under the previous spec instance. Best-effort and
	// descriptive only — see spec design notes.
	ChangeSpec
	// ChangeDirection: direction reversed into a different segment.
	ChangeDirection
	// ChangeTraverse: one or more breakpoints were crossed without a
	// direction reversal.
	ChangeTraverse
)

// classifySegmentChange compares last against current (current having
// just been resolved for the real current input) and returns the case
// that applies, trying Same, SameOppositeDirection, Spec, Direction,
// Traverse in that order. The Spec case re-probes the prior spec instance
// with the same real input to see whether it would have resolved
// differently; per spec design notes this is a best-effort, descriptive
// classification and correctness never depends on it being exact.
func classifySegmentChange(last, current SegmentData, input float64) SegmentChangeType {
	lastKey, curKey := last.Key(), current.Key()

	if curKey == lastKey {
		return ChangeSame
	}
	if curKey.LowerKey == lastKey.LowerKey && curKey.UpperKey == lastKey.UpperKey && curKey.Direction != lastKey.Direction {
		return ChangeSameOppositeDirection
	}
	if last.Owner != nil && current.Owner != nil && last.Owner != current.Owner {
		if prior, err := last.Owner.segmentAtInput(input, current.Direction); err == nil && prior.Key() != curKey {
			return ChangeSpec
		}
	}
	if curKey.Direction != lastKey.Direction {
		return ChangeDirection
	}
	return ChangeTraverse
}
