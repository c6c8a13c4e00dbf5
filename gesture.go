// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import "context"

// InputDirection is the sign of recent input motion. It is part of a
// segment's identity: two segments between the same breakpoints but
// travelled in opposite directions are distinct.
type InputDirection int

const (
	// DirMin is travel toward −∞.
	DirMin InputDirection = iota
	// DirMax is travel toward +∞.
	DirMax
)

// Sign returns −1 for DirMin and +1 for DirMax.
func (d InputDirection) Sign() float64 {
	if d == DirMin {
		return -1
	}
	return 1
}

func (d InputDirection) String() string {
	if d == DirMin {
		return "Min"
	}
	return "Max"
}

// GestureContext is the host-supplied, read-only source of the current
// gesture's direction and travel distance. The engine never blocks on it
// and never mutates it; the host guarantees both methods are cheap.
type GestureContext interface {
	// Direction reports the current direction of travel.
	Direction() InputDirection
	// Distance is a monotone-ish accumulator of gesture travel, whose
	// exact semantics are defined by the host. It is only consulted by
	// breakpoints carrying a GestureDistance guarantee.
	Distance() float64
}

// FrameClock is the host-supplied source of frame ticks consumed by
// KeepRunning. NextFrameNanos blocks until the next frame is available (or
// ctx is cancelled) and returns the host's frame time in nanoseconds.
type FrameClock interface {
	NextFrameNanos(ctx context.Context) (int64, error)
}
