// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

// inspector.go is the debug inspector contract (Component H): a read-only,
// reference-counted snapshot of the engine's per-frame state, informational
// only and guaranteed never to affect Output()/OutputTarget()/IsStable().
// The refcounted-handle-with-dispose-callback shape mirrors the teacher's
// Profile/Timing stats structs (timing.go, profile.go), which likewise
// exist purely to report engine-internal state back out for diagnostics.

import (
	"fmt"
	"sync"

	"github.com/galvanized-logic/motionspec/spring"
)

// DebugSnapshot is an immutable, point-in-time copy of the engine's
// per-frame state. It is copied at the frame boundary, never shared with
// live engine state.
type DebugSnapshot struct {
	Input           float64
	Direction       InputDirection
	GestureDistance float64
	FrameTimeNs     int64
	SpringState     spring.State
	Segment         SegmentData
	Animation       DiscontinuityAnimation
	IsActive        bool
	IsAnimating     bool
}

// String renders a one-line human-readable dump, in the spirit of the
// teacher's Profile.Dump()/Timing.Dump() diagnostics.
func (s DebugSnapshot) String() string {
	return fmt.Sprintf("input=%.6g dir=%s dist=%.6g t=%dns spring=(%.6g,%.6g) target=%.6g active=%t animating=%t",
		s.Input, s.Direction, s.GestureDistance, s.FrameTimeNs,
		s.SpringState.Displacement, s.SpringState.Velocity,
		s.Animation.TargetValue, s.IsActive, s.IsAnimating)
}

// Inspector is a reference-counted handle onto a MotionValue's latest
// DebugSnapshot. Repeated calls to MotionValue.DebugInspector while a
// handle is outstanding return the same instance; Release drops one
// reference, and the inspector is invalidated once the last reference is
// released.
type Inspector struct {
	mu       sync.Mutex
	mv       *MotionValue
	refs     int
	snapshot DebugSnapshot
}

// DebugInspector returns a reference-counted Inspector over mv, creating
// one if none is currently outstanding.
func (mv *MotionValue) DebugInspector() *Inspector {
	if mv.inspector == nil {
		mv.inspector = &Inspector{mv: mv}
	}
	mv.inspector.mu.Lock()
	mv.inspector.refs++
	mv.inspector.snapshot = mv.snapshotNow()
	mv.inspector.mu.Unlock()
	return mv.inspector
}

// Snapshot returns the most recent DebugSnapshot captured for this
// inspector. It does not itself trigger recomputation; engine.go refreshes
// it at each frame's commit via refresh.
func (i *Inspector) Snapshot() DebugSnapshot {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.snapshot
}

// refresh is called by MotionValue.Tick after each commit so an
// outstanding inspector's snapshot stays current.
func (i *Inspector) refresh(s DebugSnapshot) {
	i.mu.Lock()
	i.snapshot = s
	i.mu.Unlock()
}

// Release drops one reference; once the last reference is released the
// inspector is detached from its MotionValue and further Snapshot calls
// return the last captured value.
func (i *Inspector) Release() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.refs > 0 {
		i.refs--
	}
	if i.refs == 0 && i.mv != nil && i.mv.inspector == i {
		i.mv.inspector = nil
	}
}

// snapshotNow builds a DebugSnapshot from the engine's current committed
// state.
func (mv *MotionValue) snapshotNow() DebugSnapshot {
	return DebugSnapshot{
		Input:           mv.lastInput,
		Direction:       mv.lastSegment.Direction,
		GestureDistance: mv.lastGestureDistance,
		FrameTimeNs:     mv.lastFrameTimeNs,
		SpringState:     mv.lastSpring,
		Segment:         mv.lastSegment,
		Animation:       mv.lastAnimation,
		IsActive:        mv.running.Load(),
		IsAnimating:     !mv.lastSpring.IsAtRest(),
	}
}
