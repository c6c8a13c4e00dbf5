// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

// keep_running.go expresses the cooperative, single-threaded task the
// engine runs as, the way the teacher's Action()/goroutine+done-channel
// loop in app.go/eng.go drives the game's fixed-timestep update: one
// long-lived task, no locks, suspension only at well-defined points.

import (
	"context"
	"fmt"
	"time"
)

// Wake lets a host (or the GestureContext producer) nudge a suspended
// KeepRunning loop awake outside of its normal frame-clock cadence — e.g.
// when the input changes but the host's frame clock is itself suspended
// waiting on a wakeup. Buffered so a wakeup delivered while the loop is
// already awake and processing is not lost.
type Wake chan struct{}

// NewWake returns a ready-to-use wakeup channel.
func NewWake() Wake { return make(Wake, 1) }

// Signal delivers a non-blocking wakeup.
func (w Wake) Signal() {
	select {
	case w <- struct{}{}:
	default:
	}
}

// KeepRunning runs Tick in a loop driven by clock until ctx is cancelled,
// suspending (not spinning) at two points: waiting for wake while the
// spring is stable and nothing has changed, and waiting for the next
// frame from clock while animating. It is a programmer error to call
// KeepRunning a second time while an earlier call on the same MotionValue
// is still active; the second call fails immediately with
// ErrAlreadyRunning. Cancelling ctx leaves last_* intact and tears the
// loop down cleanly; a subsequent call is then permitted.
func (mv *MotionValue) KeepRunning(ctx context.Context, clock FrameClock, wake Wake) error {
	if !mv.running.CompareAndSwap(false, true) {
		return fmt.Errorf("motionspec: KeepRunning: %w", ErrAlreadyRunning)
	}
	defer mv.running.Store(false)

	for {
		if mv.IsStable() {
			select {
			case <-ctx.Done():
				return nil
			case <-wake:
				// fall through and tick once on whatever just changed.
			}
		}

		frameTimeNs, err := clock.NextFrameNanos(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("motionspec: KeepRunning: frame clock: %w", err)
		}
		if _, err := mv.Tick(frameTimeNs); err != nil {
			return err
		}
	}
}

// systemClock is a FrameClock backed by the host OS clock, provided as a
// convenience for hosts that don't already have a frame scheduler; most
// hosts supply their own FrameClock tied to their render loop instead.
type systemClock struct {
	epoch  time.Time
	period time.Duration
}

// NewSystemClock returns a FrameClock whose NextFrameNanos ticks at fps
// frames per second, reporting elapsed nanoseconds since the clock was
// created.
func NewSystemClock(fps int) FrameClock {
	return &systemClock{epoch: timeNow(), period: time.Second / time.Duration(fps)}
}

func (c *systemClock) NextFrameNanos(ctx context.Context) (int64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-time.After(c.period):
		return timeNow().Sub(c.epoch).Nanoseconds(), nil
	}
}

// timeNow is indirected so it is the single non-deterministic call in the
// package, isolated to the optional convenience clock rather than the
// engine's core per-frame math.
func timeNow() time.Time { return time.Now() }
