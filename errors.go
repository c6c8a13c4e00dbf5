// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

// errors.go collects the sentinel errors for the package. Sentinels are
// never wrapped with formatted text at the definition site; callers branch
// on them with errors.Is. Call sites that need to add context wrap with
// fmt.Errorf("...: %w", err).

import "errors"

// ErrInvalidSpec indicates a DirectionalMotionSpec or MotionSpec failed one
// of its construction invariants: missing/misplaced sentinels, unsorted
// breakpoint positions, or a mapping count that doesn't match the number of
// segments.
var ErrInvalidSpec = errors.New("motionspec: invalid spec")

// ErrInvalidInput indicates a non-finite (NaN or ±Inf) value was given to
// find_breakpoint_index or read from the engine's current_input source.
var ErrInvalidInput = errors.New("motionspec: invalid input")

// ErrAlreadyRunning indicates a second call to MotionValue.KeepRunning while
// an earlier call is still active.
var ErrAlreadyRunning = errors.New("motionspec: keep_running already active")

// ErrProgrammer indicates a caller supplied parameters that violate a basic
// precondition: non-positive spring stiffness, negative damping ratio, or a
// non-positive guarantee delta/distance.
var ErrProgrammer = errors.New("motionspec: programmer error")
