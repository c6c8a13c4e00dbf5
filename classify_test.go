// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galvanized-logic/motionspec/spring"
)

func twoSegmentSpec(t *testing.T) *MotionSpec {
	t.Helper()
	dir, err := NewBuilder(spring.Snap, Identity).
		ToBreakpoint(0).
		ContinueWith(Fixed(9)).
		CompleteWith(Identity)
	require.NoError(t, err)
	spec, err := NewMotionSpec(dir, dir, spring.Snap, nil)
	require.NoError(t, err)
	return spec
}

func TestClassifySame(t *testing.T) {
	spec := twoSegmentSpec(t)
	last, err := spec.segmentAtInput(5, DirMax)
	require.NoError(t, err)
	cur, err := spec.segmentAtInput(6, DirMax)
	require.NoError(t, err)
	require.Equal(t, ChangeSame, classifySegmentChange(last, cur, 6))
}

func TestClassifySameOppositeDirection(t *testing.T) {
	spec := twoSegmentSpec(t)
	last, err := spec.segmentAtInput(5, DirMax)
	require.NoError(t, err)
	cur, err := spec.segmentAtInput(5, DirMin)
	require.NoError(t, err)
	require.Equal(t, ChangeSameOppositeDirection, classifySegmentChange(last, cur, 5))
}

func TestClassifyDirection(t *testing.T) {
	spec := twoSegmentSpec(t)
	last, err := spec.segmentAtInput(5, DirMax) // segment [0,Max)
	require.NoError(t, err)
	cur, err := spec.segmentAtInput(-5, DirMin) // segment [Min,0)
	require.NoError(t, err)
	require.Equal(t, ChangeDirection, classifySegmentChange(last, cur, -5))
}

func TestClassifyTraverse(t *testing.T) {
	spec := twoSegmentSpec(t)
	last, err := spec.segmentAtInput(-5, DirMax) // segment [Min,0)
	require.NoError(t, err)
	cur, err := spec.segmentAtInput(5, DirMax) // segment [0,Max)
	require.NoError(t, err)
	require.Equal(t, ChangeTraverse, classifySegmentChange(last, cur, 5))
}

func TestClassifySpec(t *testing.T) {
	oldSpec := twoSegmentSpec(t)
	oldSeg, err := oldSpec.segmentAtInput(5, DirMax)
	require.NoError(t, err)

	newDir, err := NewBuilder(spring.Snap, Identity).
		ToBreakpoint(3). // breakpoint moved from 0 to 3
		ContinueWith(Fixed(9)).
		CompleteWith(Identity)
	require.NoError(t, err)
	newSpec, err := NewMotionSpec(newDir, newDir, spring.Snap, nil)
	require.NoError(t, err)
	newSeg, err := newSpec.segmentAtInput(5, DirMax)
	require.NoError(t, err)

	// Classify at input 1, which the old spec puts in the upper segment and
	// the new spec puts in the lower, so the two specs plainly resolve the
	// same input to different segments.
	oldAt1, err := oldSpec.segmentAtInput(1, DirMax)
	require.NoError(t, err)
	newAt1, err := newSpec.segmentAtInput(1, DirMax)
	require.NoError(t, err)
	require.NotEqual(t, oldAt1.Key(), newAt1.Key())

	require.Equal(t, ChangeSpec, classifySegmentChange(oldSeg, newSeg, 1))
}
