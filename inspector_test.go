// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugInspectorReflectsLatestTick(t *testing.T) {
	spec := singleSegmentSpec(t)
	input := 0.0
	mv, err := NewMotionValue(func() float64 { return input }, &fixedGesture{dir: DirMax}, spec)
	require.NoError(t, err)

	insp := mv.DebugInspector()
	require.Equal(t, 0.0, insp.Snapshot().Input)

	input = 42
	_, err = mv.Tick(1)
	require.NoError(t, err)
	require.Equal(t, 42.0, insp.Snapshot().Input)
}

func TestDebugInspectorRefcounting(t *testing.T) {
	spec := singleSegmentSpec(t)
	mv, err := NewMotionValue(func() float64 { return 0 }, &fixedGesture{dir: DirMax}, spec)
	require.NoError(t, err)

	first := mv.DebugInspector()
	second := mv.DebugInspector()
	require.Same(t, first, second)

	first.Release()
	require.NotNil(t, mv.inspector) // second reference still outstanding

	second.Release()
	require.Nil(t, mv.inspector)
}

func TestDebugSnapshotStringIncludesInput(t *testing.T) {
	s := DebugSnapshot{Input: 3.25}
	if !strings.Contains(s.String(), "3.25") {
		t.Error("String() omitted the input value")
	}
}
