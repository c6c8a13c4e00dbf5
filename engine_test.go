// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package motionspec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galvanized-logic/motionspec/spring"
)

type fixedGesture struct {
	dir      InputDirection
	distance float64
}

func (g *fixedGesture) Direction() InputDirection { return g.dir }
func (g *fixedGesture) Distance() float64         { return g.distance }

func singleSegmentSpec(t *testing.T) *MotionSpec {
	t.Helper()
	dir, err := NewBuilder(spring.Snap, Identity).CompleteWith(Identity)
	require.NoError(t, err)
	spec, err := NewMotionSpec(dir, dir, spring.Snap, nil)
	require.NoError(t, err)
	return spec
}

func TestNewMotionValueRejectsNilArgs(t *testing.T) {
	spec := singleSegmentSpec(t)
	_, err := NewMotionValue(nil, &fixedGesture{dir: DirMax}, spec)
	require.ErrorIs(t, err, ErrProgrammer)
}

func TestNewMotionValueOutputsIdentityAtConstruction(t *testing.T) {
	spec := singleSegmentSpec(t)
	input := 5.0
	mv, err := NewMotionValue(func() float64 { return input }, &fixedGesture{dir: DirMax}, spec)
	require.NoError(t, err)
	require.Equal(t, 5.0, mv.Output())
	require.Equal(t, 5.0, mv.OutputTarget())
	require.True(t, mv.IsStable())
}

func TestTickRejectsNonFiniteInput(t *testing.T) {
	spec := singleSegmentSpec(t)
	mv, err := NewMotionValue(func() float64 { return 0 }, &fixedGesture{dir: DirMax}, spec)
	require.NoError(t, err)

	// Simulate a misbehaving host input source.
	mv.currentInput = func() float64 { return nan() }
	_, err = mv.Tick(1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func nan() float64 {
	var x float64
	return x / x
}

func TestTickSameSegmentHoldsDirectMapping(t *testing.T) {
	spec := singleSegmentSpec(t)
	input := 0.0
	gesture := &fixedGesture{dir: DirMax}
	mv, err := NewMotionValue(func() float64 { return input }, gesture, spec)
	require.NoError(t, err)

	input = 3
	out, err := mv.Tick(1_000_000)
	require.NoError(t, err)
	require.Equal(t, 3.0, out)
	require.True(t, mv.IsStable())
}

func TestTickMappingSwapAnimatesThenConverges(t *testing.T) {
	softSpring, err := spring.NewParameters(50, 0.7)
	require.NoError(t, err)

	a := NewNamedBreakpoint("a", 10, softSpring, NoGuarantee())
	dirSpec, err := NewDirectionalMotionSpec(
		[]Breakpoint{minLimit(softSpring), a, maxLimit(softSpring)},
		[]Mapping{Identity, Linear(1, 50)}, // +50 jump at a
	)
	require.NoError(t, err)
	spec, err := NewMotionSpec(dirSpec, dirSpec, softSpring, nil)
	require.NoError(t, err)

	input := 5.0
	gesture := &fixedGesture{dir: DirMax}
	mv, err := NewMotionValue(func() float64 { return input }, gesture, spec)
	require.NoError(t, err)

	// Single-frame traverse across breakpoint a: output must stay continuous
	// at the instant of crossing (no visible pop) and converge to the new
	// mapping's direct value over time.
	input = 20
	out1, err := mv.Tick(16_000_000)
	require.NoError(t, err)
	require.False(t, mv.IsStable())

	input = 20
	var outN float64
	for i := 0; i < 200; i++ {
		outN, err = mv.Tick(int64(16_000_000 * (i + 2)))
		require.NoError(t, err)
	}
	require.InDelta(t, 70.0, outN, 0.05) // Linear(1,50).Map(20) == 70
	require.True(t, mv.IsStable())
	_ = out1
}

func TestTickDirectionReversalResetsGuarantee(t *testing.T) {
	g, err := InputDelta(5)
	require.NoError(t, err)
	entry := NewNamedBreakpoint("a", 0, spring.Snap, g)
	dirSpec, err := NewDirectionalMotionSpec(
		[]Breakpoint{minLimit(spring.Snap), entry, maxLimit(spring.Snap)},
		[]Mapping{Identity, Identity},
	)
	require.NoError(t, err)
	spec, err := NewMotionSpec(dirSpec, dirSpec, spring.Snap, nil)
	require.NoError(t, err)

	input := 3.0
	gesture := &fixedGesture{dir: DirMax}
	mv, err := NewMotionValue(func() float64 { return input }, gesture, spec)
	require.NoError(t, err)

	input = 10
	_, err = mv.Tick(1)
	require.NoError(t, err)
	require.True(t, mv.lastGuarantee.Active)
	require.Greater(t, mv.lastGuarantee.MaxDelta, 0.0)

	gesture.dir = DirMin
	input = 4
	_, err = mv.Tick(2)
	require.NoError(t, err)
	require.Equal(t, 0.0, mv.lastGuarantee.MaxDelta)
}
