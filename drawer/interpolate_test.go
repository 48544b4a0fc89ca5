package drawer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpacityControlPoints(t *testing.T) {
	tests := []struct {
		offset float64
		want   float64
	}{
		{-100, 0},
		{0, 0},
		{100, 0},
		{150, 0.25},
		{200, 0.5},
		{300, 1},
		{350, 0.5},
		{375, 0.25},
		{400, 0},
		{500, 0},
		{1000, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Opacity(tt.offset), 1e-9, "offset %.0f", tt.offset)
	}
}

func TestOpacityStaysInUnitRange(t *testing.T) {
	for x := -200.0; x <= 800; x += 7.5 {
		o := Opacity(x)
		require.GreaterOrEqual(t, o, 0.0)
		require.LessOrEqual(t, o, 1.0)
	}
}

func TestInterpolateHoldsEndpoints(t *testing.T) {
	points := []ControlPoint{{In: 0, Out: 2}, {In: 10, Out: 4}}

	assert.Equal(t, 2.0, Interpolate(-5, points))
	assert.Equal(t, 4.0, Interpolate(50, points))
	assert.InDelta(t, 3.0, Interpolate(5, points), 1e-9)
}

func TestInterpolateDegenerateCurves(t *testing.T) {
	assert.Equal(t, 0.0, Interpolate(3, nil))
	assert.Equal(t, 7.0, Interpolate(3, []ControlPoint{{In: 1, Out: 7}}))
	assert.Equal(t, 5.0, Interpolate(1, []ControlPoint{{In: 1, Out: 5}, {In: 1, Out: 9}, {In: 2, Out: 0}}))
}

func TestControllerOpacityTracksOffset(t *testing.T) {
	c := New(DefaultConfig())
	assert.Equal(t, 1.0, c.Opacity())

	c.GestureStart()
	c.GestureUpdate(-100)
	assert.InDelta(t, 0.5, c.Opacity(), 1e-9)

	c.GestureUpdate(150)
	assert.Equal(t, 0.0, c.Opacity())
}
