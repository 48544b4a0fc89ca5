package drawer

// ControlPoint maps an input value to an output value.
type ControlPoint struct {
	In  float64
	Out float64
}

// The portrait fades in as the drawer comes down to its resting place and
// fades out again past it.
var opacityCurve = []ControlPoint{
	{In: 100, Out: 0},
	{In: 300, Out: 1},
	{In: 400, Out: 0},
}

// Interpolate evaluates the piecewise-linear curve through points (sorted by
// In) at x. Outside the curve it holds the nearest endpoint value.
func Interpolate(x float64, points []ControlPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	if x <= points[0].In {
		return points[0].Out
	}
	last := points[len(points)-1]
	if x >= last.In {
		return last.Out
	}
	for i := 1; i < len(points); i++ {
		lo, hi := points[i-1], points[i]
		if x > hi.In {
			continue
		}
		span := hi.In - lo.In
		if span == 0 {
			return hi.Out
		}
		t := (x - lo.In) / span
		return lo.Out + t*(hi.Out-lo.Out)
	}
	return last.Out
}

// Opacity of the background portrait at a drawer offset, in [0,1].
func Opacity(offset float64) float64 {
	v := Interpolate(offset, opacityCurve)
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
