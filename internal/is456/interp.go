package is456

// Interpolation primitives shared by all code tables. Lookups never
// extrapolate: a key outside the tabulated domain is clamped to the
// nearest bound and the clamp is reported so callers can attach a
// warning to their result.

// CurvePoint is one tabulated point of a monotonic 1-D curve.
type CurvePoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Curve is a piecewise-linear monotonic curve over ascending X.
type Curve []CurvePoint

// Eval interpolates the curve at x. Keys outside the domain clamp to
// the first/last point and report clamped=true.
func (c Curve) Eval(x float64) (y float64, clamped bool) {
	if len(c) == 0 {
		return 0, true
	}
	if x <= c[0].X {
		return c[0].Y, x < c[0].X
	}
	last := c[len(c)-1]
	if x >= last.X {
		return last.Y, x > last.X
	}
	for i := 1; i < len(c); i++ {
		if x <= c[i].X {
			return lerp(x, c[i-1].X, c[i].X, c[i-1].Y, c[i].Y), false
		}
	}
	return last.Y, false
}

// ascending reports whether the X values of the curve strictly increase.
func (c Curve) ascending() bool {
	for i := 1; i < len(c); i++ {
		if c[i].X <= c[i-1].X {
			return false
		}
	}
	return true
}

// GridRow is one row of a 2-D table: a row key plus one value per column.
type GridRow struct {
	Key    float64   `yaml:"key"`
	Values []float64 `yaml:"values"`
}

// Grid is a 2-D table interpolated linearly between row keys. Columns
// are discrete: a column key selects the nearest column at or below it
// (step lookup), matching how the code tables enumerate concrete grades.
type Grid struct {
	Cols []float64 `yaml:"cols"`
	Rows []GridRow `yaml:"rows"`
}

// Eval looks up the grid at (rowKey, colKey). The row key interpolates
// linearly with clamping; the column key steps down to the nearest
// tabulated column, clamping at the ends.
func (g Grid) Eval(rowKey, colKey float64) (v float64, clamped bool) {
	ci, cClamped := g.colIndex(colKey)
	n := len(g.Rows)
	if n == 0 {
		return 0, true
	}
	if rowKey <= g.Rows[0].Key {
		return g.Rows[0].Values[ci], cClamped || rowKey < g.Rows[0].Key
	}
	if rowKey >= g.Rows[n-1].Key {
		return g.Rows[n-1].Values[ci], cClamped || rowKey > g.Rows[n-1].Key
	}
	for i := 1; i < n; i++ {
		if rowKey <= g.Rows[i].Key {
			lo, hi := g.Rows[i-1], g.Rows[i]
			return lerp(rowKey, lo.Key, hi.Key, lo.Values[ci], hi.Values[ci]), cClamped
		}
	}
	return g.Rows[n-1].Values[ci], cClamped
}

// EvalBilinear interpolates linearly along both axes, used for the
// deflection modification-factor charts where both keys are continuous.
func (g Grid) EvalBilinear(rowKey, colKey float64) (v float64, clamped bool) {
	n := len(g.Rows)
	if n == 0 || len(g.Cols) == 0 {
		return 0, true
	}
	rowAt := func(row GridRow) (float64, bool) {
		c := make(Curve, len(g.Cols))
		for i, x := range g.Cols {
			c[i] = CurvePoint{X: x, Y: row.Values[i]}
		}
		return c.Eval(colKey)
	}
	if rowKey <= g.Rows[0].Key {
		v, cc := rowAt(g.Rows[0])
		return v, cc || rowKey < g.Rows[0].Key
	}
	if rowKey >= g.Rows[n-1].Key {
		v, cc := rowAt(g.Rows[n-1])
		return v, cc || rowKey > g.Rows[n-1].Key
	}
	for i := 1; i < n; i++ {
		if rowKey <= g.Rows[i].Key {
			lov, c1 := rowAt(g.Rows[i-1])
			hiv, c2 := rowAt(g.Rows[i])
			return lerp(rowKey, g.Rows[i-1].Key, g.Rows[i].Key, lov, hiv), c1 || c2
		}
	}
	v, cc := rowAt(g.Rows[n-1])
	return v, cc
}

func (g Grid) colIndex(colKey float64) (int, bool) {
	if len(g.Cols) == 0 {
		return 0, true
	}
	if colKey < g.Cols[0] {
		return 0, true
	}
	idx := 0
	for i, c := range g.Cols {
		if colKey >= c {
			idx = i
		}
	}
	return idx, colKey > g.Cols[len(g.Cols)-1]
}

func lerp(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
