package serviceability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/is456"
)

func testGeometry() beam.Geometry {
	return beam.Geometry{
		Width:          230,
		OverallDepth:   450,
		EffectiveDepth: 410,
		Cover:          25,
		CompCover:      40,
		Span:           4500,
		Support:        beam.SimplySupported,
	}
}

func testMaterials() beam.Materials {
	return beam.Materials{Fck: 25, Fy: 415}
}

func TestGross_Rectangular(t *testing.T) {
	p := Gross(testGeometry())
	assert.InDelta(t, 230*450, p.Area, 1e-6)
	assert.InDelta(t, 225, p.YTop, 1e-9)
	assert.InDelta(t, 230*450*450*450/12.0, p.I, 1)
}

func TestGross_Flanged(t *testing.T) {
	g := testGeometry()
	g.FlangeWidth = 1000
	g.FlangeThickness = 120

	p := Gross(g)
	require.Greater(t, p.Area, 230.0*450)
	// Wide flange pulls the centroid towards the compression face.
	assert.Less(t, p.YTop, 225.0)
	assert.Greater(t, p.I, 230*450*450*450/12.0)
}

func TestCracked_RectangularNeutralAxis(t *testing.T) {
	// m = Es/Ec = 8 for M25. For ast=1200 the transformed section
	// equilibrium gives x ≈ 148 mm.
	p := Cracked(testGeometry(), testMaterials(), 1200, 0)
	assert.InDelta(t, 148, p.X, 1)
	assert.InDelta(t, 0.91e9, p.I, 0.02e9)
}

func TestCracked_CompressionSteelRaisesInertia(t *testing.T) {
	without := Cracked(testGeometry(), testMaterials(), 1200, 0)
	with := Cracked(testGeometry(), testMaterials(), 1200, 600)
	assert.Greater(t, with.I, without.I)
}

func TestSpanDepth_TypicalBeamPasses(t *testing.T) {
	e := NewEngine(is456.DefaultTables())
	r := e.SpanDepth(testGeometry(), testMaterials(), 693, 693, 0)

	assert.True(t, r.Pass)
	assert.InDelta(t, 20, r.BaseRatio, 1e-9)
	// fs = 0.58*415 with astProv == astReq.
	assert.InDelta(t, 240.7, r.Fs, 0.1)
	assert.InDelta(t, 10.98, r.ActualRatio, 0.01)
	assert.Greater(t, r.Margin, 0.0)
}

func TestSpanDepth_ExcessSteelRelaxesTheCheck(t *testing.T) {
	// Providing more steel than required lowers fs and raises the
	// allowable ratio.
	e := NewEngine(is456.DefaultTables())
	tight := e.SpanDepth(testGeometry(), testMaterials(), 693, 693, 0)
	slack := e.SpanDepth(testGeometry(), testMaterials(), 693, 1000, 0)
	assert.Greater(t, slack.AllowableRatio, tight.AllowableRatio)
}

func TestSpanDepth_LongSlenderSpanFails(t *testing.T) {
	e := NewEngine(is456.DefaultTables())
	g := testGeometry()
	g.Span = 12000 // span/d = 29.3

	r := e.SpanDepth(g, testMaterials(), 693, 693, 0)
	assert.False(t, r.Pass)
	assert.Less(t, r.Margin, 0.0)
}

func TestSpanDepth_CantileverBaseRatio(t *testing.T) {
	e := NewEngine(is456.DefaultTables())
	g := testGeometry()
	g.Support = beam.Cantilever
	g.Span = 2000

	r := e.SpanDepth(g, testMaterials(), 693, 693, 0)
	assert.InDelta(t, 7, r.BaseRatio, 1e-9)
}

func TestSpanDepth_FlangedReduction(t *testing.T) {
	e := NewEngine(is456.DefaultTables())
	g := testGeometry()
	g.FlangeWidth = 1000
	g.FlangeThickness = 120

	r := e.SpanDepth(g, testMaterials(), 693, 693, 0)
	// bw/bf = 0.23 <= 0.3 pins the Fig. 6 factor at 0.8.
	assert.InDelta(t, 0.8, r.FlangeFactor, 1e-9)
}

func TestDeflection_UncrackedClosedForm(t *testing.T) {
	// Ms=20 kN·m < Mcr≈27.2: fully uncracked parabolic profile, for
	// which virtual work gives exactly (5/48)*κm*L² = 0.966 mm.
	e := NewEngine(is456.DefaultTables())
	r := e.Deflection(testGeometry(), testMaterials(), 30, 1200, 0)

	assert.False(t, r.Cracked)
	assert.InDelta(t, 27.2, r.Mcr, 0.2)
	assert.InDelta(t, 0.966, r.Deflection, 0.01)
	assert.True(t, r.Pass)
}

func TestDeflection_CrackedSectionGovernsMidspan(t *testing.T) {
	e := NewEngine(is456.DefaultTables())
	r := e.Deflection(testGeometry(), testMaterials(), 90, 1200, 0)

	assert.True(t, r.Cracked)
	// Mixed cracked/uncracked integration lands well above the gross
	// value but below the limit for this stocky span.
	assert.Greater(t, r.Deflection, 3.0)
	assert.Less(t, r.Deflection, 10.0)
	assert.True(t, r.Pass)
	assert.InDelta(t, 18.0, r.Limit, 1e-9)
	assert.InDelta(t, 4500.0/350, r.LimitPartition, 1e-9)
}

func TestDeflection_SlenderSpanFails(t *testing.T) {
	e := NewEngine(is456.DefaultTables())
	g := testGeometry()
	g.Span = 11000

	r := e.Deflection(g, testMaterials(), 120, 900, 0)
	assert.False(t, r.Pass)
	assert.Less(t, r.Margin, 0.0)
}

func TestDeflection_CantileverTip(t *testing.T) {
	e := NewEngine(is456.DefaultTables())
	g := testGeometry()
	g.Support = beam.Cantilever
	g.Span = 2000

	r := e.Deflection(g, testMaterials(), 40, 1200, 0)
	assert.Greater(t, r.Deflection, 0.0)
	assert.InDelta(t, 8.0, r.Limit, 1e-9)
}

func TestDeflection_Deterministic(t *testing.T) {
	e := NewEngine(is456.DefaultTables())
	a := e.Deflection(testGeometry(), testMaterials(), 90, 1200, 0)
	b := e.Deflection(testGeometry(), testMaterials(), 90, 1200, 0)
	assert.Equal(t, a, b)
}

func TestSimpson_ExactForCubic(t *testing.T) {
	// f(x)=x³ over [0,2] with 21 points: Simpson is exact (4.0).
	h := 2.0 / 20
	f := make([]float64, 21)
	for i := range f {
		x := float64(i) * h
		f[i] = x * x * x
	}
	assert.InDelta(t, 4.0, simpson(f, h), 1e-12)
}
