package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/flexure"
	"github.com/civilforge/is456beam/internal/is456"
)

func testBeam(cases ...beam.LoadCase) beam.Beam {
	return beam.Beam{
		Name: "B1",
		Geometry: beam.Geometry{
			Width:          230,
			OverallDepth:   450,
			EffectiveDepth: 410,
			Cover:          25,
			CompCover:      40,
			Span:           4500,
			Support:        beam.SimplySupported,
			StirrupDia:     8,
			AggregateSize:  20,
		},
		Materials: beam.Materials{Fck: 25, Fy: 415},
		Cases:     cases,
	}
}

func TestEvaluate_SingleCasePasses(t *testing.T) {
	a := NewAggregator(is456.DefaultTables())
	report, err := a.Evaluate(testBeam(beam.LoadCase{ID: "LC1", Mu: 90, Vu: 60}))
	require.NoError(t, err)

	require.Len(t, report.Cases, 1)
	cr := report.Cases[0]
	assert.False(t, cr.Fatal)
	assert.Equal(t, flexure.SinglyReinforced, cr.Flexure.Kind)
	require.NotNil(t, cr.SpanDepth)
	require.NotNil(t, cr.Deflection)
	require.NotNil(t, cr.Detailing)
	assert.True(t, cr.Passed)

	assert.Equal(t, "LC1", report.GoverningCaseID)
	assert.True(t, report.Passed)
	assert.Greater(t, report.AstDesign, 0.0)
	assert.True(t, report.Detailing.Adequate)
}

func TestEvaluate_GoverningCaseByUtilization(t *testing.T) {
	a := NewAggregator(is456.DefaultTables())
	// LC-light is governed by minimum steel, so its utilization is far
	// below 1; LC-heavy works the section near capacity.
	report, err := a.Evaluate(testBeam(
		beam.LoadCase{ID: "LC-light", Mu: 10, Vu: 20},
		beam.LoadCase{ID: "LC-heavy", Mu: 90, Vu: 60},
	))
	require.NoError(t, err)

	assert.Equal(t, "LC-heavy", report.GoverningCaseID)
	assert.Greater(t, report.Utilization, report.Cases[0].Utilization)
	// Final steel covers the worst case across all non-fatal cases.
	for _, cr := range report.Cases {
		assert.GreaterOrEqual(t, report.AstDesign, cr.Flexure.AstRequired)
	}
}

func TestEvaluate_FatalShearSkipsDownstreamStages(t *testing.T) {
	a := NewAggregator(is456.DefaultTables())
	b := testBeam(
		beam.LoadCase{ID: "LC-ok", Mu: 90, Vu: 60},
		beam.LoadCase{ID: "LC-shear", Mu: 90, Vu: 290},
	)
	b.Materials.Fck = 20

	report, err := a.Evaluate(b)
	require.NoError(t, err)

	var fatal *CaseResult
	for i := range report.Cases {
		if report.Cases[i].CaseID == "LC-shear" {
			fatal = &report.Cases[i]
		}
	}
	require.NotNil(t, fatal)
	assert.True(t, fatal.Fatal)
	assert.Contains(t, fatal.FatalReason, "shear")
	assert.Nil(t, fatal.SpanDepth, "fatal case must skip serviceability")
	assert.Nil(t, fatal.Detailing, "fatal case must skip detailing")

	// The healthy case still governs and is fully evaluated.
	assert.Equal(t, "LC-ok", report.GoverningCaseID)
	assert.False(t, report.Passed)
}

func TestEvaluate_FatalFlexureReported(t *testing.T) {
	a := NewAggregator(is456.DefaultTables())
	report, err := a.Evaluate(testBeam(beam.LoadCase{ID: "LC1", Mu: 900, Vu: 60}))
	require.NoError(t, err)

	cr := report.Cases[0]
	assert.True(t, cr.Fatal)
	assert.Contains(t, cr.FatalReason, "flexure")
}

func TestEvaluate_AllCasesFatal(t *testing.T) {
	a := NewAggregator(is456.DefaultTables())
	report, err := a.Evaluate(testBeam(
		beam.LoadCase{ID: "LC1", Mu: 900, Vu: 60},
		beam.LoadCase{ID: "LC2", Mu: 950, Vu: 60},
	))
	require.NoError(t, err)

	assert.Empty(t, report.GoverningCaseID)
	assert.False(t, report.Passed)
	assert.Zero(t, report.AstDesign)
}

func TestEvaluate_TorsionInflatesDemands(t *testing.T) {
	a := NewAggregator(is456.DefaultTables())
	report, err := a.Evaluate(testBeam(beam.LoadCase{ID: "LC1", Mu: 90, Vu: 60, Tu: 8}))
	require.NoError(t, err)

	cr := report.Cases[0]
	assert.Greater(t, cr.MuEq, cr.Mu)
	assert.Greater(t, cr.VuEq, cr.Vu)
	assert.NotEmpty(t, cr.Warnings)
}

func TestEvaluate_ValidationErrorFailsFast(t *testing.T) {
	a := NewAggregator(is456.DefaultTables())
	b := testBeam(beam.LoadCase{ID: "LC1", Mu: 90, Vu: 60})
	b.Materials.Fck = 22

	report, err := a.Evaluate(b)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestEvaluate_Idempotent(t *testing.T) {
	a := NewAggregator(is456.DefaultTables())
	b := testBeam(
		beam.LoadCase{ID: "LC1", Mu: 90, Vu: 60},
		beam.LoadCase{ID: "LC2", Mu: 150, Vu: 110, Tu: 4},
	)

	first, err := a.Evaluate(b)
	require.NoError(t, err)
	second, err := a.Evaluate(b)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical input must produce an identical report")
}
