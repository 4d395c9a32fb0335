package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/compliance"
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

func buildFor(t *testing.T, b beam.Beam) ([]Item, *compliance.Report) {
	t.Helper()
	tables := is456.DefaultTables()
	rep, err := compliance.NewAggregator(tables).Evaluate(b)
	require.NoError(t, err)
	return Build(tables, rep, b.Geometry, b.Materials), rep
}

func TestBuild_SinglyReinforcedBeam(t *testing.T) {
	items, rep := buildFor(t, testBeam(beam.LoadCase{ID: "LC1", Mu: 90, Vu: 60}))

	require.Len(t, items, 3)

	main := items[0]
	assert.Equal(t, "B1", main.Mark)
	assert.Equal(t, rep.Detailing.BarCount, main.Quantity)
	assert.Equal(t, rep.Detailing.BarDia, main.Dia)
	// Span plus anchorage each end, rounded to 5 mm.
	assert.Greater(t, main.CutLength, 4500.0)
	assert.Zero(t, int(main.CutLength)%5)

	top := items[1]
	assert.Equal(t, "T1", top.Mark)
	assert.Equal(t, "top hanger bars", top.Description)
	assert.Equal(t, 2, top.Quantity)

	stirrups := items[2]
	assert.Equal(t, "S1", stirrups.Mark)
	assert.Equal(t, 8.0, stirrups.Dia)
	assert.Greater(t, stirrups.Quantity, 10)
	// Closed link perimeter plus hook allowance.
	assert.InDelta(t, 1355, stirrups.CutLength, 5)
}

func TestBuild_DoublyReinforcedGetsCompressionBars(t *testing.T) {
	items, rep := buildFor(t, testBeam(beam.LoadCase{ID: "LC1", Mu: 180, Vu: 60}))

	require.Greater(t, rep.AscDesign, 0.0)
	require.Len(t, items, 3)
	top := items[1]
	assert.Equal(t, "top compression bars", top.Description)
	assert.GreaterOrEqual(t, top.Quantity, 2)
}

func TestBuild_StirrupCountFollowsTightestSpacing(t *testing.T) {
	// Heavier shear tightens the spacing and raises the stirrup count.
	light, _ := buildFor(t, testBeam(beam.LoadCase{ID: "LC1", Mu: 90, Vu: 60}))
	heavy, _ := buildFor(t, testBeam(beam.LoadCase{ID: "LC1", Mu: 90, Vu: 180}))

	assert.Greater(t, heavy[2].Quantity, light[2].Quantity)
}

func TestBuild_EmptyForAllFatalReport(t *testing.T) {
	items, rep := buildFor(t, testBeam(beam.LoadCase{ID: "LC1", Mu: 900, Vu: 60}))
	assert.Empty(t, rep.GoverningCaseID)
	assert.Empty(t, items)
}
