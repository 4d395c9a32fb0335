package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/is456"
)

func makeBeam(name string, mu float64) beam.Beam {
	return beam.Beam{
		Name: name,
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
		Cases:     []beam.LoadCase{{ID: "LC1", Mu: mu, Vu: 60}},
	}
}

func TestRun_ResultsMapBackToInputOrder(t *testing.T) {
	r := NewRunner(is456.DefaultTables(), 4)

	var beams []beam.Beam
	for i := 0; i < 20; i++ {
		beams = append(beams, makeBeam(fmt.Sprintf("B%02d", i), 40+float64(i)*5))
	}

	results := r.Run(context.Background(), beams)
	require.Len(t, results, len(beams))
	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, beams[i].Name, res.Name)
		require.NoError(t, res.Err)
		assert.Equal(t, beams[i].Name, res.Report.BeamName)
	}
}

func TestRun_BadBeamDoesNotSinkTheBatch(t *testing.T) {
	r := NewRunner(is456.DefaultTables(), 2)

	bad := makeBeam("BAD", 90)
	bad.Materials.Fck = 22 // outside the allowed grade set

	results := r.Run(context.Background(), []beam.Beam{
		makeBeam("A", 90), bad, makeBeam("C", 90),
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Report)
	assert.NoError(t, results[2].Err)
}

func TestRun_ParallelMatchesSerial(t *testing.T) {
	tables := is456.DefaultTables()
	var beams []beam.Beam
	for i := 0; i < 12; i++ {
		beams = append(beams, makeBeam(fmt.Sprintf("B%02d", i), 60+float64(i)*10))
	}

	serial := NewRunner(tables, 1).Run(context.Background(), beams)
	parallel := NewRunner(tables, 8).Run(context.Background(), beams)

	require.Len(t, parallel, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].Report, parallel[i].Report, "beam %d", i)
	}
}

func TestRun_CancelledContextSkipsDispatch(t *testing.T) {
	r := NewRunner(is456.DefaultTables(), 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := r.Run(ctx, []beam.Beam{makeBeam("A", 90), makeBeam("B", 90)})
	require.Len(t, results, 2)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.Nil(t, res.Report)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	r := NewRunner(is456.DefaultTables(), 2)
	assert.Empty(t, r.Run(context.Background(), nil))
}
