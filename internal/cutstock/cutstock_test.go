package cutstock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize_SingleDemandSingleStock(t *testing.T) {
	opt, err := New([]float64{12000}, 0)
	require.NoError(t, err)

	sol := opt.Optimize([]Demand{{Length: 5000, Quantity: 2, Mark: "B1"}})

	require.Len(t, sol.Bars, 1)
	assert.Len(t, sol.Bars[0].Cuts, 2)
	assert.InDelta(t, 2000, sol.Bars[0].Leftover, 1e-9)
	assert.Empty(t, sol.Unfulfillable)
}

func TestOptimize_SpecScenario_WasteIdentity(t *testing.T) {
	// 5800×12 + 3200×8 into 12 m stock, zero kerf. FFD packs two
	// 5800s per bar (6 bars), then three 3200s per bar (2 bars) plus
	// a tail bar with two.
	opt, err := New([]float64{12000}, 0)
	require.NoError(t, err)

	sol := opt.Optimize([]Demand{
		{Length: 5800, Quantity: 12, Mark: "B1"},
		{Length: 3200, Quantity: 8, Mark: "S1"},
	})

	require.Empty(t, sol.Unfulfillable)
	assert.Len(t, sol.Bars, 9)

	// waste = stock_used*12000 - 5800*12 - 3200*8, and it must equal
	// the sum of per-bar leftovers.
	wantWaste := sol.TotalStock - 5800*12 - 3200*8
	assert.InDelta(t, wantWaste, sol.TotalWaste, 1e-9)

	var leftovers float64
	for _, b := range sol.Bars {
		leftovers += b.Leftover
	}
	assert.InDelta(t, wantWaste, leftovers, 1e-9)
}

func TestOptimize_RoundTripAccounting(t *testing.T) {
	// Every requested cut appears in the solution exactly once; no cut
	// appears that was not requested.
	demands := []Demand{
		{Length: 5800, Quantity: 12, Mark: "B1"},
		{Length: 3200, Quantity: 8, Mark: "S1"},
		{Length: 1450, Quantity: 30, Mark: "S2"},
	}
	opt, err := New([]float64{12000}, 5)
	require.NoError(t, err)
	sol := opt.Optimize(demands)
	require.Empty(t, sol.Unfulfillable)

	got := map[float64]int{}
	for _, bar := range sol.Bars {
		for _, c := range bar.Cuts {
			got[c.Length]++
		}
	}
	want := map[float64]int{}
	for _, d := range demands {
		want[d.Length] += d.Quantity
	}
	assert.Equal(t, want, got)
}

func TestOptimize_PerBarInvariant(t *testing.T) {
	// sum(cuts) + kerf*numCuts + leftover == stock for every bar.
	opt, err := New([]float64{12000, 6000}, 5)
	require.NoError(t, err)

	sol := opt.Optimize([]Demand{
		{Length: 4000, Quantity: 7},
		{Length: 2600, Quantity: 5},
		{Length: 900, Quantity: 11},
	})
	require.Empty(t, sol.Unfulfillable)

	for i, bar := range sol.Bars {
		var used float64
		for _, c := range bar.Cuts {
			used += c.Length + 5
		}
		assert.InDelta(t, bar.Stock, used+bar.Leftover, 1e-9, "bar %d", i)
	}
}

func TestOptimize_SmallestAdequateStockOpens(t *testing.T) {
	opt, err := New([]float64{12000, 6000}, 0)
	require.NoError(t, err)

	// A single 5 m cut should open a 6 m bar, not a 12 m one.
	sol := opt.Optimize([]Demand{{Length: 5000, Quantity: 1}})
	require.Len(t, sol.Bars, 1)
	assert.Equal(t, 6000.0, sol.Bars[0].Stock)

	// A 7 m cut forces the 12 m stock.
	sol = opt.Optimize([]Demand{{Length: 7000, Quantity: 1}})
	require.Len(t, sol.Bars, 1)
	assert.Equal(t, 12000.0, sol.Bars[0].Stock)
}

func TestOptimize_UnfulfillableItemDoesNotAbort(t *testing.T) {
	opt, err := New([]float64{12000}, 0)
	require.NoError(t, err)

	sol := opt.Optimize([]Demand{
		{Length: 14000, Quantity: 2, Mark: "X"},
		{Length: 5000, Quantity: 2, Mark: "B1"},
	})

	require.Len(t, sol.Unfulfillable, 1)
	assert.Equal(t, 14000.0, sol.Unfulfillable[0].Demand.Length)
	assert.Contains(t, sol.Unfulfillable[0].Reason, "exceeds every stock length")
	// The rest of the schedule still packs.
	require.Len(t, sol.Bars, 1)
	assert.Len(t, sol.Bars[0].Cuts, 2)
}

func TestOptimize_KerfConsumesCapacity(t *testing.T) {
	// Two 3 m cuts fit a 6 m bar with zero kerf but not with 10 mm.
	opt, err := New([]float64{6000}, 0)
	require.NoError(t, err)
	sol := opt.Optimize([]Demand{{Length: 3000, Quantity: 2}})
	assert.Len(t, sol.Bars, 1)

	opt, err = New([]float64{6000}, 10)
	require.NoError(t, err)
	sol = opt.Optimize([]Demand{{Length: 3000, Quantity: 2}})
	assert.Len(t, sol.Bars, 2)
	assert.InDelta(t, 10, sol.KerfLoss/2, 1e-9)
}

func TestOptimize_Deterministic(t *testing.T) {
	demands := []Demand{
		{Length: 3200, Quantity: 4, Mark: "A"},
		{Length: 3200, Quantity: 4, Mark: "B"},
		{Length: 2100, Quantity: 6, Mark: "C"},
	}
	opt, err := New([]float64{12000}, 3)
	require.NoError(t, err)

	first := opt.Optimize(demands)
	second := opt.Optimize(demands)
	assert.Equal(t, first, second)

	// Equal lengths keep demand order: the first placed 3200 carries
	// mark A.
	require.NotEmpty(t, first.Bars)
	assert.Equal(t, "A", first.Bars[0].Cuts[0].Mark)
}

func TestNew_RejectsBadConfiguration(t *testing.T) {
	_, err := New(nil, 0)
	assert.Error(t, err)

	_, err = New([]float64{0}, 0)
	assert.Error(t, err)

	_, err = New([]float64{12000}, -1)
	assert.Error(t, err)
}
