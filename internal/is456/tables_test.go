package is456

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables_ParsesAndValidates(t *testing.T) {
	tables := DefaultTables()
	require.NotNil(t, tables)
	assert.Equal(t, "IS 456:2000", tables.Code)
	assert.NoError(t, tables.Validate())
}

func TestXuMaxRatio_CodeValues(t *testing.T) {
	tests := []struct {
		fy   float64
		want float64
	}{
		{250, 0.53},
		{415, 0.48},
		{500, 0.46},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, XuMaxRatio(tt.fy), 0.005, "fy=%v", tt.fy)
	}
}

func TestTauC_TabulatedPoints(t *testing.T) {
	tables := DefaultTables()

	// Exact grid points come back untouched.
	v, clamped := tables.TauC(20, 1.00)
	assert.False(t, clamped)
	assert.InDelta(t, 0.62, v, 1e-9)

	v, clamped = tables.TauC(25, 0.50)
	assert.False(t, clamped)
	assert.InDelta(t, 0.49, v, 1e-9)
}

func TestTauC_InterpolatesBetweenRows(t *testing.T) {
	tables := DefaultTables()

	// Midway between pt=0.50 (0.48) and pt=0.75 (0.56) for M20.
	v, clamped := tables.TauC(20, 0.625)
	assert.False(t, clamped)
	assert.InDelta(t, 0.52, v, 1e-9)
}

func TestTauC_ClampsOutsideDomain(t *testing.T) {
	tables := DefaultTables()

	v, clamped := tables.TauC(20, 0.05)
	assert.True(t, clamped, "pt below table minimum must clamp")
	assert.InDelta(t, 0.28, v, 1e-9)

	v, clamped = tables.TauC(20, 4.2)
	assert.True(t, clamped, "pt above table maximum must clamp")
	assert.InDelta(t, 0.82, v, 1e-9)
}

func TestTauC_FckStepsDownBetweenColumns(t *testing.T) {
	tables := DefaultTables()

	// fck=22 uses the M20 column, not an interpolated value.
	v, clamped := tables.TauC(22, 1.00)
	assert.False(t, clamped)
	assert.InDelta(t, 0.62, v, 1e-9)
}

func TestTauC_FckAboveTopColumnClamps(t *testing.T) {
	tables := DefaultTables()

	// fck beyond the last tabulated grade steps down to the M40 column
	// and must report the clamp, same as a row key out of range.
	v, clamped := tables.TauC(45, 1.00)
	assert.True(t, clamped, "fck above table maximum must clamp")
	assert.InDelta(t, 0.68, v, 1e-9)
}

func TestTauCMax_Table20(t *testing.T) {
	tables := DefaultTables()
	tests := []struct {
		fck  float64
		want float64
	}{
		{15, 2.5},
		{20, 2.8},
		{25, 3.1},
		{30, 3.5},
		{40, 4.0},
	}
	for _, tt := range tests {
		v, clamped := tables.TauCMax(tt.fck)
		assert.False(t, clamped)
		assert.InDelta(t, tt.want, v, 1e-9, "fck=%v", tt.fck)
	}
}

func TestSteelStress_Fe415(t *testing.T) {
	tables := DefaultTables()

	// Elastic below the first tabulated point.
	assert.InDelta(t, 200.0, tables.SteelStress(415, 0.001), 1e-9)

	// Exact table point.
	assert.InDelta(t, 306.7, tables.SteelStress(415, 0.00163), 1e-9)

	// Interpolated between 0.00144 and 0.00163.
	mid := tables.SteelStress(415, 0.001535)
	assert.Greater(t, mid, 288.7)
	assert.Less(t, mid, 306.7)

	// Plateau at 0.87*fy beyond the table.
	assert.InDelta(t, 360.9, tables.SteelStress(415, 0.01), 1e-9)
}

func TestSteelStress_Fe250Bilinear(t *testing.T) {
	tables := DefaultTables()
	assert.InDelta(t, 100.0, tables.SteelStress(250, 0.0005), 1e-9)
	assert.InDelta(t, 217.5, tables.SteelStress(250, 0.005), 1e-9)
}

func TestModFactors_Clamping(t *testing.T) {
	tables := DefaultTables()

	// Fig. 4 at fs=240, pt=1.0 is 1.0 by construction.
	v, clamped := tables.TensionModFactor(240, 1.0)
	assert.False(t, clamped)
	assert.InDelta(t, 1.0, v, 1e-9)

	// pt below the chart clamps to the lowest row.
	_, clamped = tables.TensionModFactor(240, 0.05)
	assert.True(t, clamped)

	// Fig. 5 tops out at 1.5.
	v, clamped = tables.CompressionModFactor(5.0)
	assert.True(t, clamped)
	assert.InDelta(t, 1.5, v, 1e-9)

	v, clamped = tables.CompressionModFactor(0)
	assert.False(t, clamped)
	assert.InDelta(t, 1.0, v, 1e-9)
}

func TestMuLim_TypicalSection(t *testing.T) {
	// 230x410 effective, M25, Fe415: Mu,lim = 0.36*0.479*(1-0.42*0.479)*230*410²*25
	got := MuLim(230, 410, 25, 415)
	assert.InDelta(t, 133.0, got, 2.0)
}

func TestLoadCombination_Factored(t *testing.T) {
	e := LoadEffects{Dead: 40, Live: 20}
	assert.InDelta(t, 90.0, LoadCombinations[0].Factored(e), 1e-9) // 1.5(D+L)
	assert.InDelta(t, 36.0, LoadCombinations[2].Factored(e), 1e-9) // 0.9D
}

func TestGradeAllowed(t *testing.T) {
	assert.True(t, GradeAllowed(25, AllowedFck))
	assert.False(t, GradeAllowed(22, AllowedFck))
	assert.True(t, GradeAllowed(415, AllowedFy))
	assert.False(t, GradeAllowed(400, AllowedFy))
}
