package is456

// LoadCombination represents an IS 456 limit state load combination
// (Table 18 - Values of Partial Safety Factor γf for Loads)
type LoadCombination struct {
	ID          string
	Description string
	// Partial safety factors for each load type
	Dead       float64 // DL - Dead load
	Live       float64 // IL - Imposed (live) load
	Wind       float64 // WL - Wind load
	Earthquake float64 // EL - Earthquake load
}

// Table 18 combinations for the collapse limit state. Wind and
// earthquake never act together; EL combinations mirror the WL ones.
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.5(DL + IL)",
		Dead:        1.5,
		Live:        1.5,
	},
	{
		ID:          "2",
		Description: "1.5(DL + WL)",
		Dead:        1.5,
		Wind:        1.5,
	},
	{
		ID:          "3",
		Description: "0.9DL + 1.5WL",
		Dead:        0.9,
		Wind:        1.5,
	},
	{
		ID:          "4",
		Description: "1.2(DL + IL + WL)",
		Dead:        1.2,
		Live:        1.2,
		Wind:        1.2,
	},
	{
		ID:          "5",
		Description: "1.5(DL + EL)",
		Dead:        1.5,
		Earthquake:  1.5,
	},
	{
		ID:          "6",
		Description: "0.9DL + 1.5EL",
		Dead:        0.9,
		Earthquake:  1.5,
	},
	{
		ID:          "7",
		Description: "1.2(DL + IL + EL)",
		Dead:        1.2,
		Live:        1.2,
		Earthquake:  1.2,
	},
}

// GravityCombinations holds only the basic gravity case, for beams with
// no lateral load effects.
var GravityCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.5(DL + IL)",
		Dead:        1.5,
		Live:        1.5,
	},
}

// LoadEffects holds unfactored internal forces from each load type.
// The same struct serves moments (kN·m) and shears (kN).
type LoadEffects struct {
	Dead       float64
	Live       float64
	Wind       float64
	Earthquake float64
}

// Factored applies the combination's partial safety factors.
func (lc LoadCombination) Factored(e LoadEffects) float64 {
	return lc.Dead*e.Dead +
		lc.Live*e.Live +
		lc.Wind*e.Wind +
		lc.Earthquake*e.Earthquake
}
