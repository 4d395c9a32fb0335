package is456

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultDataset []byte

// Tables is the process-wide table service: every interpolated design
// table of IS 456 parsed into an immutable value. It is constructed
// once at startup and passed explicitly into the engines; nothing in
// the core mutates it after construction.
type Tables struct {
	SchemaVersion string `yaml:"schema_version"`
	Code          string `yaml:"code"`

	SteelStressStrain map[string]Curve `yaml:"steel_stress_strain"`
	TauCGrid          Grid             `yaml:"tau_c"`
	TauCMaxCurve      Curve            `yaml:"tau_c_max"`
	TauBdCurve        Curve            `yaml:"tau_bd"`
	TensionModGrid    Grid             `yaml:"tension_mod_factor"`
	CompressionMod    Curve            `yaml:"compression_mod_factor"`
}

// DefaultTables parses and validates the embedded dataset. It panics on
// failure: a broken built-in dataset is a build defect, not a runtime
// condition.
func DefaultTables() *Tables {
	t, err := parseTables(defaultDataset)
	if err != nil {
		panic(fmt.Sprintf("is456: embedded dataset invalid: %v", err))
	}
	return t
}

// LoadTables reads a dataset override from a YAML file.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table dataset: %w", err)
	}
	return parseTables(data)
}

func parseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse table dataset: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("table dataset validation: %w", err)
	}
	return &t, nil
}

// Validate checks the dataset for shape and monotonicity before it is
// shared across workers.
func (t *Tables) Validate() error {
	if t.SchemaVersion == "" {
		return fmt.Errorf("schema_version is required")
	}
	if t.SchemaVersion != "1.0" {
		return fmt.Errorf("unsupported schema version: %s", t.SchemaVersion)
	}
	for _, grade := range []string{"fe415", "fe500"} {
		c, ok := t.SteelStressStrain[grade]
		if !ok || len(c) < 2 {
			return fmt.Errorf("steel_stress_strain: missing or short curve for %s", grade)
		}
		if !c.ascending() {
			return fmt.Errorf("steel_stress_strain: %s strain values must ascend", grade)
		}
	}
	for name, c := range map[string]Curve{
		"tau_c_max":              t.TauCMaxCurve,
		"tau_bd":                 t.TauBdCurve,
		"compression_mod_factor": t.CompressionMod,
	} {
		if len(c) < 2 {
			return fmt.Errorf("%s: at least two points required", name)
		}
		if !c.ascending() {
			return fmt.Errorf("%s: keys must ascend", name)
		}
	}
	for name, g := range map[string]Grid{
		"tau_c":              t.TauCGrid,
		"tension_mod_factor": t.TensionModGrid,
	} {
		if len(g.Cols) == 0 || len(g.Rows) == 0 {
			return fmt.Errorf("%s: empty grid", name)
		}
		for i, row := range g.Rows {
			if len(row.Values) != len(g.Cols) {
				return fmt.Errorf("%s: row %d has %d values, want %d", name, i, len(row.Values), len(g.Cols))
			}
			if i > 0 && row.Key <= g.Rows[i-1].Key {
				return fmt.Errorf("%s: row keys must ascend", name)
			}
		}
	}
	return nil
}

// SteelStress returns the design stress (N/mm²) in reinforcement at the
// given strain. Fe250 is bilinear (elastic then flat at 0.87*fy); Fe415
// and Fe500 interpolate the inelastic table. The table is monotonic but
// not invertible in closed form, which is why the flexure engine pins
// xu at xu,max and looks stress up from strain rather than iterating.
func (t *Tables) SteelStress(fy, strain float64) float64 {
	if strain <= 0 {
		return 0
	}
	design := SteelDesign * fy
	if fy == 250 {
		return math.Min(strain*Es, design)
	}
	key := "fe415"
	if fy == 500 {
		key = "fe500"
	}
	curve := t.SteelStressStrain[key]
	if strain < curve[0].X {
		return strain * Es
	}
	v, _ := curve.Eval(strain)
	return v
}

// TauC returns the design shear strength of concrete (Table 19) for the
// given fck and percentage tension steel. pt outside the tabulated
// range clamps and reports clamped=true.
func (t *Tables) TauC(fck, pt float64) (v float64, clamped bool) {
	return t.TauCGrid.Eval(pt, fck)
}

// TauCMax returns the maximum permissible shear stress (Table 20).
func (t *Tables) TauCMax(fck float64) (v float64, clamped bool) {
	return t.TauCMaxCurve.Eval(fck)
}

// TauBd returns the design bond stress for plain bars in tension
// (Cl. 26.2.1.1). Multipliers for deformed bars and compression are
// applied by the detailing engine.
func (t *Tables) TauBd(fck float64) (v float64, clamped bool) {
	return t.TauBdCurve.Eval(fck)
}

// TensionModFactor returns the Fig. 4 span/depth modification factor
// for the given steel service stress fs and tension steel percentage.
func (t *Tables) TensionModFactor(fs, pt float64) (v float64, clamped bool) {
	return t.TensionModGrid.EvalBilinear(pt, fs)
}

// CompressionModFactor returns the Fig. 5 span/depth modification
// factor for the given compression steel percentage.
func (t *Tables) CompressionModFactor(pc float64) (v float64, clamped bool) {
	return t.CompressionMod.Eval(pc)
}
