package is456

import "math"

// IS 456:2000 Material Constants (Limit State Method)

const (
	// Strain limits (Cl. 38.1)
	EpsilonCU = 0.0035 // Ultimate concrete compressive strain in bending
	EpsilonY0 = 0.002  // Inelastic strain offset at design yield

	// Equivalent stress block factors (Cl. 38.1, Annex G)
	BlockForce    = 0.36 // Total compressive force coefficient: 0.36*fck*b*xu
	BlockCentroid = 0.42 // Depth of centroid of the stress block: 0.42*xu
	BlockStress   = 0.446 // Uniform design stress in concrete: 0.446*fck

	// Design steel stress factor (partial safety 1.15 applied to fy)
	SteelDesign = 0.87

	// Modulus of elasticity for steel (Cl. 5.6.3)
	Es = 200000.0 // N/mm²

	// Partial load factor between ultimate and service level for the
	// basic gravity combination (Table 18)
	GammaF = 1.5
)

// AllowedFck lists the concrete grades the design tables cover (N/mm²).
var AllowedFck = []float64{15, 20, 25, 30, 35, 40}

// AllowedFy lists the supported reinforcement grades (N/mm²).
var AllowedFy = []float64{250, 415, 500}

// GradeAllowed reports whether v is a member of the allowed grade set.
func GradeAllowed(v float64, set []float64) bool {
	for _, g := range set {
		if g == v {
			return true
		}
	}
	return false
}

// XuMaxRatio returns the limiting neutral axis depth ratio xu,max/d
// from strain compatibility (Cl. 38.1):
//
//	xu,max/d = εcu / (εcu + 0.002 + 0.87*fy/Es)
//
// which evaluates to the familiar 0.53 / 0.48 / 0.46 for Fe250/Fe415/Fe500.
func XuMaxRatio(fy float64) float64 {
	return EpsilonCU / (EpsilonCU + EpsilonY0 + SteelDesign*fy/Es)
}

// MuLim returns the limiting moment of resistance of a rectangular
// section in kN·m (Annex G-1.1(c)):
//
//	Mu,lim = 0.36 * k * (1 - 0.42*k) * b * d² * fck,  k = xu,max/d
func MuLim(b, d, fck, fy float64) float64 {
	k := XuMaxRatio(fy)
	return BlockForce * k * (1 - BlockCentroid*k) * b * d * d * fck / 1e6
}

// AstMin returns the minimum tension reinforcement area in mm²
// (Cl. 26.5.1.1(a)): As,min = 0.85*b*d/fy.
func AstMin(b, d, fy float64) float64 {
	return 0.85 * b * d / fy
}

// AstMax returns the maximum reinforcement area in mm² for either face
// (Cl. 26.5.1.1(b), 26.5.1.2): 4% of gross section.
func AstMax(b, overallDepth float64) float64 {
	return 0.04 * b * overallDepth
}

// Ec returns the short-term modulus of elasticity of concrete in N/mm²
// (Cl. 6.2.3.1): Ec = 5000*sqrt(fck).
func Ec(fck float64) float64 {
	return 5000 * math.Sqrt(fck)
}

// Fcr returns the flexural tensile (cracking) strength of concrete in
// N/mm² (Cl. 6.2.2): fcr = 0.7*sqrt(fck).
func Fcr(fck float64) float64 {
	return 0.7 * math.Sqrt(fck)
}

// ModularRatio returns Es/Ec used for the transformed cracked section.
func ModularRatio(fck float64) float64 {
	return Es / Ec(fck)
}
