package serviceability

import (
	"math"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/is456"
)

// Section property calculations for the deflection check. The gross
// section ignores reinforcement; the cracked section is the standard
// transformed section with the modular ratio m = Es/Ec applied to the
// steel and concrete below the neutral axis ignored.

// GrossProperties holds uncracked section properties.
type GrossProperties struct {
	Area    float64 // mm²
	YTop    float64 // centroid depth from compression face (mm)
	YBottom float64 // centroid height from tension face (mm)
	I       float64 // second moment about the centroid (mm⁴)
}

// Gross computes uncracked properties for a rectangular or flanged
// section.
func Gross(g beam.Geometry) GrossProperties {
	b, D := g.Width, g.OverallDepth
	if !g.Flanged() {
		return GrossProperties{
			Area:    b * D,
			YTop:    D / 2,
			YBottom: D / 2,
			I:       b * D * D * D / 12,
		}
	}
	bf, df := g.FlangeWidth, g.FlangeThickness

	// Flange rectangle plus web rectangle, composed about the top face.
	aFlange := bf * df
	aWeb := b * (D - df)
	area := aFlange + aWeb
	yTop := (aFlange*df/2 + aWeb*(df+(D-df)/2)) / area

	iFlange := bf*df*df*df/12 + aFlange*math.Pow(yTop-df/2, 2)
	iWeb := b*math.Pow(D-df, 3)/12 + aWeb*math.Pow(df+(D-df)/2-yTop, 2)

	return GrossProperties{
		Area:    area,
		YTop:    yTop,
		YBottom: D - yTop,
		I:       iFlange + iWeb,
	}
}

// CrackedProperties holds cracked transformed section properties.
type CrackedProperties struct {
	X float64 // neutral axis depth from compression face (mm)
	I float64 // cracked second moment (mm⁴)
}

// Cracked solves the transformed-section neutral axis and second
// moment for the given provided steel areas. The compression zone uses
// the flange width where the axis stays within the flange.
func Cracked(g beam.Geometry, mats beam.Materials, ast, asc float64) CrackedProperties {
	m := is456.ModularRatio(mats.Fck)
	d, dc := g.EffectiveDepth, g.CompCover

	width := g.Width
	if g.Flanged() {
		width = g.FlangeWidth
	}

	x := solveNeutralAxis(width, d, dc, m, ast, asc)

	if g.Flanged() && x > g.FlangeThickness {
		// Axis in the web: compression area is flange plus web stem.
		x = solveNeutralAxisFlanged(g, d, dc, m, ast, asc)
		return CrackedProperties{X: x, I: crackedIFlanged(g, d, dc, m, ast, asc, x)}
	}

	i := width*x*x*x/3 + m*ast*math.Pow(d-x, 2)
	if asc > 0 && x > dc {
		i += (m - 1) * asc * math.Pow(x-dc, 2)
	}
	return CrackedProperties{X: x, I: i}
}

// solveNeutralAxis solves b*x²/2 + (m-1)*asc*(x-d') = m*ast*(d-x) for
// a rectangular compression zone.
func solveNeutralAxis(b, d, dc, m, ast, asc float64) float64 {
	// b/2*x² + ((m-1)asc + m*ast)*x - ((m-1)asc*d' + m*ast*d) = 0
	ka := b / 2
	kb := (m-1)*asc + m*ast
	kc := -((m-1)*asc*dc + m*ast*d)
	return (-kb + math.Sqrt(kb*kb-4*ka*kc)) / (2 * ka)
}

// solveNeutralAxisFlanged handles the axis below the flange soffit:
// flange area acts at its own centroid, web stem continues below.
func solveNeutralAxisFlanged(g beam.Geometry, d, dc, m, ast, asc float64) float64 {
	bf, bw, df := g.FlangeWidth, g.Width, g.FlangeThickness
	// bw/2*x² + ((bf-bw)*df + (m-1)asc + m*ast)*x
	//   - ((bf-bw)*df²/2 + (m-1)asc*d' + m*ast*d) = 0
	ka := bw / 2
	kb := (bf-bw)*df + (m-1)*asc + m*ast
	kc := -((bf-bw)*df*df/2 + (m-1)*asc*dc + m*ast*d)
	return (-kb + math.Sqrt(kb*kb-4*ka*kc)) / (2 * ka)
}

func crackedIFlanged(g beam.Geometry, d, dc, m, ast, asc, x float64) float64 {
	bf, bw, df := g.FlangeWidth, g.Width, g.FlangeThickness
	i := (bf-bw)*df*df*df/12 + (bf-bw)*df*math.Pow(x-df/2, 2)
	i += bw * x * x * x / 3
	i += m * ast * math.Pow(d-x, 2)
	if asc > 0 && x > dc {
		i += (m - 1) * asc * math.Pow(x-dc, 2)
	}
	return i
}
