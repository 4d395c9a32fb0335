// Package diagram renders ASCII sketches of a designed beam section:
// the cross section with neutral axis and steel markers, and the
// linear strain profile through the depth.
package diagram

import (
	"fmt"
	"strings"

	"github.com/civilforge/is456beam/internal/is456"
)

// SectionData holds everything the sketches need, taken from the
// geometry and the governing flexure result.
type SectionData struct {
	// Section (mm)
	Width          float64
	OverallDepth   float64
	EffectiveDepth float64
	CompCover      float64

	// Neutral axis (mm from compression face)
	Xu    float64
	XuMax float64

	// Steel (mm²)
	Ast float64
	Asc float64

	// Grades (N/mm²)
	Fck float64
	Fy  float64
}

// steelStrain is the tension steel strain from the linear profile.
func (d SectionData) steelStrain() float64 {
	if d.Xu <= 0 {
		return 0
	}
	return is456.EpsilonCU * (d.EffectiveDepth - d.Xu) / d.Xu
}

// DrawSection renders the cross section next to the strain and stress
// annotations. Compression zone is shaded down to the neutral axis.
func DrawSection(d SectionData) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 20

	naLine := int(d.Xu / d.OverallDepth * float64(heightChars))
	tensionLine := int(d.EffectiveDepth / d.OverallDepth * float64(heightChars))
	compLine := int(d.CompCover / d.OverallDepth * float64(heightChars))

	epsSt := d.steelStrain()

	sb.WriteString("\n")
	sb.WriteString("  BEAM SECTION                        STRAIN / STRESS\n")
	sb.WriteString("  ────────────                        ───────────────\n")

	for i := 0; i <= heightChars; i++ {
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case i == heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		default:
			var fill []rune
			if i <= naLine {
				fill = []rune(strings.Repeat("░", widthChars))
			} else {
				fill = []rune(strings.Repeat(" ", widthChars))
			}
			mid := widthChars / 2
			if d.Asc > 0 && i == compLine {
				copy(fill[mid-2:], []rune("●──●"))
			}
			if i == tensionLine {
				copy(fill[mid-3:], []rune("●────●"))
			}
			sb.WriteString(fmt.Sprintf("  │%s│", string(fill)))
		}

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("    ├── εcu = %.4f, σc = 0.446·fck = %.2f N/mm²", is456.EpsilonCU, is456.BlockStress*d.Fck))
		case i == naLine:
			sb.WriteString(fmt.Sprintf("    ├── N.A. at xu = %.1f mm (xu,max = %.1f)", d.Xu, d.XuMax))
		case d.Asc > 0 && i == compLine:
			sb.WriteString(fmt.Sprintf("    ├── Asc = %.0f mm²", d.Asc))
		case i == tensionLine:
			sb.WriteString(fmt.Sprintf("    ├── εst = %.4f, Ast = %.0f mm²", epsSt, d.Ast))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  ░░░ compression zone   ●●● reinforcement\n")
	return sb.String()
}

// DrawStrainProfile renders the strain variation through the depth as
// a horizontal bar chart pivoting at the neutral axis.
func DrawStrainProfile(d SectionData) string {
	var sb strings.Builder

	height := 15
	width := 30

	epsSt := d.steelStrain()
	maxStrain := is456.EpsilonCU
	if epsSt > maxStrain {
		maxStrain = epsSt
	}
	scale := float64(width) / maxStrain

	naLine := int(d.Xu / d.OverallDepth * float64(height))
	tensionLine := int(d.EffectiveDepth / d.OverallDepth * float64(height))

	sb.WriteString("\n")
	sb.WriteString("  STRAIN PROFILE\n")
	sb.WriteString("  ──────────────\n")

	for i := 0; i <= height; i++ {
		depth := float64(i) / float64(height) * d.OverallDepth
		var strain float64
		if d.Xu > 0 {
			if depth <= d.Xu {
				strain = is456.EpsilonCU * (d.Xu - depth) / d.Xu
			} else {
				strain = is456.EpsilonCU * (depth - d.Xu) / d.Xu
			}
		}
		bar := strings.Repeat("█", int(strain*scale))

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  top    │%s▶ εcu = %.4f\n", bar, is456.EpsilonCU))
		case i == naLine:
			sb.WriteString("  N.A.   ┼\n")
		case i == tensionLine:
			sb.WriteString(fmt.Sprintf("  steel  │%s▶ εst = %.4f\n", bar, epsSt))
		default:
			sb.WriteString(fmt.Sprintf("         │%s\n", bar))
		}
	}
	return sb.String()
}

// DrawSummaryBox frames a title and result lines in a double-rule box.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}
