package shear

// Torsion conversion per IS 456 Cl. 41.3/41.4: torsion is not designed
// for directly; it inflates the shear and moment demands before the
// flexure and shear engines run.

// EquivalentShear returns Ve = Vu + 1.6*Tu/b in kN, with Tu in kN·m and
// b in mm (Cl. 41.3.1).
func EquivalentShear(vu, tu, b float64) float64 {
	if tu <= 0 {
		return vu
	}
	return vu + 1.6*tu/(b/1e3)
}

// EquivalentMoment returns Me1 = Mu + Mt in kN·m, where
// Mt = Tu*(1 + D/b)/1.7 (Cl. 41.4.2).
func EquivalentMoment(mu, tu, b, overallDepth float64) float64 {
	if tu <= 0 {
		return mu
	}
	mt := tu * (1 + overallDepth/b) / 1.7
	return mu + mt
}
