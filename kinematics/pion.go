package kinematics

import "github.com/decibelcooper/pionsel/vecmath"

// PionInfo carries the pion candidate observables.
type PionInfo struct {
	CalE    float64 // calorimetric energy, GeV
	ProngKE float64 // prong kinetic energy, GeV
	Dir     vecmath.Dir

	NTracks int
	TrkDir  vecmath.Dir
}

// PionCalKE is the single-particle calorimetric estimator. A missing pion
// carries a negative calorimetric energy.
func PionCalKE(calE float64) Quantity {
	if calE < 0 {
		return Invalid
	}
	return nonNegative(piCal.eval(calE))
}

func pionTrackedE(prongKE float64) float64 {
	return (prongKE + PionMass) * piKalmanScale
}

// PionE returns the total pion energy from the regime PionRegime selects.
func PionE(p PionInfo, kalman bool) Quantity {
	switch PionRegime(p, kalman) {
	case RegimeCalorimetric:
		return PionCalKE(p.CalE).then(energyFromKE(PionMass))
	case RegimeTracked:
		return Valid(pionTrackedE(p.ProngKE))
	case RegimeProng:
		return Valid(p.ProngKE + PionMass)
	}
	return Invalid
}

func (p PionInfo) dir(kalman bool) vecmath.Dir {
	if PionRegime(p, kalman) == RegimeTracked {
		return p.TrkDir
	}
	return p.Dir
}

func nonNegative(v float64) Quantity {
	if v < 0 {
		return Invalid
	}
	return Valid(v)
}
