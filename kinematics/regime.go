package kinematics

// Regime names the estimator chosen for a particle's energy and direction.
type Regime int

const (
	// RegimeNone means no estimator applies and the particle is Invalid.
	RegimeNone Regime = iota
	// RegimeTracked uses the Kalman track.
	RegimeTracked
	// RegimeCalorimetric uses the calorimetric energy of the prong.
	RegimeCalorimetric
	// RegimeProng uses the prong-based estimate.
	RegimeProng
)

func (r Regime) String() string {
	switch r {
	case RegimeNone:
		return "none"
	case RegimeTracked:
		return "tracked"
	case RegimeCalorimetric:
		return "calorimetric"
	case RegimeProng:
		return "prong"
	}
	return "unknown"
}

// PionRegime picks the pion estimator. Without Kalman tracking the
// calorimetric fit always applies. With it the checks run in a fixed order:
// exactly two tracks and a tracked energy above the pion mass, then a
// positive prong kinetic energy, then nothing.
func PionRegime(p PionInfo, kalman bool) Regime {
	if !kalman {
		return RegimeCalorimetric
	}
	switch {
	case p.NTracks == 2 && pionTrackedE(p.ProngKE) > PionMass:
		return RegimeTracked
	case p.ProngKE > 0:
		return RegimeProng
	}
	return RegimeNone
}

// MuonRegime picks the muon estimator. Kalman tracking requires at least one
// track; there is no prong fallback for the muon.
func MuonRegime(m MuonInfo, kalman bool) Regime {
	switch {
	case !kalman:
		return RegimeProng
	case m.NTracks >= 1:
		return RegimeTracked
	}
	return RegimeNone
}
