package kinematics

import "github.com/decibelcooper/pionsel/vecmath"

// MuonInfo carries the muon candidate observables.
type MuonInfo struct {
	// Length is the prong length in cm. A missing muon carries a negative
	// length.
	Length float64
	Dir    vecmath.Dir

	// Kalman track summary. NTracks counts tracks in the event. The lengths
	// are signed distances in cm from the track ends to the plane between
	// the active region and the muon catcher.
	NTracks          int
	TrkActiveLength  float64
	TrkCatcherLength float64
	TrkDir           vecmath.Dir
}

// MuonProngKE estimates the muon kinetic energy from the prong length.
func MuonProngKE(length float64) Quantity {
	if length < 0 {
		return Invalid
	}
	return Valid(muProng0 + muProng1*length)
}

// lengthPattern says where the active/catcher transition plane lies
// relative to the track.
type lengthPattern int

const (
	lengthNone    lengthPattern = iota
	lengthActive                // plane beyond the track end
	lengthBoth                  // plane crossed by the track
	lengthCatcher               // plane before the track start
)

func muonLengthPattern(active, catcher float64) lengthPattern {
	switch {
	case active > 0 && catcher < 0:
		return lengthActive
	case active > 0 && catcher > 0:
		return lengthBoth
	case active < 0 && catcher > 0:
		return lengthCatcher
	}
	return lengthNone
}

// MuonTrackE estimates the total muon energy from the signed Kalman track
// lengths. Tracks starting in the catcher have no fit and are Invalid.
func MuonTrackE(active, catcher float64) Quantity {
	var e float64
	switch muonLengthPattern(active, catcher) {
	case lengthActive:
		e = fit(muActive, (active+catcher)/100)
	case lengthBoth:
		e = fit(muCatcher, catcher/100) + fit(muActiveBoth, active/100)
	default:
		return Invalid
	}
	e *= muKalmanScale
	if e <= 0 {
		return Invalid
	}
	return Valid(e)
}

// fit evaluates p at a positive length and contributes nothing otherwise.
func fit(p poly, length float64) float64 {
	if length <= 0 {
		return 0
	}
	return p.eval(length)
}

func (m MuonInfo) dir(kalman bool) vecmath.Dir {
	if MuonRegime(m, kalman) == RegimeTracked {
		return m.TrkDir
	}
	return m.Dir
}

// MuonE returns the total muon energy from the regime MuonRegime selects.
func MuonE(m MuonInfo, kalman bool) Quantity {
	switch MuonRegime(m, kalman) {
	case RegimeProng:
		return MuonProngKE(m.Length).then(energyFromKE(MuonMass))
	case RegimeTracked:
		return MuonTrackE(m.TrkActiveLength, m.TrkCatcherLength)
	}
	return Invalid
}
