// Package kinematics turns per-particle detector observables into energies,
// momenta and the angular quantities used to select and bin events.
package kinematics

import "github.com/decibelcooper/pionsel/vecmath"

// Rest masses in GeV.
const (
	MuonMass = 0.105658
	PionMass = 0.13957
)

// DefaultBeam is the average neutrino beam direction at the near detector.
var DefaultBeam = vecmath.MustUnit(0.0011401229, -0.061901052, 0.99807253)

// prong muon kinetic energy, length in cm
const (
	muProng0 = 0.0201737
	muProng1 = 0.00206646
)

// Kalman muon energy fits, lengths in m
var (
	muActive      = poly{1.67012e-01, 1.79305e-01, 3.74708e-03, -1.54232e-04}
	muCatcher     = poly{1.31325e-01, 5.35146e-01}
	muActiveBoth  = poly{1.21130e-02, 1.97903e-01, 7.82459e-04}
	muKalmanScale = 1 / (1 - 7.65237e-4)
)

// calorimetric pion kinetic energy
var piCal = poly{
	0.348592, -5.98497, 54.545, -207.531, 361.683,
	-41.3106, -941.125, 1647.79, -1210.14, 343.351,
}

// Kalman pion energy correction
const piKalmanScale = 1 / (1 + 3.82389e-2)

// poly holds polynomial coefficients, constant term first.
type poly []float64

func (p poly) eval(x float64) float64 {
	var sum float64
	for i := len(p) - 1; i >= 0; i-- {
		sum = sum*x + p[i]
	}
	return sum
}
