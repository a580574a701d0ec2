package kinematics

import (
	"math"

	"go-hep.org/x/hep/fmom"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/decibelcooper/pionsel/vecmath"
)

// Reco holds the quantities reconstructed for one muon+pion candidate pair.
type Reco struct {
	MuonRegime Regime
	PionRegime Regime

	MuonKE Quantity
	MuonE  Quantity
	MuonP  Quantity
	MuonPt Quantity

	PionKE Quantity
	PionE  Quantity
	PionP  Quantity
	PionPt Quantity

	OpeningAngle Quantity // radians between muon and pion
	VisibleAngle Quantity // radians between muon+pion momentum and the beam
	MissingPt    Quantity
	RecoT        Quantity // GeV²
}

// Reconstructor computes Reco values against a fixed beam direction.
// Kalman selects the track-count-aware estimators.
type Reconstructor struct {
	Beam   vecmath.Dir
	Kalman bool
}

// NewReconstructor returns a reconstructor for the given beam direction.
func NewReconstructor(beam vecmath.Dir, kalman bool) *Reconstructor {
	if beam.IsZero() {
		beam = DefaultBeam
	}
	return &Reconstructor{Beam: beam, Kalman: kalman}
}

// MuonEnergy returns the total muon energy.
func (r *Reconstructor) MuonEnergy(m MuonInfo) Quantity {
	return MuonE(m, r.Kalman)
}

// PionEnergy returns the total pion energy.
func (r *Reconstructor) PionEnergy(p PionInfo) Quantity {
	return PionE(p, r.Kalman)
}

// MuonP4 returns the muon four-momentum, or false when it cannot be built.
func (r *Reconstructor) MuonP4(m MuonInfo) (fmom.PxPyPzE, bool) {
	return fourMomentum(r.MuonEnergy(m), MuonMass, m.dir(r.Kalman))
}

// PionP4 returns the pion four-momentum, or false when it cannot be built.
func (r *Reconstructor) PionP4(p PionInfo) (fmom.PxPyPzE, bool) {
	return fourMomentum(r.PionEnergy(p), PionMass, p.dir(r.Kalman))
}

// Pt returns the momentum transverse to the beam.
func (r *Reconstructor) Pt(p r3.Vec) float64 {
	return r3.Norm(vecmath.Transverse(p, r.Beam))
}

// RecoT returns (Σ(E − p·beam))² + |Σ p_T|² for the muon and pion.
func (r *Reconstructor) RecoT(mu, pi fmom.PxPyPzE) float64 {
	pmu, ppi := vec(mu), vec(pi)
	dE := (mu.E() - vecmath.Along(pmu, r.Beam)) + (pi.E() - vecmath.Along(ppi, r.Beam))
	pt := vecmath.Transverse(r3.Add(pmu, ppi), r.Beam)
	return dE*dE + r3.Norm2(pt)
}

// Reconstruct fills every Reco field. Pair quantities are Invalid unless
// both particles are valid.
func (r *Reconstructor) Reconstruct(m MuonInfo, p PionInfo) Reco {
	reco := Reco{
		MuonRegime: MuonRegime(m, r.Kalman),
		PionRegime: PionRegime(p, r.Kalman),
		MuonE:      r.MuonEnergy(m),
		PionE:      r.PionEnergy(p),
	}
	reco.MuonKE = reco.MuonE.then(kineticEnergy(MuonMass))
	reco.PionKE = reco.PionE.then(kineticEnergy(PionMass))
	reco.MuonP = reco.MuonE.then(func(e float64) Quantity { return Momentum(e, MuonMass) })
	reco.PionP = reco.PionE.then(func(e float64) Quantity { return Momentum(e, PionMass) })

	mu, muOK := r.MuonP4(m)
	if muOK {
		reco.MuonPt = Valid(r.Pt(vec(mu)))
	}
	pi, piOK := r.PionP4(p)
	if piOK {
		reco.PionPt = Valid(r.Pt(vec(pi)))
	}
	if !muOK || !piOK {
		return reco
	}

	reco.OpeningAngle = Valid(vecmath.Angle(m.dir(r.Kalman), p.dir(r.Kalman)))

	tot := r3.Add(vec(mu), vec(pi))
	if vis, err := vecmath.DirOf(tot); err == nil {
		reco.VisibleAngle = Valid(vecmath.Angle(vis, r.Beam))
	}
	reco.MissingPt = Valid(r.Pt(tot))
	reco.RecoT = Valid(r.RecoT(mu, pi))
	return reco
}

func fourMomentum(e Quantity, m float64, dir vecmath.Dir) (fmom.PxPyPzE, bool) {
	if dir.IsZero() {
		return fmom.PxPyPzE{}, false
	}
	energy, ok := e.Value()
	if !ok {
		return fmom.PxPyPzE{}, false
	}
	p, ok := Momentum(energy, m).Value()
	if !ok {
		return fmom.PxPyPzE{}, false
	}
	v := vecmath.Scale(p, dir)
	return fmom.NewPxPyPzE(v.X, v.Y, v.Z, energy), true
}

func vec(p fmom.PxPyPzE) r3.Vec {
	return r3.Vec{X: p.Px(), Y: p.Py(), Z: p.Pz()}
}

// Degrees converts an angle quantity to degrees.
func Degrees(q Quantity) Quantity {
	return q.then(func(v float64) Quantity { return Valid(v * 180 / math.Pi) })
}
