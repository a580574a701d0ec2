// Package event defines the flat event record consumed by the analysis and
// the stream interface the record sources implement.
package event

import (
	"github.com/decibelcooper/pionsel/kinematics"
	"github.com/decibelcooper/pionsel/vecmath"
)

// Kind distinguishes recorded data from simulation.
type Kind int

const (
	KindSimulation Kind = iota
	KindData
)

func (k Kind) String() string {
	if k == KindData {
		return "data"
	}
	return "simulation"
}

// Interaction type codes.
const (
	ModeQE  = 0
	ModeRES = 1
	ModeDIS = 2
	ModeCOH = 3
	ModeMEC = 10
)

// Event is one reconstructed interaction. Integer-valued observables are
// stored as float64 like every other field.
type Event struct {
	MuonID   float64
	PionID   float64
	KinScore float64
	HitScore float64

	// prong observables
	MuonLength float64
	MuonDirX   float64
	MuonDirY   float64
	MuonDirZ   float64

	PionCalE    float64
	PionProngKE float64
	PionDirX    float64
	PionDirY    float64
	PionDirZ    float64

	// Kalman track observables; the muon lengths are signed distances to
	// the active/catcher transition plane

	NKalmanTracks        float64
	MuonTrkActiveLength  float64
	MuonTrkCatcherLength float64
	MuonTrkDirX          float64
	MuonTrkDirY          float64
	MuonTrkDirZ          float64
	PionTrkDirX          float64
	PionTrkDirY          float64
	PionTrkDirZ          float64

	NProngs float64
	Weight  float64

	// simulation truth
	IntType  float64
	IsCC     float64
	IsSignal float64
}

// Muon returns the muon candidate observables.
func (e *Event) Muon() kinematics.MuonInfo {
	return kinematics.MuonInfo{
		Length:           e.MuonLength,
		Dir:              dir(e.MuonDirX, e.MuonDirY, e.MuonDirZ),
		NTracks:          int(e.NKalmanTracks),
		TrkActiveLength:  e.MuonTrkActiveLength,
		TrkCatcherLength: e.MuonTrkCatcherLength,
		TrkDir:           dir(e.MuonTrkDirX, e.MuonTrkDirY, e.MuonTrkDirZ),
	}
}

// Pion returns the pion candidate observables.
func (e *Event) Pion() kinematics.PionInfo {
	return kinematics.PionInfo{
		CalE:    e.PionCalE,
		ProngKE: e.PionProngKE,
		Dir:     dir(e.PionDirX, e.PionDirY, e.PionDirZ),
		NTracks: int(e.NKalmanTracks),
		TrkDir:  dir(e.PionTrkDirX, e.PionTrkDirY, e.PionTrkDirZ),
	}
}

// Population classifies the event. Data events are always Data.
func (e *Event) Population(k Kind) Population {
	switch {
	case k == KindData:
		return Data
	case e.IsSignal != 0:
		return Signal
	case e.IsCC == 0:
		return NC
	}
	switch int(e.IntType) {
	case ModeQE:
		return QE
	case ModeRES:
		return RES
	case ModeDIS:
		return DIS
	case ModeMEC:
		return MEC
	}
	return Other
}

// a missing direction leaves the zero Dir, which reconstruction rejects
func dir(x, y, z float64) vecmath.Dir {
	d, err := vecmath.Unit(x, y, z)
	if err != nil {
		return vecmath.Dir{}
	}
	return d
}
