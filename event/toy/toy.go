// Package toy generates synthetic events with roughly realistic score and
// kinematic distributions, for exercising the selection without detector
// data.
package toy

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/decibelcooper/pionsel/event"
)

// Mix is the relative rate of each simulated category.
type Mix struct {
	Signal, QE, RES, DIS, MEC, COH, NC float64
}

// DefaultMix is a CC1π±-enriched sample after preselection.
var DefaultMix = Mix{Signal: 0.30, QE: 0.15, RES: 0.20, DIS: 0.10, MEC: 0.05, COH: 0.05, NC: 0.15}

func (m Mix) weights() []float64 {
	return []float64{m.Signal, m.QE, m.RES, m.DIS, m.MEC, m.COH, m.NC}
}

// category indices into Mix.weights
const (
	catSignal = iota
	catQE
	catRES
	catDIS
	catMEC
	catCOH
	catNC
)

// Generator draws events from a seeded source.
type Generator struct {
	// MissingRate is the fraction of events without a muon or pion.
	MissingRate float64

	src    rand.Source
	cat    distuv.Categorical
	unit   distuv.Uniform
	hi     distuv.Beta
	lo     distuv.Beta
	angle  distuv.Normal
	calE   distuv.Gamma
	length distuv.Uniform
	ntrk   distuv.Categorical
}

// New returns a generator. Equal seeds give equal sequences.
func New(seed uint64, mix Mix) *Generator {
	src := rand.NewSource(seed)
	return &Generator{
		MissingRate: 0.02,
		src:         src,
		cat:         distuv.NewCategorical(mix.weights(), src),
		unit:        distuv.Uniform{Min: 0, Max: 1, Src: src},
		hi:          distuv.Beta{Alpha: 5, Beta: 1.5, Src: src},
		lo:          distuv.Beta{Alpha: 1.5, Beta: 4, Src: src},
		angle:       distuv.Normal{Mu: 0, Sigma: 0.35, Src: src},
		calE:        distuv.Gamma{Alpha: 2.5, Beta: 9, Src: src},
		length:      distuv.Uniform{Min: 40, Max: 900, Src: src},
		ntrk:        distuv.NewCategorical([]float64{0.1, 0.3, 0.5, 0.1}, src),
	}
}

// Events returns n events of kind k. Data events carry no truth.
func (g *Generator) Events(n int, k event.Kind) []event.Event {
	out := make([]event.Event, n)
	for i := range out {
		out[i] = g.event(k)
	}
	return out
}

func (g *Generator) event(k event.Kind) event.Event {
	cat := int(g.cat.Rand())
	signal := cat == catSignal
	ev := event.Event{Weight: 1}

	// identification scores peak high for the particles really present
	ev.MuonID = g.score(cat != catNC)
	ev.PionID = g.score(signal || cat == catRES || cat == catCOH)
	ev.KinScore = g.score(signal)
	ev.HitScore = g.score(signal || cat == catRES)

	ev.MuonLength = g.length.Rand()
	ev.MuonDirX, ev.MuonDirY, ev.MuonDirZ = g.direction(1)
	ev.PionCalE = math.Min(g.calE.Rand(), 0.9)
	ev.PionProngKE = 0.85 * ev.PionCalE
	ev.PionDirX, ev.PionDirY, ev.PionDirZ = g.direction(2.5)
	ev.NProngs = 2

	ev.NKalmanTracks = g.ntrk.Rand()
	if ev.NKalmanTracks >= 1 {
		g.kalmanMuon(&ev)
	}
	if ev.NKalmanTracks >= 2 {
		ev.PionTrkDirX, ev.PionTrkDirY, ev.PionTrkDirZ = g.smear(ev.PionDirX, ev.PionDirY, ev.PionDirZ)
	}

	if g.unit.Rand() < g.MissingRate {
		if g.unit.Rand() < 0.5 {
			ev.MuonLength = -5
		} else {
			ev.PionCalE = -5
		}
	}

	if k == event.KindSimulation {
		g.truth(&ev, cat)
	}
	return ev
}

func (g *Generator) score(likely bool) float64 {
	if likely {
		return g.hi.Rand()
	}
	return g.lo.Rand()
}

// direction draws a unit vector around the z axis with the polar spread
// scaled by width.
func (g *Generator) direction(width float64) (x, y, z float64) {
	theta := math.Min(math.Abs(g.angle.Rand()*width), math.Pi)
	phi := 2 * math.Pi * g.unit.Rand()
	return math.Sin(theta) * math.Cos(phi), math.Sin(theta) * math.Sin(phi), math.Cos(theta)
}

func (g *Generator) smear(x, y, z float64) (float64, float64, float64) {
	const s = 0.02
	return x + s*g.angle.Rand(), y + s*g.angle.Rand(), z + s*g.angle.Rand()
}

// kalmanMuon splits the track around the active/catcher plane.
func (g *Generator) kalmanMuon(ev *event.Event) {
	l := ev.MuonLength
	switch u := g.unit.Rand(); {
	case u < 0.6: // contained in the active region
		ev.MuonTrkActiveLength = l * (1 + g.unit.Rand())
		ev.MuonTrkCatcherLength = -(ev.MuonTrkActiveLength - l)
	case u < 0.95: // crosses into the catcher
		f := 0.3 + 0.6*g.unit.Rand()
		ev.MuonTrkActiveLength = f * l
		ev.MuonTrkCatcherLength = (1 - f) * l
	default: // starts in the catcher
		ev.MuonTrkActiveLength = -10 * g.unit.Rand()
		ev.MuonTrkCatcherLength = l
	}
	ev.MuonTrkDirX, ev.MuonTrkDirY, ev.MuonTrkDirZ = g.smear(ev.MuonDirX, ev.MuonDirY, ev.MuonDirZ)
}

func (g *Generator) truth(ev *event.Event, cat int) {
	ev.IsCC = 1
	switch cat {
	case catSignal:
		ev.IsSignal = 1
		ev.IntType = event.ModeRES
	case catQE:
		ev.IntType = event.ModeQE
	case catRES:
		ev.IntType = event.ModeRES
	case catDIS:
		ev.IntType = event.ModeDIS
	case catMEC:
		ev.IntType = event.ModeMEC
	case catCOH:
		ev.IntType = event.ModeCOH
	case catNC:
		ev.IsCC = 0
		ev.IntType = float64([]int{event.ModeQE, event.ModeRES, event.ModeDIS}[int(3*g.unit.Rand())%3])
	}
}
