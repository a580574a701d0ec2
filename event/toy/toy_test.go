package toy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/pionsel/event"
	"github.com/decibelcooper/pionsel/kinematics"
)

func TestDeterministic(t *testing.T) {
	a := New(42, DefaultMix).Events(50, event.KindSimulation)
	b := New(42, DefaultMix).Events(50, event.KindSimulation)
	assert.Equal(t, a, b)

	c := New(43, DefaultMix).Events(50, event.KindSimulation)
	assert.NotEqual(t, a, c)
}

func TestPopulations(t *testing.T) {
	g := New(1, DefaultMix)
	g.MissingRate = 0

	counts := make(map[event.Population]int)
	evs := g.Events(4000, event.KindSimulation)
	for i := range evs {
		ev := &evs[i]
		counts[ev.Population(event.KindSimulation)]++

		assert.GreaterOrEqual(t, ev.MuonLength, 0.0)
		assert.GreaterOrEqual(t, ev.PionCalE, 0.0)
		for _, s := range []float64{ev.MuonID, ev.PionID, ev.KinScore, ev.HitScore} {
			assert.True(t, s >= 0 && s <= 1, "score %v", s)
		}
	}
	frac := func(p event.Population) float64 { return float64(counts[p]) / float64(len(evs)) }
	assert.InDelta(t, DefaultMix.Signal, frac(event.Signal), 0.04)
	assert.InDelta(t, DefaultMix.NC, frac(event.NC), 0.04)
	assert.InDelta(t, DefaultMix.COH, frac(event.Other), 0.03)
}

func TestDataHasNoTruth(t *testing.T) {
	for _, ev := range New(7, DefaultMix).Events(200, event.KindData) {
		assert.Zero(t, ev.IsSignal)
		assert.Zero(t, ev.IsCC)
		assert.Zero(t, ev.IntType)
	}
}

func TestReconstructable(t *testing.T) {
	g := New(3, DefaultMix)
	g.MissingRate = 0
	r := kinematics.NewReconstructor(kinematics.DefaultBeam, false)

	valid := 0
	evs := g.Events(500, event.KindSimulation)
	for i := range evs {
		if r.Reconstruct(evs[i].Muon(), evs[i].Pion()).RecoT.OK() {
			valid++
		}
	}
	require.NotZero(t, valid)
	assert.Greater(t, float64(valid)/float64(len(evs)), 0.95)
}
