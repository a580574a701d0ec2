package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibelcooper/pionsel/vecmath"
)

func TestQuantity(t *testing.T) {
	q := Valid(1.5)
	v, ok := q.Value()
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, "1.5", q.String())

	assert.False(t, Valid(math.NaN()).OK())
	assert.False(t, Valid(math.Inf(1)).OK())
	assert.Equal(t, -1.0, Invalid.Or(-1))
	assert.Equal(t, "invalid", Invalid.String())
}

func TestMomentum(t *testing.T) {
	assert.False(t, Momentum(0.1, MuonMass).OK())
	assert.Equal(t, Valid(0), Momentum(MuonMass, MuonMass))

	p, ok := Momentum(1, PionMass).Value()
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt(1-PionMass*PionMass), p, 1e-12)
}

func TestMuonProngKE(t *testing.T) {
	v, ok := MuonProngKE(100).Value()
	require.True(t, ok)
	assert.InDelta(t, 0.0201737+0.206646, v, 1e-9)

	assert.True(t, MuonProngKE(0).OK())
	assert.False(t, MuonProngKE(-1).OK())
}

func TestMuonTrackE(t *testing.T) {
	const scale = 1 / (1 - 7.65237e-4)
	for _, tc := range []struct {
		name            string
		active, catcher float64
		want            float64
		ok              bool
	}{
		{"active only", 150, -30, (0.167012 + 0.179305*1.2 + 3.74708e-3*1.44 - 1.54232e-4*1.728) * scale, true},
		{"both", 200, 50, ((0.131325 + 0.535146*0.5) + (0.012113 + 0.197903*2 + 7.82459e-4*4)) * scale, true},
		{"starts in catcher", -10, 50, 0, false},
		{"active only, no net length", 10, -20, 0, false},
		{"on the plane", 100, 0, 0, false},
		{"neither", 0, 0, 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := MuonTrackE(tc.active, tc.catcher).Value()
			require.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.want, v, 1e-9)
		})
	}
}

func TestMuonRegime(t *testing.T) {
	m := MuonInfo{Length: 100, NTracks: 1, TrkActiveLength: 200, TrkCatcherLength: -50}
	assert.Equal(t, RegimeTracked, MuonRegime(m, true))
	assert.Equal(t, RegimeProng, MuonRegime(m, false))

	m.NTracks = 0
	assert.Equal(t, RegimeNone, MuonRegime(m, true))
	assert.False(t, MuonE(m, true).OK())

	e, ok := MuonE(m, false).Value()
	require.True(t, ok)
	assert.InDelta(t, 0.0201737+0.206646+MuonMass, e, 1e-9)
}

func TestPionCalKE(t *testing.T) {
	v, ok := PionCalKE(0).Value()
	require.True(t, ok)
	assert.InDelta(t, 0.348592, v, 1e-12)

	v, ok = PionCalKE(0.3).Value()
	require.True(t, ok)
	assert.InDelta(t, 0.28971, v, 1e-4)

	assert.False(t, PionCalKE(-1).OK())
}

func TestPionRegimeOrder(t *testing.T) {
	const scale = 1 / (1 + 3.82389e-2)
	p := PionInfo{CalE: 0.4, ProngKE: 0.3, NTracks: 2}

	assert.Equal(t, RegimeCalorimetric, PionRegime(p, false))
	assert.Equal(t, RegimeTracked, PionRegime(p, true))
	e, ok := PionE(p, true).Value()
	require.True(t, ok)
	assert.InDelta(t, (0.3+PionMass)*scale, e, 1e-12)

	// two tracks but the tracked energy is below the pion mass
	p.ProngKE = 0.001
	assert.Equal(t, RegimeProng, PionRegime(p, true))
	e, ok = PionE(p, true).Value()
	require.True(t, ok)
	assert.InDelta(t, 0.001+PionMass, e, 1e-12)

	p.ProngKE = 0.3
	p.NTracks = 1
	assert.Equal(t, RegimeProng, PionRegime(p, true))

	p.ProngKE = 0
	assert.Equal(t, RegimeNone, PionRegime(p, true))
	assert.False(t, PionE(p, true).OK())

	// the calorimetric fit ignores the track count
	assert.True(t, PionE(p, false).OK())
}

func TestPtAlongAndAcrossBeam(t *testing.T) {
	m := MuonInfo{Length: 300, Dir: vecmath.MustUnit(0, 0, 1)}
	p := PionInfo{CalE: 0.3, Dir: vecmath.MustUnit(0, 1, 0)}

	along := NewReconstructor(vecmath.MustUnit(0, 0, 1), false).Reconstruct(m, p)
	pmu, ok := along.MuonP.Value()
	require.True(t, ok)
	assert.InDelta(t, 0, along.MuonPt.Or(-1), 1e-12)

	across := NewReconstructor(vecmath.MustUnit(1, 0, 0), false).Reconstruct(m, p)
	assert.InDelta(t, pmu, across.MuonPt.Or(-1), 1e-12)
}

func TestRecoTCollinear(t *testing.T) {
	beam := vecmath.MustUnit(0, 0, 1)
	r := NewReconstructor(beam, false)
	m := MuonInfo{Length: 250, Dir: beam}
	p := PionInfo{CalE: 0.25, Dir: beam}

	reco := r.Reconstruct(m, p)
	emu, _ := reco.MuonE.Value()
	pmu, _ := reco.MuonP.Value()
	epi, _ := reco.PionE.Value()
	ppi, _ := reco.PionP.Value()
	want := math.Pow((emu-pmu)+(epi-ppi), 2)

	got, ok := reco.RecoT.Value()
	require.True(t, ok)
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 0, reco.OpeningAngle.Or(-1), 1e-12)
	assert.InDelta(t, 0, reco.VisibleAngle.Or(-1), 1e-6)
	assert.InDelta(t, 0, reco.MissingPt.Or(-1), 1e-12)
}

func TestRecoTTransverse(t *testing.T) {
	beam := vecmath.MustUnit(0, 0, 1)
	r := NewReconstructor(beam, false)
	m := MuonInfo{Length: 250, Dir: vecmath.MustUnit(1, 0, 1)}
	p := PionInfo{CalE: 0.25, Dir: vecmath.MustUnit(-1, 0, 1)}

	mu, ok := r.MuonP4(m)
	require.True(t, ok)
	pi, ok := r.PionP4(p)
	require.True(t, ok)

	dE := (mu.E() - mu.Pz()) + (pi.E() - pi.Pz())
	ptx := mu.Px() + pi.Px()
	assert.InDelta(t, dE*dE+ptx*ptx, r.RecoT(mu, pi), 1e-12)
	assert.InDelta(t, 90, Degrees(r.Reconstruct(m, p).OpeningAngle).Or(-1), 1e-9)
}

func TestInvalidPropagates(t *testing.T) {
	r := NewReconstructor(vecmath.Dir{}, false)
	assert.Equal(t, DefaultBeam, r.Beam)

	m := MuonInfo{Length: 250, Dir: vecmath.MustUnit(0, 0, 1)}
	p := PionInfo{CalE: -1, Dir: vecmath.MustUnit(0, 1, 0)} // no pion

	reco := r.Reconstruct(m, p)
	assert.True(t, reco.MuonE.OK())
	assert.True(t, reco.MuonPt.OK())
	assert.False(t, reco.PionE.OK())
	assert.False(t, reco.PionPt.OK())
	assert.False(t, reco.RecoT.OK())
	assert.False(t, reco.OpeningAngle.OK())
	assert.False(t, reco.MissingPt.OK())

	// missing direction
	p = PionInfo{CalE: 0.3}
	reco = r.Reconstruct(m, p)
	assert.True(t, reco.PionE.OK())
	assert.False(t, reco.PionPt.OK())
	assert.False(t, reco.RecoT.OK())
}
