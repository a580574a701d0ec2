// Package selection evaluates the configurable cut cascade on reconstructed
// candidates.
package selection

import (
	"fmt"
	"strings"

	"github.com/decibelcooper/pionsel/kinematics"
)

// Mask is a set of feature-level criteria.
type Mask uint8

const (
	MuonID Mask = 1 << iota
	PionID
	RecoT
	Kinematic
	HitInfo

	None Mask = 0
	All       = MuonID | PionID | RecoT | Kinematic | HitInfo
)

// canonical evaluation order
var order = []Mask{MuonID, PionID, RecoT, Kinematic, HitInfo}

var names = map[Mask]string{
	MuonID:    "muonID",
	PionID:    "pionID",
	RecoT:     "recoT",
	Kinematic: "kinematic",
	HitInfo:   "hitInfo",
}

// Has reports whether every criterion of c is in m.
func (m Mask) Has(c Mask) bool { return m&c == c }

func (m Mask) String() string {
	if m == None {
		return "none"
	}
	var parts []string
	for _, c := range order {
		if m.Has(c) {
			parts = append(parts, names[c])
		}
	}
	return strings.Join(parts, "+")
}

// ParseMask builds a mask from criterion names.
func ParseMask(list []string) (Mask, error) {
	var m Mask
	for _, s := range list {
		found := false
		for c, name := range names {
			if strings.EqualFold(s, name) {
				m |= c
				found = true
				break
			}
		}
		if !found {
			return None, fmt.Errorf("selection: unknown criterion %q", s)
		}
	}
	return m, nil
}

// Thresholds are the cut values of the five criteria.
type Thresholds struct {
	MuonID    float64 `mapstructure:"muon_id" yaml:"muon_id"`
	PionID    float64 `mapstructure:"pion_id" yaml:"pion_id"`
	Kinematic float64 `mapstructure:"kinematic" yaml:"kinematic"`
	HitInfo   float64 `mapstructure:"hit_info" yaml:"hit_info"`
	RecoTMin  float64 `mapstructure:"recot_min" yaml:"recot_min"`
}

// DefaultThresholds are the nominal analysis cuts.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MuonID:    0.4,
		PionID:    0.3,
		Kinematic: 0.84,
		HitInfo:   0.46,
		RecoTMin:  0,
	}
}

// Candidate holds what the selector looks at for one event.
type Candidate struct {
	MuonID     float64
	PionID     float64
	KinScore   float64
	HitScore   float64
	RecoT      kinematics.Quantity
	PionCalE   float64
	MuonLength float64
}

// Predicate is one named cut. Baseline gates have a zero Flag.
type Predicate struct {
	Name string
	Flag Mask
	Pass func(Candidate) bool
}

// Baseline returns the particle-existence gates evaluated ahead of any
// feature-level criterion.
func Baseline() []Predicate {
	return []Predicate{
		{Name: "pionExists", Pass: func(c Candidate) bool { return c.PionCalE >= 0 }},
		{Name: "muonExists", Pass: func(c Candidate) bool { return c.MuonLength >= 0 }},
	}
}

// Criteria returns the five feature-level predicates in canonical order.
// Comparison directions differ per criterion and must stay as written.
func Criteria(th Thresholds) []Predicate {
	return []Predicate{
		{Name: names[MuonID], Flag: MuonID, Pass: func(c Candidate) bool { return !(c.MuonID < th.MuonID) }},
		{Name: names[PionID], Flag: PionID, Pass: func(c Candidate) bool { return c.PionID > th.PionID }},
		{Name: names[RecoT], Flag: RecoT, Pass: func(c Candidate) bool {
			t, ok := c.RecoT.Value()
			return ok && t >= th.RecoTMin
		}},
		{Name: names[Kinematic], Flag: Kinematic, Pass: func(c Candidate) bool { return c.KinScore > th.Kinematic }},
		{Name: names[HitInfo], Flag: HitInfo, Pass: func(c Candidate) bool { return c.HitScore > th.HitInfo }},
	}
}
