package analysis

import (
	"strings"

	"github.com/decibelcooper/pionsel/kinematics"
)

// Variable is a reconstructed quantity that can be histogrammed.
type Variable struct {
	Name  string
	Value func(kinematics.Reco) kinematics.Quantity
}

// VarRecoT is the discriminant whose tail integrals are also kept.
const VarRecoT = "recoT"

var variables = []Variable{
	{VarRecoT, func(r kinematics.Reco) kinematics.Quantity { return r.RecoT }},
	{"muonE", func(r kinematics.Reco) kinematics.Quantity { return r.MuonE }},
	{"muonP", func(r kinematics.Reco) kinematics.Quantity { return r.MuonP }},
	{"muonPt", func(r kinematics.Reco) kinematics.Quantity { return r.MuonPt }},
	{"pionE", func(r kinematics.Reco) kinematics.Quantity { return r.PionE }},
	{"pionKE", func(r kinematics.Reco) kinematics.Quantity { return r.PionKE }},
	{"pionP", func(r kinematics.Reco) kinematics.Quantity { return r.PionP }},
	{"pionPt", func(r kinematics.Reco) kinematics.Quantity { return r.PionPt }},
	{"openingAngle", func(r kinematics.Reco) kinematics.Quantity { return kinematics.Degrees(r.OpeningAngle) }},
	{"visibleAngle", func(r kinematics.Reco) kinematics.Quantity { return kinematics.Degrees(r.VisibleAngle) }},
	{"missingPt", func(r kinematics.Reco) kinematics.Quantity { return r.MissingPt }},
}

// Variables lists the variables that can be binned.
func Variables() []Variable {
	return append([]Variable(nil), variables...)
}

// LookupVariable finds a variable by name, ignoring case.
func LookupVariable(name string) (Variable, bool) {
	for _, v := range variables {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Variable{}, false
}
