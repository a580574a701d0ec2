package analysis

import (
	"strings"

	"github.com/decibelcooper/pionsel/event"
)

// TruthStage is the pre-selection row and histogram stage.
const TruthStage = "truth"

// Derived histogram groups.
const (
	GroupMC         = "mc"
	GroupBackground = "background"
	GroupDataMC     = "datamc"
	GroupBkgSub     = "bkgsub"
	GroupEfficiency = "efficiency"
	GroupCumulative = "cumulative"

	GroupPurity      = "purity"
	GroupSensitivity = "sensitivity"
)

// HistName returns the stable name of a histogram.
func HistName(parts ...string) string {
	return strings.Join(parts, "/")
}

func popName(stage string, p event.Population, variable string) string {
	return HistName(stage, p.String(), variable)
}
