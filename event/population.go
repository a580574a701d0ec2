package event

// Population is the sample an event is counted in.
type Population int

const (
	Signal Population = iota
	QE
	RES
	DIS
	MEC
	NC
	Other
	Data
)

var popNames = [...]string{
	Signal: "signal",
	QE:     "qe",
	RES:    "res",
	DIS:    "dis",
	MEC:    "mec",
	NC:     "nc",
	Other:  "other",
	Data:   "data",
}

func (p Population) String() string {
	if p < 0 || int(p) >= len(popNames) {
		return "unknown"
	}
	return popNames[p]
}

// Populations lists every population in table order.
func Populations() []Population {
	return []Population{Signal, QE, RES, DIS, MEC, NC, Other, Data}
}

// Backgrounds lists the simulated background populations.
func Backgrounds() []Population {
	return []Population{QE, RES, DIS, MEC, NC, Other}
}

// IsBackground reports whether p is a simulated background.
func (p Population) IsBackground() bool {
	return p >= QE && p <= Other
}
