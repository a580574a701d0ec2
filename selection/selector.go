package selection

// Policy controls whether evaluation stops at the first failure.
type Policy int

const (
	ShortCircuit Policy = iota
	Exhaustive
)

// Outcome is the result of one predicate.
type Outcome struct {
	Name string
	Pass bool
}

// Result is the outcome of a full stage evaluation.
type Result struct {
	Stage    string
	Outcomes []Outcome
	Pass     bool
	// LastSatisfied names the last predicate passed before the first
	// failure, or "" when the first gate failed.
	LastSatisfied string
}

// Selector evaluates the baseline gates followed by the active criteria.
type Selector struct {
	name   string
	active Mask
	preds  []Predicate
	policy Policy
}

// Option configures a Selector.
type Option func(*Selector)

// WithPolicy sets the evaluation policy.
func WithPolicy(p Policy) Option {
	return func(s *Selector) { s.policy = p }
}

// New returns a selector named after its cascade stage.
func New(name string, active Mask, th Thresholds, opts ...Option) *Selector {
	s := &Selector{
		name:   name,
		active: active,
		preds:  Baseline(),
	}
	for _, p := range Criteria(th) {
		if active.Has(p.Flag) {
			s.preds = append(s.preds, p)
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Selector) Name() string { return s.name }

func (s *Selector) Active() Mask { return s.active }

// Predicates returns the predicates in evaluation order.
func (s *Selector) Predicates() []Predicate {
	return append([]Predicate(nil), s.preds...)
}

// Pass reports whether c satisfies every evaluated predicate.
func (s *Selector) Pass(c Candidate) bool {
	for _, p := range s.preds {
		if !p.Pass(c) {
			return false
		}
	}
	return true
}

// Select evaluates c and records each outcome.
func (s *Selector) Select(c Candidate) Result {
	res := Result{
		Stage:    s.name,
		Outcomes: make([]Outcome, 0, len(s.preds)),
		Pass:     true,
	}
	for _, p := range s.preds {
		ok := p.Pass(c)
		res.Outcomes = append(res.Outcomes, Outcome{Name: p.Name, Pass: ok})
		if ok && res.Pass {
			res.LastSatisfied = p.Name
		}
		if !ok {
			res.Pass = false
			if s.policy == ShortCircuit {
				break
			}
		}
	}
	return res
}

// Failed returns the names of the failed predicates in r.
func (r Result) Failed() []string {
	var out []string
	for _, o := range r.Outcomes {
		if !o.Pass {
			out = append(out, o.Name)
		}
	}
	return out
}
