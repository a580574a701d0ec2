package event

import "iter"

// Stream is a finite sequence of events. A stream is read once; callers
// needing another pass must acquire a fresh one.
type Stream interface {
	Name() string
	Kind() Kind
	// Fields lists the field names the source provides.
	Fields() []string
	// Events yields the events in order. Err reports why iteration ended
	// early, if it did.
	Events() iter.Seq[*Event]
	Err() error
}

// Slice is an in-memory Stream.
type Slice struct {
	name   string
	kind   Kind
	fields []string
	events []Event
}

// NewSlice returns a stream over events providing every field of kind.
func NewSlice(name string, kind Kind, events []Event) *Slice {
	return &Slice{name: name, kind: kind, fields: FieldNames(kind), events: events}
}

// WithFields overrides the advertised field names.
func (s *Slice) WithFields(names ...string) *Slice {
	s.fields = names
	return s
}

func (s *Slice) Name() string     { return s.name }
func (s *Slice) Kind() Kind       { return s.kind }
func (s *Slice) Fields() []string { return s.fields }
func (s *Slice) Err() error       { return nil }

func (s *Slice) Events() iter.Seq[*Event] {
	return func(yield func(*Event) bool) {
		for i := range s.events {
			ev := s.events[i]
			if !yield(&ev) {
				return
			}
		}
	}
}
