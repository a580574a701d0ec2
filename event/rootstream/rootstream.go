// Package rootstream reads and writes event records as flat ROOT trees,
// one float64 branch per event field.
package rootstream

import (
	"errors"
	"fmt"
	"iter"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"

	"github.com/decibelcooper/pionsel/event"
)

// DefaultTree is the tree name used when none is given.
const DefaultTree = "events"

var errStop = errors.New("rootstream: stop")

// Stream is an event.Stream over a ROOT tree.
type Stream struct {
	name string
	kind event.Kind
	f    *riofs.File
	tree rtree.Tree
	err  error
}

// Open opens the tree treeName of the ROOT file at path.
func Open(path, treeName string, kind event.Kind) (*Stream, error) {
	if treeName == "" {
		treeName = DefaultTree
	}
	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rootstream: open %q: %w", path, err)
	}
	obj, err := f.Get(treeName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("rootstream: %q: %w", path, err)
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("rootstream: %q: %q is a %T, not a tree", path, treeName, obj)
	}
	return &Stream{name: path, kind: kind, f: f, tree: tree}, nil
}

func (s *Stream) Name() string     { return s.name }
func (s *Stream) Kind() event.Kind { return s.kind }
func (s *Stream) Err() error       { return s.err }

// Entries returns the number of events in the tree.
func (s *Stream) Entries() int64 { return s.tree.Entries() }

// Fields lists the tree branches.
func (s *Stream) Fields() []string {
	var out []string
	for _, b := range s.tree.Branches() {
		out = append(out, b.Name())
	}
	return out
}

// Events reads the tree entry by entry. The yielded event is reused between
// iterations.
func (s *Stream) Events() iter.Seq[*event.Event] {
	return func(yield func(*event.Event) bool) {
		var ev event.Event
		var rvars []rtree.ReadVar
		for _, f := range event.Fields(s.kind) {
			rvars = append(rvars, rtree.ReadVar{Name: f.Name, Value: f.Ptr(&ev)})
		}
		r, err := rtree.NewReader(s.tree, rvars)
		if err != nil {
			s.err = fmt.Errorf("rootstream: %q: %w", s.name, err)
			return
		}
		defer r.Close()

		err = r.Read(func(rtree.RCtx) error {
			if !yield(&ev) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			s.err = fmt.Errorf("rootstream: %q: %w", s.name, err)
		}
	}
}

// Close closes the underlying file.
func (s *Stream) Close() error {
	return s.f.Close()
}

// Write stores events as the tree treeName of a new ROOT file at path.
func Write(path, treeName string, kind event.Kind, events []event.Event) error {
	if treeName == "" {
		treeName = DefaultTree
	}
	f, err := groot.Create(path)
	if err != nil {
		return fmt.Errorf("rootstream: create %q: %w", path, err)
	}
	if err := writeTree(f, treeName, kind, events); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeTree(f *riofs.File, treeName string, kind event.Kind, events []event.Event) error {
	var ev event.Event
	var wvars []rtree.WriteVar
	for _, fd := range event.Fields(kind) {
		wvars = append(wvars, rtree.WriteVar{Name: fd.Name, Value: fd.Ptr(&ev)})
	}
	w, err := rtree.NewWriter(f, treeName, wvars)
	if err != nil {
		return fmt.Errorf("rootstream: create tree: %w", err)
	}
	for i := range events {
		ev = events[i]
		if _, err := w.Write(); err != nil {
			w.Close()
			return fmt.Errorf("rootstream: write event %d: %w", i, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("rootstream: close tree: %w", err)
	}
	return nil
}
