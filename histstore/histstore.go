// Package histstore writes named histograms to ROOT files and reads them back.
package histstore

import (
	"fmt"
	"sort"
	"strings"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/hbook/rootcnv"
	"go.uber.org/multierr"

	"github.com/decibelcooper/pionsel/hist"
)

const sep = "__"

// Key maps a histogram name to a flat ROOT key.
func Key(name string) string {
	return strings.ReplaceAll(name, "/", sep)
}

// Name is the inverse of Key.
func Name(key string) string {
	return strings.ReplaceAll(key, sep, "/")
}

// Writer stores histograms in a new ROOT file.
type Writer struct {
	f *riofs.File
}

// Create creates the ROOT file at path.
func Create(path string) (*Writer, error) {
	f, err := groot.Create(path)
	if err != nil {
		return nil, fmt.Errorf("histstore: create %q: %w", path, err)
	}
	return &Writer{f: f}, nil
}

// Put stores h under Key(h.Name).
func (w *Writer) Put(h *hist.Hist) error {
	if err := w.f.Put(Key(h.Name), rhist.NewH1DFrom(h.H1D())); err != nil {
		return fmt.Errorf("histstore: histogram %q: %w", h.Name, err)
	}
	return nil
}

// PutAll stores every histogram, in name order, and reports all failures.
func (w *Writer) PutAll(hs map[string]*hist.Hist) error {
	names := make([]string, 0, len(hs))
	for name := range hs {
		names = append(names, name)
	}
	sort.Strings(names)

	var err error
	for _, name := range names {
		err = multierr.Append(err, w.Put(hs[name]))
	}
	return err
}

// Close flushes and closes the file.
func (w *Writer) Close() error {
	return w.f.Close()
}

// Reader reads histograms from a ROOT file.
type Reader struct {
	f *riofs.File
}

// Open opens the ROOT file at path.
func Open(path string) (*Reader, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("histstore: open %q: %w", path, err)
	}
	return &Reader{f: f}, nil
}

// Names lists the stored histogram names.
func (r *Reader) Names() []string {
	var out []string
	for _, k := range r.f.Keys() {
		out = append(out, Name(k.Name()))
	}
	sort.Strings(out)
	return out
}

// Get reads the histogram stored under name.
func (r *Reader) Get(name string) (*hist.Hist, error) {
	obj, err := r.f.Get(Key(name))
	if err != nil {
		return nil, fmt.Errorf("histstore: histogram %q: %w", name, err)
	}
	h1, ok := obj.(rhist.H1)
	if !ok {
		return nil, fmt.Errorf("histstore: %q is a %T, not a 1D histogram", name, obj)
	}
	return hist.FromH1D(name, rootcnv.H1D(h1)), nil
}

// Close closes the file.
func (r *Reader) Close() error {
	return r.f.Close()
}
