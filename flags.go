// Package pionsel holds helpers shared by the pionsel commands: a repeatable
// float flag and the tick marker used on every plot.
package pionsel

import (
	"fmt"
	"strconv"
	"strings"
)

// FloatList is a flag collecting floats. It may be repeated or given a
// comma-separated list; the first use replaces the default.
type FloatList struct {
	Values []float64
	set    bool
}

// NewFloatList returns a list holding def until the flag is first set.
func NewFloatList(def ...float64) *FloatList {
	return &FloatList{Values: def}
}

func (f *FloatList) Set(s string) error {
	if !f.set {
		f.set = true
		f.Values = nil
	}
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return fmt.Errorf("pionsel: invalid float %q: %w", field, err)
		}
		f.Values = append(f.Values, v)
	}
	return nil
}

func (f *FloatList) String() string {
	parts := make([]string, len(f.Values))
	for i, v := range f.Values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Type names the value for pflag usage output.
func (f *FloatList) Type() string { return "floats" }

// Changed reports whether the flag was given on the command line.
func (f *FloatList) Changed() bool { return f.set }
