package event

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned when a stream lacks a field the analysis reads.
var ErrMissingField = errors.New("event: missing field")

// MissingFieldError lists the fields a stream lacks.
type MissingFieldError struct {
	Stream  string
	Missing []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("event: stream %q is missing fields: %s", e.Stream, strings.Join(e.Missing, ", "))
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Field binds a stored field name to its Event member.
type Field struct {
	Name string
	// Truth fields only exist in simulation.
	Truth bool
	Ptr   func(*Event) *float64
}

var fields = []Field{
	{Name: "muonID", Ptr: func(e *Event) *float64 { return &e.MuonID }},
	{Name: "pionID", Ptr: func(e *Event) *float64 { return &e.PionID }},
	{Name: "kinScore", Ptr: func(e *Event) *float64 { return &e.KinScore }},
	{Name: "hitScore", Ptr: func(e *Event) *float64 { return &e.HitScore }},
	{Name: "muonLength", Ptr: func(e *Event) *float64 { return &e.MuonLength }},
	{Name: "muonDirX", Ptr: func(e *Event) *float64 { return &e.MuonDirX }},
	{Name: "muonDirY", Ptr: func(e *Event) *float64 { return &e.MuonDirY }},
	{Name: "muonDirZ", Ptr: func(e *Event) *float64 { return &e.MuonDirZ }},
	{Name: "pionCalE", Ptr: func(e *Event) *float64 { return &e.PionCalE }},
	{Name: "pionProngKE", Ptr: func(e *Event) *float64 { return &e.PionProngKE }},
	{Name: "pionDirX", Ptr: func(e *Event) *float64 { return &e.PionDirX }},
	{Name: "pionDirY", Ptr: func(e *Event) *float64 { return &e.PionDirY }},
	{Name: "pionDirZ", Ptr: func(e *Event) *float64 { return &e.PionDirZ }},
	{Name: "nKalmanTracks", Ptr: func(e *Event) *float64 { return &e.NKalmanTracks }},
	{Name: "muonTrkActiveLength", Ptr: func(e *Event) *float64 { return &e.MuonTrkActiveLength }},
	{Name: "muonTrkCatcherLength", Ptr: func(e *Event) *float64 { return &e.MuonTrkCatcherLength }},
	{Name: "muonTrkDirX", Ptr: func(e *Event) *float64 { return &e.MuonTrkDirX }},
	{Name: "muonTrkDirY", Ptr: func(e *Event) *float64 { return &e.MuonTrkDirY }},
	{Name: "muonTrkDirZ", Ptr: func(e *Event) *float64 { return &e.MuonTrkDirZ }},
	{Name: "pionTrkDirX", Ptr: func(e *Event) *float64 { return &e.PionTrkDirX }},
	{Name: "pionTrkDirY", Ptr: func(e *Event) *float64 { return &e.PionTrkDirY }},
	{Name: "pionTrkDirZ", Ptr: func(e *Event) *float64 { return &e.PionTrkDirZ }},
	{Name: "nProngs", Ptr: func(e *Event) *float64 { return &e.NProngs }},
	{Name: "weight", Ptr: func(e *Event) *float64 { return &e.Weight }},
	{Name: "intType", Truth: true, Ptr: func(e *Event) *float64 { return &e.IntType }},
	{Name: "isCC", Truth: true, Ptr: func(e *Event) *float64 { return &e.IsCC }},
	{Name: "isSignal", Truth: true, Ptr: func(e *Event) *float64 { return &e.IsSignal }},
}

// Fields returns the fields read for streams of kind k.
func Fields(k Kind) []Field {
	var out []Field
	for _, f := range fields {
		if f.Truth && k == KindData {
			continue
		}
		out = append(out, f)
	}
	return out
}

// FieldNames returns the names of Fields(k).
func FieldNames(k Kind) []string {
	fs := Fields(k)
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name
	}
	return out
}

// Validate checks that s provides every field its kind requires.
func Validate(s Stream) error {
	have := make(map[string]bool)
	for _, name := range s.Fields() {
		have[name] = true
	}
	var missing []string
	for _, name := range FieldNames(s.Kind()) {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldError{Stream: s.Name(), Missing: missing}
	}
	return nil
}
