// Package diff compares two decoded documents and reports every point
// of structural divergence.
//
// The walk is depth-first with an explicit path stack. Lists are
// compared index by index and never matched by similarity: insertion
// order in the engine's lists is semantically meaningful (player
// order, force order), so reordering would hide real differences.
// Dicts are compared as unordered key sets even though their encoding
// preserves order. Entries come out in a deterministic order: the old
// document's insertion order first, keys unique to the new document
// appended afterwards.
package diff

import (
	"errors"
	"fmt"

	"github.com/hornwitser/factorio-dat/debug"
	"github.com/hornwitser/factorio-dat/ir"
)

// ErrFormatMismatch is returned when the two documents declare
// different formats. It is surfaced before any traversal begins.
var ErrFormatMismatch = errors.New("format mismatch")

// Entry is one discrepancy. Old and New are owning clones of the
// differing sub-values, so a report stays valid after the source
// documents are discarded. Old is nil for Added, New is nil for
// Removed.
type Entry struct {
	Path ir.Path
	Kind Kind
	Old  *ir.Node
	New  *ir.Node
}

// Report is the ordered set of discrepancies for one compared file.
type Report struct {
	File    string
	Entries []Entry
}

// Empty reports whether the two trees compared fully equal.
func (r *Report) Empty() bool {
	return len(r.Entries) == 0
}

// Diff compares two documents of the same declared format.
func Diff(old, new *ir.Document) (*Report, error) {
	if old.Format != new.Format {
		return nil, fmt.Errorf("%w: %s vs %s", ErrFormatMismatch, old.Format, new.Format)
	}
	res := &Report{Entries: Nodes(old.Root, new.Root)}
	if debug.Diff() {
		debug.Printf("diff: %s: %d entries", old.Format, len(res.Entries))
	}
	return res, nil
}

// Nodes compares two value trees and returns the discrepancies in
// traversal order. A root type mismatch yields a single entry at the
// empty path.
func Nodes(old, new *ir.Node) []Entry {
	var entries []Entry
	walk(old, new, nil, &entries)
	return entries
}

func emit(out *[]Entry, path ir.Path, kind Kind, old, new *ir.Node) {
	e := Entry{Path: path, Kind: kind}
	if old != nil {
		e.Old = old.Clone()
	}
	if new != nil {
		e.New = new.Clone()
	}
	*out = append(*out, e)
}

func walk(old, new *ir.Node, path ir.Path, out *[]Entry) {
	if old.Type != new.Type {
		emit(out, path, TypeMismatch, old, new)
		return
	}
	switch old.Type {
	case ir.NilType:
	case ir.BoolType:
		if old.Bool != new.Bool {
			emit(out, path, Changed, old, new)
		}
	case ir.NumberType:
		// Exact float comparison: these values are either integers-as-
		// doubles or bit patterns copied from the engine, and an
		// epsilon would mask real desyncs.
		if old.Number != new.Number {
			emit(out, path, Changed, old, new)
		}
	case ir.StringType:
		if old.String != new.String {
			emit(out, path, Changed, old, new)
		}
	case ir.ListType:
		walkLists(old, new, path, out)
	case ir.DictType:
		walkDicts(old, new, path, out)
	}
}

func walkLists(old, new *ir.Node, path ir.Path, out *[]Entry) {
	n := min(len(old.Values), len(new.Values))
	for i := 0; i < n; i++ {
		walk(old.Values[i], new.Values[i], path.Child(ir.Index(i)), out)
	}
	for i := n; i < len(old.Values); i++ {
		emit(out, path.Child(ir.Index(i)), Removed, old.Values[i], nil)
	}
	for i := n; i < len(new.Values); i++ {
		emit(out, path.Child(ir.Index(i)), Added, nil, new.Values[i])
	}
}

func walkDicts(old, new *ir.Node, path ir.Path, out *[]Entry) {
	for i, k := range old.Keys {
		nv := new.Get(k)
		if nv == nil {
			emit(out, path.Child(ir.Field(k)), Removed, old.Values[i], nil)
			continue
		}
		walk(old.Values[i], nv, path.Child(ir.Field(k)), out)
	}
	for i, k := range new.Keys {
		if old.Get(k) == nil {
			emit(out, path.Child(ir.Field(k)), Added, nil, new.Values[i])
		}
	}
}
