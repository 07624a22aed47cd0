package render

import (
	"fmt"
	"io"

	"github.com/hornwitser/factorio-dat/diff"
	"github.com/hornwitser/factorio-dat/ir"
	"github.com/hornwitser/factorio-dat/tagdiff"
)

// DiffReport writes one line per entry in the form
//
//	<path>: <kind> <old> -> <new>
//
// with "-" for the missing side of added/removed entries and "$"
// standing in for the empty root path.
func DiffReport(rep *diff.Report, w io.Writer, opts ...Option) error {
	o := buildOpts(opts)
	for i := range rep.Entries {
		e := &rep.Entries[i]
		path := e.Path.String()
		if path == "" {
			path = "$"
		}
		kind := e.Kind.String()
		if o.colors != nil {
			kind = o.colors.KindColor(e.Kind, kind)
		}
		line := fmt.Sprintf("%s: %s %s -> %s\n",
			path, kind, compactColored(e.Old, o), compactColored(e.New, o))
		if err := writeString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func compactColored(node *ir.Node, o *renderOpts) string {
	s := Compact(node)
	if o.colors == nil || node == nil || !node.Type.IsLeaf() {
		return s
	}
	return o.colors.Color(node.Type, ValueColor, s)
}

// TagDiff writes one block per op of a tagged-dump comparison: the op
// kind with the byte positions of both sides, the enclosing tag chain
// of each side, and the differing content.
func TagDiff(res *tagdiff.Result, w io.Writer, opts ...Option) error {
	o := buildOpts(opts)
	for i := range res.Ops {
		op := &res.Ops[i]
		if i > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		kind := op.Kind.String()
		if o.colors != nil {
			kind = o.colors.KindColor(opDiffKind(op.Kind), kind)
		}
		line := fmt.Sprintf("%-7s ref@%d -> des@%d\n", kind, op.RefPos, op.DesPos)
		if err := writeString(w, line); err != nil {
			return err
		}
		if op.RefPath != "" {
			if err := writeString(w, op.RefPath+"\n"); err != nil {
				return err
			}
		}
		if op.Ref != nil {
			if err := writeString(w, fmt.Sprintf("ref: %q\n", op.Ref)); err != nil {
				return err
			}
		}
		if op.DesPath != "" && op.DesPath != op.RefPath {
			if err := writeString(w, op.DesPath+"\n"); err != nil {
				return err
			}
		}
		if op.Des != nil {
			if err := writeString(w, fmt.Sprintf("des: %q\n", op.Des)); err != nil {
				return err
			}
		}
	}
	return nil
}

func opDiffKind(k tagdiff.OpKind) diff.Kind {
	switch k {
	case tagdiff.Delete:
		return diff.Removed
	case tagdiff.Insert:
		return diff.Added
	default:
		return diff.Changed
	}
}
