package diff

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompileFilter compiles a boolean expression over diff entries.
// The expression sees the variables
//
//	path — rendered entry path, e.g. `players[2].force`
//	kind — "added", "removed", "changed" or "type-mismatch"
//	file — the report's logical file name
//
// e.g. `kind == "changed" and path contains "research"`.
func CompileFilter(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad filter %q: %w", src, err)
	}
	return prg, nil
}

// Filter returns a copy of the report keeping only the entries for
// which the compiled filter evaluates to true.
func Filter(rep *Report, prg *vm.Program) (*Report, error) {
	res := &Report{File: rep.File}
	for i := range rep.Entries {
		e := &rep.Entries[i]
		out, err := expr.Run(prg, map[string]any{
			"path": e.Path.String(),
			"kind": e.Kind.String(),
			"file": rep.File,
		})
		if err != nil {
			return nil, fmt.Errorf("filter at %s: %w", e.Path, err)
		}
		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("filter at %s: non-boolean result %T", e.Path, out)
		}
		if keep {
			res.Entries = append(res.Entries, *e)
		}
	}
	return res, nil
}
