package render

import (
	"strings"
	"testing"

	"github.com/hornwitser/factorio-dat/diff"
	"github.com/hornwitser/factorio-dat/ir"
	"github.com/hornwitser/factorio-dat/tagdiff"
)

func TestDiffReport(t *testing.T) {
	rep := &diff.Report{
		File: "mod-settings.dat",
		Entries: []diff.Entry{
			{
				Path: ir.Path{ir.Field("startup"), ir.Field("my-mod")},
				Kind: diff.Changed,
				Old:  ir.FromNumber(1),
				New:  ir.FromNumber(2),
			},
			{
				Path: ir.Path{ir.Field("runtime"), ir.Index(0)},
				Kind: diff.Added,
				New:  ir.FromString("x"),
			},
			{
				Path: ir.Path{ir.Field("gone")},
				Kind: diff.Removed,
				Old:  ir.FromBool(true),
			},
			{
				Kind: diff.TypeMismatch,
				Old:  ir.FromSlice(nil),
				New:  ir.FromKeyVals(nil),
			},
		},
	}
	var b strings.Builder
	if err := DiffReport(rep, &b); err != nil {
		t.Fatal(err)
	}
	want := `startup.my-mod: changed 1 -> 2
runtime[0]: added - -> "x"
gone: removed true -> -
$: type-mismatch [] -> {}
`
	if got := b.String(); got != want {
		t.Errorf("DiffReport() =\n%s\nwant\n%s", got, want)
	}
}

func TestTagDiffRender(t *testing.T) {
	res := &tagdiff.Result{
		Ops: []tagdiff.Op{
			{
				Kind:    tagdiff.Replace,
				Ref:     []byte("<chunk x=0 y=0>old</chunk>"),
				Des:     []byte("<chunk x=0 y=0>new</chunk>"),
				RefPath: "<surface index=1> pos=0",
				DesPath: "<surface index=1> pos=0",
				RefPos:  17,
				DesPos:  17,
			},
			{
				Kind:   tagdiff.Delete,
				Ref:    []byte("<y>2</y>"),
				RefPos: 11,
				DesPos: -1,
			},
		},
	}
	var b strings.Builder
	if err := TagDiff(res, &b); err != nil {
		t.Fatal(err)
	}
	want := `replace ref@17 -> des@17
<surface index=1> pos=0
ref: "<chunk x=0 y=0>old</chunk>"
des: "<chunk x=0 y=0>new</chunk>"

delete  ref@11 -> des@-1
ref: "<y>2</y>"
`
	if got := b.String(); got != want {
		t.Errorf("TagDiff() =\n%s\nwant\n%s", got, want)
	}
}
