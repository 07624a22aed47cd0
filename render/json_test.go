package render

import (
	"strings"
	"testing"

	"github.com/hornwitser/factorio-dat/format"
	"github.com/hornwitser/factorio-dat/ir"
)

func TestJSON(t *testing.T) {
	doc := &ir.Document{
		Format:  format.ModSettings,
		Version: &ir.Version{Major: 1, Minor: 1, Patch: 110, Build: 0},
		Root: ir.FromKeyVals([]ir.KeyVal{
			{Key: "zulu", Val: ir.FromNumber(1)},
			{Key: "alpha", Val: ir.FromSlice([]*ir.Node{
				ir.FromString("x"),
				ir.FromBool(true),
				ir.Null(),
			})},
			{Key: "empty", Val: ir.FromKeyVals(nil)},
		}),
	}
	var b strings.Builder
	if err := JSON(doc, &b, RenderIndent("  ")); err != nil {
		t.Fatal(err)
	}
	want := `{
  "format": "mod-settings",
  "version": [1, 1, 110, 0],
  "data": {
    "zulu": 1,
    "alpha": [
      "x",
      true,
      null
    ],
    "empty": {}
  }
}
`
	if got := b.String(); got != want {
		t.Errorf("JSON() =\n%s\nwant\n%s", got, want)
	}
}

func TestJSONKeepsKeyOrder(t *testing.T) {
	doc := &ir.Document{
		Format: format.Script,
		Root: ir.FromKeyVals([]ir.KeyVal{
			{Key: "zulu", Val: ir.Null()},
			{Key: "alpha", Val: ir.Null()},
		}),
	}
	var b strings.Builder
	if err := JSON(doc, &b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if strings.Index(out, "zulu") > strings.Index(out, "alpha") {
		t.Errorf("keys reordered:\n%s", out)
	}
	if strings.Contains(out, "version") {
		t.Errorf("script output has a version header:\n%s", out)
	}
}

func TestJSONValueScalar(t *testing.T) {
	var b strings.Builder
	if err := JSONValue(ir.FromString("iron \"plate\""), &b); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "\"iron \\\"plate\\\"\"\n" {
		t.Errorf("JSONValue() = %q", got)
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name     string
		node     *ir.Node
		expected string
	}{
		{"nil side", nil, "-"},
		{"null", ir.Null(), "null"},
		{"number", ir.FromNumber(2.5), "2.5"},
		{"integral number", ir.FromNumber(3), "3"},
		{"string", ir.FromString("a"), `"a"`},
		{"list", ir.FromSlice([]*ir.Node{ir.FromNumber(1), ir.FromBool(false)}), "[1, false]"},
		{"dict", ir.FromKeyVals([]ir.KeyVal{
			{Key: "b", Val: ir.FromNumber(2)},
			{Key: "a", Val: ir.FromSlice(nil)},
		}), `{"b": 2, "a": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compact(tt.node); got != tt.expected {
				t.Errorf("Compact() = %q, want %q", got, tt.expected)
			}
		})
	}
}
