// Package render formats decoded documents and diff results as
// human-readable text.
//
// JSON output is written by hand rather than through encoding/json:
// dict entries must come out in their decoded insertion order, which a
// Go map round trip would destroy.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hornwitser/factorio-dat/ir"
)

// JSON pretty-prints a document. The root value is wrapped together
// with its format name and version header, when present.
func JSON(doc *ir.Document, w io.Writer, opts ...Option) error {
	o := buildOpts(opts)
	if err := writeString(w, "{\n"+o.indent); err != nil {
		return err
	}
	if err := writeString(w, `"format": `+scalarJSON(doc.Format.String())+",\n"+o.indent); err != nil {
		return err
	}
	if doc.Version != nil {
		v := fmt.Sprintf(`"version": [%d, %d, %d, %d],`,
			doc.Version.Major, doc.Version.Minor, doc.Version.Patch, doc.Version.Build)
		if err := writeString(w, v+"\n"+o.indent); err != nil {
			return err
		}
	}
	if err := writeString(w, `"data": `); err != nil {
		return err
	}
	if err := jsonValue(doc.Root, w, o, 1); err != nil {
		return err
	}
	return writeString(w, "\n}\n")
}

// JSONValue pretty-prints a bare value tree.
func JSONValue(node *ir.Node, w io.Writer, opts ...Option) error {
	o := buildOpts(opts)
	if err := jsonValue(node, w, o, 0); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func jsonValue(node *ir.Node, w io.Writer, o *renderOpts, depth int) error {
	switch node.Type {
	case ir.ListType:
		return jsonList(node, w, o, depth)
	case ir.DictType:
		return jsonDict(node, w, o, depth)
	default:
		return writeString(w, coloredScalar(node, o))
	}
}

func jsonList(node *ir.Node, w io.Writer, o *renderOpts, depth int) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeIndent(w, o, depth+1); err != nil {
			return err
		}
		if err := jsonValue(v, w, o, depth+1); err != nil {
			return err
		}
	}
	if err := writeIndent(w, o, depth); err != nil {
		return err
	}
	return writeString(w, "]")
}

func jsonDict(node *ir.Node, w io.Writer, o *renderOpts, depth int) error {
	if len(node.Keys) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	for i, k := range node.Keys {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeIndent(w, o, depth+1); err != nil {
			return err
		}
		field := scalarJSON(k)
		if o.colors != nil {
			field = o.colors.Color(ir.DictType, FieldColor, field)
		}
		if err := writeString(w, field+": "); err != nil {
			return err
		}
		if err := jsonValue(node.Values[i], w, o, depth+1); err != nil {
			return err
		}
	}
	if err := writeIndent(w, o, depth); err != nil {
		return err
	}
	return writeString(w, "}")
}

func coloredScalar(node *ir.Node, o *renderOpts) string {
	s := scalarString(node)
	if o.colors == nil {
		return s
	}
	return o.colors.Color(node.Type, ValueColor, s)
}

func scalarString(node *ir.Node) string {
	switch node.Type {
	case ir.NilType:
		return "null"
	case ir.BoolType:
		if node.Bool {
			return "true"
		}
		return "false"
	case ir.NumberType:
		d, _ := json.Marshal(node.Number)
		return string(d)
	case ir.StringType:
		return scalarJSON(node.String)
	default:
		return fmt.Sprintf("<err: %s is not a scalar>", node.Type)
	}
}

func scalarJSON(s string) string {
	d, _ := json.Marshal(s)
	return string(d)
}

// Compact renders a value tree on one line, used for diff entries.
func Compact(node *ir.Node) string {
	if node == nil {
		return "-"
	}
	switch node.Type {
	case ir.ListType:
		elems := make([]string, len(node.Values))
		for i, v := range node.Values {
			elems[i] = Compact(v)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case ir.DictType:
		elems := make([]string, len(node.Keys))
		for i, k := range node.Keys {
			elems[i] = scalarJSON(k) + ": " + Compact(node.Values[i])
		}
		return "{" + strings.Join(elems, ", ") + "}"
	default:
		return scalarString(node)
	}
}

func writeIndent(w io.Writer, o *renderOpts, depth int) error {
	return writeString(w, "\n"+strings.Repeat(o.indent, depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
