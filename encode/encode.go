// Package encode writes IR documents back to their binary dat form.
//
// Encoding is the exact structural inverse of parsing: every value is
// written with the same tag and length scheme and dict entries keep
// their insertion order, so Parse(Encode(doc)) reproduces doc and
// Encode(Parse(data)) reproduces data byte for byte.
package encode

import (
	"errors"
	"fmt"

	"github.com/hornwitser/factorio-dat/format"
	"github.com/hornwitser/factorio-dat/ir"
	"github.com/hornwitser/factorio-dat/wire"
)

var ErrEncoding = errors.New("encoding error")

// Encode serializes a document into dat bytes.
func Encode(doc *ir.Document) ([]byte, error) {
	w := wire.NewWriter()
	if doc.Format.HasVersion() {
		if doc.Version == nil {
			return nil, fmt.Errorf("%w: %s requires a version header", ErrEncoding, doc.Format)
		}
		w.WriteVersion(*doc.Version)
	}
	var err error
	switch doc.Format {
	case format.Script:
		err = encodeScript(w, doc)
	default:
		err = EncodeValue(w, doc.Root)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Format, err)
	}
	return w.Bytes(), nil
}

// EncodeValue writes one tagged value of the generic property-tree
// grammar.
func EncodeValue(w *wire.Writer, node *ir.Node) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.NilType:
		w.WriteU8(uint8(ir.NilType))
	case ir.BoolType:
		w.WriteU8(uint8(ir.BoolType))
		w.WriteBool(node.Bool)
	case ir.NumberType:
		w.WriteU8(uint8(ir.NumberType))
		w.WriteFloat64(node.Number)
	case ir.StringType:
		w.WriteU8(uint8(ir.StringType))
		w.WriteString(node.String)
	case ir.ListType:
		w.WriteU8(uint8(ir.ListType))
		w.WriteVarUint(uint32(len(node.Values)))
		for i, v := range node.Values {
			if err := EncodeValue(w, v); err != nil {
				return fmt.Errorf("list index %d: %w", i, err)
			}
		}
	case ir.DictType:
		w.WriteU8(uint8(ir.DictType))
		w.WriteVarUint(uint32(len(node.Keys)))
		for i, k := range node.Keys {
			w.WriteString(k)
			if err := EncodeValue(w, node.Values[i]); err != nil {
				return fmt.Errorf("dict key %q: %w", k, err)
			}
		}
	default:
		return fmt.Errorf("%w: unencodable type %s", ErrEncoding, node.Type)
	}
	return nil
}

// encodeScript writes the script.dat framing: each dict entry becomes
// a named, length prefixed blob holding the entry's version header and
// its value's property tree.
func encodeScript(w *wire.Writer, doc *ir.Document) error {
	root := doc.Root
	if root == nil || root.Type != ir.DictType {
		return fmt.Errorf("%w: script root must be a dict", ErrEncoding)
	}
	w.WriteVarUint(uint32(len(root.Keys)))
	for i, name := range root.Keys {
		bv, ok := doc.BlobVersions[name]
		if !ok {
			return fmt.Errorf("%w: script entry %q has no version header", ErrEncoding, name)
		}
		w.WriteString(name)
		bw := wire.NewWriter()
		bw.WriteVersion(bv)
		if err := EncodeValue(bw, root.Values[i]); err != nil {
			return fmt.Errorf("script entry %q: %w", name, err)
		}
		blob := bw.Bytes()
		w.WriteVarUint(uint32(len(blob)))
		w.WriteBytes(blob)
	}
	return nil
}
