package parse

import (
	"fmt"

	"github.com/hornwitser/factorio-dat/debug"
	"github.com/hornwitser/factorio-dat/format"
	"github.com/hornwitser/factorio-dat/ir"
	"github.com/hornwitser/factorio-dat/wire"
)

// Parse decodes one dat file. The format comes from ParseFormat, or is
// inferred from ParseFileName; with neither, Parse fails with
// format.ErrUnknownFormat before consuming any bytes.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	f, err := resolveFormat(pOpts)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Printf("parse: %d bytes as %s", len(d), f)
	}

	r := wire.NewReader(d)
	doc := &ir.Document{Format: f}
	if f.HasVersion() {
		v, err := r.ReadVersion()
		if err != nil {
			return nil, fmt.Errorf("%s header: %w", f, err)
		}
		doc.Version = &v
	}

	var root *ir.Node
	switch f {
	case format.Script:
		root, err = parseScript(r, doc)
	default:
		root, err = parseValue(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}
	if n := r.Remaining(); n != 0 {
		return nil, fmt.Errorf("%s: %w: %d bytes at offset %d", f, ErrTrailingData, n, r.Pos())
	}
	doc.Root = root
	return doc, nil
}

func resolveFormat(o *parseOpts) (format.Format, error) {
	if o.format != nil {
		return *o.format, nil
	}
	if o.fileName != "" {
		return format.Infer(o.fileName)
	}
	return 0, fmt.Errorf("%w: no format named and no file name to infer from",
		format.ErrUnknownFormat)
}

// parseValue decodes one tagged value of the generic property-tree
// grammar. The tag bytes coincide with the ir.Type values.
func parseValue(r *wire.Reader) (*ir.Node, error) {
	at := r.Pos()
	tag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	switch ir.Type(tag) {
	case ir.NilType:
		return ir.Null(), nil
	case ir.BoolType:
		b, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		return ir.FromBool(b), nil
	case ir.NumberType:
		f, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		return ir.FromNumber(f), nil
	case ir.StringType:
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case ir.ListType:
		return parseList(r)
	case ir.DictType:
		return parseDict(r)
	}
	return nil, fmt.Errorf("%w: 0x%02x at offset %d", ErrUnknownTag, tag, at)
}

func parseList(r *wire.Reader) (*ir.Node, error) {
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	res := &ir.Node{Type: ir.ListType, Values: make([]*ir.Node, 0, n)}
	for i := 0; i < n; i++ {
		v, err := parseValue(r)
		if err != nil {
			return nil, fmt.Errorf("list index %d: %w", i, err)
		}
		res.Values = append(res.Values, v)
	}
	return res, nil
}

func parseDict(r *wire.Reader) (*ir.Node, error) {
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	res := &ir.Node{
		Type:   ir.DictType,
		Keys:   make([]string, 0, n),
		Values: make([]*ir.Node, 0, n),
	}
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		at := r.Pos()
		key, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("dict key %d: %w", i, err)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate dict key %q at offset %d",
				wire.ErrInvalidEncoding, key, at)
		}
		seen[key] = struct{}{}
		v, err := parseValue(r)
		if err != nil {
			return nil, fmt.Errorf("dict key %q: %w", key, err)
		}
		res.Keys = append(res.Keys, key)
		res.Values = append(res.Values, v)
	}
	return res, nil
}

// parseScript decodes the script.dat framing: a counted sequence of
// named blobs, the serialized state of the embedded scripting
// subsystem. Each blob is length prefixed and starts with its own
// version header followed by a complete nested property tree; the
// tree is structurally decoded but never semantically interpreted
// here.
func parseScript(r *wire.Reader, doc *ir.Document) (*ir.Node, error) {
	n, err := readCount(r)
	if err != nil {
		return nil, err
	}
	res := &ir.Node{
		Type:   ir.DictType,
		Keys:   make([]string, 0, n),
		Values: make([]*ir.Node, 0, n),
	}
	doc.BlobVersions = make(map[string]ir.Version, n)
	for i := 0; i < n; i++ {
		name, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("script entry %d name: %w", i, err)
		}
		if _, dup := doc.BlobVersions[name]; dup {
			return nil, fmt.Errorf("%w: duplicate script entry %q",
				wire.ErrInvalidEncoding, name)
		}
		size, err := r.ReadVarUint()
		if err != nil {
			return nil, fmt.Errorf("script entry %q size: %w", name, err)
		}
		at := r.Pos()
		blob, err := r.ReadBytes(int(size))
		if err != nil {
			return nil, fmt.Errorf("script entry %q: %w", name, err)
		}
		br := wire.NewReader(blob)
		bv, err := br.ReadVersion()
		if err != nil {
			return nil, fmt.Errorf("script entry %q header: %w", name, err)
		}
		v, err := parseValue(br)
		if err != nil {
			return nil, fmt.Errorf("script entry %q at offset %d: %w", name, at, err)
		}
		if left := br.Remaining(); left != 0 {
			return nil, fmt.Errorf("script entry %q at offset %d: %w: %d bytes",
				name, at, ErrTrailingData, left)
		}
		doc.BlobVersions[name] = bv
		res.Keys = append(res.Keys, name)
		res.Values = append(res.Values, v)
	}
	return res, nil
}

// readCount reads a varuint element count and rejects counts that
// cannot possibly fit in the remaining input, so a corrupt count fails
// here instead of forcing a huge allocation.
func readCount(r *wire.Reader) (int, error) {
	at := r.Pos()
	n, err := r.ReadVarUint()
	if err != nil {
		return 0, err
	}
	if int64(n) > int64(r.Remaining()) {
		return 0, fmt.Errorf("%w: count %d at offset %d exceeds %d remaining bytes",
			wire.ErrUnexpectedEOF, n, at, r.Remaining())
	}
	return int(n), nil
}
