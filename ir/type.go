package ir

import "fmt"

// Type identifies the variant held by a Node. The values mirror the
// tag bytes of the serialized property-tree grammar.
type Type int

const (
	NilType Type = iota
	BoolType
	NumberType
	StringType
	ListType
	DictType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NilType:    "Nil",
		BoolType:   "Bool",
		NumberType: "Number",
		StringType: "String",
		ListType:   "List",
		DictType:   "Dict",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Nil":    NilType,
		"Bool":   BoolType,
		"Number": NumberType,
		"String": StringType,
		"List":   ListType,
		"Dict":   DictType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NilType,
		BoolType,
		NumberType,
		StringType,
		ListType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, DictType:
		return false
	default:
		return true
	}
}
