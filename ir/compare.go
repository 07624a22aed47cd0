package ir

import (
	"cmp"
	"strings"
)

// Equal reports exact structural equality of two nodes. Numbers are
// compared with exact floating-point equality: the values in these
// files are either integers-as-doubles or bit patterns copied from the
// engine, so an epsilon would mask real desyncs. Dict entries are
// compared as an unordered key set; key order only matters for
// re-encoding, not for equality.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NilType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return a.Number == b.Number
	case StringType:
		return a.String == b.String
	case ListType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case DictType:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		for i, k := range a.Keys {
			bv := b.Get(k)
			if bv == nil {
				return false
			}
			if !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare returns an integer comparing two nodes, giving a total order
// used for deterministic output. The result will be 0 if a==b, -1 if
// a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NilType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return cmp.Compare(a.Number, b.Number)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ListType:
		return compareLists(a, b)
	case DictType:
		return compareDicts(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Nil < Bool < Number < String < List < Dict
func rank(t Type) int {
	switch t {
	case NilType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ListType:
		return 4
	case DictType:
		return 5
	}
	return 100
}

func compareLists(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareDicts(a, b *Node) int {
	lenA := len(a.Keys)
	lenB := len(b.Keys)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
