package ir

// Node is a single value in a decoded property tree. It is a tagged
// union: Type selects which payload fields are meaningful.
//
//   - BoolType: Bool
//   - NumberType: Number (all numerics are IEEE-754 doubles on the wire)
//   - StringType: String
//   - ListType: Values, in wire order
//   - DictType: Keys[i] is the key for Values[i]; insertion order is
//     preserved so re-encoding reproduces the original byte stream
//   - NilType: no payload
type Node struct {
	Type Type

	Bool   bool
	Number float64
	String string

	Keys   []string
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NilType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromNumber(v float64) *Node {
	return &Node{Type: NumberType, Number: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ListType, Values: vs}
}

// KeyVal is one dict entry, used to construct dicts with an explicit
// key order.
type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: DictType}
	res.Keys = make([]string, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Keys[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// Get returns the value for field in a dict node, or nil if the node
// is not a dict or has no such key.
func (y *Node) Get(field string) *Node {
	if y.Type != DictType {
		return nil
	}
	for i := range y.Keys {
		if y.Keys[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set replaces the value for field, appending the key when absent.
// Appended keys take the last position, preserving the order of all
// existing entries.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Keys {
		if y.Keys[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Keys = append(y.Keys, field)
	y.Values = append(y.Values, v)
}

// Len returns the number of entries of a list or dict node and 0 for
// leaf nodes.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.String = y.String
	if y.Keys != nil {
		dst.Keys = make([]string, len(y.Keys))
		copy(dst.Keys, y.Keys)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dstI := &Node{}
			yv.CloneTo(dstI)
			dst.Values[i] = dstI
		}
	}
	return dst
}

// Visit walks the tree in pre- and post-order. f is called with
// isPost=false before descending and isPost=true after; returning
// false from the pre call skips the node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
