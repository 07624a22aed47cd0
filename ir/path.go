package ir

import (
	"strconv"
	"strings"
)

// Elem is one step of a Path: either a dict key or a list index.
type Elem struct {
	Key     string
	Index   int
	IsIndex bool
}

func Field(key string) Elem {
	return Elem{Key: key}
}

func Index(i int) Elem {
	return Elem{Index: i, IsIndex: true}
}

// Path locates a node relative to a document root, e.g. a.b[2].
// The empty path is the root itself.
type Path []Elem

// Child returns a copy of p extended by e. The copy keeps callers that
// hold sub-paths safe from later appends to the parent path stack.
func (p Path) Child(e Elem) Path {
	res := make(Path, len(p)+1)
	copy(res, p)
	res[len(p)] = e
	return res
}

func (p Path) String() string {
	var b strings.Builder
	for i, e := range p {
		if e.IsIndex {
			b.WriteString("[")
			b.WriteString(strconv.Itoa(e.Index))
			b.WriteString("]")
			continue
		}
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(quoteField(e.Key))
	}
	return b.String()
}

// quoteField quotes keys whose literal form would be ambiguous in a
// rendered path.
func quoteField(f string) string {
	if f == "" {
		return `""`
	}
	if strings.ContainsAny(f, ". []{}:\"'#\t\n") {
		return strconv.Quote(f)
	}
	for _, r := range f {
		if r < 0x20 || r == 0x7f {
			return strconv.Quote(f)
		}
	}
	return f
}
