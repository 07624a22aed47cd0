package diff

import "fmt"

// Kind classifies one point of divergence between two documents.
type Kind int

const (
	// Added: present only in the new document.
	Added Kind = iota
	// Removed: present only in the old document.
	Removed
	// Changed: present in both with the same type but different value.
	Changed
	// TypeMismatch: present in both with different types; the subtrees
	// are not compared further.
	TypeMismatch
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	case TypeMismatch:
		return "type-mismatch"
	default:
		return fmt.Sprintf("<err: %d is not a change kind>", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
