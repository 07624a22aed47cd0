package ir

import (
	"fmt"
	"maps"

	"github.com/hornwitser/factorio-dat/format"
)

// Version is the four component engine version header found at the
// start of most dat files: major, minor, patch and build.
type Version struct {
	Major uint16
	Minor uint16
	Patch uint16
	Build uint16
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d-%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Document is one decoded dat file. Version is nil for formats that do
// not declare a header (see format.Format.HasVersion). Documents are
// immutable once decoded; the differ only reads them.
type Document struct {
	Format  format.Format
	Version *Version
	Root    *Node

	// BlobVersions records the version header each script data blob
	// carries, keyed by entry name. Nil for every other format.
	BlobVersions map[string]Version
}

// EqualDocs reports whether two documents have the same format,
// version headers and structurally equal trees.
func EqualDocs(a, b *Document) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Format != b.Format {
		return false
	}
	if (a.Version == nil) != (b.Version == nil) {
		return false
	}
	if a.Version != nil && *a.Version != *b.Version {
		return false
	}
	if !maps.Equal(a.BlobVersions, b.BlobVersions) {
		return false
	}
	return Equal(a.Root, b.Root)
}
