// Package ir provides the in-memory representation of decoded Factorio
// property-tree documents.
//
// All binary formats handled by this module (achievements, mod-settings,
// script data) decode into a tree of ir.Node values. A Node is a tagged
// union over the six property-tree types: nil, bool, number, string,
// list and dict. Dict nodes keep their key insertion order so that a
// decoded document can be re-encoded byte for byte.
//
// A Document wraps a root Node together with the format it was decoded
// from and the version header, when the format carries one.
//
// Related packages:
//
//   - github.com/hornwitser/factorio-dat/parse - decodes bytes into Documents
//   - github.com/hornwitser/factorio-dat/encode - encodes Documents to bytes
//   - github.com/hornwitser/factorio-dat/diff - structural comparison
package ir
