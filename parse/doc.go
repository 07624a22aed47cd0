// Package parse decodes binary dat files into IR documents.
//
// # Usage
//
//	// Decode with a known format
//	doc, err := parse.Parse(data, parse.ParseFormat(format.ModSettings))
//
//	// Decode with the format inferred from a file name
//	doc, err := parse.Parse(data, parse.ParseFileName("mod-settings.dat"))
//
// Decoding is strict: an unknown type tag, a malformed string or bytes
// left over after a complete record all fail the whole document. The
// format has no resynchronization marker, so skipping unknown data
// would desynchronize the cursor for every later read.
//
// # Related Packages
//
//   - github.com/hornwitser/factorio-dat/ir - IR representation
//   - github.com/hornwitser/factorio-dat/encode - Encode IR to bytes
//   - github.com/hornwitser/factorio-dat/format - Format registry
package parse
