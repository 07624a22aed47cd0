// Package wire implements the primitive byte level encodings shared by
// all dat formats: fixed width little-endian integers, the engine's
// space-optimized variable length integers, length-prefixed strings and
// version headers.
//
// Reading is a sequential, forward-only cursor over a fixed buffer. No
// backtracking operation is exposed; callers that need lookahead
// snapshot the cursor with Pos and restore it with Seek on failure.
package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/hornwitser/factorio-dat/ir"
)

type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the current cursor position, for error reporting and for
// snapshotting before a speculative read.
func (r *Reader) Pos() int {
	return r.pos
}

// Seek restores the cursor to a position previously obtained from Pos.
func (r *Reader) Seek(pos int) {
	r.pos = pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) need(n int) error {
	if len(r.data)-r.pos < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrUnexpectedEOF, n, r.pos, len(r.data)-r.pos)
	}
	return nil
}

func (r *Reader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBool reads one byte; any nonzero value is true, matching
// observed encodings which are not restricted to 1.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadVarUint reads the space-optimized integer: a single byte holds
// the value when it is below 0xFF, otherwise the byte is a sentinel
// and the true value follows as a 4-byte little-endian u32.
func (r *Reader) ReadVarUint() (uint32, error) {
	tiny, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	if tiny != 0xFF {
		return uint32(tiny), nil
	}
	return r.ReadU32()
}

func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.data[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

// ReadString reads a one byte empty flag; when it is nonzero the
// string is empty and no further bytes belong to it. Otherwise a
// varuint length precedes that many raw bytes, which must be valid
// UTF-8.
func (r *Reader) ReadString() (string, error) {
	empty, err := r.ReadBool()
	if err != nil {
		return "", err
	}
	if empty {
		return "", nil
	}
	n, err := r.ReadVarUint()
	if err != nil {
		return "", err
	}
	at := r.pos
	raw, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: invalid UTF-8 in string at offset %d", ErrInvalidEncoding, at)
	}
	return string(raw), nil
}

// ReadVersion reads the four consecutive u16 version components.
func (r *Reader) ReadVersion() (ir.Version, error) {
	var v ir.Version
	var err error
	if v.Major, err = r.ReadU16(); err != nil {
		return v, err
	}
	if v.Minor, err = r.ReadU16(); err != nil {
		return v, err
	}
	if v.Patch, err = r.ReadU16(); err != nil {
		return v, err
	}
	if v.Build, err = r.ReadU16(); err != nil {
		return v, err
	}
	return v, nil
}
