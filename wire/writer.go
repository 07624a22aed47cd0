package wire

import (
	"encoding/binary"
	"math"

	"github.com/hornwitser/factorio-dat/ir"
)

// Writer is the growable output counterpart of Reader. Every Write
// method is the exact inverse of the corresponding Read method.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the written buffer. It remains owned by the writer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) WriteFloat64(v float64) {
	w.WriteU64(math.Float64bits(v))
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
		return
	}
	w.WriteU8(0)
}

// WriteVarUint picks the shorter encoding: the direct byte when the
// value is below 0xFF, otherwise the 0xFF sentinel plus a u32.
func (w *Writer) WriteVarUint(v uint32) {
	if v < 0xFF {
		w.WriteU8(uint8(v))
		return
	}
	w.WriteU8(0xFF)
	w.WriteU32(v)
}

func (w *Writer) WriteBytes(d []byte) {
	w.buf = append(w.buf, d...)
}

func (w *Writer) WriteString(s string) {
	if s == "" {
		w.WriteBool(true)
		return
	}
	w.WriteBool(false)
	w.WriteVarUint(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *Writer) WriteVersion(v ir.Version) {
	w.WriteU16(v.Major)
	w.WriteU16(v.Minor)
	w.WriteU16(v.Patch)
	w.WriteU16(v.Build)
}
