package assembler

import (
	"encoding/binary"
	"io"
)

// MemSliceKind tags which kind of emission a MemSlice represents.
type MemSliceKind uint8

const (
	SliceEmpty MemSliceKind = iota
	SliceOpcode
	SliceByte
	SliceWord
	SlicePending
)

// MemSlice is the assembler's intermediate representation for one source
// line: either a fully-resolved emission, or a Pending placeholder that
// names the label it needs resolved in pass 2.
type MemSlice struct {
	Kind MemSliceKind

	Opcode uint16 // SliceOpcode, SliceWord
	Byte   byte   // SliceByte

	PendingFirstNibble uint8  // SlicePending
	PendingLabel       string // SlicePending
	PendingLine        int    // SlicePending
}

// Write emits the slice's bytes to w, resolving a Pending placeholder
// against labels. Fails with UndefinedLabelError if a Pending label names
// no defined label.
func (s MemSlice) Write(labels map[string]uint16, w io.Writer) error {
	switch s.Kind {
	case SliceOpcode, SliceWord:
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], s.Opcode)
		_, err := w.Write(buf[:])
		return wrapIOError(err)

	case SliceByte:
		_, err := w.Write([]byte{s.Byte})
		return wrapIOError(err)

	case SlicePending:
		addr, ok := labels[s.PendingLabel]
		if !ok {
			return UndefinedLabelError{Name: s.PendingLabel, Line: s.PendingLine}
		}
		opcode := uint16(s.PendingFirstNibble)<<12 | (addr & 0x0FFF)
		var buf [2]byte
		binary.BigEndian.PutUint16(buf[:], opcode)
		_, err := w.Write(buf[:])
		return wrapIOError(err)

	case SliceEmpty:
		return nil
	}
	return nil
}

func wrapIOError(err error) error {
	if err == nil {
		return nil
	}
	return IOError{Cause: err}
}
