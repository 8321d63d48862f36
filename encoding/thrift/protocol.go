package thrift

import "io"

// Field identifies a struct field header as read or written on the wire.
type Field struct {
	ID   int16
	Type TType
}

// List identifies a list or set header as read or written on the wire.
type List struct {
	Type TType
	Size int
}

// Protocol constructs Readers and Writers for a wire encoding. The only
// implementation in this package is CompactProtocol; Binary and JSON are
// explicitly out of scope.
type Protocol interface {
	NewReader(r io.Reader, opts ...Option) Reader
	NewWriter(w io.Writer, opts ...Option) Writer
}

// Reader is the low-level read side of the operation vocabulary of
// spec.md §4.D. Implementations never mutate caller state beyond what is
// documented per method; they only produce events and scalar values.
type Reader interface {
	ReadStructBegin() error
	ReadStructEnd() error
	ReadFieldBegin() (Field, error)
	ReadFieldEnd() error
	ReadListBegin() (List, error)
	ReadListEnd() error
	ReadSetBegin() (List, error)
	ReadSetEnd() error
	ReadBool() (bool, error)
	ReadByte() (int8, error)
	ReadI16() (int16, error)
	ReadI32() (int32, error)
	ReadI64() (int64, error)
	ReadDouble() (float64, error)
	ReadBinary() ([]byte, error)
	ReadString() (string, error)
	// Skip advances past a well-formed value of the given logical type
	// without producing it, per spec.md §4.D.
	Skip(t TType) error
}

// Writer is the low-level write side of the operation vocabulary of
// spec.md §4.E, mirroring Reader.
type Writer interface {
	WriteStructBegin() error
	WriteStructEnd() error
	WriteFieldBegin(f Field) error
	WriteFieldEnd() error
	WriteFieldStop() error
	WriteListBegin(l List) error
	WriteListEnd() error
	WriteSetBegin(l List) error
	WriteSetEnd() error
	WriteBool(v bool) error
	WriteByte(v int8) error
	WriteI16(v int16) error
	WriteI32(v int32) error
	WriteI64(v int64) error
	WriteDouble(v float64) error
	WriteBinary(v []byte) error
	WriteString(v string) error
}
