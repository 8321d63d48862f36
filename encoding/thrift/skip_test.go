package thrift

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeNestedStruct builds the compact-wire bytes for a struct with a
// string field, a bool field and a list-of-i32 field, nothing more.
func encodeNestedStruct(t *testing.T) []byte {
	t.Helper()
	var buf []byte
	w := newCompactWriter(sliceWriter{&buf})
	require.NoError(t, w.WriteStructBegin())
	require.NoError(t, w.WriteFieldBegin(Field{ID: 1, Type: STRING}))
	require.NoError(t, w.WriteString("nested"))
	require.NoError(t, w.WriteFieldEnd())
	require.NoError(t, w.WriteFieldBegin(Field{ID: 2, Type: BOOL}))
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteFieldEnd())
	require.NoError(t, w.WriteFieldBegin(Field{ID: 3, Type: LIST}))
	require.NoError(t, w.WriteListBegin(List{Type: I32, Size: 3}))
	require.NoError(t, w.WriteI32(1))
	require.NoError(t, w.WriteI32(2))
	require.NoError(t, w.WriteI32(3))
	require.NoError(t, w.WriteListEnd())
	require.NoError(t, w.WriteFieldEnd())
	require.NoError(t, w.WriteFieldStop())
	require.NoError(t, w.WriteStructEnd())
	return buf
}

// Skipping an unknown field in a struct is transparent: the reader lands
// exactly on the following field header, with no side effect on the
// fields already read or yet to be read.
func TestSkipLandsExactlyOnNextField(t *testing.T) {
	nested := encodeNestedStruct(t)

	var buf []byte
	w := newCompactWriter(sliceWriter{&buf})
	require.NoError(t, w.WriteStructBegin())
	require.NoError(t, w.WriteFieldBegin(Field{ID: 1, Type: STRUCT}))
	buf = append(buf, nested...)
	require.NoError(t, w.WriteFieldEnd())
	require.NoError(t, w.WriteFieldBegin(Field{ID: 2, Type: I32}))
	require.NoError(t, w.WriteI32(777))
	require.NoError(t, w.WriteFieldEnd())
	require.NoError(t, w.WriteFieldStop())
	require.NoError(t, w.WriteStructEnd())

	r := newCompactReader(bytes.NewReader(buf))
	require.NoError(t, r.ReadStructBegin())

	f, err := r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 1, Type: STRUCT}, f)
	require.NoError(t, r.Skip(STRUCT))
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 2, Type: I32}, f)
	v, err := r.ReadI32()
	require.NoError(t, err)
	require.EqualValues(t, 777, v)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, STOP, f.Type)
	require.NoError(t, r.ReadStructEnd())
}

// Idempotence: skipping the same well-formed encoding of a value from two
// independent readers consumes exactly the same number of bytes and
// leaves both positioned on an identical trailing marker, regardless of
// how many times the value is skipped elsewhere in the test process.
func TestSkipIsIdempotentAcrossIndependentReaders(t *testing.T) {
	nested := encodeNestedStruct(t)
	marker := []byte{0xAB, 0xCD}

	framed := append(append([]byte{}, nested...), marker...)

	for i := 0; i < 3; i++ {
		r := newCompactReader(bytes.NewReader(framed))
		require.NoError(t, r.Skip(STRUCT))
		rest, err := r.readFull(len(marker))
		require.NoError(t, err)
		require.Equal(t, marker, rest)
	}
}

// Skipping each element type used inside a list is transparent: the list
// itself skips cleanly and the reader lands past all of its elements.
func TestSkipOverListOfStructs(t *testing.T) {
	nested := encodeNestedStruct(t)

	var buf []byte
	w := newCompactWriter(sliceWriter{&buf})
	require.NoError(t, w.WriteStructBegin())
	require.NoError(t, w.WriteFieldBegin(Field{ID: 1, Type: LIST}))
	require.NoError(t, w.WriteListBegin(List{Type: STRUCT, Size: 2}))
	buf = append(buf, nested...)
	buf = append(buf, nested...)
	require.NoError(t, w.WriteListEnd())
	require.NoError(t, w.WriteFieldEnd())
	buf = append(buf, 0x42)

	r := newCompactReader(bytes.NewReader(buf))
	require.NoError(t, r.ReadStructBegin())
	f, err := r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 1, Type: LIST}, f)
	require.NoError(t, r.Skip(LIST))
	b, err := r.readByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x42), b)
}
