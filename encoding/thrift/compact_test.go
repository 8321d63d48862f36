package thrift

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 1: a lone required I64 field, value 1234567890.
func TestCompactScenarioSingleI64Field(t *testing.T) {
	b := []byte{0x16, 0xA4, 0x8B, 0xB0, 0x99, 0x09, 0x00}
	r := newCompactReader(bytes.NewReader(b))

	require.NoError(t, r.ReadStructBegin())
	f, err := r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 1, Type: I64}, f)
	v, err := r.ReadI64()
	require.NoError(t, err)
	require.EqualValues(t, 1234567890, v)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, STOP, f.Type)
	require.NoError(t, r.ReadStructEnd())
}

// Scenario 2: {userName: "Alice", favoriteNumber: 1234567890,
// interests: ["programming", "music", "travel"]}.
func TestCompactScenarioAliceStruct(t *testing.T) {
	b := []byte{
		0x18, 0x05, 'A', 'l', 'i', 'c', 'e',
		0x16, 0xA4, 0x8B, 0xB0, 0x99, 0x09,
		0x19, 0x38,
		0x0B, 'p', 'r', 'o', 'g', 'r', 'a', 'm', 'm', 'i', 'n', 'g',
		0x05, 'm', 'u', 's', 'i', 'c',
		0x06, 't', 'r', 'a', 'v', 'e', 'l',
		0x00,
	}
	r := newCompactReader(bytes.NewReader(b))

	require.NoError(t, r.ReadStructBegin())

	f, err := r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 1, Type: STRING}, f)
	name, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "Alice", name)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 2, Type: I64}, f)
	num, err := r.ReadI64()
	require.NoError(t, err)
	require.EqualValues(t, 1234567890, num)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 3, Type: LIST}, f)
	l, err := r.ReadListBegin()
	require.NoError(t, err)
	require.Equal(t, List{Type: STRING, Size: 3}, l)
	var interests []string
	for i := 0; i < l.Size; i++ {
		s, err := r.ReadString()
		require.NoError(t, err)
		interests = append(interests, s)
	}
	require.NoError(t, r.ReadListEnd())
	require.Equal(t, []string{"programming", "music", "travel"}, interests)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, STOP, f.Type)
	require.NoError(t, r.ReadStructEnd())
}

// Scenario 3: encoding then decoding {x:i32=10, y:bool=true, z:u8=0, s:""}
// is the identity.
func TestCompactScenarioRoundTripIdentity(t *testing.T) {
	var buf bytes.Buffer
	w := newCompactWriter(&buf)

	require.NoError(t, w.WriteStructBegin())

	require.NoError(t, w.WriteFieldBegin(Field{ID: 1, Type: I32}))
	require.NoError(t, w.WriteI32(10))
	require.NoError(t, w.WriteFieldEnd())

	require.NoError(t, w.WriteFieldBegin(Field{ID: 2, Type: BOOL}))
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteFieldEnd())

	require.NoError(t, w.WriteFieldBegin(Field{ID: 3, Type: BYTE}))
	require.NoError(t, w.WriteByte(0))
	require.NoError(t, w.WriteFieldEnd())

	require.NoError(t, w.WriteFieldBegin(Field{ID: 4, Type: STRING}))
	require.NoError(t, w.WriteString(""))
	require.NoError(t, w.WriteFieldEnd())

	require.NoError(t, w.WriteFieldStop())
	require.NoError(t, w.WriteStructEnd())

	r := newCompactReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, r.ReadStructBegin())

	f, err := r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 1, Type: I32}, f)
	x, err := r.ReadI32()
	require.NoError(t, err)
	require.EqualValues(t, 10, x)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 2, Type: BOOL}, f)
	y, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, y)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 3, Type: BYTE}, f)
	z, err := r.ReadByte()
	require.NoError(t, err)
	require.EqualValues(t, 0, z)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 4, Type: STRING}, f)
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "", s)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, STOP, f.Type)
	require.NoError(t, r.ReadStructEnd())
}

// Scenario 4: a field header byte whose low nibble has no CType mapping.
func TestCompactScenarioInvalidCType(t *testing.T) {
	b := []byte{0xFF}
	r := newCompactReader(bytes.NewReader(b))
	require.NoError(t, r.ReadStructBegin())
	_, err := r.ReadFieldBegin()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidCType))
}

// Scenario 5: a run-on varint at a scalar position overflows the width
// budget before it terminates.
func TestCompactScenarioVarintOverflowAtScalarPosition(t *testing.T) {
	b := []byte{0x15, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}
	r := newCompactReader(bytes.NewReader(b))
	require.NoError(t, r.ReadStructBegin())
	f, err := r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 1, Type: I32}, f)
	_, err = r.ReadI32()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOverflow))
}

// Scenario 6: skip(STRUCT) over 30 levels of nesting is rejected with
// StackDepth when the bound is 20.
func TestCompactScenarioSkipRejectsExcessiveNesting(t *testing.T) {
	const depth = 30
	var buf bytes.Buffer
	w := newCompactWriter(&buf)
	for i := 0; i < depth-1; i++ {
		require.NoError(t, w.WriteStructBegin())
		require.NoError(t, w.WriteFieldBegin(Field{ID: 1, Type: STRUCT}))
	}
	require.NoError(t, w.WriteStructBegin())
	require.NoError(t, w.WriteFieldStop())
	require.NoError(t, w.WriteStructEnd())
	for i := 0; i < depth-1; i++ {
		require.NoError(t, w.WriteFieldEnd())
		require.NoError(t, w.WriteFieldStop())
		require.NoError(t, w.WriteStructEnd())
	}

	r := newCompactReader(bytes.NewReader(buf.Bytes()), WithMaxDepth(20))
	err := r.Skip(STRUCT)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrStackDepth))
}

// onlyReader strips every interface but io.Reader from its underlying
// source, forcing byteReaderOf onto its bufio.NewReader fallback path.
type onlyReader struct{ r io.Reader }

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }

// A DOUBLE field following a preceding field must decode correctly even
// when the source is a plain io.Reader that byteReaderOf has to wrap in
// its own bufio.Reader: readFull must consume bytes through that same
// wrapper rather than racing ahead on the raw source.
func TestCompactScenarioDoubleAfterFieldOnPlainReader(t *testing.T) {
	var buf bytes.Buffer
	w := newCompactWriter(&buf)

	require.NoError(t, w.WriteStructBegin())
	require.NoError(t, w.WriteFieldBegin(Field{ID: 1, Type: I32}))
	require.NoError(t, w.WriteI32(42))
	require.NoError(t, w.WriteFieldEnd())
	require.NoError(t, w.WriteFieldBegin(Field{ID: 2, Type: DOUBLE}))
	require.NoError(t, w.WriteDouble(3.14159))
	require.NoError(t, w.WriteFieldEnd())
	require.NoError(t, w.WriteFieldStop())
	require.NoError(t, w.WriteStructEnd())

	r := newCompactReader(onlyReader{bytes.NewReader(buf.Bytes())})
	require.NoError(t, r.ReadStructBegin())

	f, err := r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 1, Type: I32}, f)
	x, err := r.ReadI32()
	require.NoError(t, err)
	require.EqualValues(t, 42, x)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, Field{ID: 2, Type: DOUBLE}, f)
	d, err := r.ReadDouble()
	require.NoError(t, err)
	require.InDelta(t, 3.14159, d, 1e-9)
	require.NoError(t, r.ReadFieldEnd())

	f, err = r.ReadFieldBegin()
	require.NoError(t, err)
	require.Equal(t, STOP, f.Type)
	require.NoError(t, r.ReadStructEnd())
}
