package thrift

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUvarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 1<<16 - 1, 1 << 20, 1<<32 - 1, 1<<63 - 1}
	for _, n := range cases {
		var buf bytes.Buffer
		var scratch [10]byte
		require.NoError(t, writeUvarint(&buf, scratch[:], n))
		got, err := readUvarintWidth(bytes.NewReader(buf.Bytes()), 64)
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestReadUvarintRejectsTooManyBytesForWidth(t *testing.T) {
	// Six continuation bytes with no terminator: within the width=64 byte
	// budget (10 bytes) this just runs out of input, but at width=32 the
	// budget is 5 bytes, so the sixth byte overflows.
	b := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80}
	_, err := readUvarintWidth(bytes.NewReader(b), 32)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOverflow))
}

func TestReadUvarintEndOfStream(t *testing.T) {
	_, err := readUvarintWidth(bytes.NewReader(nil), 64)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrEndOfStream))
}

func TestZigZag16RoundTrip(t *testing.T) {
	for _, n := range []int16{0, 1, -1, 32767, -32768, 100, -100} {
		require.Equal(t, n, zigzagDecode16(zigzagEncode16(n)))
	}
}

func TestZigZag32RoundTrip(t *testing.T) {
	for _, n := range []int32{0, 1, -1, 1 << 30, -(1 << 30), 2147483647, -2147483648} {
		require.Equal(t, n, zigzagDecode32(zigzagEncode32(n)))
	}
}

func TestZigZag64RoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 1 << 62, -(1 << 62), 1234567890, -1234567890} {
		require.Equal(t, n, zigzagDecode64(zigzagEncode64(n)))
	}
}

func TestZigZagSmallMagnitudeStaysShort(t *testing.T) {
	// The whole point of zig-zag: small negative numbers must encode as
	// small unsigned numbers, not near-max-uint64.
	require.Equal(t, uint16(1), zigzagEncode16(-1))
	require.Equal(t, uint16(2), zigzagEncode16(1))
}
