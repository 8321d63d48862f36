package thrift

import (
	"encoding/binary"
	"io"
)

// maxVarintBytes bounds how many continuation bytes readUvarintWidth will
// consume before giving up, keyed by the declared bit width. This is the
// ⌈width/7⌉ bound from spec.md §4.A.
func maxVarintBytes(width int) int {
	return (width + 6) / 7
}

// readUvarintWidth reads an unsigned LEB128 varint and fails with
// Overflow if more than ⌈width/7⌉ bytes are consumed, or if the
// accumulated value exceeds width bits.
func readUvarintWidth(r io.ByteReader, width int) (uint64, error) {
	var x uint64
	var shift uint
	limit := maxVarintBytes(width)
	for i := 0; ; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, newError("readUvarint", EndOfStream, err)
			}
			return 0, newError("readUvarint", Transport, err)
		}
		if i >= limit {
			return 0, newError("readUvarint", Overflow, nil)
		}
		if shift == 63 && b&0x7f > 1 {
			return 0, newError("readUvarint", Overflow, nil)
		}
		x |= uint64(b&0x7f) << shift
		if b < 0x80 {
			break
		}
		shift += 7
	}
	if width < 64 && x > (uint64(1)<<uint(width))-1 {
		return 0, newError("readUvarint", Overflow, nil)
	}
	return x, nil
}

// writeUvarint emits v as little-endian base-128 with a continuation bit,
// in the shortest possible encoding.
func writeUvarint(w io.Writer, buf []byte, v uint64) error {
	n := binary.PutUvarint(buf, v)
	_, err := w.Write(buf[:n])
	if err != nil {
		return newError("writeUvarint", Transport, err)
	}
	return nil
}

func zigzagEncode16(n int16) uint16 { return uint16(n<<1) ^ uint16(n>>15) }
func zigzagDecode16(u uint16) int16 { return int16(u>>1) ^ -int16(u&1) }

func zigzagEncode32(n int32) uint32 { return uint32(n<<1) ^ uint32(n>>31) }
func zigzagDecode32(u uint32) int32 { return int32(u>>1) ^ -int32(u&1) }

func zigzagEncode64(n int64) uint64 { return uint64(n<<1) ^ uint64(n>>63) }
func zigzagDecode64(u uint64) int64 { return int64(u>>1) ^ -int64(u&1) }
