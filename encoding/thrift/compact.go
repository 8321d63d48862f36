package thrift

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// CompactProtocol is the Thrift compact binary protocol:
// https://github.com/apache/thrift/blob/master/doc/specs/thrift-compact-protocol.md
type CompactProtocol struct{}

func (p *CompactProtocol) NewReader(r io.Reader, opts ...Option) Reader {
	return newCompactReader(r, opts...)
}

func (p *CompactProtocol) NewWriter(w io.Writer, opts ...Option) Writer {
	return newCompactWriter(w, opts...)
}

func byteReaderOf(r io.Reader) io.ByteReader {
	switch x := r.(type) {
	case *bytes.Buffer:
		return x
	case *bytes.Reader:
		return x
	case *bufio.Reader:
		return x
	case io.ByteReader:
		return x
	default:
		return bufio.NewReader(r)
	}
}

func byteWriterOf(w io.Writer) io.ByteWriter {
	switch x := w.(type) {
	case *bytes.Buffer:
		return x
	case *bufio.Writer:
		return x
	case io.ByteWriter:
		return x
	default:
		return nil
	}
}

type compactReader struct {
	br   io.ByteReader
	opts *Options
	m    *machine

	// boolLatched and boolValue hold a field-header-packed boolean value
	// until the matching ReadBool call consumes it.
	boolLatched bool
	boolValue   bool
}

func newCompactReader(r io.Reader, opts ...Option) *compactReader {
	o := resolveOptions(opts)
	return &compactReader{
		br:   byteReaderOf(r),
		opts: o,
		m:    newMachine(o.maxDepth),
	}
}

func (r *compactReader) readByte() (byte, error) {
	b, err := r.br.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, newError("readByte", EndOfStream, err)
		}
		return 0, newError("readByte", Transport, err)
	}
	return b, nil
}

// readFull reads n bytes through br, the same buffered byte source readByte
// uses. It never touches the underlying io.Reader directly, so bytes br has
// already pulled ahead of the caller's logical position are not skipped.
func (r *compactReader) readFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := r.br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil, newError("read", EndOfStream, io.ErrUnexpectedEOF)
			}
			return nil, newError("read", Transport, err)
		}
		buf[i] = b
	}
	return buf, nil
}

func (r *compactReader) ReadStructBegin() error {
	return r.m.beginStruct("ReadStructBegin")
}

func (r *compactReader) ReadStructEnd() error {
	return r.m.endStruct("ReadStructEnd")
}

func (r *compactReader) ReadFieldBegin() (Field, error) {
	if err := r.m.fieldStop("ReadFieldBegin"); err != nil {
		return Field{}, err
	}
	b, err := r.readByte()
	if err != nil {
		return Field{}, err
	}
	if CType(b&0x0f) == cStop {
		return Field{Type: STOP}, nil
	}
	ct := CType(b & 0x0f)
	ttype, err := ttypeOf(ct)
	if err != nil {
		return Field{}, err
	}
	delta := int16(b >> 4)
	var fid int16
	if delta == 0 {
		u, err := readUvarintWidth(r.br, 16)
		if err != nil {
			return Field{}, err
		}
		fid = zigzagDecode16(uint16(u))
	} else {
		fid = r.m.lastFid + delta
	}
	isBool := ct == cTrue || ct == cFalse
	if err := r.m.beginField("ReadFieldBegin", isBool); err != nil {
		return Field{}, err
	}
	r.m.lastFid = fid
	if isBool {
		r.boolLatched = true
		r.boolValue = ct == cTrue
	}
	return Field{ID: fid, Type: ttype}, nil
}

func (r *compactReader) ReadFieldEnd() error {
	return r.m.endField("ReadFieldEnd")
}

func (r *compactReader) ReadListBegin() (List, error) {
	return r.readListOrSetBegin()
}

func (r *compactReader) ReadListEnd() error {
	return r.m.endList("ReadListEnd")
}

func (r *compactReader) ReadSetBegin() (List, error) {
	return r.readListOrSetBegin()
}

func (r *compactReader) ReadSetEnd() error {
	return r.m.endList("ReadSetEnd")
}

func (r *compactReader) readListOrSetBegin() (List, error) {
	if err := r.m.beginList("ReadListBegin"); err != nil {
		return List{}, err
	}
	b, err := r.readByte()
	if err != nil {
		return List{}, err
	}
	ttype, err := ttypeOf(CType(b & 0x0f))
	if err != nil {
		return List{}, err
	}
	size := int(b >> 4)
	if size == 0x0f {
		u, err := readUvarintWidth(r.br, 32)
		if err != nil {
			return List{}, err
		}
		size = int(u)
	}
	if size > r.opts.maxListSize {
		return List{}, newError("ReadListBegin", Overflow, nil)
	}
	return List{Type: ttype, Size: size}, nil
}

func (r *compactReader) ReadBool() (bool, error) {
	if err := r.m.boolValue("ReadBool"); err != nil {
		return false, err
	}
	if r.boolLatched {
		v := r.boolValue
		r.boolLatched = false
		return v, nil
	}
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *compactReader) ReadByte() (int8, error) {
	if err := r.m.scalar("ReadByte"); err != nil {
		return 0, err
	}
	b, err := r.readByte()
	return int8(b), err
}

func (r *compactReader) ReadI16() (int16, error) {
	if err := r.m.scalar("ReadI16"); err != nil {
		return 0, err
	}
	u, err := readUvarintWidth(r.br, 16)
	if err != nil {
		return 0, err
	}
	return zigzagDecode16(uint16(u)), nil
}

func (r *compactReader) ReadI32() (int32, error) {
	if err := r.m.scalar("ReadI32"); err != nil {
		return 0, err
	}
	u, err := readUvarintWidth(r.br, 32)
	if err != nil {
		return 0, err
	}
	return zigzagDecode32(uint32(u)), nil
}

func (r *compactReader) ReadI64() (int64, error) {
	if err := r.m.scalar("ReadI64"); err != nil {
		return 0, err
	}
	u, err := readUvarintWidth(r.br, 64)
	if err != nil {
		return 0, err
	}
	return zigzagDecode64(u), nil
}

func (r *compactReader) ReadDouble() (float64, error) {
	if err := r.m.scalar("ReadDouble"); err != nil {
		return 0, err
	}
	b, err := r.readFull(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

func (r *compactReader) ReadBinary() ([]byte, error) {
	if err := r.m.scalar("ReadBinary"); err != nil {
		return nil, err
	}
	n, err := readUvarintWidth(r.br, 64)
	if err != nil {
		return nil, err
	}
	if n > uint64(r.opts.maxBinarySize) {
		return nil, newError("ReadBinary", Overflow, nil)
	}
	if n == 0 {
		return []byte{}, nil
	}
	return r.readFull(int(n))
}

func (r *compactReader) ReadString() (string, error) {
	b, err := r.ReadBinary()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *compactReader) Skip(t TType) error {
	switch t {
	case BOOL:
		_, err := r.ReadBool()
		return err
	case BYTE:
		_, err := r.ReadByte()
		return err
	case I16:
		_, err := r.ReadI16()
		return err
	case I32:
		_, err := r.ReadI32()
		return err
	case I64:
		_, err := r.ReadI64()
		return err
	case DOUBLE:
		_, err := r.ReadDouble()
		return err
	case STRING:
		_, err := r.ReadBinary()
		return err
	case STRUCT:
		if err := r.ReadStructBegin(); err != nil {
			return err
		}
		for {
			f, err := r.ReadFieldBegin()
			if err != nil {
				return err
			}
			if f.Type == STOP {
				break
			}
			if err := r.Skip(f.Type); err != nil {
				return err
			}
			if err := r.ReadFieldEnd(); err != nil {
				return err
			}
		}
		return r.ReadStructEnd()
	case LIST, SET:
		l, err := r.readListOrSetBegin()
		if err != nil {
			return err
		}
		for i := 0; i < l.Size; i++ {
			if err := r.Skip(l.Type); err != nil {
				return err
			}
		}
		return r.m.endList("Skip")
	case MAP:
		return newError("Skip", NotImplemented, nil)
	default:
		return newError("Skip", InvalidCType, nil)
	}
}

type compactWriter struct {
	w    io.Writer
	bw   io.ByteWriter
	opts *Options
	m    *machine
	buf  [binary.MaxVarintLen64]byte

	// boolFid and boolHasFid latch a pending boolean field's id until the
	// value arrives and the combined header can be emitted.
	boolFid    int16
	boolHasFid bool
}

func newCompactWriter(w io.Writer, opts ...Option) *compactWriter {
	o := resolveOptions(opts)
	return &compactWriter{
		w:    w,
		bw:   byteWriterOf(w),
		opts: o,
		m:    newMachine(o.maxDepth),
	}
}

func (w *compactWriter) writeByte(b byte) error {
	if w.bw != nil {
		if err := w.bw.WriteByte(b); err != nil {
			return newError("writeByte", Transport, err)
		}
		return nil
	}
	w.buf[0] = b
	if _, err := w.w.Write(w.buf[:1]); err != nil {
		return newError("writeByte", Transport, err)
	}
	return nil
}

func (w *compactWriter) write(b []byte) error {
	if _, err := w.w.Write(b); err != nil {
		return newError("write", Transport, err)
	}
	return nil
}

func (w *compactWriter) writeUvarint(v uint64) error {
	return writeUvarint(w.w, w.buf[:], v)
}

func (w *compactWriter) WriteStructBegin() error {
	return w.m.beginStruct("WriteStructBegin")
}

func (w *compactWriter) WriteStructEnd() error {
	return w.m.endStruct("WriteStructEnd")
}

func (w *compactWriter) WriteFieldBegin(f Field) error {
	isBool := f.Type == BOOL
	if err := w.m.beginField("WriteFieldBegin", isBool); err != nil {
		return err
	}
	if isBool {
		// Delay emitting the header; WriteBool picks TRUE/FALSE.
		w.boolFid = f.ID
		w.boolHasFid = true
		return nil
	}
	ct, err := ctypeOf(f.Type, false, false)
	if err != nil {
		return err
	}
	if err := w.writeFieldHeader(f.ID, ct); err != nil {
		return err
	}
	w.m.lastFid = f.ID
	return nil
}

func (w *compactWriter) writeFieldHeader(fid int16, ct CType) error {
	delta := fid - w.m.lastFid
	if delta > 0 && delta <= 15 {
		return w.writeByte(byte(delta)<<4 | byte(ct))
	}
	if err := w.writeByte(byte(ct)); err != nil {
		return err
	}
	return w.writeUvarint(uint64(zigzagEncode16(fid)))
}

func (w *compactWriter) WriteFieldEnd() error {
	return w.m.endField("WriteFieldEnd")
}

func (w *compactWriter) WriteFieldStop() error {
	if err := w.m.fieldStop("WriteFieldStop"); err != nil {
		return err
	}
	return w.writeByte(byte(cStop))
}

func (w *compactWriter) WriteListBegin(l List) error {
	return w.writeListOrSetBegin(l)
}

func (w *compactWriter) WriteListEnd() error {
	return w.m.endList("WriteListEnd")
}

func (w *compactWriter) WriteSetBegin(l List) error {
	return w.writeListOrSetBegin(l)
}

func (w *compactWriter) WriteSetEnd() error {
	return w.m.endList("WriteSetEnd")
}

func (w *compactWriter) writeListOrSetBegin(l List) error {
	if err := w.m.beginList("WriteListBegin"); err != nil {
		return err
	}
	ct, err := ctypeOf(l.Type, false, false)
	if err != nil {
		return err
	}
	if l.Size < 0 {
		return newError("WriteListBegin", Overflow, nil)
	}
	if l.Size <= 14 {
		return w.writeByte(byte(l.Size)<<4 | byte(ct))
	}
	if err := w.writeByte(0xf0 | byte(ct)); err != nil {
		return err
	}
	return w.writeUvarint(uint64(l.Size))
}

func (w *compactWriter) WriteBool(v bool) error {
	if err := w.m.boolValue("WriteBool"); err != nil {
		return err
	}
	if w.boolHasFid {
		ct, _ := ctypeOf(BOOL, v, true)
		w.boolHasFid = false
		if err := w.writeFieldHeader(w.boolFid, ct); err != nil {
			return err
		}
		w.m.lastFid = w.boolFid
		return nil
	}
	if v {
		return w.writeByte(1)
	}
	return w.writeByte(0)
}

func (w *compactWriter) WriteByte(v int8) error {
	if err := w.m.scalar("WriteByte"); err != nil {
		return err
	}
	return w.writeByte(byte(v))
}

func (w *compactWriter) WriteI16(v int16) error {
	if err := w.m.scalar("WriteI16"); err != nil {
		return err
	}
	return w.writeUvarint(uint64(zigzagEncode16(v)))
}

func (w *compactWriter) WriteI32(v int32) error {
	if err := w.m.scalar("WriteI32"); err != nil {
		return err
	}
	return w.writeUvarint(uint64(zigzagEncode32(v)))
}

func (w *compactWriter) WriteI64(v int64) error {
	if err := w.m.scalar("WriteI64"); err != nil {
		return err
	}
	return w.writeUvarint(zigzagEncode64(v))
}

func (w *compactWriter) WriteDouble(v float64) error {
	if err := w.m.scalar("WriteDouble"); err != nil {
		return err
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return w.write(b[:])
}

func (w *compactWriter) WriteBinary(v []byte) error {
	if err := w.m.scalar("WriteBinary"); err != nil {
		return err
	}
	if err := w.writeUvarint(uint64(len(v))); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	return w.write(v)
}

func (w *compactWriter) WriteString(v string) error {
	if err := w.m.scalar("WriteString"); err != nil {
		return err
	}
	if err := w.writeUvarint(uint64(len(v))); err != nil {
		return err
	}
	if len(v) == 0 {
		return nil
	}
	return w.write([]byte(v))
}
