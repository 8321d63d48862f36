package footer

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gothrift/parquetmeta/encoding/thrift"
	"github.com/gothrift/parquetmeta/format"
)

// magic is the 4-byte trailer that closes a Parquet file, immediately
// following the footer's 4-byte little-endian length.
const magic = "PAR1"

// trailerSize is the length field plus the magic bytes.
const trailerSize = 4 + int64(len(magic))

// Read locates and decodes a Parquet file's footer. size is the total
// length of the file r reads from.
func Read(r io.ReaderAt, size int64, opts ...thrift.Option) (*format.FileMetaData, error) {
	if size < trailerSize {
		return nil, fmt.Errorf("footer: file of %d bytes is too small to hold a footer trailer", size)
	}
	tail := make([]byte, trailerSize)
	if _, err := r.ReadAt(tail, size-trailerSize); err != nil {
		return nil, fmt.Errorf("footer: reading trailer: %w", err)
	}
	if string(tail[4:]) != magic {
		return nil, fmt.Errorf("footer: invalid trailing magic %q", tail[4:])
	}
	footerLen := int64(binary.LittleEndian.Uint32(tail[:4]))
	footerStart := size - trailerSize - footerLen
	if footerLen < 0 || footerStart < 0 {
		return nil, fmt.Errorf("footer: footer length %d exceeds file size %d", footerLen, size)
	}

	buf := make([]byte, footerLen)
	if _, err := r.ReadAt(buf, footerStart); err != nil {
		return nil, fmt.Errorf("footer: reading footer bytes: %w", err)
	}

	md := &format.FileMetaData{}
	if err := thrift.Unmarshal(&thrift.CompactProtocol{}, buf, md, opts...); err != nil {
		return nil, fmt.Errorf("footer: decoding FileMetaData: %w", err)
	}
	return md, nil
}

// Write encodes md and appends the length-prefixed "PAR1" trailer,
// writing both to w. It returns the total number of bytes written. The
// caller is responsible for the leading "PAR1" magic and any column
// data that precedes the footer in a complete Parquet file.
func Write(w io.Writer, md *format.FileMetaData, opts ...thrift.Option) (int64, error) {
	buf, err := thrift.Marshal(&thrift.CompactProtocol{}, md, opts...)
	if err != nil {
		return 0, fmt.Errorf("footer: encoding FileMetaData: %w", err)
	}

	var n int64
	nw, err := w.Write(buf)
	n += int64(nw)
	if err != nil {
		return n, fmt.Errorf("footer: writing footer bytes: %w", err)
	}

	var tail [trailerSize]byte
	binary.LittleEndian.PutUint32(tail[:4], uint32(len(buf)))
	copy(tail[4:], magic)
	nw, err = w.Write(tail[:])
	n += int64(nw)
	if err != nil {
		return n, fmt.Errorf("footer: writing trailer: %w", err)
	}
	return n, nil
}
