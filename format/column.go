package format

import "github.com/gothrift/parquetmeta/encoding/thrift"

// KeyValue is an arbitrary string key/value pair attached to a
// FileMetaData or ColumnMetaData.
type KeyValue struct {
	Key   string `thrift:"1,required"`
	Value string `thrift:"2,required"`
}

// SortingColumn records that a row group's rows are sorted by one of its
// columns.
type SortingColumn struct {
	// ColumnIdx indexes into the row group's column chunk list.
	ColumnIdx int32 `thrift:"1,required"`

	Descending bool `thrift:"2,required"`
	NullsFirst bool `thrift:"3,required"`
}

// ColumnMetaData describes one column chunk's encoding, compression,
// location and (optionally) statistics.
type ColumnMetaData struct {
	Type Type `thrift:"1,required"`

	// Encoding lists every encoding used anywhere in this chunk, so a
	// reader can check up front whether it can decode it.
	Encoding []Encoding `thrift:"2,required"`

	PathInSchema []string         `thrift:"3,required"`
	Codec        CompressionCodec `thrift:"4,required"`

	NumValues             int64 `thrift:"5,required"`
	TotalUncompressedSize int64 `thrift:"6,required"`
	TotalCompressedSize   int64 `thrift:"7,required"`

	KeyValueMetadata []KeyValue `thrift:"8,optional"`

	// DataPageOffset is relative to the start of the file.
	DataPageOffset       int64 `thrift:"9,required"`
	IndexPageOffset      int64 `thrift:"10,optional"`
	DictionaryPageOffset int64 `thrift:"11,optional"`

	Statistics Statistics `thrift:"12,optional,writezero"`

	EncodingStats []PageEncodingStats `thrift:"13,optional"`

	BloomFilterOffset int64 `thrift:"14,optional"`
	BloomFilterLength int32 `thrift:"15,optional"`

	SizeStatistics SizeStatistics `thrift:"16,optional,writezero"`

	GeospatialStatistics GeospatialStatistics `thrift:"17,optional,writezero"`
}

// EncryptionWithFooterKey signals that a column's data is encrypted with
// the same key as the footer; it carries no data of its own.
type EncryptionWithFooterKey struct{}

// EncryptionWithColumnKey signals that a column is encrypted with its
// own key, identified by KeyMetadata.
type EncryptionWithColumnKey struct {
	PathInSchema []string `thrift:"1,required"`
	KeyMetadata  []byte   `thrift:"2,optional"`
}

// ColumnCryptoMetaData selects how an encrypted column's key is derived.
type ColumnCryptoMetaData struct {
	thrift.UnionType
	EncryptionWithFooterKey *EncryptionWithFooterKey `thrift:"1"`
	EncryptionWithColumnKey *EncryptionWithColumnKey `thrift:"2"`
}

// ColumnChunk locates one column's data and (redundantly, for locality)
// embeds its ColumnMetaData.
type ColumnChunk struct {
	// FilePath is set only when the column's data lives outside the
	// current file; it is relative to the current file's location.
	FilePath string `thrift:"1,optional"`

	FileOffset int64 `thrift:"2,required"`

	MetaData ColumnMetaData `thrift:"3,optional"`

	OffsetIndexOffset int64 `thrift:"4,optional"`
	OffsetIndexLength int32 `thrift:"5,optional"`
	ColumnIndexOffset int64 `thrift:"6,optional"`
	ColumnIndexLength int32 `thrift:"7,optional"`

	CryptoMetadata ColumnCryptoMetaData `thrift:"8,optional"`

	EncryptedColumnMetadata []byte `thrift:"9,optional"`
}

// RowGroup groups one column chunk per leaf column, covering the same
// span of rows.
type RowGroup struct {
	// Columns must follow the same order as FileMetaData.Schema's leaves.
	Columns []ColumnChunk `thrift:"1,required"`

	TotalByteSize int64 `thrift:"2,required"`
	NumRows       int64 `thrift:"3,required"`

	SortingColumns []SortingColumn `thrift:"4,optional"`

	FileOffset          int64 `thrift:"5,optional"`
	TotalCompressedSize int64 `thrift:"6,optional"`
	Ordinal             int16 `thrift:"7,optional"`
}
