package format

// FileMetaData is a Parquet file's footer: the file-wide version, its
// flattened schema tree, row group locations, and optional key/value
// metadata. It is the root value encoding/thrift's binding driver
// marshals and unmarshals for the footer package.
type FileMetaData struct {
	Version int32 `thrift:"1,required"`

	// Schema is the depth-first flattening of the schema tree; the first
	// element is always the root.
	Schema []SchemaElement `thrift:"2,required"`

	NumRows   int64      `thrift:"3,required"`
	RowGroups []RowGroup `thrift:"4,required"`

	KeyValueMetadata []KeyValue `thrift:"5,optional"`

	// CreatedBy identifies the writer, e.g.
	// "impala version 1.0 (build 6cf94d29...)".
	CreatedBy string `thrift:"6,optional"`

	// ColumnOrders lists the sort order of each leaf column's min/max
	// statistics, in schema order. If set, its length must equal the
	// number of leaf columns.
	ColumnOrders []ColumnOrder `thrift:"7,optional"`

	// EncryptionAlgorithm is set only for files with a plaintext footer
	// but encrypted columns; files with an encrypted footer instead carry
	// this in FileCryptoMetaData.
	EncryptionAlgorithm EncryptionAlgorithm `thrift:"8,optional"`

	FooterSigningKeyMetadata []byte `thrift:"9,optional"`
}
