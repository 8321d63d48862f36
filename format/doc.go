// Package format defines the Apache Parquet Thrift IDL as Go struct and
// enum types carrying "thrift" struct tags for encoding/thrift's binding
// driver. Only the metadata structures are implemented: the types a
// FileMetaData tree is built from, plus page headers, column and offset
// indexes, Bloom filter headers and FileCryptoMetaData, not the
// page/column data those types describe.
package format
