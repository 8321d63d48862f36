// Package parquetmeta reads and writes Apache Parquet file footers.
//
// encoding/thrift implements the Thrift compact binary protocol and a
// reflection-driven struct-tag binding layer on top of it. format
// defines the Parquet file format's Thrift structures as tagged Go
// types. footer locates, decodes and encodes the magic-framed
// FileMetaData trailer that closes a Parquet file.
package parquetmeta
