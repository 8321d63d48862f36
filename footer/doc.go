// Package footer reads and writes the footer of a Parquet file: a
// compact-protocol-encoded FileMetaData, followed by its 4-byte
// little-endian length and the "PAR1" magic trailer.
package footer
