package format

import "github.com/gothrift/parquetmeta/encoding/thrift"

// TypeDefinedOrder signals that a column's min/max ordering follows its
// logical (or, absent one, physical) type's natural order. It carries no
// data of its own.
type TypeDefinedOrder struct{}

// ColumnOrder selects the ordering used for a column's min/max
// statistics. It is modeled as a union — rather than a bare enum — so a
// future richer ordering (e.g. collation-based) can be added as a new
// member without breaking the wire format.
type ColumnOrder struct {
	thrift.UnionType
	TypeOrder *TypeDefinedOrder `thrift:"1"`
}

// PageLocation records where one page lives within a column chunk, and
// which row it starts at.
type PageLocation struct {
	Offset int64 `thrift:"1,required"`

	// CompressedPageSize includes the page header.
	CompressedPageSize int32 `thrift:"2,required"`

	FirstRowIndex int64 `thrift:"3,required"`
}

// OffsetIndex locates every page of a column chunk, ordered by offset.
type OffsetIndex struct {
	PageLocations []PageLocation `thrift:"1,required"`
}

// ColumnIndex holds per-page min/max bounds for a column chunk, letting a
// reader skip pages without touching their data. Entry i of each slice
// describes the page at OffsetIndex.PageLocations[i].
type ColumnIndex struct {
	// NullPages[i] true means page i is all-null; MinValues[i] and
	// MaxValues[i] are then set to a zero-length value rather than left
	// absent, so every list stays the same length.
	NullPages []bool `thrift:"1,required"`

	MinValues [][]byte `thrift:"2,required"`
	MaxValues [][]byte `thrift:"3,required"`

	BoundaryOrder BoundaryOrder `thrift:"4,required"`

	NullCounts []int64 `thrift:"5,optional"`

	// RepetitionLevelHistogram/DefinitionLevelHistogram concatenate every
	// page's SizeStatistics histogram of the same name, page by page, so
	// a reader can recover per-page level distributions without reading
	// each page's own SizeStatistics separately.
	RepetitionLevelHistogram []int64 `thrift:"6,optional"`
	DefinitionLevelHistogram []int64 `thrift:"7,optional"`
}
