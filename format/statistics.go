package format

// Statistics holds per-column summary values, recorded once per row
// group (on ColumnMetaData) and once per data page (on DataPageHeader /
// DataPageHeaderV2). All fields are optional; NullCount carries
// writezero because a zero null count is still meaningful and must not
// be confused with "no statistics were written".
type Statistics struct {
	// Deprecated: use MinValue/MaxValue. Signed-comparison min/max,
	// PLAIN-encoded without a length prefix for variable-length types.
	Max []byte `thrift:"1,optional"`
	Min []byte `thrift:"2,optional"`

	// NullCount is the number of nulls in the column.
	NullCount int64 `thrift:"3,optional,writezero"`

	// DistinctCount is the number of distinct values occurring.
	DistinctCount int64 `thrift:"4,optional"`

	// MinValue/MaxValue are ordered per the column's ColumnOrder, PLAIN
	// encoded without a length prefix for variable-length types.
	MaxValue []byte `thrift:"5,optional"`
	MinValue []byte `thrift:"6,optional"`
}

// SizeStatistics carries size-related row-group/page metadata that isn't
// captured by Statistics: byte counts for variable-length values and, for
// nested schemas, per-level histograms of how many values occurred at
// each repetition/definition level.
type SizeStatistics struct {
	// UnencodedByteArrayDataBytes is the total uncompressed byte size of
	// all ByteArray/FixedLenByteArray values, excluding any encoding
	// overhead. Only meaningful for those two physical types.
	UnencodedByteArrayDataBytes int64 `thrift:"1,optional"`

	// RepetitionLevelHistogram[i] counts values whose repetition level
	// equals i, for i from 0 to the column's max repetition level.
	RepetitionLevelHistogram []int64 `thrift:"2,optional"`

	// DefinitionLevelHistogram[i] counts values whose definition level
	// equals i, for i from 0 to the column's max definition level.
	DefinitionLevelHistogram []int64 `thrift:"3,optional"`
}

// BoundingBox is an axis-aligned bounding box over a geometry or
// geography column's values. ZMin/ZMax and MMin/MMax are absent when the
// column carries no Z or M dimension.
type BoundingBox struct {
	XMin float64 `thrift:"1,required"`
	XMax float64 `thrift:"2,required"`
	YMin float64 `thrift:"3,required"`
	YMax float64 `thrift:"4,required"`

	ZMin *float64 `thrift:"5,optional"`
	ZMax *float64 `thrift:"6,optional"`
	MMin *float64 `thrift:"7,optional"`
	MMax *float64 `thrift:"8,optional"`
}

// GeospatialStatistics summarizes a Geometry or Geography column's values:
// their combined bounding box and the distinct WKB geometry types seen.
type GeospatialStatistics struct {
	BBox BoundingBox `thrift:"1,optional,writezero"`

	// GeoSpatialTypes lists the distinct WKB geometry type codes present
	// in the column, e.g. 1 for Point, 2 for LineString.
	GeoSpatialTypes []int32 `thrift:"2,optional"`
}

// SchemaElement is one node of a FileMetaData's flattened, depth-first
// schema tree. A leaf node sets Type and leaves NumChildren unset; an
// inner (group) node does the opposite.
type SchemaElement struct {
	// Type is unset for a non-leaf node.
	Type *Type `thrift:"1,optional"`

	// TypeLength is the byte length of FixedLenByteArray values, or
	// otherwise the maximum bit width used to store any value.
	TypeLength *int32 `thrift:"2,optional"`

	// RepetitionType is unset only for the schema root.
	RepetitionType *FieldRepetitionType `thrift:"3,optional"`

	// Name of the field.
	Name string `thrift:"4,required"`

	// NumChildren is unset for a leaf (primitive) node.
	NumChildren int32 `thrift:"5,optional"`

	// Deprecated: superseded by LogicalType, still required alongside it
	// for some logical types to preserve forward compatibility.
	ConvertedType *ConvertedType `thrift:"6,optional"`

	// Deprecated: superseded by DecimalType inside LogicalType.
	Scale     *int32 `thrift:"7,optional"`
	Precision *int32 `thrift:"8,optional"`

	// FieldID preserves an external schema's original field id.
	FieldID int32 `thrift:"9,optional"`

	// LogicalType is the current mechanism for annotating a physical
	// type with richer semantics (UTF8 string, decimal, timestamp, ...).
	LogicalType *LogicalType `thrift:"10,optional"`
}
