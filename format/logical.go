package format

import (
	"fmt"

	"github.com/gothrift/parquetmeta/encoding/thrift"
)

// Empty logical type annotations. Their presence (a non-nil pointer in a
// LogicalType union) is the entire signal; none carries data of its own.
type StringType struct{}
type UUIDType struct{}
type MapType struct{}
type ListType struct{}
type EnumType struct{}
type DateType struct{}
type NullType struct{}
type JsonType struct{}
type BsonType struct{}

func (*StringType) String() string { return "STRING" }
func (*UUIDType) String() string   { return "UUID" }
func (*MapType) String() string    { return "MAP" }
func (*ListType) String() string   { return "LIST" }
func (*EnumType) String() string   { return "ENUM" }
func (*DateType) String() string   { return "DATE" }
func (*NullType) String() string   { return "NULL" }
func (*JsonType) String() string   { return "JSON" }
func (*BsonType) String() string   { return "BSON" }

// DecimalType annotates a column holding fixed-precision decimal values.
// Allowed for Int32, Int64, FixedLenByteArray and ByteArray columns.
type DecimalType struct {
	Scale     int32 `thrift:"1,required"`
	Precision int32 `thrift:"2,required"`
}

func (t *DecimalType) String() string {
	return fmt.Sprintf("DECIMAL(%d,%d)", t.Precision, t.Scale)
}

// Time unit annotations used by TimestampType and TimeType.
type MilliSeconds struct{}
type MicroSeconds struct{}
type NanoSeconds struct{}

func (*MilliSeconds) String() string { return "MILLIS" }
func (*MicroSeconds) String() string { return "MICROS" }
func (*NanoSeconds) String() string  { return "NANOS" }

// TimeUnit selects the granularity of a TimestampType or TimeType.
type TimeUnit struct {
	thrift.UnionType
	Millis *MilliSeconds `thrift:"1"`
	Micros *MicroSeconds `thrift:"2"`
	Nanos  *NanoSeconds  `thrift:"3"`
}

func (u *TimeUnit) String() string {
	switch {
	case u.Millis != nil:
		return u.Millis.String()
	case u.Micros != nil:
		return u.Micros.String()
	case u.Nanos != nil:
		return u.Nanos.String()
	default:
		return ""
	}
}

// TimestampType annotates an Int64 column holding timestamps.
type TimestampType struct {
	IsAdjustedToUTC bool     `thrift:"1,required"`
	Unit            TimeUnit `thrift:"2,required"`
}

func (t *TimestampType) String() string {
	return fmt.Sprintf("TIMESTAMP(isAdjustedToUTC=%t,unit=%s)", t.IsAdjustedToUTC, &t.Unit)
}

// TimeType annotates an Int32 (millis) or Int64 (micros/nanos) column
// holding a time of day.
type TimeType struct {
	IsAdjustedToUTC bool     `thrift:"1,required"`
	Unit            TimeUnit `thrift:"2,required"`
}

func (t *TimeType) String() string {
	return fmt.Sprintf("TIME(isAdjustedToUTC=%t,unit=%s)", t.IsAdjustedToUTC, &t.Unit)
}

// IntType annotates an Int32 or Int64 column holding a narrower integer
// width. BitWidth must be 8, 16, 32 or 64.
type IntType struct {
	BitWidth int8 `thrift:"1,required"`
	IsSigned bool `thrift:"2,required"`
}

func (t *IntType) String() string {
	return fmt.Sprintf("INT(%d,%t)", t.BitWidth, t.IsSigned)
}

// Float16Type and VariantType are empty logical type annotations, the
// same shape as StringType/UUIDType above; their presence alone is the
// signal.
type Float16Type struct{}
type VariantType struct{}

func (*Float16Type) String() string { return "FLOAT16" }
func (*VariantType) String() string { return "VARIANT" }

// GeometryType annotates a ByteArray column holding WKB-encoded geometry
// values, optionally pinned to a coordinate reference system.
type GeometryType struct {
	// CRS identifies the coordinate reference system; empty means the
	// default, OGC:CRS84.
	CRS string `thrift:"1,optional"`
}

func (t *GeometryType) String() string {
	if t.CRS == "" {
		return "GEOMETRY"
	}
	return fmt.Sprintf("GEOMETRY(%s)", t.CRS)
}

// EdgeInterpolationAlgorithm selects how edges between two points are
// interpolated on a GeographyType column, following the parquet-format
// specification's fixed set of geodesic algorithms.
type EdgeInterpolationAlgorithm int32

const (
	Spherical EdgeInterpolationAlgorithm = 0
	Vincenty  EdgeInterpolationAlgorithm = 1
	Thomas    EdgeInterpolationAlgorithm = 2
	Andoyer   EdgeInterpolationAlgorithm = 3
	Karney    EdgeInterpolationAlgorithm = 4
)

func (a EdgeInterpolationAlgorithm) String() string {
	switch a {
	case Spherical:
		return "SPHERICAL"
	case Vincenty:
		return "VINCENTY"
	case Thomas:
		return "THOMAS"
	case Andoyer:
		return "ANDOYER"
	case Karney:
		return "KARNEY"
	default:
		return "EdgeInterpolationAlgorithm(?)"
	}
}

// GeographyType annotates a ByteArray column holding WKB-encoded
// geography values (coordinates on a sphere or ellipsoid rather than a
// plane), optionally pinned to a coordinate reference system and edge
// interpolation algorithm.
type GeographyType struct {
	CRS       string                     `thrift:"1,optional"`
	Algorithm EdgeInterpolationAlgorithm `thrift:"2,optional"`
}

func (t *GeographyType) String() string {
	if t.CRS == "" {
		return fmt.Sprintf("GEOGRAPHY(%s)", t.Algorithm)
	}
	return fmt.Sprintf("GEOGRAPHY(%s,%s)", t.CRS, t.Algorithm)
}

// LogicalType replaces ConvertedType as the mechanism for annotating a
// SchemaElement with richer semantics. Exactly one field is set.
type LogicalType struct {
	thrift.UnionType
	UTF8      *StringType    `thrift:"1"`
	Map       *MapType       `thrift:"2"`
	List      *ListType      `thrift:"3"`
	Enum      *EnumType      `thrift:"4"`
	Decimal   *DecimalType   `thrift:"5"`
	Date      *DateType      `thrift:"6"`
	Time      *TimeType      `thrift:"7"`
	Timestamp *TimestampType `thrift:"8"`
	// 9 is reserved for Interval.
	Integer   *IntType       `thrift:"10"`
	Unknown   *NullType      `thrift:"11"`
	Json      *JsonType      `thrift:"12"`
	Bson      *BsonType      `thrift:"13"`
	UUID      *UUIDType      `thrift:"14"`
	Float16   *Float16Type   `thrift:"15"`
	Variant   *VariantType   `thrift:"16"`
	Geometry  *GeometryType  `thrift:"17"`
	Geography *GeographyType `thrift:"18"`
}

func (t *LogicalType) String() string {
	switch {
	case t.UTF8 != nil:
		return t.UTF8.String()
	case t.Map != nil:
		return t.Map.String()
	case t.List != nil:
		return t.List.String()
	case t.Enum != nil:
		return t.Enum.String()
	case t.Decimal != nil:
		return t.Decimal.String()
	case t.Date != nil:
		return t.Date.String()
	case t.Time != nil:
		return t.Time.String()
	case t.Timestamp != nil:
		return t.Timestamp.String()
	case t.Integer != nil:
		return t.Integer.String()
	case t.Unknown != nil:
		return t.Unknown.String()
	case t.Json != nil:
		return t.Json.String()
	case t.Bson != nil:
		return t.Bson.String()
	case t.UUID != nil:
		return t.UUID.String()
	case t.Float16 != nil:
		return t.Float16.String()
	case t.Variant != nil:
		return t.Variant.String()
	case t.Geometry != nil:
		return t.Geometry.String()
	case t.Geography != nil:
		return t.Geography.String()
	default:
		return ""
	}
}
