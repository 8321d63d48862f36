package format

// Type is the physical encoding of a column's values. Good encodings of
// wider types make narrower ones like INT16 unnecessary.
type Type int32

const (
	Boolean           Type = 0
	Int32             Type = 1
	Int64             Type = 2
	Int96             Type = 3 // deprecated, legacy timestamps only.
	Float             Type = 4
	Double            Type = 5
	ByteArray         Type = 6
	FixedLenByteArray Type = 7
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "Type(?)"
	}
}

// FieldRepetitionType records whether a schema node is required, optional
// or repeated.
type FieldRepetitionType int32

const (
	Required FieldRepetitionType = 0
	Optional FieldRepetitionType = 1
	Repeated FieldRepetitionType = 2
)

func (t FieldRepetitionType) String() string {
	switch t {
	case Required:
		return "REQUIRED"
	case Optional:
		return "OPTIONAL"
	case Repeated:
		return "REPEATED"
	default:
		return "FieldRepetitionType(?)"
	}
}

// Encoding identifies how a page's values (or definition/repetition
// levels) are laid out on disk.
type Encoding int32

const (
	Plain                Encoding = 0
	PlainDictionary      Encoding = 2 // deprecated, superseded by RLEDictionary.
	RLE                  Encoding = 3
	BitPacked            Encoding = 4 // deprecated.
	DeltaBinaryPacked    Encoding = 5
	DeltaLengthByteArray Encoding = 6
	DeltaByteArray       Encoding = 7
	RLEDictionary        Encoding = 8
	ByteStreamSplit      Encoding = 9
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case BitPacked:
		return "BIT_PACKED"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	case ByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "Encoding(?)"
	}
}

// CompressionCodec identifies the compression applied to a column
// chunk's pages. A footer only ever records which codec was used; this
// repo never applies or reverses one.
type CompressionCodec int32

const (
	Uncompressed CompressionCodec = 0
	Snappy       CompressionCodec = 1
	Gzip         CompressionCodec = 2
	LZO          CompressionCodec = 3
	Brotli       CompressionCodec = 4
	Lz4          CompressionCodec = 5 // deprecated.
	Zstd         CompressionCodec = 6
	Lz4Raw       CompressionCodec = 7
)

func (c CompressionCodec) String() string {
	switch c {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case LZO:
		return "LZO"
	case Brotli:
		return "BROTLI"
	case Lz4:
		return "LZ4"
	case Zstd:
		return "ZSTD"
	case Lz4Raw:
		return "LZ4_RAW"
	default:
		return "CompressionCodec(?)"
	}
}

// PageType identifies which *Header field of a PageHeader is set.
type PageType int32

const (
	DataPage       PageType = 0
	IndexPage      PageType = 1
	DictionaryPage PageType = 2
	DataPageV2     PageType = 3
)

func (p PageType) String() string {
	switch p {
	case DataPage:
		return "DATA_PAGE"
	case IndexPage:
		return "INDEX_PAGE"
	case DictionaryPage:
		return "DICTIONARY_PAGE"
	case DataPageV2:
		return "DATA_PAGE_V2"
	default:
		return "PageType(?)"
	}
}

// BoundaryOrder annotates whether a ColumnIndex's min/max lists are
// sorted, and in which direction.
type BoundaryOrder int32

const (
	Unordered  BoundaryOrder = 0
	Ascending  BoundaryOrder = 1
	Descending BoundaryOrder = 2
)

func (b BoundaryOrder) String() string {
	switch b {
	case Unordered:
		return "UNORDERED"
	case Ascending:
		return "ASCENDING"
	case Descending:
		return "DESCENDING"
	default:
		return "BoundaryOrder(?)"
	}
}

// ConvertedType is the pre-LogicalType annotation mechanism. It is kept
// for forward compatibility: writers that set a LogicalType must still
// set the corresponding ConvertedType where one exists.
type ConvertedType int32

const (
	ConvertedUTF8            ConvertedType = 0
	ConvertedMap             ConvertedType = 1
	ConvertedMapKeyValue     ConvertedType = 2
	ConvertedList            ConvertedType = 3
	ConvertedEnum            ConvertedType = 4
	ConvertedDecimal         ConvertedType = 5
	ConvertedDate            ConvertedType = 6
	ConvertedTimeMillis      ConvertedType = 7
	ConvertedTimeMicros      ConvertedType = 8
	ConvertedTimestampMillis ConvertedType = 9
	ConvertedTimestampMicros ConvertedType = 10
	ConvertedUint8           ConvertedType = 11
	ConvertedUint16          ConvertedType = 12
	ConvertedUint32          ConvertedType = 13
	ConvertedUint64          ConvertedType = 14
	ConvertedInt8            ConvertedType = 15
	ConvertedInt16           ConvertedType = 16
	ConvertedInt32           ConvertedType = 17
	ConvertedInt64           ConvertedType = 18
	ConvertedJSON            ConvertedType = 19
	ConvertedBSON            ConvertedType = 20
	ConvertedInterval        ConvertedType = 21
)

func (c ConvertedType) String() string {
	switch c {
	case ConvertedUTF8:
		return "UTF8"
	case ConvertedMap:
		return "MAP"
	case ConvertedMapKeyValue:
		return "MAP_KEY_VALUE"
	case ConvertedList:
		return "LIST"
	case ConvertedEnum:
		return "ENUM"
	case ConvertedDecimal:
		return "DECIMAL"
	case ConvertedDate:
		return "DATE"
	case ConvertedTimeMillis:
		return "TIME_MILLIS"
	case ConvertedTimeMicros:
		return "TIME_MICROS"
	case ConvertedTimestampMillis:
		return "TIMESTAMP_MILLIS"
	case ConvertedTimestampMicros:
		return "TIMESTAMP_MICROS"
	case ConvertedUint8:
		return "UINT_8"
	case ConvertedUint16:
		return "UINT_16"
	case ConvertedUint32:
		return "UINT_32"
	case ConvertedUint64:
		return "UINT_64"
	case ConvertedInt8:
		return "INT_8"
	case ConvertedInt16:
		return "INT_16"
	case ConvertedInt32:
		return "INT_32"
	case ConvertedInt64:
		return "INT_64"
	case ConvertedJSON:
		return "JSON"
	case ConvertedBSON:
		return "BSON"
	case ConvertedInterval:
		return "INTERVAL"
	default:
		return "ConvertedType(?)"
	}
}
