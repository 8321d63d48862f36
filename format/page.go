package format

// DataPageHeader describes a version-1 data page.
type DataPageHeader struct {
	// NumValues includes nulls.
	NumValues int32 `thrift:"1,required"`

	Encoding                Encoding `thrift:"2,required"`
	DefinitionLevelEncoding Encoding `thrift:"3,required"`
	RepetitionLevelEncoding Encoding `thrift:"4,required"`

	Statistics Statistics `thrift:"5,optional,writezero"`
}

// IndexPageHeader carries no fields; its presence on a PageHeader is the
// entire signal that the page is an index page.
type IndexPageHeader struct{}

// DictionaryPageHeader precedes the encoded dictionary for a
// dictionary-encoded column chunk. At most one may appear per chunk, and
// it must be the chunk's first page.
type DictionaryPageHeader struct {
	NumValues int32    `thrift:"1,required"`
	Encoding  Encoding `thrift:"2,required"`
	IsSorted  bool     `thrift:"3,optional"`
}

// DataPageHeaderV2 is the version-2 data page header: repetition and
// definition levels are always RLE-encoded and never compressed, so a
// reader can access them without decompressing the page body.
type DataPageHeaderV2 struct {
	NumValues int32 `thrift:"1,required"`
	NumNulls  int32 `thrift:"2,required"`
	NumRows   int32 `thrift:"3,required"`

	Encoding Encoding `thrift:"4,required"`

	DefinitionLevelsByteLength int32 `thrift:"5,required"`
	RepetitionLevelsByteLength int32 `thrift:"6,required"`

	// IsCompressed defaults to true when absent.
	IsCompressed *bool `thrift:"7,optional"`

	Statistics Statistics `thrift:"8,optional,writezero"`
}

// PageHeader precedes every page's bytes. Exactly one of the four
// type-specific header fields is set, selected by Type.
type PageHeader struct {
	Type PageType `thrift:"1,required"`

	UncompressedPageSize int32 `thrift:"2,required"`
	CompressedPageSize   int32 `thrift:"3,required"`

	// CRC is computed over the encoded (and, if applicable, compressed)
	// levels and values, excluding this header.
	CRC int32 `thrift:"4,optional"`

	DataPageHeader       *DataPageHeader       `thrift:"5,optional"`
	IndexPageHeader      *IndexPageHeader      `thrift:"6,optional"`
	DictionaryPageHeader *DictionaryPageHeader `thrift:"7,optional"`
	DataPageHeaderV2     *DataPageHeaderV2     `thrift:"8,optional"`
}

// PageEncodingStats records how many pages of a given type used a given
// encoding, letting a reader validate it can decode every page of a
// column chunk before starting.
type PageEncodingStats struct {
	PageType PageType `thrift:"1,required"`
	Encoding Encoding `thrift:"2,required"`
	Count    int32    `thrift:"3,required"`
}
