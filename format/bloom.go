package format

import "github.com/gothrift/parquetmeta/encoding/thrift"

// SplitBlockAlgorithm is the sole block-based Bloom filter algorithm
// annotation defined by the format.
type SplitBlockAlgorithm struct{}

// BloomFilterAlgorithm selects the Bloom filter construction used.
type BloomFilterAlgorithm struct {
	thrift.UnionType
	Block *SplitBlockAlgorithm `thrift:"1"`
}

// XxHash is the 64-bit xxHash variant used to hash plain-encoded values
// before inserting them into a Bloom filter.
type XxHash struct{}

// BloomFilterHash selects the hash function used to build the filter.
type BloomFilterHash struct {
	thrift.UnionType
	XxHash *XxHash `thrift:"1"`
}

// BloomFilterUncompressed annotates an unencoded Bloom filter bitset.
type BloomFilterUncompressed struct{}

// BloomFilterCompression selects the compression applied to the filter
// bitset.
type BloomFilterCompression struct {
	thrift.UnionType
	Uncompressed *BloomFilterUncompressed `thrift:"1"`
}

// BloomFilterHeader precedes a column's Bloom filter bitset.
type BloomFilterHeader struct {
	// NumBytes is the size of the bitset that follows this header.
	NumBytes int32 `thrift:"1,required"`

	Algorithm   BloomFilterAlgorithm   `thrift:"2,required"`
	Hash        BloomFilterHash        `thrift:"3,required"`
	Compression BloomFilterCompression `thrift:"4,required"`
}
