package format

import "github.com/gothrift/parquetmeta/encoding/thrift"

// AesGcmV1 configures AES-GCM encryption where the entire file (including
// page headers) is encrypted with AAD prefixes per spec.
type AesGcmV1 struct {
	AadPrefix       []byte `thrift:"1,optional"`
	AadFileUnique   []byte `thrift:"2,optional"`
	SupplyAadPrefix bool   `thrift:"3,optional"`
}

// AesGcmCtrV1 configures AES-CTR encryption of page data with AES-GCM
// only over page headers, trading authentication of the data itself for
// better random-access performance.
type AesGcmCtrV1 struct {
	AadPrefix       []byte `thrift:"1,optional"`
	AadFileUnique   []byte `thrift:"2,optional"`
	SupplyAadPrefix bool   `thrift:"3,optional"`
}

// EncryptionAlgorithm selects the encryption scheme used for the file.
type EncryptionAlgorithm struct {
	thrift.UnionType
	AesGcmV1    *AesGcmV1    `thrift:"1"`
	AesGcmCtrV1 *AesGcmCtrV1 `thrift:"2"`
}

// FileCryptoMetaData precedes an encrypted file's footer when the footer
// itself is encrypted (rather than left in plaintext with only column
// data encrypted).
type FileCryptoMetaData struct {
	EncryptionAlgorithm EncryptionAlgorithm `thrift:"1,required"`
	KeyMetadata         []byte              `thrift:"2,optional"`
}
