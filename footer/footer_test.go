package footer_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/stretchr/testify/require"

	"github.com/gothrift/parquetmeta/footer"
	"github.com/gothrift/parquetmeta/format"
)

// dumpDiff renders a unified diff between the %#v representations of
// want and got, for a more useful failure message than reflect.DeepEqual
// alone would give on a deeply nested FileMetaData.
func dumpDiff(t *testing.T, want, got any) string {
	t.Helper()
	before := fmt.Sprintf("%#v\n", want)
	after := fmt.Sprintf("%#v\n", got)
	edits := myers.ComputeEdits(span.URIFromPath("want"), before, after)
	return fmt.Sprint(gotextdiff.ToUnified("want", "got", before, edits))
}

func newInt32(v int32) *int32 { return &v }
func newType(v format.Type) *format.Type { return &v }

func fixtureMetaData() *format.FileMetaData {
	id := uuid.New()
	idBytes, _ := id.MarshalBinary()

	return &format.FileMetaData{
		Version: 2,
		Schema: []format.SchemaElement{
			{Name: "root", NumChildren: 2, RepetitionType: nil},
			{
				Name:           "id",
				Type:           newType(format.FixedLenByteArray),
				TypeLength:     newInt32(16),
				RepetitionType: reqPtr(),
				LogicalType:    &format.LogicalType{UUID: &format.UUIDType{}},
			},
			{
				Name:           "value",
				Type:           newType(format.Int64),
				RepetitionType: reqPtr(),
			},
		},
		NumRows: 1,
		RowGroups: []format.RowGroup{
			{
				NumRows:       1,
				TotalByteSize: 64,
				Columns: []format.ColumnChunk{
					{
						FileOffset: 4,
						MetaData: format.ColumnMetaData{
							Type:                  format.FixedLenByteArray,
							Encoding:              []format.Encoding{format.Plain},
							PathInSchema:          []string{"id"},
							Codec:                 format.Uncompressed,
							NumValues:             1,
							TotalUncompressedSize: 16,
							TotalCompressedSize:   16,
							DataPageOffset:        4,
							Statistics: format.Statistics{
								MinValue: idBytes,
								MaxValue: idBytes,
							},
						},
					},
					{
						FileOffset: 20,
						MetaData: format.ColumnMetaData{
							Type:                  format.Int64,
							Encoding:              []format.Encoding{format.Plain},
							PathInSchema:          []string{"value"},
							Codec:                 format.Uncompressed,
							NumValues:             1,
							TotalUncompressedSize: 8,
							TotalCompressedSize:   8,
							DataPageOffset:        20,
							Statistics: format.Statistics{
								NullCount: 0,
							},
						},
					},
				},
			},
		},
		CreatedBy: "parquetmeta test fixture",
	}
}

func reqPtr() *format.FieldRepetitionType {
	v := format.Required
	return &v
}

// wrapFile lets a []byte stand in for the file contents footer.Read
// expects behind an io.ReaderAt.
func wrapFile(b []byte) *bytes.Reader { return bytes.NewReader(b) }

func TestWriteReadRoundTrip(t *testing.T) {
	want := fixtureMetaData()

	var buf bytes.Buffer
	n, err := footer.Write(&buf, want)
	require.NoError(t, err)
	require.EqualValues(t, buf.Len(), n)

	got, err := footer.Read(wrapFile(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err, "%s", dumpDiff(t, want, nil))
	require.Equal(t, want, got, dumpDiff(t, want, got))
}

func TestReadRejectsShortFile(t *testing.T) {
	_, err := footer.Read(wrapFile([]byte("short")), 5)
	require.Error(t, err)
}

func TestReadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	_, err := footer.Write(&buf, fixtureMetaData())
	require.NoError(t, err)

	corrupted := buf.Bytes()
	copy(corrupted[len(corrupted)-4:], "NOPE")

	_, err = footer.Read(wrapFile(corrupted), int64(len(corrupted)))
	require.Error(t, err)
}

func TestWriteReadEmptyFile(t *testing.T) {
	md := &format.FileMetaData{
		Version:   1,
		Schema:    []format.SchemaElement{{Name: "root"}},
		RowGroups: []format.RowGroup{},
	}
	var buf bytes.Buffer
	_, err := footer.Write(&buf, md)
	require.NoError(t, err)

	got, err := footer.Read(wrapFile(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Equal(t, md.Version, got.Version)
	require.Empty(t, got.RowGroups)
}
