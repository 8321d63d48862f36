package format

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Dump renders a human-readable summary of a FileMetaData's schema and
// row group layout: one table per row group, listing each column
// chunk's path, codec, encodings and byte sizes. It is meant for ad hoc
// inspection (by a caller's own CLI or test harness), not for
// machine-readable output.
func Dump(w io.Writer, md *FileMetaData) error {
	fmt.Fprintf(w, "version %d, %d row(s), %d row group(s), %d schema element(s)\n",
		md.Version, md.NumRows, len(md.RowGroups), len(md.Schema))

	for i, rg := range md.RowGroups {
		fmt.Fprintf(w, "\nrow group %d (%d rows, %d bytes)\n", i, rg.NumRows, rg.TotalByteSize)

		table := tablewriter.NewWriter(w)
		table.Header("path", "type", "codec", "encodings", "values", "compressed", "uncompressed")
		for _, col := range rg.Columns {
			md := col.MetaData
			if err := table.Append(
				joinPath(md.PathInSchema),
				md.Type.String(),
				md.Codec.String(),
				joinEncodings(md.Encoding),
				fmt.Sprintf("%d", md.NumValues),
				fmt.Sprintf("%d", md.TotalCompressedSize),
				fmt.Sprintf("%d", md.TotalUncompressedSize),
			); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(path []string) string {
	s := ""
	for i, p := range path {
		if i > 0 {
			s += "."
		}
		s += p
	}
	return s
}

func joinEncodings(encodings []Encoding) string {
	s := ""
	for i, e := range encodings {
		if i > 0 {
			s += ","
		}
		s += e.String()
	}
	return s
}
