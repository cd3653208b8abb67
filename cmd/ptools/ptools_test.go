package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/vparquet"
	"github.com/segmentio/vparquet/encoding/plain"
	"github.com/segmentio/vparquet/internal/test"
)

// tableRows extracts the cells of the table printed by dump, one line per row
// with cells separated by a single space.
func tableRows(output string) string {
	rows := new(strings.Builder)
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "|") {
			continue
		}
		cells := strings.Split(strings.Trim(line, "|"), "|")
		for i, cell := range cells {
			if i > 0 {
				rows.WriteString(" ")
			}
			rows.WriteString(strings.TrimSpace(cell))
		}
		rows.WriteString("\n")
	}
	return rows.String()
}

func assertOutput(t *testing.T, want, got string) {
	t.Helper()
	if want != got {
		edits := myers.ComputeEdits(span.URIFromPath("want"), want, got)
		t.Errorf("output mismatch:\n%s", gotextdiff.ToUnified("want", "got", want, edits))
	}
}

func writePageFile(t *testing.T, dir string, options []vparquet.WriterOption, pages ...[]byte) string {
	path := filepath.Join(dir, "pages.bin")
	buffer := new(bytes.Buffer)
	writer, err := vparquet.NewPageWriter(buffer, &vparquet.Snappy, options...)
	require.NoError(t, err)
	for _, p := range pages {
		numValues := 0
		if len(p) > 0 {
			numValues = int(p[0])
		}
		require.NoError(t, writer.WriteDataPage(numValues, p[1:]))
	}
	require.NoError(t, os.WriteFile(path, buffer.Bytes(), 0644))
	return path
}

// page prefixes values with their count, as expected by writePageFile.
func page(numValues int, values []byte) []byte {
	return append([]byte{byte(numValues)}, values...)
}

func TestDump(t *testing.T) {
	id := uuid.MustParse("2bf5e3b2-7c58-4f3c-9a9e-0d4a43e26c7f")

	tests := []struct {
		scenario string
		flags    dumpFlags
		pages    [][]byte
		want     string
	}{
		{
			scenario: "int32",
			flags:    dumpFlags{Type: "int32", Batch: 2},
			pages: [][]byte{
				page(3, plain.AppendInt32(nil, 1, -2, 3)),
				page(1, plain.AppendInt32(nil, 2147483647)),
			},
			want: "ROW VALUE\n0 1\n1 -2\n2 3\n3 2147483647\n",
		},
		{
			scenario: "int8",
			flags:    dumpFlags{Type: "int8", Batch: 8},
			pages: [][]byte{
				page(3, plain.AppendInt32(nil, 5, -3, 255)),
			},
			want: "ROW VALUE\n0 5\n1 -3\n2 -1\n",
		},
		{
			scenario: "double with limit",
			flags:    dumpFlags{Type: "double", Batch: 8, Limit: 2},
			pages: [][]byte{
				page(3, plain.AppendDouble(nil, 0.5, -1.25, 3)),
			},
			want: "ROW VALUE\n0 0.5\n1 -1.25\n",
		},
		{
			scenario: "binary",
			flags:    dumpFlags{Type: "binary", Batch: 1},
			pages: [][]byte{
				page(2, plain.AppendByteArrayList(nil, []byte("hello"), []byte("parquet world"))),
			},
			want: "ROW VALUE\n0 hello\n1 parquet world\n",
		},
		{
			scenario: "uuid",
			flags:    dumpFlags{Type: "fixed", Length: 16, Batch: 4, UUID: true},
			pages: [][]byte{
				page(1, plain.AppendFixedLenByteArray(nil, 16, id[:])),
			},
			want: fmt.Sprintf("ROW VALUE\n0 %s\n", id),
		},
		{
			scenario: "fixed",
			flags:    dumpFlags{Type: "fixed", Length: 2, Batch: 4},
			pages: [][]byte{
				page(2, []byte{0xAB, 0xCD, 0x01, 0x02}),
			},
			want: "ROW VALUE\n0 abcd\n1 0102\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			test.WithTestDir(t, func(dir string) {
				path := writePageFile(t, dir, []vparquet.WriterOption{vparquet.PageChecksum(true)}, tt.pages...)

				tt.flags.Codec = "snappy"
				output := new(strings.Builder)
				require.NoError(t, dump(output, log.NewNopLogger(), tt.flags, path))
				assertOutput(t, tt.want, tableRows(output.String()))
			})
		})
	}
}

func TestDumpErrors(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		path := writePageFile(t, dir, nil, page(1, plain.AppendInt32(nil, 1)))

		tests := []struct {
			scenario string
			flags    dumpFlags
		}{
			{"unknown type", dumpFlags{Type: "int16", Codec: "snappy", Batch: 1}},
			{"unknown codec", dumpFlags{Type: "int32", Codec: "lzo", Batch: 1}},
			{"invalid batch", dumpFlags{Type: "int32", Codec: "snappy"}},
			{"uuid of wrong length", dumpFlags{Type: "fixed", Length: 8, Codec: "snappy", Batch: 1, UUID: true}},
			{"wrong codec", dumpFlags{Type: "int32", Codec: "zstd", Batch: 1}},
		}

		for _, tt := range tests {
			t.Run(tt.scenario, func(t *testing.T) {
				assert.Error(t, dump(new(strings.Builder), log.NewNopLogger(), tt.flags, path))
			})
		}

		assert.Error(t, dump(new(strings.Builder), log.NewNopLogger(),
			dumpFlags{Type: "int32", Codec: "snappy", Batch: 1}, filepath.Join(dir, "missing")))
	})
}

func TestGenDump(t *testing.T) {
	for _, column := range columnTypes {
		for _, codec := range []string{"uncompressed", "gzip", "lz4_raw"} {
			t.Run(column.name+"/"+codec, func(t *testing.T) {
				test.WithTestDir(t, func(dir string) {
					path := filepath.Join(dir, "pages.bin")
					require.NoError(t, gen(log.NewNopLogger(), genFlags{
						Type:     column.name,
						Length:   16,
						Codec:    codec,
						Pages:    3,
						Values:   10,
						Seed:     42,
						V2:       codec == "gzip",
						Checksum: true,
					}, path))

					output := new(strings.Builder)
					require.NoError(t, dump(output, log.NewNopLogger(), dumpFlags{
						Type:   column.name,
						Length: 16,
						Codec:  codec,
						Batch:  7,
						UUID:   column.name == "fixed",
					}, path))

					rows := strings.Split(strings.TrimSuffix(tableRows(output.String()), "\n"), "\n")
					assert.Len(t, rows, 1+30)
					assert.Equal(t, "ROW VALUE", rows[0])
					assert.True(t, strings.HasPrefix(rows[30], "29 "), rows[30])
				})
			})
		}
	}
}
