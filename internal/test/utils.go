// Package test contains helpers shared by the tests of the module packages.
package test

import (
	"io"
	"os"
	"testing"

	"github.com/segmentio/encoding/thrift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/vparquet/format"
)

func Close(t testing.TB, c io.Closer) {
	assert.NoError(t, c.Close())
}

// WithTestDir calls f with a temporary directory which is removed after f
// returns, unless the test failed or panicked.
func WithTestDir(t testing.TB, f func(dir string)) {
	dir, err := os.MkdirTemp("", "vparquet-test-")
	require.NoError(t, err)
	defer func() {
		if r := recover(); r != nil {
			t.Log("Test directory available at", dir)
			panic(r)
		} else if t.Failed() {
			t.Log("Test directory available at", dir)
		} else {
			os.RemoveAll(dir)
		}
	}()

	f(dir)
}

// WriteRawPage writes a page made of the given header and body to w, without
// compressing the body or computing a checksum. It is useful to produce pages
// which a page writer would not generate.
func WriteRawPage(t testing.TB, w io.Writer, header *format.PageHeader, body []byte) {
	if header.CompressedPageSize == 0 {
		header.CompressedPageSize = int32(len(body))
	}
	if header.UncompressedPageSize == 0 {
		header.UncompressedPageSize = int32(len(body))
	}
	b, err := thrift.Marshal(new(thrift.CompactProtocol), header)
	require.NoError(t, err)
	_, err = w.Write(b)
	require.NoError(t, err)
	_, err = w.Write(body)
	require.NoError(t, err)
}

// DataPageHeader returns the header of a version 1 data page holding
// numValues values with the given encoding.
func DataPageHeader(numValues int, encoding format.Encoding) *format.PageHeader {
	return &format.PageHeader{
		Type: format.DataPage,
		DataPageHeader: &format.DataPageHeader{
			NumValues:               int32(numValues),
			Encoding:                encoding,
			DefinitionLevelEncoding: format.RLE,
			RepetitionLevelEncoding: format.RLE,
		},
	}
}
