package format_test

import (
	"reflect"
	"testing"

	"github.com/segmentio/encoding/thrift"
	"github.com/segmentio/vparquet/format"
)

func TestMarshalUnmarshalPageHeader(t *testing.T) {
	isCompressed := false

	tests := []struct {
		scenario string
		header   *format.PageHeader
	}{
		{
			scenario: "data page",
			header: &format.PageHeader{
				Type:                 format.DataPage,
				UncompressedPageSize: 400,
				CompressedPageSize:   123,
				CRC:                  -42,
				DataPageHeader: &format.DataPageHeader{
					NumValues:               100,
					Encoding:                format.Plain,
					DefinitionLevelEncoding: format.RLE,
					RepetitionLevelEncoding: format.RLE,
				},
			},
		},

		{
			scenario: "data page v2",
			header: &format.PageHeader{
				Type:                 format.DataPageV2,
				UncompressedPageSize: 800,
				CompressedPageSize:   800,
				DataPageHeaderV2: &format.DataPageHeaderV2{
					NumValues:    100,
					NumRows:      100,
					Encoding:     format.Plain,
					IsCompressed: &isCompressed,
				},
			},
		},

		{
			scenario: "dictionary page",
			header: &format.PageHeader{
				Type:                 format.DictionaryPage,
				UncompressedPageSize: 16,
				CompressedPageSize:   16,
				DictionaryPageHeader: &format.DictionaryPageHeader{
					NumValues: 4,
					Encoding:  format.Plain,
					IsSorted:  true,
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			protocol := &thrift.CompactProtocol{}

			b, err := thrift.Marshal(protocol, test.header)
			if err != nil {
				t.Fatal(err)
			}

			decoded := &format.PageHeader{}
			if err := thrift.Unmarshal(protocol, b, decoded); err != nil {
				t.Fatal(err)
			}

			if !reflect.DeepEqual(test.header, decoded) {
				t.Error("values mismatch:")
				t.Logf("expected:\n%#v", test.header)
				t.Logf("found:\n%#v", decoded)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		value interface{ String() string }
		want  string
	}{
		{format.Int32, "INT32"},
		{format.FixedLenByteArray, "FIXED_LEN_BYTE_ARRAY"},
		{format.Type(42), "Type(42)"},
		{format.Plain, "PLAIN"},
		{format.RLEDictionary, "RLE_DICTIONARY"},
		{format.Lz4Raw, "LZ4_RAW"},
		{format.DataPageV2, "DATA_PAGE_V2"},
	}

	for _, test := range tests {
		if got := test.value.String(); got != test.want {
			t.Errorf("string mismatch: want=%q got=%q", test.want, got)
		}
	}
}
