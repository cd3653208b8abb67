package vparquet

import (
	"fmt"
	"io"
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/segmentio/encoding/thrift"

	"github.com/segmentio/vparquet/compress"
	"github.com/segmentio/vparquet/encoding"
	"github.com/segmentio/vparquet/format"
)

// PageWriter writes sequences of PLAIN encoded data pages, each made of a
// thrift page header followed by the compressed page data.
//
// The values passed to WriteDataPage are expected to be already PLAIN encoded,
// for example with the Append functions of the plain package.
type PageWriter struct {
	writer   io.Writer
	codec    compress.Codec
	config   WriterConfig
	logger   log.Logger
	protocol thrift.CompactProtocol

	compressed []byte
	numPages   int
}

// NewPageWriter constructs a PageWriter writing to w and compressing pages
// with codec.
func NewPageWriter(w io.Writer, codec compress.Codec, options ...WriterOption) (*PageWriter, error) {
	config, err := NewWriterConfig(options...)
	if err != nil {
		return nil, err
	}
	if codec == nil {
		codec = &Uncompressed
	}
	return &PageWriter{
		writer: w,
		codec:  codec,
		config: *config,
		logger: config.Logger,
	}, nil
}

// NumPages returns the number of pages written so far.
func (w *PageWriter) NumPages() int { return w.numPages }

// WriteDataPage writes a data page containing numValues PLAIN encoded values.
func (w *PageWriter) WriteDataPage(numValues int, values []byte) error {
	if numValues < 0 || numValues > math.MaxInt32 {
		return fmt.Errorf("invalid number of values: %d: %w", numValues, encoding.ErrInvalidArgument)
	}
	if len(values) > math.MaxInt32 {
		return fmt.Errorf("page too large: %d bytes: %w", len(values), encoding.ErrInvalidArgument)
	}

	compressed, err := w.codec.Encode(w.compressed[:0], values)
	if err != nil {
		return fmt.Errorf("compressing page with %s: %w", w.codec, err)
	}
	w.compressed = compressed
	if len(compressed) > math.MaxInt32 {
		return fmt.Errorf("compressed page too large: %d bytes: %w", len(compressed), encoding.ErrInvalidArgument)
	}

	header := &format.PageHeader{
		UncompressedPageSize: int32(len(values)),
		CompressedPageSize:   int32(len(compressed)),
	}
	if w.config.PageChecksum {
		header.CRC = pageChecksum(compressed)
	}

	switch w.config.DataPageVersion {
	case 2:
		isCompressed := w.codec.CompressionCodec() != format.Uncompressed
		header.Type = format.DataPageV2
		header.DataPageHeaderV2 = &format.DataPageHeaderV2{
			NumValues:    int32(numValues),
			NumRows:      int32(numValues),
			Encoding:     format.Plain,
			IsCompressed: &isCompressed,
		}
	default:
		header.Type = format.DataPage
		header.DataPageHeader = &format.DataPageHeader{
			NumValues:               int32(numValues),
			Encoding:                format.Plain,
			DefinitionLevelEncoding: format.RLE,
			RepetitionLevelEncoding: format.RLE,
		}
	}

	b, err := thrift.Marshal(&w.protocol, header)
	if err != nil {
		return fmt.Errorf("encoding page header: %w", err)
	}
	if _, err := w.writer.Write(b); err != nil {
		return err
	}
	if _, err := w.writer.Write(compressed); err != nil {
		return err
	}

	level.Debug(w.logger).Log("msg", "wrote page", "page", w.numPages, "type", header.Type, "codec", w.codec, "values", numValues, "bytes", len(values), "compressed", len(compressed))
	w.numPages++
	return nil
}
