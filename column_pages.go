package vparquet

import (
	"bufio"
	"fmt"
	"io"

	"github.com/segmentio/encoding/thrift"

	"github.com/segmentio/vparquet/compress"
	"github.com/segmentio/vparquet/encoding"
	"github.com/segmentio/vparquet/format"
)

// ColumnPages reads the sequence of pages of a column chunk from a stream.
//
// Each page is made of a thrift header encoded with the compact protocol,
// followed by the page body. ColumnPages verifies the page checksums when the
// headers carry one, and decompresses the page data with the codec of the
// column chunk.
type ColumnPages struct {
	config   ReaderConfig
	metrics  *Metrics
	codec    format.CompressionCodec
	compress compress.Codec
	reader   *bufio.Reader
	checksum checksumReader
	protocol thrift.CompactProtocol
	decoder  thrift.Decoder

	page       Page
	compressed []byte
	buffer     []byte
	numPages   int
}

// NewColumnPages constructs a ColumnPages reading pages compressed with codec
// from r.
//
// The function errors if the options are invalid or if the compression codec
// is not supported.
func NewColumnPages(r io.Reader, codec format.CompressionCodec, options ...ReaderOption) (*ColumnPages, error) {
	config, err := NewReaderConfig(options...)
	if err != nil {
		return nil, err
	}
	c := &ColumnPages{
		config:   *config,
		metrics:  metricsOf(config),
		codec:    codec,
		compress: LookupCompressionCodec(codec),
		reader:   bufio.NewReaderSize(r, config.PageBufferSize),
	}
	if c.compress == nil {
		return nil, fmt.Errorf("cannot read pages compressed with %s: %w", codec, encoding.ErrNotSupported)
	}
	c.decoder.Reset(c.protocol.NewReader(c.reader))
	return c, nil
}

// Codec returns the compression codec of the column chunk.
func (c *ColumnPages) Codec() format.CompressionCodec { return c.codec }

// NumPages returns the number of pages read so far.
func (c *ColumnPages) NumPages() int { return c.numPages }

// ReadPage reads the next page from the stream. The method returns io.EOF when
// no more pages remain.
//
// The returned page, and the data it exposes, are only valid until the next
// call to ReadPage.
func (c *ColumnPages) ReadPage() (*Page, error) {
	header := new(format.PageHeader)
	if err := c.decoder.Decode(header); err != nil {
		if err != io.EOF {
			err = fmt.Errorf("decoding page header: %w", err)
		}
		return nil, err
	}

	if header.CompressedPageSize < 0 || header.UncompressedPageSize < 0 {
		return nil, fmt.Errorf("page %d: invalid page size: compressed=%d uncompressed=%d: %w",
			c.numPages, header.CompressedPageSize, header.UncompressedPageSize, ErrCorrupted)
	}

	body, err := c.readPageBody(header)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", c.numPages, err)
	}

	var data []byte
	switch header.Type {
	case format.DataPage, format.DictionaryPage:
		data, err = c.decompress(body, header.UncompressedPageSize)

	case format.DataPageV2:
		h := header.DataPageHeaderV2
		if h == nil {
			return nil, fmt.Errorf("page %d: missing data page v2 header: %w", c.numPages, ErrCorrupted)
		}
		levelsLength := int64(h.RepetitionLevelsByteLength) + int64(h.DefinitionLevelsByteLength)
		if h.RepetitionLevelsByteLength < 0 || h.DefinitionLevelsByteLength < 0 || levelsLength > int64(len(body)) {
			return nil, fmt.Errorf("page %d: levels length out of bounds: %d/%d: %w", c.numPages, levelsLength, len(body), ErrCorrupted)
		}
		data = body[levelsLength:]
		if h.IsCompressed == nil || *h.IsCompressed {
			data, err = c.decompress(data, header.UncompressedPageSize-int32(levelsLength))
		}

	default:
		data = body
	}
	if err != nil {
		return nil, fmt.Errorf("page %d: decompressing %s data: %w", c.numPages, c.codec, err)
	}

	c.numPages++
	c.page = Page{header: header, data: data}
	c.metrics.observePage(c.page.Encoding(), c.codec, len(data))
	return &c.page, nil
}

func (c *ColumnPages) readPageBody(header *format.PageHeader) ([]byte, error) {
	size := int(header.CompressedPageSize)
	if cap(c.compressed) < size {
		c.compressed = make([]byte, size)
	}
	body := c.compressed[:size]

	if header.CRC == 0 || c.config.SkipPageChecksum {
		if _, err := io.ReadFull(c.reader, body); err != nil {
			return nil, fmt.Errorf("reading page body: %w", unexpectedEOF(err))
		}
		return body, nil
	}

	c.checksum.Reset(c.reader)
	if _, err := io.ReadFull(&c.checksum, body); err != nil {
		return nil, fmt.Errorf("reading page body: %w", unexpectedEOF(err))
	}
	return body, c.checksum.verify(header.CRC)
}

func (c *ColumnPages) decompress(src []byte, size int32) ([]byte, error) {
	if c.codec == format.Uncompressed {
		return src, nil
	}
	if size < 0 {
		size = 0
	}
	if cap(c.buffer) < int(size) {
		c.buffer = make([]byte, 0, size)
	}
	data, err := c.compress.Decode(c.buffer[:0], src)
	if cap(data) > cap(c.buffer) {
		c.buffer = data[:0]
	}
	return data, err
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}
