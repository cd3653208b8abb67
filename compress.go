package vparquet

import (
	"strings"

	"github.com/segmentio/vparquet/compress"
	"github.com/segmentio/vparquet/compress/brotli"
	"github.com/segmentio/vparquet/compress/gzip"
	"github.com/segmentio/vparquet/compress/lz4"
	"github.com/segmentio/vparquet/compress/snappy"
	"github.com/segmentio/vparquet/compress/uncompressed"
	"github.com/segmentio/vparquet/compress/zstd"
	"github.com/segmentio/vparquet/format"
)

var (
	// Uncompressed is a parquet compression codec representing uncompressed
	// pages.
	Uncompressed uncompressed.Codec

	// Snappy is the SNAPPY parquet compression codec.
	Snappy snappy.Codec

	// Gzip is the GZIP parquet compression codec.
	Gzip = gzip.Codec{
		Level: gzip.DefaultCompression,
	}

	// Brotli is the BROTLI parquet compression codec.
	Brotli = brotli.Codec{
		Quality: brotli.DefaultQuality,
		LGWin:   brotli.DefaultLGWin,
	}

	// Zstd is the ZSTD parquet compression codec.
	Zstd = zstd.Codec{
		Level: zstd.DefaultLevel,
	}

	// Lz4Raw is the LZ4_RAW parquet compression codec.
	Lz4Raw = lz4.Codec{
		Level: lz4.DefaultLevel,
	}

	// Table of compression codecs indexed by their code in the parquet format.
	compressionCodecs = [...]compress.Codec{
		format.Uncompressed: &Uncompressed,
		format.Snappy:       &Snappy,
		format.Gzip:         &Gzip,
		format.Brotli:       &Brotli,
		format.Zstd:         &Zstd,
		format.Lz4Raw:       &Lz4Raw,
	}
)

// LookupCompressionCodec returns the compression codec associated with the
// given code, or nil if the codec is not supported.
func LookupCompressionCodec(codec format.CompressionCodec) compress.Codec {
	if codec >= 0 && int(codec) < len(compressionCodecs) {
		return compressionCodecs[codec]
	}
	return nil
}

// LookupCompressionCodecName returns the compression codec with the given name,
// or nil if no supported codec has that name. Names are matched case
// insensitively against the parquet names of the codecs.
func LookupCompressionCodecName(name string) compress.Codec {
	for _, codec := range compressionCodecs {
		if codec != nil && strings.EqualFold(codec.String(), name) {
			return codec
		}
	}
	return nil
}
