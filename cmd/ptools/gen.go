package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/go-faker/faker/v4"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/segmentio/vparquet"
	"github.com/segmentio/vparquet/encoding/plain"
	"github.com/segmentio/vparquet/format"
	"github.com/segmentio/vparquet/internal/debug"
)

type genFlags struct {
	_        struct{} `help:"Write a stream of PLAIN encoded data pages filled with random values"`
	Type     string   `flag:"-t,--type" help:"Type of values (int32, int8, int64, float, double, binary, fixed)" default:"int32"`
	Length   int      `flag:"--length" help:"Size of fixed length values in bytes" default:"16"`
	Codec    string   `flag:"-c,--codec" help:"Compression codec of the pages" default:"uncompressed"`
	Pages    int      `flag:"--pages" help:"Number of pages to write" default:"1"`
	Values   int      `flag:"--values" help:"Number of values in each page" default:"100"`
	Seed     int      `flag:"--seed" help:"Seed of the random number generator" default:"0"`
	V2       bool     `flag:"--v2" help:"Write version 2 data page headers" default:"false"`
	Checksum bool     `flag:"--checksum" help:"Write page checksums" default:"false"`
	Debug    bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
}

func genCommand(flags genFlags, path string) {
	debug.Toggle(flags.Debug)
	exit(gen(debug.NewLogger(os.Stderr), flags, path))
}

func gen(logger log.Logger, flags genFlags, path string) error {
	column, err := lookupColumnType(flags.Type)
	if err != nil {
		return err
	}
	codec, err := lookupCodec(flags.Codec)
	if err != nil {
		return err
	}
	if flags.Pages < 0 || flags.Values < 0 {
		return fmt.Errorf("invalid page count or page size: %d/%d", flags.Pages, flags.Values)
	}
	if column.typ == format.FixedLenByteArray && flags.Length <= 0 {
		return fmt.Errorf("invalid fixed length: %d", flags.Length)
	}

	version := 1
	if flags.V2 {
		version = 2
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	output := bufio.NewWriter(f)
	writer, err := vparquet.NewPageWriter(output, codec,
		vparquet.DataPageVersion(version),
		vparquet.PageChecksum(flags.Checksum),
		vparquet.Logger(logger),
	)
	if err != nil {
		return err
	}

	prng := rand.New(rand.NewSource(int64(flags.Seed)))
	var values []byte
	for i := 0; i < flags.Pages; i++ {
		values = appendRandomValues(values[:0], prng, column, flags.Length, flags.Values)
		if err := writer.WriteDataPage(flags.Values, values); err != nil {
			return fmt.Errorf("writing page %d: %w", i, err)
		}
	}

	if err := output.Flush(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	level.Info(logger).Log("msg", "wrote pages", "path", path, "type", column.name, "codec", codec, "pages", writer.NumPages(), "values", flags.Pages*flags.Values)
	return nil
}

func appendRandomValues(b []byte, prng *rand.Rand, column columnType, length, count int) []byte {
	for i := 0; i < count; i++ {
		switch {
		case column.int8:
			b = plain.AppendInt8(b, int8(prng.Intn(256)))
		case column.typ == format.Int32:
			b = plain.AppendInt32(b, int32(prng.Uint32()))
		case column.typ == format.Int64:
			b = plain.AppendInt64(b, int64(prng.Uint64()))
		case column.typ == format.Float:
			b = plain.AppendFloat(b, float32(prng.NormFloat64()))
		case column.typ == format.Double:
			b = plain.AppendDouble(b, prng.NormFloat64()*1e6)
		case column.typ == format.ByteArray:
			b = plain.AppendByteArrayString(b, faker.Sentence())
		default:
			value := make([]byte, length)
			prng.Read(value)
			b = plain.AppendFixedLenByteArray(b, length, value)
		}
	}
	return b
}
