package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/segmentio/vparquet"
	"github.com/segmentio/vparquet/format"
	"github.com/segmentio/vparquet/internal/debug"
	"github.com/segmentio/vparquet/pio"
	"github.com/segmentio/vparquet/vector"
)

type dumpFlags struct {
	_      struct{} `help:"Decode a stream of PLAIN encoded data pages and print its values"`
	Type   string   `flag:"-t,--type" help:"Type of values (int32, int8, int64, float, double, binary, fixed)" default:"int32"`
	Length int      `flag:"--length" help:"Size of fixed length values in bytes" default:"16"`
	Codec  string   `flag:"-c,--codec" help:"Compression codec of the pages" default:"uncompressed"`
	Batch  int      `flag:"--batch" help:"Number of values decoded at once" default:"1024"`
	Limit  int      `flag:"--limit" help:"Maximum number of values to print, zero for all" default:"0"`
	UUID   bool     `flag:"--uuid" help:"Print 16 bytes fixed length values as UUIDs" default:"false"`
	Debug  bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
}

func dumpCommand(flags dumpFlags, path string) {
	debug.Toggle(flags.Debug)
	exit(dump(os.Stdout, debug.NewLogger(os.Stderr), flags, path))
}

func dump(w io.Writer, logger log.Logger, flags dumpFlags, path string) error {
	column, err := lookupColumnType(flags.Type)
	if err != nil {
		return err
	}
	codec, err := lookupCodec(flags.Codec)
	if err != nil {
		return err
	}
	if flags.Batch <= 0 {
		return fmt.Errorf("invalid batch size: %d", flags.Batch)
	}
	if flags.UUID && (column.typ != format.FixedLenByteArray || flags.Length != 16) {
		return fmt.Errorf("--uuid requires fixed length values of 16 bytes")
	}

	file, err := pio.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	pages, err := vparquet.NewColumnPages(bytes.NewReader(file.Bytes()), codec.CompressionCodec(), vparquet.Logger(logger))
	if err != nil {
		return err
	}
	reader, err := vparquet.NewColumnReader(column.typ, flags.Length, pages, vparquet.Logger(logger))
	if err != nil {
		return err
	}

	values := vector.New(column.typ, flags.Length, flags.Batch)
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ROW", "VALUE"})

	row := 0
	for flags.Limit <= 0 || row < flags.Limit {
		count := flags.Batch
		if flags.Limit > 0 {
			count = min(count, flags.Limit-row)
		}

		var n int
		values.Reset()
		if column.int8 {
			n, err = reader.ReadInt8Values(values.(*vector.Int32Vector), 0, count)
		} else {
			n, err = reader.ReadValues(values, 0, count)
		}

		for i := 0; i < n; i++ {
			table.Append([]string{strconv.Itoa(row + i), formatValue(values, i, flags.UUID)})
		}
		row += n

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
	}

	table.Render()
	level.Info(logger).Log("msg", "dumped pages", "path", path, "type", column.name, "codec", codec, "pages", pages.NumPages(), "values", row)
	return nil
}

func formatValue(v vector.Vector, rowID int, asUUID bool) string {
	switch v := v.(type) {
	case *vector.Int32Vector:
		return strconv.FormatInt(int64(v.Int32(rowID)), 10)
	case *vector.Int64Vector:
		return strconv.FormatInt(v.Int64(rowID), 10)
	case *vector.FloatVector:
		return strconv.FormatFloat(float64(v.Float(rowID)), 'g', -1, 32)
	case *vector.DoubleVector:
		return strconv.FormatFloat(v.Double(rowID), 'g', -1, 64)
	case *vector.ByteArrayVector:
		return string(v.ByteArray(rowID))
	case *vector.FixedLenByteArrayVector:
		b := v.FixedLenByteArray(rowID)
		if asUUID {
			if id, err := uuid.FromBytes(b); err == nil {
				return id.String()
			}
		}
		return hex.EncodeToString(b)
	default:
		return fmt.Sprintf("%T", v)
	}
}
