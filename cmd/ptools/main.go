// Command ptools generates and dumps streams of PLAIN encoded parquet pages.
package main

import (
	"fmt"
	"os"
	"strings"

	color "github.com/logrusorgru/aurora/v3"
	"github.com/segmentio/cli"

	"github.com/segmentio/vparquet"
	"github.com/segmentio/vparquet/compress"
	"github.com/segmentio/vparquet/format"
)

func main() {
	cli.Exec(cli.CommandSet{
		"gen":  cli.Command(genCommand),
		"dump": cli.Command(dumpCommand),
	})
}

func perrorf(format string, args ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, color.Red(format).String(), args...)
}

func exit(err error) {
	if err != nil {
		perrorf("%s", err)
		os.Exit(1)
	}
}

// columnType describes the values of a column as named on the command line.
type columnType struct {
	name string
	typ  format.Type
	// INT32 values holding single bytes.
	int8 bool
}

var columnTypes = [...]columnType{
	{name: "int32", typ: format.Int32},
	{name: "int8", typ: format.Int32, int8: true},
	{name: "int64", typ: format.Int64},
	{name: "float", typ: format.Float},
	{name: "double", typ: format.Double},
	{name: "binary", typ: format.ByteArray},
	{name: "fixed", typ: format.FixedLenByteArray},
}

func lookupColumnType(name string) (columnType, error) {
	for _, t := range columnTypes {
		if strings.EqualFold(t.name, name) {
			return t, nil
		}
	}
	return columnType{}, fmt.Errorf("unsupported column type: %q", name)
}

func lookupCodec(name string) (compress.Codec, error) {
	if codec := vparquet.LookupCompressionCodecName(name); codec != nil {
		return codec, nil
	}
	return nil, fmt.Errorf("unsupported compression codec: %q", name)
}
