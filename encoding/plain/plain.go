// Package plain implements the PLAIN parquet encoding.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#plain-plain--0
package plain

import (
	"encoding/binary"
	"math"

	"github.com/segmentio/vparquet/format"
)

const (
	ByteArrayLengthSize = 4
	MaxByteArrayLength  = math.MaxInt32
)

type Encoding struct{}

func (e *Encoding) String() string {
	return "PLAIN"
}

func (e *Encoding) Encoding() format.Encoding {
	return format.Plain
}

var plainEncoding = &Encoding{}

// AppendInt32 appends the PLAIN representation of the given INT32 values to
// the buffer and returns it.
func AppendInt32(buffer []byte, values ...int32) []byte {
	for _, v := range values {
		buffer = binary.LittleEndian.AppendUint32(buffer, uint32(v))
	}
	return buffer
}

// AppendInt8 appends the PLAIN representation of single byte values, which
// are widened to 4 bytes as if they were INT32 values.
func AppendInt8(buffer []byte, values ...int8) []byte {
	for _, v := range values {
		buffer = binary.LittleEndian.AppendUint32(buffer, uint32(int32(v)))
	}
	return buffer
}

func AppendInt64(buffer []byte, values ...int64) []byte {
	for _, v := range values {
		buffer = binary.LittleEndian.AppendUint64(buffer, uint64(v))
	}
	return buffer
}

func AppendFloat(buffer []byte, values ...float32) []byte {
	for _, v := range values {
		buffer = binary.LittleEndian.AppendUint32(buffer, math.Float32bits(v))
	}
	return buffer
}

func AppendDouble(buffer []byte, values ...float64) []byte {
	for _, v := range values {
		buffer = binary.LittleEndian.AppendUint64(buffer, math.Float64bits(v))
	}
	return buffer
}

// AppendFixedLenByteArray appends the PLAIN representation of values of the
// given size to the buffer. FIXED_LEN_BYTE_ARRAY values are stored back to
// back without any length prefix, so this is a plain append; the function
// panics if the value does not have the expected size.
func AppendFixedLenByteArray(buffer []byte, size int, value []byte) []byte {
	if len(value) != size {
		panic("FIXED_LEN_BYTE_ARRAY value has the wrong size")
	}
	return append(buffer, value...)
}
