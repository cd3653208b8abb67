package vector_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/vparquet/format"
	"github.com/segmentio/vparquet/vector"
)

func TestNew(t *testing.T) {
	tests := []struct {
		typ    format.Type
		length int
		ok     bool
	}{
		{format.Int32, 0, true},
		{format.Int64, 0, true},
		{format.Float, 0, true},
		{format.Double, 0, true},
		{format.ByteArray, 0, true},
		{format.FixedLenByteArray, 16, true},
		{format.FixedLenByteArray, 0, false},
		{format.Boolean, 0, false},
		{format.Int96, 0, false},
	}

	for _, test := range tests {
		t.Run(test.typ.String(), func(t *testing.T) {
			v := vector.New(test.typ, test.length, 10)
			if !test.ok {
				assert.Nil(t, v)
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, test.typ, v.Type())
			assert.Equal(t, 10, v.Cap())
		})
	}
}

func TestInt32VectorPutLittleEndian(t *testing.T) {
	src := make([]byte, 0, 20)
	src = append(src, 0xAA, 0xBB) // junk before the values
	for _, v := range []int32{1, -1, math.MaxInt32, math.MinInt32} {
		src = binary.LittleEndian.AppendUint32(src, uint32(v))
	}

	v := vector.NewInt32Vector(6)
	v.PutInt32sLittleEndian(1, 4, src, 2)
	v.PutInt32(5, 42)

	assert.Equal(t, []int32{0, 1, -1, math.MaxInt32, math.MinInt32, 42}, v.Int32s())
	assert.Equal(t, int32(-1), v.Int32(2))

	v.Reset()
	assert.Equal(t, []int32{0, 0, 0, 0, 0, 0}, v.Int32s())
}

func TestInt64VectorPutLittleEndian(t *testing.T) {
	var src []byte
	for _, v := range []int64{math.MinInt64, 0, math.MaxInt64} {
		src = binary.LittleEndian.AppendUint64(src, uint64(v))
	}

	v := vector.NewInt64Vector(3)
	v.PutInt64sLittleEndian(0, 3, src, 0)
	assert.Equal(t, []int64{math.MinInt64, 0, math.MaxInt64}, v.Int64s())

	v.PutInt64(1, 7)
	assert.Equal(t, int64(7), v.Int64(1))
}

func TestFloatingPointVectors(t *testing.T) {
	var src32, src64 []byte
	src32 = binary.LittleEndian.AppendUint32(src32, math.Float32bits(1.5))
	src32 = binary.LittleEndian.AppendUint32(src32, math.Float32bits(-0.25))
	src64 = binary.LittleEndian.AppendUint64(src64, math.Float64bits(math.Pi))

	f := vector.NewFloatVector(2)
	f.PutFloatsLittleEndian(0, 2, src32, 0)
	assert.Equal(t, []float32{1.5, -0.25}, f.Floats())

	d := vector.NewDoubleVector(2)
	d.PutDoublesLittleEndian(1, 1, src64, 0)
	assert.Equal(t, math.Pi, d.Double(1))
	assert.Equal(t, float64(0), d.Double(0))
}

func TestByteArrayVector(t *testing.T) {
	page := []byte("__hello__world__")

	v := vector.NewByteArrayVector(3)
	v.PutByteArray(0, page, 2, 5)
	v.PutByteArray(2, page, 9, 5)
	v.PutByteArray(1, page, 0, 0)

	// Values must not alias the page buffer.
	copy(page, "XXXXXXXXXXXXXXXX")

	assert.Equal(t, "hello", string(v.ByteArray(0)))
	assert.Equal(t, "", string(v.ByteArray(1)))
	assert.Equal(t, "world", string(v.ByteArray(2)))
	assert.Equal(t, 10, v.Size())

	v.Reset()
	assert.Equal(t, 0, v.Size())
	assert.Equal(t, 3, v.Cap())
	assert.Empty(t, v.ByteArray(0))
}

func TestFixedLenByteArrayVector(t *testing.T) {
	v := vector.NewFixedLenByteArrayVector(2, 3)
	v.PutFixedLenByteArrays(1, 2, []byte("?abcd"), 1)

	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, 2, v.Size())
	assert.Equal(t, []byte{0, 0}, v.FixedLenByteArray(0))
	assert.Equal(t, "ab", string(v.FixedLenByteArray(1)))
	assert.Equal(t, "cd", string(v.FixedLenByteArray(2)))
}

func TestVectorCapacityExceeded(t *testing.T) {
	src := make([]byte, 16)

	assert.Panics(t, func() { vector.NewInt32Vector(3).PutInt32sLittleEndian(0, 4, src, 0) })
	assert.Panics(t, func() { vector.NewInt64Vector(1).PutInt64sLittleEndian(1, 1, src, 0) })
	assert.Panics(t, func() { vector.NewByteArrayVector(1).PutByteArray(1, src, 0, 1) })
	assert.Panics(t, func() { vector.NewFixedLenByteArrayVector(4, 2).PutFixedLenByteArrays(1, 2, src, 0) })
}
