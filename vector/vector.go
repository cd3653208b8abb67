// Package vector implements the column vectors that receive values decoded
// from parquet pages.
//
// Vectors have a fixed capacity chosen at construction and are addressed by
// row index. Writing past the capacity of a vector is a programming error and
// causes a panic.
package vector

import (
	"github.com/segmentio/vparquet/encoding/plain"
	"github.com/segmentio/vparquet/format"
)

// Vector is the interface implemented by all column vectors.
type Vector interface {
	// Returns the parquet physical type of values held by the vector.
	Type() format.Type

	// Returns the number of rows that the vector can hold.
	Cap() int

	// Clears the vector, retaining its capacity.
	Reset()
}

var (
	_ plain.Int32Writer             = (*Int32Vector)(nil)
	_ plain.Int64Writer             = (*Int64Vector)(nil)
	_ plain.FloatWriter             = (*FloatVector)(nil)
	_ plain.DoubleWriter            = (*DoubleVector)(nil)
	_ plain.ByteArrayWriter         = (*ByteArrayVector)(nil)
	_ plain.FixedLenByteArrayWriter = (*FixedLenByteArrayVector)(nil)
)

// New constructs a vector able to hold capacity values of the given physical
// type. The typeLength is only used for FIXED_LEN_BYTE_ARRAY. The function
// returns nil if no vector implementation exists for the type.
func New(typ format.Type, typeLength, capacity int) Vector {
	switch typ {
	case format.Int32:
		return NewInt32Vector(capacity)
	case format.Int64:
		return NewInt64Vector(capacity)
	case format.Float:
		return NewFloatVector(capacity)
	case format.Double:
		return NewDoubleVector(capacity)
	case format.ByteArray:
		return NewByteArrayVector(capacity)
	case format.FixedLenByteArray:
		if typeLength > 0 {
			return NewFixedLenByteArrayVector(typeLength, capacity)
		}
	}
	return nil
}

type Int32Vector struct{ values []int32 }

func NewInt32Vector(capacity int) *Int32Vector {
	return &Int32Vector{values: make([]int32, capacity)}
}

func (v *Int32Vector) Type() format.Type { return format.Int32 }

func (v *Int32Vector) Cap() int { return len(v.values) }

func (v *Int32Vector) Reset() { clear(v.values) }

func (v *Int32Vector) Int32(rowID int) int32 { return v.values[rowID] }

// Int32s returns the values of the vector. The slice shares the vector's
// memory.
func (v *Int32Vector) Int32s() []int32 { return v.values }

func (v *Int32Vector) PutInt32(rowID int, value int32) { v.values[rowID] = value }

func (v *Int32Vector) PutInt32sLittleEndian(rowID, count int, src []byte, srcIndex int) {
	copyLittleEndian32(v.values[rowID:rowID+count], src[srcIndex:srcIndex+4*count])
}

type Int64Vector struct{ values []int64 }

func NewInt64Vector(capacity int) *Int64Vector {
	return &Int64Vector{values: make([]int64, capacity)}
}

func (v *Int64Vector) Type() format.Type { return format.Int64 }

func (v *Int64Vector) Cap() int { return len(v.values) }

func (v *Int64Vector) Reset() { clear(v.values) }

func (v *Int64Vector) Int64(rowID int) int64 { return v.values[rowID] }

func (v *Int64Vector) Int64s() []int64 { return v.values }

func (v *Int64Vector) PutInt64(rowID int, value int64) { v.values[rowID] = value }

func (v *Int64Vector) PutInt64sLittleEndian(rowID, count int, src []byte, srcIndex int) {
	copyLittleEndian64(v.values[rowID:rowID+count], src[srcIndex:srcIndex+8*count])
}

type FloatVector struct{ values []float32 }

func NewFloatVector(capacity int) *FloatVector {
	return &FloatVector{values: make([]float32, capacity)}
}

func (v *FloatVector) Type() format.Type { return format.Float }

func (v *FloatVector) Cap() int { return len(v.values) }

func (v *FloatVector) Reset() { clear(v.values) }

func (v *FloatVector) Float(rowID int) float32 { return v.values[rowID] }

func (v *FloatVector) Floats() []float32 { return v.values }

func (v *FloatVector) PutFloat(rowID int, value float32) { v.values[rowID] = value }

func (v *FloatVector) PutFloatsLittleEndian(rowID, count int, src []byte, srcIndex int) {
	copyLittleEndian32(v.values[rowID:rowID+count], src[srcIndex:srcIndex+4*count])
}

type DoubleVector struct{ values []float64 }

func NewDoubleVector(capacity int) *DoubleVector {
	return &DoubleVector{values: make([]float64, capacity)}
}

func (v *DoubleVector) Type() format.Type { return format.Double }

func (v *DoubleVector) Cap() int { return len(v.values) }

func (v *DoubleVector) Reset() { clear(v.values) }

func (v *DoubleVector) Double(rowID int) float64 { return v.values[rowID] }

func (v *DoubleVector) Doubles() []float64 { return v.values }

func (v *DoubleVector) PutDouble(rowID int, value float64) { v.values[rowID] = value }

func (v *DoubleVector) PutDoublesLittleEndian(rowID, count int, src []byte, srcIndex int) {
	copyLittleEndian64(v.values[rowID:rowID+count], src[srcIndex:srcIndex+8*count])
}
