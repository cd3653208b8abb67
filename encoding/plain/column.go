package plain

// The writer interfaces below are implemented by the column vectors receiving
// values from a Reader. Vectors are addressed by row index and must have
// capacity for every row written to them; the Reader never resizes them.
//
// The src slices passed to the bulk methods hold little-endian values; the
// implementations are responsible for converting them to the host byte order.

// Int32Writer is implemented by vectors of 32 bits integers.
type Int32Writer interface {
	PutInt32(rowID int, value int32)
	PutInt32sLittleEndian(rowID, count int, src []byte, srcIndex int)
}

// Int64Writer is implemented by vectors of 64 bits integers.
type Int64Writer interface {
	PutInt64(rowID int, value int64)
	PutInt64sLittleEndian(rowID, count int, src []byte, srcIndex int)
}

// FloatWriter is implemented by vectors of 32 bits floating point numbers.
type FloatWriter interface {
	PutFloatsLittleEndian(rowID, count int, src []byte, srcIndex int)
}

// DoubleWriter is implemented by vectors of 64 bits floating point numbers.
type DoubleWriter interface {
	PutDoublesLittleEndian(rowID, count int, src []byte, srcIndex int)
}

// ByteArrayWriter is implemented by vectors of variable length byte arrays.
//
// The src slice is the page buffer the value was read from; implementations
// must not retain it after the method returns since the page may be reused.
type ByteArrayWriter interface {
	PutByteArray(rowID int, src []byte, srcIndex, length int)
}

// FixedLenByteArrayWriter is implemented by vectors of fixed length byte
// arrays. The size of values is a property of the vector.
type FixedLenByteArrayWriter interface {
	PutFixedLenByteArrays(rowID, count int, src []byte, srcIndex int)
}
