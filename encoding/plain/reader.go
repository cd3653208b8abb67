package plain

import (
	"encoding/binary"
	"math"

	"github.com/segmentio/vparquet/encoding"
	"github.com/segmentio/vparquet/format"
)

// Reader decodes values from a page encoded with the PLAIN encoding.
//
// A Reader holds a read-only view of the page buffer and a cursor which
// advances on every read or skip. The physical type given at construction
// selects the size of values and which methods may be called; methods that do
// not apply to the type return an error wrapping encoding.ErrNotSupported.
//
// Reads that would go past the end of the page return an error wrapping
// encoding.ErrOutOfRange and leave the cursor unchanged. ReadByteArrays is the
// only exception: values preceding the malformed one have already been written
// to the vector, and the cursor is positioned on the malformed value.
//
// Readers are not safe to use concurrently from multiple goroutines, but
// independent readers may share the same page buffer.
type Reader struct {
	page   []byte
	offset int
	size   int
	typ    format.Type
}

// NewReader constructs a Reader decoding values of the given physical type.
// The typeLength is only used for FIXED_LEN_BYTE_ARRAY.
func NewReader(typ format.Type, typeLength int) *Reader {
	return &Reader{typ: typ, size: sizeOf(typ, typeLength)}
}

// NewReaderSize constructs a Reader from the size of values in bytes: 4 and 8
// are read as INT32 and INT64, 0 selects variable length BYTE_ARRAY values,
// and any other size is read as FIXED_LEN_BYTE_ARRAY.
func NewReaderSize(size int) *Reader {
	switch size {
	case 0:
		return NewReader(format.ByteArray, 0)
	case 4:
		return NewReader(format.Int32, 0)
	case 8:
		return NewReader(format.Int64, 0)
	default:
		return NewReader(format.FixedLenByteArray, size)
	}
}

func sizeOf(typ format.Type, typeLength int) int {
	switch typ {
	case format.Int32, format.Float:
		return 4
	case format.Int64, format.Double:
		return 8
	case format.Int96:
		return 12
	case format.ByteArray:
		return 0
	case format.FixedLenByteArray:
		if typeLength > 0 {
			return typeLength
		}
	}
	return -1
}

// Reset binds the reader to a new page and positions the cursor at offset.
// No state is carried over from the previous page.
func (r *Reader) Reset(page []byte, offset int) error {
	if offset < 0 || offset > len(page) {
		r.page, r.offset = nil, 0
		return encoding.ErrDecodeInvalidArgument(plainEncoding, "page offset", offset)
	}
	r.page, r.offset = page, offset
	return nil
}

// Type returns the physical type of values read by r.
func (r *Reader) Type() format.Type { return r.typ }

// Size returns the size of values in bytes, zero for variable length values.
func (r *Reader) Size() int {
	if r.size < 0 {
		return 0
	}
	return r.size
}

// Page returns the page that r is reading from.
func (r *Reader) Page() []byte { return r.page }

// Offset returns the position of the cursor in the page.
func (r *Reader) Offset() int { return r.offset }

// Len returns the number of bytes remaining after the cursor.
func (r *Reader) Len() int { return len(r.page) - r.offset }

// Skip advances the cursor past one value.
func (r *Reader) Skip() error { return r.SkipN(1) }

// SkipN advances the cursor past n values. Byte arrays are skipped by reading
// their length prefixes.
func (r *Reader) SkipN(n int) error {
	switch {
	case r.typ == format.ByteArray:
		return r.skipByteArrays(n)
	case r.size <= 0:
		return r.notSupported("skip")
	}
	size, err := r.need(n, r.size)
	if err != nil {
		return err
	}
	r.offset += size
	return nil
}

func (r *Reader) skipByteArrays(n int) error {
	if n < 0 {
		return encoding.ErrDecodeInvalidArgument(plainEncoding, "value count", n)
	}
	offset := r.offset
	for i := 0; i < n; i++ {
		_, end, err := r.byteArrayAt(offset)
		if err != nil {
			return err
		}
		offset = end
	}
	r.offset = offset
	return nil
}

func (r *Reader) ReadInt32() (int32, error) {
	if r.typ != format.Int32 {
		return 0, r.notSupported("read INT32 value")
	}
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// ReadInt8 reads a single byte value stored as a 4 bytes INT32. Only the low
// byte is kept.
func (r *Reader) ReadInt8() (int8, error) {
	if r.typ != format.Int32 {
		return 0, r.notSupported("read INT8 value")
	}
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	if r.typ != format.Int64 {
		return 0, r.notSupported("read INT64 value")
	}
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (r *Reader) ReadFloat() (float32, error) {
	if r.typ != format.Float {
		return 0, r.notSupported("read FLOAT value")
	}
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func (r *Reader) ReadDouble() (float64, error) {
	if r.typ != format.Double {
		return 0, r.notSupported("read DOUBLE value")
	}
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadByteArray returns the next byte array value. The returned slice points
// into the page buffer.
func (r *Reader) ReadByteArray() ([]byte, error) {
	if r.typ != format.ByteArray {
		return nil, r.notSupported("read BYTE_ARRAY value")
	}
	i, j, err := r.byteArrayAt(r.offset)
	if err != nil {
		return nil, err
	}
	r.offset = j
	return r.page[i:j:j], nil
}

// ReadInt32s writes the next n values to dst at rows [rowID:rowID+n].
func (r *Reader) ReadInt32s(n int, dst Int32Writer, rowID int) error {
	if r.typ != format.Int32 {
		return r.notSupported("read INT32 values")
	}
	size, err := r.need(n, 4)
	if err != nil {
		return err
	}
	dst.PutInt32sLittleEndian(rowID, n, r.page, r.offset)
	r.offset += size
	return nil
}

// ReadInt8s reads n single byte values stored as 4 bytes INT32 and writes the
// low byte of each, sign extended, to dst at rows [rowID:rowID+n].
func (r *Reader) ReadInt8s(n int, dst Int32Writer, rowID int) error {
	if r.typ != format.Int32 {
		return r.notSupported("read INT8 values")
	}
	size, err := r.need(n, 4)
	if err != nil {
		return err
	}
	values := r.page[r.offset : r.offset+size]
	for i := 0; i < n; i++ {
		dst.PutInt32(rowID+i, int32(int8(values[4*i])))
	}
	r.offset += size
	return nil
}

func (r *Reader) ReadInt64s(n int, dst Int64Writer, rowID int) error {
	if r.typ != format.Int64 {
		return r.notSupported("read INT64 values")
	}
	size, err := r.need(n, 8)
	if err != nil {
		return err
	}
	dst.PutInt64sLittleEndian(rowID, n, r.page, r.offset)
	r.offset += size
	return nil
}

func (r *Reader) ReadFloats(n int, dst FloatWriter, rowID int) error {
	if r.typ != format.Float {
		return r.notSupported("read FLOAT values")
	}
	size, err := r.need(n, 4)
	if err != nil {
		return err
	}
	dst.PutFloatsLittleEndian(rowID, n, r.page, r.offset)
	r.offset += size
	return nil
}

func (r *Reader) ReadDoubles(n int, dst DoubleWriter, rowID int) error {
	if r.typ != format.Double {
		return r.notSupported("read DOUBLE values")
	}
	size, err := r.need(n, 8)
	if err != nil {
		return err
	}
	dst.PutDoublesLittleEndian(rowID, n, r.page, r.offset)
	r.offset += size
	return nil
}

// ReadByteArrays reads n length prefixed values and writes them to dst at rows
// [rowID:rowID+n].
func (r *Reader) ReadByteArrays(n int, dst ByteArrayWriter, rowID int) error {
	if r.typ != format.ByteArray {
		return r.notSupported("read BYTE_ARRAY values")
	}
	if n < 0 {
		return encoding.ErrDecodeInvalidArgument(plainEncoding, "value count", n)
	}
	for i := 0; i < n; i++ {
		start, end, err := r.byteArrayAt(r.offset)
		if err != nil {
			return err
		}
		dst.PutByteArray(rowID+i, r.page, start, end-start)
		r.offset = end
	}
	return nil
}

func (r *Reader) ReadFixedLenByteArrays(n int, dst FixedLenByteArrayWriter, rowID int) error {
	if r.typ != format.FixedLenByteArray || r.size <= 0 {
		return r.notSupported("read FIXED_LEN_BYTE_ARRAY values")
	}
	size, err := r.need(n, r.size)
	if err != nil {
		return err
	}
	dst.PutFixedLenByteArrays(rowID, n, r.page, r.offset)
	r.offset += size
	return nil
}

// need returns the number of bytes occupied by n values of the given size,
// or an error if fewer bytes remain in the page.
func (r *Reader) need(n, size int) (int, error) {
	if n < 0 {
		return 0, encoding.ErrDecodeInvalidArgument(plainEncoding, "value count", n)
	}
	if remain := r.Len(); n > remain/size {
		return 0, encoding.ErrDecodeOutOfRange(plainEncoding, r.typ, n*size, remain)
	}
	return n * size, nil
}

func (r *Reader) next(size int) ([]byte, error) {
	i := r.offset
	j := i + size
	if j > len(r.page) {
		return nil, encoding.ErrDecodeOutOfRange(plainEncoding, r.typ, size, r.Len())
	}
	r.offset = j
	return r.page[i:j:j], nil
}

// byteArrayAt returns the bounds of the byte array value whose length prefix
// starts at offset.
func (r *Reader) byteArrayAt(offset int) (start, end int, err error) {
	remain := len(r.page) - offset
	if remain < ByteArrayLengthSize {
		return 0, 0, encoding.ErrDecodeOutOfRange(plainEncoding, r.typ, ByteArrayLengthSize, remain)
	}
	length := binary.LittleEndian.Uint32(r.page[offset:])
	remain -= ByteArrayLengthSize
	if uint64(length) > uint64(remain) {
		return 0, 0, encoding.ErrDecodeOutOfRange(plainEncoding, r.typ, int(length), remain)
	}
	start = offset + ByteArrayLengthSize
	end = start + int(length)
	return start, end, nil
}

func (r *Reader) notSupported(op string) error {
	return encoding.ErrDecodeNotSupported(plainEncoding, op, r.typ)
}
