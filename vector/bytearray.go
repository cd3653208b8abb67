package vector

import "github.com/segmentio/vparquet/format"

// ByteArrayVector holds variable length byte array values.
//
// Values are copied into a buffer owned by the vector, so they remain valid
// after the page they were decoded from has been released. Overwriting a row
// does not reclaim the space used by its previous value until the vector is
// reset.
type ByteArrayVector struct {
	offsets []uint32
	lengths []uint32
	data    []byte
}

func NewByteArrayVector(capacity int) *ByteArrayVector {
	return &ByteArrayVector{
		offsets: make([]uint32, capacity),
		lengths: make([]uint32, capacity),
	}
}

func (v *ByteArrayVector) Type() format.Type { return format.ByteArray }

func (v *ByteArrayVector) Cap() int { return len(v.offsets) }

func (v *ByteArrayVector) Reset() {
	clear(v.offsets)
	clear(v.lengths)
	v.data = v.data[:0]
}

// Size returns the number of bytes held in the vector's buffer.
func (v *ByteArrayVector) Size() int { return len(v.data) }

// ByteArray returns the value at rowID. The returned slice shares the
// vector's memory and is only valid until the next call to Reset.
func (v *ByteArrayVector) ByteArray(rowID int) []byte {
	i := v.offsets[rowID]
	j := i + v.lengths[rowID]
	return v.data[i:j:j]
}

func (v *ByteArrayVector) PutByteArray(rowID int, src []byte, srcIndex, length int) {
	v.offsets[rowID] = uint32(len(v.data))
	v.lengths[rowID] = uint32(length)
	v.data = append(v.data, src[srcIndex:srcIndex+length]...)
}

// FixedLenByteArrayVector holds byte array values of a fixed size, stored
// back to back.
type FixedLenByteArrayVector struct {
	size int
	data []byte
}

func NewFixedLenByteArrayVector(size, capacity int) *FixedLenByteArrayVector {
	return &FixedLenByteArrayVector{
		size: size,
		data: make([]byte, size*capacity),
	}
}

func (v *FixedLenByteArrayVector) Type() format.Type { return format.FixedLenByteArray }

func (v *FixedLenByteArrayVector) Cap() int { return len(v.data) / v.size }

func (v *FixedLenByteArrayVector) Reset() { clear(v.data) }

// Size returns the size of values in bytes.
func (v *FixedLenByteArrayVector) Size() int { return v.size }

func (v *FixedLenByteArrayVector) FixedLenByteArray(rowID int) []byte {
	i := rowID * v.size
	j := i + v.size
	return v.data[i:j:j]
}

func (v *FixedLenByteArrayVector) PutFixedLenByteArrays(rowID, count int, src []byte, srcIndex int) {
	copy(v.data[rowID*v.size:(rowID+count)*v.size], src[srcIndex:srcIndex+count*v.size])
}
