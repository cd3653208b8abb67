package plain

import (
	"encoding/binary"
	"fmt"
)

// ByteArrayLength returns the length of the PLAIN byte array starting at the
// beginning of the buffer.
func ByteArrayLength(buffer []byte) int {
	return int(binary.LittleEndian.Uint32(buffer))
}

// PutByteArrayLength writes the length prefix of a PLAIN byte array of the
// given length to the beginning of the buffer.
func PutByteArrayLength(buffer []byte, length int) {
	binary.LittleEndian.PutUint32(buffer, uint32(length))
}

// ByteArray returns the PLAIN representation of a byte slice.
func ByteArray(value []byte) []byte {
	return AppendByteArray(make([]byte, 0, ByteArrayLengthSize+len(value)), value)
}

// AppendByteArray appends the PLAIN representation of the given value to the
// buffer and returns it.
func AppendByteArray(buffer, value []byte) []byte {
	length := [ByteArrayLengthSize]byte{}
	PutByteArrayLength(length[:], len(value))
	buffer = append(buffer, length[:]...)
	buffer = append(buffer, value...)
	return buffer
}

// AppendByteArrayString is like AppendByteArray but the value is a string.
func AppendByteArrayString(buffer []byte, value string) []byte {
	length := [ByteArrayLengthSize]byte{}
	PutByteArrayLength(length[:], len(value))
	buffer = append(buffer, length[:]...)
	buffer = append(buffer, value...)
	return buffer
}

// AppendByteArrayList appends the PLAIN representation of the given values
// list to the buffer and returns it.
func AppendByteArrayList(buffer []byte, values ...[]byte) []byte {
	numBytes := 0

	for _, value := range values {
		numBytes += ByteArrayLengthSize + len(value)
	}

	if (cap(buffer) - len(buffer)) < numBytes {
		newBuf := make([]byte, len(buffer), len(buffer)+numBytes)
		buffer = newBuf[:copy(newBuf, buffer)]
	}

	for _, value := range values {
		buffer = AppendByteArray(buffer, value)
	}

	return buffer
}

// SplitByteArray returns a pair byte slices with the next byte array found in
// the buffer, and the remaining bytes.
//
// The function may panic if the input is not properly encoded as a PLAIN byte
// array.
func SplitByteArray(buffer []byte) (value, remain []byte) {
	length := ByteArrayLength(buffer)
	i := ByteArrayLengthSize
	j := ByteArrayLengthSize + length
	return buffer[i:j:j], buffer[j:]
}

// ScanByteArrayList iterates over the sequence of PLAIN encoded byte array
// values in the buffer, calling the scan function on each one.
//
// The function errors if the input is not properly formatted as a sequence
// of PLAIN byte array values.
func ScanByteArrayList(buffer []byte, limit int, scan func([]byte) error) (int, error) {
	var remain = limit
	for len(buffer) >= ByteArrayLengthSize && remain > 0 {
		n := ByteArrayLengthSize + ByteArrayLength(buffer)
		if n < ByteArrayLengthSize || len(buffer) < n {
			return limit - remain, fmt.Errorf("invalid PLAIN byte array sequence has value of length %d but only %d bytes remain to be read", n-ByteArrayLengthSize, len(buffer)-ByteArrayLengthSize)
		}
		if err := scan(buffer[ByteArrayLengthSize:n:n]); err != nil {
			return limit - remain, err
		}
		buffer = buffer[n:]
		remain--
	}
	var err error
	if len(buffer) != 0 && remain > 0 {
		err = fmt.Errorf("invalid PLAIN byte array sequence has %d trailing bytes", len(buffer))
	}
	return limit - remain, err
}
