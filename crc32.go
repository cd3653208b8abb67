package vparquet

import (
	"fmt"
	"hash/crc32"
	"io"
)

// checksumReader computes the IEEE CRC32 checksum of the page bytes read
// through it, so that page bodies are hashed while they are being copied out
// of the stream rather than in a second pass.
type checksumReader struct {
	reader io.Reader
	crc32  uint32
}

func (r *checksumReader) Reset(rr io.Reader) {
	r.reader = rr
	r.crc32 = 0
}

func (r *checksumReader) Read(b []byte) (int, error) {
	n, err := r.reader.Read(b)
	r.crc32 = crc32.Update(r.crc32, crc32.IEEETable, b[:n])
	return n, err
}

// verify compares the checksum of the bytes read so far with the one recorded
// in a page header.
func (r *checksumReader) verify(pageChecksum int32) error {
	if sum := r.crc32; sum != uint32(pageChecksum) {
		return fmt.Errorf("crc32 checksum mismatch: 0x%08X != 0x%08X: %w", uint32(pageChecksum), sum, ErrCorrupted)
	}
	return nil
}

func pageChecksum(data []byte) int32 {
	return int32(crc32.ChecksumIEEE(data))
}
