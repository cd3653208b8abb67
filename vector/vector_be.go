//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package vector

import (
	"encoding/binary"

	"github.com/segmentio/vparquet/internal/unsafecast"
)

func copyLittleEndian32[T int32 | float32](dst []T, src []byte) {
	u := unsafecast.Slice[uint32](dst)
	for i := range u {
		u[i] = binary.LittleEndian.Uint32(src[4*i:])
	}
}

func copyLittleEndian64[T int64 | float64](dst []T, src []byte) {
	u := unsafecast.Slice[uint64](dst)
	for i := range u {
		u[i] = binary.LittleEndian.Uint64(src[8*i:])
	}
}
