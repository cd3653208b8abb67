//go:build 386 || amd64 || amd64p32 || alpha || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || nios2 || ppc64le || riscv || riscv64 || sh || wasm

package vector

import "github.com/segmentio/vparquet/internal/unsafecast"

// On little endian hosts the memory layout of the values is the same as the
// PLAIN encoding, the bulk writes are a single memory copy.

func copyLittleEndian32[T int32 | float32](dst []T, src []byte) {
	copy(unsafecast.Slice[byte](dst), src)
}

func copyLittleEndian64[T int64 | float64](dst []T, src []byte) {
	copy(unsafecast.Slice[byte](dst), src)
}
