package plain_test

import (
	"errors"
	"testing"

	"github.com/segmentio/vparquet/encoding"
	"github.com/segmentio/vparquet/encoding/plain"
	"github.com/segmentio/vparquet/format"
	"github.com/segmentio/vparquet/vector"
)

// FuzzReader decodes arbitrary pages with every physical type, the reader must
// never panic, must keep its cursor within the page, and may only fail with
// out of range errors.
func FuzzReader(f *testing.F) {
	f.Add([]byte{}, 1)
	f.Add(plain.AppendInt32(nil, 1, 2, 3), 3)
	f.Add(plain.AppendByteArrayList(nil, []byte("hello"), []byte("world")), 2)
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0x7F, 'a'}, 1)

	f.Fuzz(func(t *testing.T, page []byte, n int) {
		if n < 0 || n > 1024 {
			return
		}

		readers := []struct {
			typ        format.Type
			typeLength int
			read       func(*plain.Reader) error
		}{
			{format.Int32, 0, func(r *plain.Reader) error { return r.ReadInt32s(n, vector.NewInt32Vector(n), 0) }},
			{format.Int32, 0, func(r *plain.Reader) error { return r.ReadInt8s(n, vector.NewInt32Vector(n), 0) }},
			{format.Int64, 0, func(r *plain.Reader) error { return r.ReadInt64s(n, vector.NewInt64Vector(n), 0) }},
			{format.Float, 0, func(r *plain.Reader) error { return r.ReadFloats(n, vector.NewFloatVector(n), 0) }},
			{format.Double, 0, func(r *plain.Reader) error { return r.ReadDoubles(n, vector.NewDoubleVector(n), 0) }},
			{format.ByteArray, 0, func(r *plain.Reader) error { return r.ReadByteArrays(n, vector.NewByteArrayVector(n), 0) }},
			{format.ByteArray, 0, func(r *plain.Reader) error { return r.SkipN(n) }},
			{format.FixedLenByteArray, 3, func(r *plain.Reader) error {
				return r.ReadFixedLenByteArrays(n, vector.NewFixedLenByteArrayVector(3, n), 0)
			}},
			{format.Int96, 0, func(r *plain.Reader) error { return r.SkipN(n) }},
		}

		for _, test := range readers {
			r := plain.NewReader(test.typ, test.typeLength)
			if err := r.Reset(page, 0); err != nil {
				t.Fatal(err)
			}
			if err := test.read(r); err != nil && !errors.Is(err, encoding.ErrOutOfRange) {
				t.Fatalf("%s: unexpected error: %v", test.typ, err)
			}
			if offset := r.Offset(); offset < 0 || offset > len(page) {
				t.Fatalf("%s: cursor out of bounds: %d/%d", test.typ, offset, len(page))
			}
		}
	})
}
