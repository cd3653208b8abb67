package plain_test

import (
	"bytes"
	"testing"

	"github.com/segmentio/vparquet/encoding/plain"
)

func TestAppendInt8(t *testing.T) {
	values := plain.AppendInt8(nil, 5, -3, -1, 127)

	if !bytes.Equal(values, []byte{
		0x05, 0x00, 0x00, 0x00,
		0xFD, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x7F, 0x00, 0x00, 0x00,
	}) {
		t.Errorf("% X\n", values)
	}
}

func TestAppendInt64(t *testing.T) {
	values := plain.AppendInt64(nil, 1, -2)

	if !bytes.Equal(values, []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}) {
		t.Errorf("% X\n", values)
	}
}

func TestAppendDouble(t *testing.T) {
	values := plain.AppendDouble(nil, 1.0)

	if !bytes.Equal(values, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F}) {
		t.Errorf("% X\n", values)
	}
}
