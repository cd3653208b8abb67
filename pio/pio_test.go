package pio_test

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/vparquet/internal/test"
	"github.com/segmentio/vparquet/pio"
)

func writeFile(t *testing.T, dir string, data []byte) string {
	path := filepath.Join(dir, "pages.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestFile(t *testing.T) {
	data := make([]byte, 1e6)
	prng := rand.New(rand.NewSource(0))
	prng.Read(data)

	test.WithTestDir(t, func(dir string) {
		f, err := pio.Open(writeFile(t, dir, data))
		require.NoError(t, err)
		defer test.Close(t, f)

		assert.Equal(t, int64(len(data)), f.Size())
		assert.True(t, bytes.Equal(data, f.Bytes()))

		reader := bytes.NewReader(data)
		want := make([]byte, 8192)
		got := make([]byte, 8192)

		for i := 0; i < 100; i++ {
			off := prng.Int63n(int64(len(data)))
			size := prng.Intn(len(want))

			wn, werr := reader.ReadAt(want[:size], off)
			gn, gerr := f.ReadAt(got[:size], off)
			require.Equal(t, werr, gerr, "offset=%d size=%d", off, size)
			require.Equal(t, wn, gn)
			require.True(t, bytes.Equal(want[:wn], got[:gn]))
		}

		_, err = f.ReadAt(got, f.Size())
		assert.Equal(t, io.EOF, err)

		_, err = f.ReadAt(got, -1)
		assert.Error(t, err)

		content, err := io.ReadAll(f.Reader())
		require.NoError(t, err)
		assert.True(t, bytes.Equal(data, content))
	})
}

func TestEmptyFile(t *testing.T) {
	test.WithTestDir(t, func(dir string) {
		f, err := pio.Open(writeFile(t, dir, nil))
		require.NoError(t, err)
		assert.Zero(t, f.Size())
		assert.Empty(t, f.Bytes())
		assert.NoError(t, f.Close())
		assert.NoError(t, f.Close())
	})
}

func TestOpenMissingFile(t *testing.T) {
	_, err := pio.Open(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
