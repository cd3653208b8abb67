package vparquet_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/vparquet"
	"github.com/segmentio/vparquet/encoding/plain"
	"github.com/segmentio/vparquet/format"
	"github.com/segmentio/vparquet/vector"
)

func TestReadColumns(t *testing.T) {
	int32s, wantInt32s := int32Pages(int32Range(0, 500), int32Range(500, 1000))

	int64s := make([]int64, 700)
	for i := range int64s {
		int64s[i] = int64(i) << 33
	}

	names := make([][]byte, 300)
	for i := range names {
		names[i] = []byte(faker.Name())
	}

	columns := []vparquet.ColumnRead{
		{
			Reader: newColumnReader(t, writePages(t, &vparquet.Snappy, int32s), format.Snappy, format.Int32, 0),
			Vector: vector.NewInt32Vector(len(wantInt32s)),
		},
		{
			Reader: newColumnReader(t,
				writePages(t, &vparquet.Zstd, []page{{numValues: len(int64s), values: plain.AppendInt64(nil, int64s...)}}),
				format.Zstd, format.Int64, 0),
			Vector:    vector.NewInt64Vector(len(int64s)),
			BatchSize: 100,
		},
		{
			Reader: newColumnReader(t,
				writePages(t, &vparquet.Gzip, []page{{numValues: len(names), values: plain.AppendByteArrayList(nil, names...)}}),
				format.Gzip, format.ByteArray, 0),
			// Larger than the column, the read stops at the end of the pages.
			Vector:    vector.NewByteArrayVector(len(names) + 10),
			BatchSize: 7,
		},
	}

	require.NoError(t, vparquet.ReadColumns(context.Background(), columns))

	assert.Equal(t, len(wantInt32s), columns[0].NumValues)
	assert.Equal(t, wantInt32s, columns[0].Vector.(*vector.Int32Vector).Int32s())

	assert.Equal(t, len(int64s), columns[1].NumValues)
	assert.Equal(t, int64s, columns[1].Vector.(*vector.Int64Vector).Int64s())

	assert.Equal(t, len(names), columns[2].NumValues)
	v := columns[2].Vector.(*vector.ByteArrayVector)
	for i, name := range names {
		assert.Equal(t, string(name), string(v.ByteArray(i)))
	}
}

func TestReadColumnsError(t *testing.T) {
	pages, _ := int32Pages(int32Range(0, 10))

	columns := []vparquet.ColumnRead{
		{
			Reader: newColumnReader(t, writePages(t, &vparquet.Uncompressed, pages), format.Uncompressed, format.Int32, 0),
			Vector: vector.NewInt32Vector(10),
		},
		{
			Reader: newColumnReader(t, writePages(t, &vparquet.Uncompressed, pages), format.Uncompressed, format.Int32, 0),
			Vector: vector.NewFloatVector(10),
		},
	}

	assert.Error(t, vparquet.ReadColumns(context.Background(), columns))
}

func TestReadColumnsCanceled(t *testing.T) {
	pages, _ := int32Pages(int32Range(0, 10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	columns := []vparquet.ColumnRead{{
		Reader: newColumnReader(t, writePages(t, &vparquet.Uncompressed, pages), format.Uncompressed, format.Int32, 0),
		Vector: vector.NewInt32Vector(10),
	}}

	assert.ErrorIs(t, vparquet.ReadColumns(ctx, columns), context.Canceled)
	assert.Zero(t, columns[0].NumValues)
}
