package vparquet

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/segmentio/vparquet/vector"
)

// ColumnRead describes the decoding of a column into a vector by ReadColumns.
type ColumnRead struct {
	// The reader that values are decoded from.
	Reader *ColumnReader
	// The vector receiving the values, starting at row zero.
	Vector vector.Vector
	// The number of values decoded in each call to the reader, the context is
	// checked for cancellation between batches. Defaults to DefaultBatchSize.
	BatchSize int
	// Set by ReadColumns to the number of values written to the vector.
	NumValues int
}

// ReadColumns decodes the given columns concurrently, one goroutine per column.
// Each column is read until its vector is full or the column has no more
// values.
//
// The columns must not share readers or vectors. The first error returned by
// one of the columns cancels the others and is returned.
func ReadColumns(ctx context.Context, columns []ColumnRead) error {
	group, ctx := errgroup.WithContext(ctx)
	for i := range columns {
		column := &columns[i]
		group.Go(func() error { return column.read(ctx) })
	}
	return group.Wait()
}

func (c *ColumnRead) read(ctx context.Context) error {
	batchSize := c.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	capacity := c.Vector.Cap()
	c.NumValues = 0

	for c.NumValues < capacity {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := c.Reader.ReadValues(c.Vector, c.NumValues, min(batchSize, capacity-c.NumValues))
		c.NumValues += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if n == 0 {
			break
		}
	}
	return nil
}
