package vparquet

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/segmentio/vparquet/encoding"
	"github.com/segmentio/vparquet/encoding/plain"
	"github.com/segmentio/vparquet/format"
	"github.com/segmentio/vparquet/vector"
)

// ColumnReader decodes the values of a required column from its pages.
//
// The reader loads pages lazily from a ColumnPages instance and drives a
// plain.Reader across them, splitting reads which span page boundaries. Only
// data pages encoded with PLAIN are supported; dictionary pages, other
// encodings, and pages containing nulls are rejected with errors wrapping
// encoding.ErrNotSupported.
//
// ColumnReader instances are not safe for concurrent use.
type ColumnReader struct {
	typ     format.Type
	pages   *ColumnPages
	values  *plain.Reader
	remain  int
	logger  log.Logger
	metrics *Metrics
	err     error
}

// NewColumnReader constructs a reader of values of the given physical type,
// the typeLength is only used for FIXED_LEN_BYTE_ARRAY columns.
func NewColumnReader(typ format.Type, typeLength int, pages *ColumnPages, options ...ReaderOption) (*ColumnReader, error) {
	config, err := NewReaderConfig(options...)
	if err != nil {
		return nil, err
	}
	switch typ {
	case format.Boolean, format.Int96:
		return nil, fmt.Errorf("cannot read values of type %s: %w", typ, encoding.ErrNotSupported)
	case format.FixedLenByteArray:
		if typeLength <= 0 {
			return nil, fmt.Errorf("invalid %s length: %d: %w", typ, typeLength, encoding.ErrInvalidArgument)
		}
	}
	return &ColumnReader{
		typ:     typ,
		pages:   pages,
		values:  plain.NewReader(typ, typeLength),
		logger:  config.Logger,
		metrics: metricsOf(config),
	}, nil
}

// Type returns the physical type of values read by r.
func (r *ColumnReader) Type() format.Type { return r.typ }

// NumValuesRemaining returns the number of values remaining in the current
// page.
func (r *ColumnReader) NumValuesRemaining() int { return r.remain }

// ReadValues decodes up to count values into v, at rows [rowID:rowID+count].
//
// The method returns the number of values read, which is less than count only
// if the last page of the column was reached or an error occurred. When no
// values remain, the method returns zero and io.EOF.
func (r *ColumnReader) ReadValues(v vector.Vector, rowID, count int) (int, error) {
	if v.Type() != r.typ {
		return 0, fmt.Errorf("cannot read %s values into %s vector: %w", r.typ, v.Type(), encoding.ErrNotSupported)
	}
	if dst, ok := v.(*vector.FixedLenByteArrayVector); ok && dst.Size() != r.values.Size() {
		return 0, fmt.Errorf("cannot read %s(%d) values into vector of size %d: %w", r.typ, r.values.Size(), dst.Size(), encoding.ErrInvalidArgument)
	}
	return r.read(v, rowID, count, func(rowID, n int) error {
		switch dst := v.(type) {
		case *vector.Int32Vector:
			return r.values.ReadInt32s(n, dst, rowID)
		case *vector.Int64Vector:
			return r.values.ReadInt64s(n, dst, rowID)
		case *vector.FloatVector:
			return r.values.ReadFloats(n, dst, rowID)
		case *vector.DoubleVector:
			return r.values.ReadDoubles(n, dst, rowID)
		case *vector.ByteArrayVector:
			return r.values.ReadByteArrays(n, dst, rowID)
		case *vector.FixedLenByteArrayVector:
			return r.values.ReadFixedLenByteArrays(n, dst, rowID)
		default:
			return fmt.Errorf("cannot read values into %T: %w", v, encoding.ErrNotSupported)
		}
	})
}

// ReadInt8Values is like ReadValues but decodes INT32 values holding single
// bytes, the low byte of each value is sign extended into v.
func (r *ColumnReader) ReadInt8Values(v *vector.Int32Vector, rowID, count int) (int, error) {
	return r.read(v, rowID, count, func(rowID, n int) error {
		return r.values.ReadInt8s(n, v, rowID)
	})
}

// SkipValues advances the reader past n values without decoding them. The
// method returns the number of values skipped, and io.EOF if no values
// remained.
func (r *ColumnReader) SkipValues(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("invalid value count: %d: %w", n, encoding.ErrInvalidArgument)
	}
	return r.advance(n, func(_, n int) error { return r.values.SkipN(n) })
}

func (r *ColumnReader) read(v vector.Vector, rowID, count int, readValues func(rowID, n int) error) (int, error) {
	if rowID < 0 || count < 0 || count > v.Cap()-rowID {
		return 0, fmt.Errorf("cannot read %d values at row %d of vector with capacity %d: %w", count, rowID, v.Cap(), encoding.ErrInvalidArgument)
	}
	n, err := r.advance(count, func(i, n int) error { return readValues(rowID+i, n) })
	r.metrics.observeValues(r.typ, n)
	return n, err
}

// advance moves the reader forward by count values, calling next for each
// batch of values within a single page with the index of the first value of
// the batch.
func (r *ColumnReader) advance(count int, next func(i, n int) error) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	i := 0
	for i < count {
		if r.remain == 0 {
			if err := r.nextPage(); err != nil {
				if err == io.EOF && i > 0 {
					return i, nil
				}
				r.err = err
				return i, err
			}
			continue
		}
		n := min(r.remain, count-i)
		if err := next(i, n); err != nil {
			r.err = fmt.Errorf("page %d: %w", r.pages.NumPages()-1, err)
			return i, r.err
		}
		i += n
		r.remain -= n
	}
	return i, nil
}

func (r *ColumnReader) nextPage() error {
	page, err := r.pages.ReadPage()
	if err != nil {
		return err
	}
	pageIndex := r.pages.NumPages() - 1

	if err := r.checkPage(page); err != nil {
		level.Warn(r.logger).Log("msg", "rejecting page", "page", pageIndex, "type", page.Type(), "encoding", page.Encoding(), "err", err)
		return fmt.Errorf("page %d: %w", pageIndex, err)
	}
	if err := r.values.Reset(page.Data(), 0); err != nil {
		return fmt.Errorf("page %d: %w", pageIndex, err)
	}

	r.remain = page.NumValues()
	level.Debug(r.logger).Log("msg", "reading page", "page", pageIndex, "encoding", page.Encoding(), "values", r.remain, "bytes", len(page.Data()))
	return nil
}

func (r *ColumnReader) checkPage(page *Page) error {
	switch page.Type() {
	case format.DataPage:
		if page.Header().DataPageHeader == nil {
			return fmt.Errorf("missing data page header: %w", ErrCorrupted)
		}
	case format.DataPageV2:
		if page.NumNulls() > 0 {
			return fmt.Errorf("cannot read page with %d null values: %w", page.NumNulls(), encoding.ErrNotSupported)
		}
	default:
		return fmt.Errorf("cannot read values from %s: %w", page.Type(), encoding.ErrNotSupported)
	}
	if page.Encoding() != format.Plain {
		return fmt.Errorf("cannot read values encoded with %s: %w", page.Encoding(), encoding.ErrNotSupported)
	}
	if page.NumValues() < 0 {
		return fmt.Errorf("invalid number of values: %d: %w", page.NumValues(), ErrCorrupted)
	}
	return nil
}
