package tuples

import (
	"fmt"

	"github.com/forestrie/go-livetable/chunk"
	"github.com/forestrie/go-livetable/column"
	"github.com/forestrie/go-livetable/rowset"
	"github.com/forestrie/go-livetable/types"
)

// Source builds composite keys of type K from its constituent columns and
// decomposes them again.
type Source[K comparable] interface {
	Arity() int

	MakeTuple(key rowset.RowKey) (K, error)
	MakePrevTuple(key rowset.RowKey) (K, error)
	MakeTupleFromValues(values ...types.Value) (K, error)
	// MakeTupleFromReinterpretedValues also accepts storage values for
	// fields whose storage type differs from their logical type.
	MakeTupleFromReinterpretedValues(values ...types.Value) (K, error)

	ExportField(tuple K, index int, dest column.Writable, destKey rowset.RowKey) error
	ExportExternalKey(tuple K) ExternalKey
	ExportFieldValue(tuple K, index int) (types.Value, error)
	ExportFieldValueReinterpreted(tuple K, index int) (types.Value, error)

	// ConvertChunks builds count tuples from chunks already holding the
	// storage representation of each field.
	ConvertChunks(dest *chunk.Chunk[K], count int, sources ...chunk.Any) error
	FillChunk(dest *chunk.Chunk[K], rows rowset.RowSet) error
	FillPrevChunk(dest *chunk.Chunk[K], rows rowset.RowSet) error
}

func read[C any, S comparable](c Column[C, S], index int, key rowset.RowKey, prev bool) (S, error) {
	get := c.Source.Get
	if prev {
		get = c.Source.GetPrev
	}
	v, err := get(key)
	if err != nil {
		var zero S
		return zero, fmt.Errorf("tuple field %d: %w", index, err)
	}
	return c.Field.Storage(v), nil
}

func project[C any, S comparable](f Field[C, S], index int, v types.Value, reinterpreted bool) (S, error) {
	from := f.FromValue
	if reinterpreted {
		from = f.FromReinterpreted
	}
	s, err := from(v)
	if err != nil {
		return s, fmt.Errorf("tuple field %d: %w", index, err)
	}
	return s, nil
}

// fillStorage reads rows from one column and projects them into a chunk of
// the field's storage type.
func fillStorage[C any, S comparable](c Column[C, S], rows rowset.RowSet, prev bool) (*chunk.Chunk[S], error) {
	n := rows.Size()
	values := chunk.New[C](n)
	fill := c.Source.FillChunk
	if prev {
		fill = c.Source.FillPrevChunk
	}
	if err := fill(values, rows); err != nil {
		return nil, err
	}
	out := chunk.New[S](n)
	for i, v := range values.Values() {
		out.Set(i, c.Field.Storage(v))
	}
	return out, out.SetSize(n)
}

// storageValues recovers the first count elements of sources[index].
func storageValues[S any](sources []chunk.Any, index, count int) ([]S, error) {
	c, err := chunk.As[S](sources[index])
	if err != nil {
		return nil, fmt.Errorf("source %d: %w", index, err)
	}
	if c.Len() < count {
		return nil, fmt.Errorf("%w: source %d has %d, want %d", ErrChunkLength, index, c.Len(), count)
	}
	return c.Values()[:count], nil
}

func checkConvert(arity, dstCap, count int, sources []chunk.Any) error {
	if len(sources) != arity {
		return fmt.Errorf("%w: %d chunks for arity %d", ErrSourceCount, len(sources), arity)
	}
	if count < 0 || count > dstCap {
		return fmt.Errorf("%w: count %d, capacity %d", chunk.ErrCapacityExceeded, count, dstCap)
	}
	return nil
}

func checkValueCount(arity int, values []types.Value) error {
	if len(values) != arity {
		return fmt.Errorf("%w: %d values for arity %d", ErrValueCount, len(values), arity)
	}
	return nil
}

func indexError(index, arity int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, arity)
}
