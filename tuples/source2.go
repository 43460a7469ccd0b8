package tuples

import (
	"github.com/forestrie/go-livetable/chunk"
	"github.com/forestrie/go-livetable/column"
	"github.com/forestrie/go-livetable/rowset"
	"github.com/forestrie/go-livetable/types"
)

// Source2 composes two columns into Tuple2 keys.
type Source2[A, B any, SA, SB comparable] struct {
	first  Column[A, SA]
	second Column[B, SB]
}

var _ Source[Tuple2[int8, float32]] = (*Source2[types.Boolean, float32, int8, float32])(nil)

func NewSource2[A, B any, SA, SB comparable](first Column[A, SA], second Column[B, SB]) *Source2[A, B, SA, SB] {
	return &Source2[A, B, SA, SB]{first: first, second: second}
}

func (s *Source2[A, B, SA, SB]) Arity() int { return 2 }

func (s *Source2[A, B, SA, SB]) MakeTuple(key rowset.RowKey) (Tuple2[SA, SB], error) {
	return s.makeTuple(key, false)
}

func (s *Source2[A, B, SA, SB]) MakePrevTuple(key rowset.RowKey) (Tuple2[SA, SB], error) {
	return s.makeTuple(key, true)
}

func (s *Source2[A, B, SA, SB]) makeTuple(key rowset.RowKey, prev bool) (Tuple2[SA, SB], error) {
	var t Tuple2[SA, SB]
	var err error
	if t.First, err = read(s.first, 0, key, prev); err != nil {
		return t, err
	}
	if t.Second, err = read(s.second, 1, key, prev); err != nil {
		return t, err
	}
	return t, nil
}

func (s *Source2[A, B, SA, SB]) MakeTupleFromValues(values ...types.Value) (Tuple2[SA, SB], error) {
	return s.fromValues(values, false)
}

func (s *Source2[A, B, SA, SB]) MakeTupleFromReinterpretedValues(values ...types.Value) (Tuple2[SA, SB], error) {
	return s.fromValues(values, true)
}

func (s *Source2[A, B, SA, SB]) fromValues(values []types.Value, reinterpreted bool) (Tuple2[SA, SB], error) {
	var t Tuple2[SA, SB]
	if err := checkValueCount(2, values); err != nil {
		return t, err
	}
	var err error
	if t.First, err = project(s.first.Field, 0, values[0], reinterpreted); err != nil {
		return t, err
	}
	if t.Second, err = project(s.second.Field, 1, values[1], reinterpreted); err != nil {
		return t, err
	}
	return t, nil
}

func (s *Source2[A, B, SA, SB]) ExportField(t Tuple2[SA, SB], index int, dest column.Writable, destKey rowset.RowKey) error {
	v, err := s.ExportFieldValue(t, index)
	if err != nil {
		return err
	}
	return dest.SetValue(destKey, v)
}

func (s *Source2[A, B, SA, SB]) ExportExternalKey(t Tuple2[SA, SB]) ExternalKey {
	return newExternalKey(s.first.Field.Logical(t.First), s.second.Field.Logical(t.Second))
}

func (s *Source2[A, B, SA, SB]) ExportFieldValue(t Tuple2[SA, SB], index int) (types.Value, error) {
	switch index {
	case 0:
		return s.first.Field.Logical(t.First), nil
	case 1:
		return s.second.Field.Logical(t.Second), nil
	}
	return types.Value{}, indexError(index, 2)
}

func (s *Source2[A, B, SA, SB]) ExportFieldValueReinterpreted(t Tuple2[SA, SB], index int) (types.Value, error) {
	switch index {
	case 0:
		return s.first.Field.Reinterpreted(t.First), nil
	case 1:
		return s.second.Field.Reinterpreted(t.Second), nil
	}
	return types.Value{}, indexError(index, 2)
}

func (s *Source2[A, B, SA, SB]) ConvertChunks(dest *chunk.Chunk[Tuple2[SA, SB]], count int, sources ...chunk.Any) error {
	if err := checkConvert(2, dest.Cap(), count, sources); err != nil {
		return err
	}
	first, err := storageValues[SA](sources, 0, count)
	if err != nil {
		return err
	}
	second, err := storageValues[SB](sources, 1, count)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		dest.Set(i, Tuple2[SA, SB]{First: first[i], Second: second[i]})
	}
	return dest.SetSize(count)
}

func (s *Source2[A, B, SA, SB]) FillChunk(dest *chunk.Chunk[Tuple2[SA, SB]], rows rowset.RowSet) error {
	return s.fill(dest, rows, false)
}

func (s *Source2[A, B, SA, SB]) FillPrevChunk(dest *chunk.Chunk[Tuple2[SA, SB]], rows rowset.RowSet) error {
	return s.fill(dest, rows, true)
}

func (s *Source2[A, B, SA, SB]) fill(dest *chunk.Chunk[Tuple2[SA, SB]], rows rowset.RowSet, prev bool) error {
	first, err := fillStorage(s.first, rows, prev)
	if err != nil {
		return err
	}
	second, err := fillStorage(s.second, rows, prev)
	if err != nil {
		return err
	}
	return s.ConvertChunks(dest, rows.Size(), first, second)
}
