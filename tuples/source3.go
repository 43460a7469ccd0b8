package tuples

import (
	"time"

	"github.com/forestrie/go-livetable/chunk"
	"github.com/forestrie/go-livetable/column"
	"github.com/forestrie/go-livetable/rowset"
	"github.com/forestrie/go-livetable/types"
)

// Source3 composes three columns into Tuple3 keys.
type Source3[A, B, C any, SA, SB, SC comparable] struct {
	first  Column[A, SA]
	second Column[B, SB]
	third  Column[C, SC]
}

var _ Source[Tuple3[int8, int64, string]] = (*Source3[types.Boolean, time.Time, string, int8, int64, string])(nil)

func NewSource3[A, B, C any, SA, SB, SC comparable](first Column[A, SA], second Column[B, SB], third Column[C, SC]) *Source3[A, B, C, SA, SB, SC] {
	return &Source3[A, B, C, SA, SB, SC]{first: first, second: second, third: third}
}

func (s *Source3[A, B, C, SA, SB, SC]) Arity() int { return 3 }

func (s *Source3[A, B, C, SA, SB, SC]) MakeTuple(key rowset.RowKey) (Tuple3[SA, SB, SC], error) {
	return s.makeTuple(key, false)
}

func (s *Source3[A, B, C, SA, SB, SC]) MakePrevTuple(key rowset.RowKey) (Tuple3[SA, SB, SC], error) {
	return s.makeTuple(key, true)
}

func (s *Source3[A, B, C, SA, SB, SC]) makeTuple(key rowset.RowKey, prev bool) (Tuple3[SA, SB, SC], error) {
	var t Tuple3[SA, SB, SC]
	var err error
	if t.First, err = read(s.first, 0, key, prev); err != nil {
		return t, err
	}
	if t.Second, err = read(s.second, 1, key, prev); err != nil {
		return t, err
	}
	if t.Third, err = read(s.third, 2, key, prev); err != nil {
		return t, err
	}
	return t, nil
}

func (s *Source3[A, B, C, SA, SB, SC]) MakeTupleFromValues(values ...types.Value) (Tuple3[SA, SB, SC], error) {
	return s.fromValues(values, false)
}

func (s *Source3[A, B, C, SA, SB, SC]) MakeTupleFromReinterpretedValues(values ...types.Value) (Tuple3[SA, SB, SC], error) {
	return s.fromValues(values, true)
}

func (s *Source3[A, B, C, SA, SB, SC]) fromValues(values []types.Value, reinterpreted bool) (Tuple3[SA, SB, SC], error) {
	var t Tuple3[SA, SB, SC]
	if err := checkValueCount(3, values); err != nil {
		return t, err
	}
	var err error
	if t.First, err = project(s.first.Field, 0, values[0], reinterpreted); err != nil {
		return t, err
	}
	if t.Second, err = project(s.second.Field, 1, values[1], reinterpreted); err != nil {
		return t, err
	}
	if t.Third, err = project(s.third.Field, 2, values[2], reinterpreted); err != nil {
		return t, err
	}
	return t, nil
}

func (s *Source3[A, B, C, SA, SB, SC]) ExportField(t Tuple3[SA, SB, SC], index int, dest column.Writable, destKey rowset.RowKey) error {
	v, err := s.ExportFieldValue(t, index)
	if err != nil {
		return err
	}
	return dest.SetValue(destKey, v)
}

func (s *Source3[A, B, C, SA, SB, SC]) ExportExternalKey(t Tuple3[SA, SB, SC]) ExternalKey {
	return newExternalKey(
		s.first.Field.Logical(t.First),
		s.second.Field.Logical(t.Second),
		s.third.Field.Logical(t.Third),
	)
}

func (s *Source3[A, B, C, SA, SB, SC]) ExportFieldValue(t Tuple3[SA, SB, SC], index int) (types.Value, error) {
	switch index {
	case 0:
		return s.first.Field.Logical(t.First), nil
	case 1:
		return s.second.Field.Logical(t.Second), nil
	case 2:
		return s.third.Field.Logical(t.Third), nil
	}
	return types.Value{}, indexError(index, 3)
}

func (s *Source3[A, B, C, SA, SB, SC]) ExportFieldValueReinterpreted(t Tuple3[SA, SB, SC], index int) (types.Value, error) {
	switch index {
	case 0:
		return s.first.Field.Reinterpreted(t.First), nil
	case 1:
		return s.second.Field.Reinterpreted(t.Second), nil
	case 2:
		return s.third.Field.Reinterpreted(t.Third), nil
	}
	return types.Value{}, indexError(index, 3)
}

func (s *Source3[A, B, C, SA, SB, SC]) ConvertChunks(dest *chunk.Chunk[Tuple3[SA, SB, SC]], count int, sources ...chunk.Any) error {
	if err := checkConvert(3, dest.Cap(), count, sources); err != nil {
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
	third, err := storageValues[SC](sources, 2, count)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		dest.Set(i, Tuple3[SA, SB, SC]{First: first[i], Second: second[i], Third: third[i]})
	}
	return dest.SetSize(count)
}

func (s *Source3[A, B, C, SA, SB, SC]) FillChunk(dest *chunk.Chunk[Tuple3[SA, SB, SC]], rows rowset.RowSet) error {
	return s.fill(dest, rows, false)
}

func (s *Source3[A, B, C, SA, SB, SC]) FillPrevChunk(dest *chunk.Chunk[Tuple3[SA, SB, SC]], rows rowset.RowSet) error {
	return s.fill(dest, rows, true)
}

func (s *Source3[A, B, C, SA, SB, SC]) fill(dest *chunk.Chunk[Tuple3[SA, SB, SC]], rows rowset.RowSet, prev bool) error {
	first, err := fillStorage(s.first, rows, prev)
	if err != nil {
		return err
	}
	second, err := fillStorage(s.second, rows, prev)
	if err != nil {
		return err
	}
	third, err := fillStorage(s.third, rows, prev)
	if err != nil {
		return err
	}
	return s.ConvertChunks(dest, rows.Size(), first, second, third)
}
