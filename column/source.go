package column

import (
	"github.com/forestrie/go-livetable/chunk"
	"github.com/forestrie/go-livetable/rowset"
	"github.com/forestrie/go-livetable/types"
)

// Source is the read contract of a column: point and bulk reads of either
// the current or the previous generation.
type Source[T any] interface {
	Get(key rowset.RowKey) (T, error)
	GetPrev(key rowset.RowKey) (T, error)
	FillChunk(dest *chunk.Chunk[T], rows rowset.RowSet) error
	FillPrevChunk(dest *chunk.Chunk[T], rows rowset.RowSet) error
}

// Mutable is a Source that accepts row changes between update cycles.
type Mutable[T any] interface {
	Source[T]
	Add(rows rowset.RowSet, values *chunk.Chunk[T]) error
	Remove(rows rowset.RowSet) error
	Shift(start, end rowset.RowKey, delta int64) error
}

// Writable accepts single dynamically typed values. It is the destination
// tuple sources export key fields into.
type Writable interface {
	SetValue(key rowset.RowKey, v types.Value) error
}
