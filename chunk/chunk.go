// Package chunk provides the fixed capacity, typed batch buffers used for all
// bulk transfer in and out of column stores and tuple sources.
package chunk

import (
	"errors"
	"fmt"

	"github.com/forestrie/go-livetable/types"
)

var (
	ErrCapacityExceeded = errors.New("the chunk size may not exceed its capacity")
	ErrChunkType        = errors.New("the chunk does not hold the expected element type")
)

// Any is the type erased view of a chunk. It lets callers pass chunks of
// different element types together, each is recovered with As.
type Any interface {
	Len() int
	Cap() int
	Kind() types.Kind
}

// Chunk is a fixed capacity buffer of T with a logical size no greater than
// its capacity. Indexing outside the capacity panics, exactly as a slice does.
type Chunk[T any] struct {
	data []T
	size int
}

var _ Any = (*Chunk[int8])(nil)

// New returns an empty chunk that can hold capacity elements.
func New[T any](capacity int) *Chunk[T] {
	return &Chunk[T]{data: make([]T, capacity)}
}

// Of returns a full chunk holding values.
func Of[T any](values ...T) *Chunk[T] {
	return &Chunk[T]{data: append([]T(nil), values...), size: len(values)}
}

// As recovers the typed chunk behind c.
func As[T any](c Any) (*Chunk[T], error) {
	typed, ok := c.(*Chunk[T])
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: have %s chunk, want %T", ErrChunkType, c.Kind(), zero)
	}
	return typed, nil
}

func (c *Chunk[T]) Len() int { return c.size }
func (c *Chunk[T]) Cap() int { return len(c.data) }

func (c *Chunk[T]) Kind() types.Kind { return types.KindOf[T]() }

func (c *Chunk[T]) Get(i int) T {
	if i >= c.size {
		panic(fmt.Sprintf("chunk: index %d out of range for size %d", i, c.size))
	}
	return c.data[i]
}

// Set writes position i, which may be beyond the current size but not
// beyond the capacity.
func (c *Chunk[T]) Set(i int, v T) {
	c.data[i] = v
}

func (c *Chunk[T]) SetSize(n int) error {
	if n < 0 || n > len(c.data) {
		return fmt.Errorf("%w: size %d, capacity %d", ErrCapacityExceeded, n, len(c.data))
	}
	c.size = n
	return nil
}

// Values returns the logically populated elements. The slice aliases the
// chunk storage.
func (c *Chunk[T]) Values() []T {
	return c.data[:c.size]
}
