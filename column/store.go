package column

import (
	"fmt"
	"maps"
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-livetable/chunk"
	"github.com/forestrie/go-livetable/rowset"
	"github.com/forestrie/go-livetable/types"
	"github.com/forestrie/go-livetable/updategraph"
	"github.com/google/btree"
	"github.com/google/uuid"
)

// Store is the authoritative, previous value aware storage for one column.
// See the package documentation for the generation and key semantics.
type Store[T any] struct {
	id    uuid.UUID
	clock updategraph.Clock
	log   logger.Logger
	null  T

	mu   sync.Mutex
	data map[rowset.RowKey]T
	// keys orders the current generation so that Shift only visits keys that
	// are actually present in its range.
	keys *btree.BTreeG[rowset.RowKey]
	prev map[rowset.RowKey]T
	// lastStep is the step of the most recent mutation, or of construction.
	lastStep uint64
	// armedStep is the step whose snapshot the pending flush discards.
	armedStep uint64
	// grouping caches GroupRows, it is dropped by every mutation.
	grouping any

	prevFlusher *updategraph.Committer[*Store[T]]
}

var (
	_ Mutable[float64] = (*Store[float64])(nil)
	_ Writable         = (*Store[float64])(nil)
)

// New returns an empty store. Mutations made during the step in which the
// store is created are treated as its initial population and do not create a
// previous generation.
func New[T any](opts ...Option) *Store[T] {
	o := newOptions(opts)
	s := &Store[T]{
		id:    o.ID,
		clock: o.Clock,
		log:   o.Log,
		null:  types.NullOf[T](),
		data:  make(map[rowset.RowKey]T),
		keys:  btree.NewOrderedG[rowset.RowKey](o.IndexDegree),
	}
	s.lastStep = s.clock.CurrentStep()
	s.prevFlusher = updategraph.NewCommitter(o.Scheduler, s, flushPrevious[T])
	return s
}

// NewFrom returns a store populated with values at rows.
func NewFrom[T any](rows rowset.RowSet, values *chunk.Chunk[T], opts ...Option) (*Store[T], error) {
	s := New[T](opts...)
	if err := s.Add(rows, values); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store[T]) ID() uuid.UUID { return s.id }

// Null returns the value reported for the null row key.
func (s *Store[T]) Null() T { return s.null }

func (s *Store[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// HasPrev reports whether a previous generation currently exists.
func (s *Store[T]) HasPrev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prev != nil
}

// RowSet returns the keys of the current generation.
func (s *Store[T]) RowSet() *rowset.Bitmap {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := rowset.New()
	s.keys.Ascend(func(k rowset.RowKey) bool {
		_ = b.Insert(k)
		return true
	})
	return b
}

// Add writes values to rows, pairing them in the iteration order of rows.
func (s *Store[T]) Add(rows rowset.RowSet, values *chunk.Chunk[T]) error {
	if rows.Size() != values.Len() {
		return fmt.Errorf("%w: %d rows, %d values", ErrSizeMismatch, rows.Size(), values.Len())
	}
	if err := checkNonNegative(rows); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.grouping = nil
	s.maybeInitializePrevForStep()

	i := 0
	rows.ForEach(func(k rowset.RowKey) bool {
		s.put(k, values.Get(i))
		i++
		return true
	})
	return nil
}

// Remove deletes rows. Keys that are not present are ignored, some
// redirection schemes pass through keys that were never populated.
func (s *Store[T]) Remove(rows rowset.RowSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grouping = nil
	s.maybeInitializePrevForStep()

	rows.ForEach(func(k rowset.RowKey) bool {
		if _, ok := s.data[k]; ok {
			delete(s.data, k)
			s.keys.Delete(k)
		}
		return true
	})
	return nil
}

// Shift moves every present key in [start, end] to key + delta. The caller
// guarantees the destinations do not collide with keys that are not also
// shifting.
func (s *Store[T]) Shift(start, end rowset.RowKey, delta int64) error {
	if start > end || delta == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var moving []rowset.RowKey
	s.keys.AscendGreaterOrEqual(start, func(k rowset.RowKey) bool {
		if k > end {
			return false
		}
		moving = append(moving, k)
		return true
	})
	if len(moving) == 0 {
		return nil
	}
	if first := moving[0]; first+delta < 0 {
		return fmt.Errorf("%w: %d shifted by %d", ErrShiftRange, first, delta)
	}
	if last := moving[len(moving)-1]; delta > 0 && last > rowset.MaxRowKey-delta {
		return fmt.Errorf("%w: %d shifted by %d", ErrShiftRange, last, delta)
	}

	s.grouping = nil
	s.maybeInitializePrevForStep()

	move := func(k rowset.RowKey) {
		v := s.data[k]
		delete(s.data, k)
		s.keys.Delete(k)
		s.put(k+delta, v)
	}

	// Moving right, the rightmost key must go first so no key lands on one
	// that has yet to move. Moving left it is the reverse.
	if delta > 0 {
		for i := len(moving) - 1; i >= 0; i-- {
			move(moving[i])
		}
		return nil
	}
	for _, k := range moving {
		move(k)
	}
	return nil
}

// Set writes a single row.
func (s *Store[T]) Set(key rowset.RowKey, v T) error {
	if key < 0 {
		return fmt.Errorf("%w: %d", rowset.ErrNegativeRowKey, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grouping = nil
	s.maybeInitializePrevForStep()
	s.put(key, v)
	return nil
}

// SetValue writes a single row from a dynamically typed value, which must
// hold a T.
func (s *Store[T]) SetValue(key rowset.RowKey, v types.Value) error {
	x, err := types.ValueAs[T](v)
	if err != nil {
		return err
	}
	return s.Set(key, x)
}

func (s *Store[T]) Get(key rowset.RowKey) (T, error) {
	if key < 0 {
		return s.null, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(s.data, key, "")
}

// GetPrev reads the previous generation, or the current one when no
// previous generation exists.
func (s *Store[T]) GetPrev(key rowset.RowKey) (T, error) {
	if key < 0 {
		return s.null, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prev == nil {
		return s.lookup(s.data, key, "")
	}
	return s.lookup(s.prev, key, "previous ")
}

func (s *Store[T]) FillChunk(dest *chunk.Chunk[T], rows rowset.RowSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fill(s.data, "", dest, rows)
}

func (s *Store[T]) FillPrevChunk(dest *chunk.Chunk[T], rows rowset.RowSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prev == nil {
		return s.fill(s.data, "", dest, rows)
	}
	return s.fill(s.prev, "previous ", dest, rows)
}

func (s *Store[T]) fill(data map[rowset.RowKey]T, what string, dest *chunk.Chunk[T], rows rowset.RowSet) error {
	n := rows.Size()
	if n > dest.Cap() {
		return fmt.Errorf("%w: %d rows, capacity %d", chunk.ErrCapacityExceeded, n, dest.Cap())
	}
	var err error
	i := 0
	rows.ForEach(func(k rowset.RowKey) bool {
		var v T
		if k < 0 {
			v = s.null
		} else if v, err = s.lookup(data, k, what); err != nil {
			return false
		}
		dest.Set(i, v)
		i++
		return true
	})
	if err != nil {
		return err
	}
	return dest.SetSize(n)
}

func (s *Store[T]) lookup(data map[rowset.RowKey]T, key rowset.RowKey, what string) (T, error) {
	v, ok := data[key]
	if !ok {
		return s.null, fmt.Errorf("%w: %s%d", ErrUnknownKey, what, key)
	}
	return v, nil
}

func (s *Store[T]) put(k rowset.RowKey, v T) {
	if _, ok := s.data[k]; !ok {
		s.keys.ReplaceOrInsert(k)
	}
	s.data[k] = v
}

// maybeInitializePrevForStep copies the current generation on the first
// mutation of a step and arms the flush that discards the copy once the step
// has closed. Must be called with the lock held.
func (s *Store[T]) maybeInitializePrevForStep() {
	step := s.clock.CurrentStep()
	if step == s.lastStep {
		return
	}
	if s.prevFlusher.MaybeActivate() {
		s.armedStep = step
	}
	s.prev = maps.Clone(s.data)
	s.lastStep = step
	s.debugf("previous generation: step=%d, rows=%d", step, len(s.prev))
}

// flushPrevious discards the previous generation. A flush armed for an
// earlier step than the current snapshot belongs to a step that has already
// been superseded; it re-arms for the current snapshot instead.
func flushPrevious[T any](s *Store[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.armedStep != s.lastStep {
		s.debugf("previous generation kept: armed=%d, step=%d", s.armedStep, s.lastStep)
		if s.prevFlusher.MaybeActivate() {
			s.armedStep = s.lastStep
		}
		return
	}
	s.prev = nil
	s.debugf("previous generation flushed: step=%d", s.lastStep)
}

func (s *Store[T]) debugf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.Debugf("%s: "+format, append([]any{s.id}, args...)...)
}

// checkNonNegative validates rows from RowSet implementations that do not
// already reject negative keys on construction.
func checkNonNegative(rows rowset.RowSet) error {
	switch rows.(type) {
	case *rowset.Bitmap, *rowset.Sequence:
		return nil
	}
	var bad rowset.RowKey
	found := false
	rows.ForEach(func(k rowset.RowKey) bool {
		if k < 0 {
			bad, found = k, true
			return false
		}
		return true
	})
	if found {
		return fmt.Errorf("%w: %d", rowset.ErrNegativeRowKey, bad)
	}
	return nil
}
