package rowset

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/roaring64"
)

// Bitmap is an ordered set of row keys backed by a 64 bit roaring bitmap.
// It is not safe for concurrent mutation.
type Bitmap struct {
	bm *roaring64.Bitmap
}

var _ RowSet = (*Bitmap)(nil)

func New() *Bitmap {
	return &Bitmap{bm: roaring64.New()}
}

// Of returns a bitmap holding keys. It panics if any key is negative, it is
// intended for literal key sets.
func Of(keys ...RowKey) *Bitmap {
	b := New()
	for _, k := range keys {
		if err := b.Insert(k); err != nil {
			panic(fmt.Sprintf("rowset.Of: %v: %d", err, k))
		}
	}
	return b
}

// FromRange returns the set of all keys in [first, last].
func FromRange(first, last RowKey) (*Bitmap, error) {
	b := New()
	if err := b.InsertRange(first, last); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bitmap) Insert(key RowKey) error {
	if key < 0 {
		return ErrNegativeRowKey
	}
	b.bm.Add(uint64(key))
	return nil
}

// InsertRange adds every key in [first, last].
func (b *Bitmap) InsertRange(first, last RowKey) error {
	if first < 0 {
		return ErrNegativeRowKey
	}
	if first > last {
		return fmt.Errorf("%w: [%d, %d]", ErrRangeInverted, first, last)
	}
	// roaring ranges are half open. last+1 can not overflow a uint64 because
	// last is at most MaxRowKey.
	b.bm.AddRange(uint64(first), uint64(last)+1)
	return nil
}

// Remove deletes key. Removing an absent or negative key is a no-op.
func (b *Bitmap) Remove(key RowKey) {
	if key < 0 {
		return
	}
	b.bm.Remove(uint64(key))
}

func (b *Bitmap) Contains(key RowKey) bool {
	if key < 0 {
		return false
	}
	return b.bm.Contains(uint64(key))
}

func (b *Bitmap) Size() int {
	return int(b.bm.GetCardinality())
}

func (b *Bitmap) IsEmpty() bool {
	return b.bm.IsEmpty()
}

// ForEach visits keys in ascending order.
func (b *Bitmap) ForEach(fn func(key RowKey) bool) {
	it := b.bm.Iterator()
	for it.HasNext() {
		if !fn(RowKey(it.Next())) {
			return
		}
	}
}

// ForEachReverse visits keys in descending order.
func (b *Bitmap) ForEachReverse(fn func(key RowKey) bool) {
	it := b.bm.ReverseIterator()
	for it.HasNext() {
		if !fn(RowKey(it.Next())) {
			return
		}
	}
}

// Keys returns the keys in ascending order.
func (b *Bitmap) Keys() []RowKey {
	keys := make([]RowKey, 0, b.Size())
	b.ForEach(func(k RowKey) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func (b *Bitmap) FirstKey() (RowKey, error) {
	if b.bm.IsEmpty() {
		return NullRowKey, ErrEmptyRowSet
	}
	return RowKey(b.bm.Minimum()), nil
}

func (b *Bitmap) LastKey() (RowKey, error) {
	if b.bm.IsEmpty() {
		return NullRowKey, ErrEmptyRowSet
	}
	return RowKey(b.bm.Maximum()), nil
}

func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{bm: b.bm.Clone()}
}

func (b *Bitmap) Equals(other *Bitmap) bool {
	if other == nil {
		return false
	}
	return b.bm.Equals(other.bm)
}

// String renders the set as a list of ranges, eg {0-3,7,9-10}
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	var start, prev RowKey = NullRowKey, NullRowKey
	flush := func() {
		if start == NullRowKey {
			return
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		if start == prev {
			fmt.Fprintf(&sb, "%d", start)
			return
		}
		fmt.Fprintf(&sb, "%d-%d", start, prev)
	}
	b.ForEach(func(k RowKey) bool {
		if start != NullRowKey && k == prev+1 {
			prev = k
			return true
		}
		flush()
		start, prev = k, k
		return true
	})
	flush()
	sb.WriteByte('}')
	return sb.String()
}
