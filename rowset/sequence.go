package rowset

import "fmt"

// Sequence is a RowSet that iterates in exactly the order the caller supplied
// the keys. Keys are assumed unique; Contains is a linear scan.
type Sequence struct {
	keys []RowKey
}

var _ RowSet = (*Sequence)(nil)

func NewSequence(keys ...RowKey) (*Sequence, error) {
	for i, k := range keys {
		if k < 0 {
			return nil, fmt.Errorf("%w: position %d, key %d", ErrNegativeRowKey, i, k)
		}
	}
	return &Sequence{keys: append([]RowKey(nil), keys...)}, nil
}

func (s *Sequence) Size() int { return len(s.keys) }

func (s *Sequence) Contains(key RowKey) bool {
	for _, k := range s.keys {
		if k == key {
			return true
		}
	}
	return false
}

func (s *Sequence) ForEach(fn func(key RowKey) bool) {
	for _, k := range s.keys {
		if !fn(k) {
			return
		}
	}
}
