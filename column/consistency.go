package column

import (
	"fmt"

	"github.com/forestrie/go-livetable/rowset"
)

// CheckRowSet verifies that the current generation holds a value for exactly
// the keys in rows. Tests use it to confirm their row bookkeeping agrees
// with the column.
func (s *Store[T]) CheckRowSet(rows rowset.RowSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.data) != rows.Size() {
		return fmt.Errorf("%w: %d values, %d rows", ErrRowSetMismatch, len(s.data), rows.Size())
	}
	var missing rowset.RowKey
	found := false
	rows.ForEach(func(k rowset.RowKey) bool {
		if _, ok := s.data[k]; !ok {
			missing, found = k, true
			return false
		}
		return true
	})
	if found {
		return fmt.Errorf("%w: row %d has no value", ErrRowSetMismatch, missing)
	}
	return nil
}
