package column

import "github.com/forestrie/go-livetable/rowset"

// GroupRows returns the rows of the current generation grouped by value. The
// result is cached until the next mutation and must be treated as read only.
func GroupRows[T comparable](s *Store[T]) map[T]*rowset.Bitmap {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.grouping.(map[T]*rowset.Bitmap); ok {
		return g
	}
	g := make(map[T]*rowset.Bitmap)
	s.keys.Ascend(func(k rowset.RowKey) bool {
		v := s.data[k]
		rows, ok := g[v]
		if !ok {
			rows = rowset.New()
			g[v] = rows
		}
		_ = rows.Insert(k)
		return true
	})
	s.grouping = g
	return g
}
