package rowset

// RowKey identifies a logical row.
type RowKey = int64

const (
	// NullRowKey denotes "no row".
	NullRowKey RowKey = -1

	// MaxRowKey is the largest representable row key.
	MaxRowKey RowKey = 1<<63 - 1
)

// RowSet is the read contract the column stores require of any set of row
// keys. Iteration order is determined by the implementation, and for Sequence
// by the caller.
type RowSet interface {
	Size() int
	Contains(key RowKey) bool
	// ForEach visits every key until fn returns false.
	ForEach(fn func(key RowKey) bool)
}
