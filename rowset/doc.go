// Package rowset provides the row key vocabulary shared by the column stores
// and the tuple sources.
//
// A row key is a stable, non-negative 64 bit identifier for a logical row. It
// is not a position: adding or removing other rows never changes it, only an
// explicit shift does. NullRowKey is the distinguished "no row" value that
// redirection layers pass through when there is no match.
//
// The ordered set implementation is a roaring bitmap. Callers that need an
// explicit, caller determined, iteration order use Sequence instead.
package rowset
