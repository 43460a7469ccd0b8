package rowset

import "errors"

var (
	ErrNegativeRowKey = errors.New("row keys must be non-negative")
	ErrEmptyRowSet    = errors.New("the row set is empty")
	ErrRangeInverted  = errors.New("the first key of a range must not exceed the last")
)
