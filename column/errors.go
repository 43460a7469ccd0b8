package column

import "errors"

var (
	ErrSizeMismatch   = errors.New("the row set and the value chunk differ in size")
	ErrUnknownKey     = errors.New("the row key has no value in the column")
	ErrRowSetMismatch = errors.New("the column rows do not match the expected row set")
	ErrShiftRange     = errors.New("the shift moves keys outside the valid row key range")
)
