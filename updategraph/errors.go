package updategraph

import "errors"

var (
	ErrCycleInProgress   = errors.New("an update cycle is already in progress")
	ErrNoCycleInProgress = errors.New("no update cycle is in progress")
)
