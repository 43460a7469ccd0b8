package types

import "errors"

var (
	ErrValueType = errors.New("value does not hold the requested type")
	ErrValueKind = errors.New("unsupported value kind")
)
