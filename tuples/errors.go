package tuples

import "errors"

var (
	ErrIndexOutOfRange = errors.New("tuple field index out of range")
	ErrValueCount      = errors.New("the number of values does not match the tuple arity")
	ErrSourceCount     = errors.New("the number of source chunks does not match the tuple arity")
	ErrChunkLength     = errors.New("a source chunk is shorter than the requested count")
	ErrArity           = errors.New("unsupported external key arity")
)
