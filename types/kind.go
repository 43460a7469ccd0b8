package types

import (
	"fmt"
	"time"
)

// Kind tags the logical type of a column, a chunk or a Value.
type Kind uint8

const (
	KindObject Kind = iota
	KindBoolean
	KindChar
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindDateTime

	maxKind = KindDateTime
)

var kindNames = [...]string{
	KindObject:   "Object",
	KindBoolean:  "Boolean",
	KindChar:     "Char",
	KindByte:     "Byte",
	KindShort:    "Short",
	KindInt:      "Int",
	KindLong:     "Long",
	KindFloat:    "Float",
	KindDouble:   "Double",
	KindDateTime: "DateTime",
}

func (k Kind) String() string {
	if k > maxKind {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Char is a 16 bit character column value.
type Char uint16

// KindOf returns the kind for values of type T. Anything that is not one of
// the primitive, boolean or timestamp types is an object.
func KindOf[T any]() Kind {
	var zero T
	switch any(zero).(type) {
	case Boolean:
		return KindBoolean
	case Char:
		return KindChar
	case int8:
		return KindByte
	case int16:
		return KindShort
	case int32:
		return KindInt
	case int64:
		return KindLong
	case float32:
		return KindFloat
	case float64:
		return KindDouble
	case time.Time:
		return KindDateTime
	}
	return KindObject
}
