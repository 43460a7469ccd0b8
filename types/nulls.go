package types

import (
	"math"
	"time"
)

// Null sentinels, one per primitive width.
const (
	NullChar   Char    = math.MaxUint16
	NullByte   int8    = math.MinInt8
	NullShort  int16   = math.MinInt16
	NullInt    int32   = math.MinInt32
	NullLong   int64   = math.MinInt64
	NullFloat  float32 = -math.MaxFloat32
	NullDouble float64 = -math.MaxFloat64
)

// NullOf returns the null value a column of type T reports for the null row
// key.
func NullOf[T any]() T {
	var null T
	switch p := any(&null).(type) {
	case *Boolean:
		*p = NullBoolean
	case *Char:
		*p = NullChar
	case *int8:
		*p = NullByte
	case *int16:
		*p = NullShort
	case *int32:
		*p = NullInt
	case *int64:
		*p = NullLong
	case *float32:
		*p = NullFloat
	case *float64:
		*p = NullDouble
	case *time.Time:
		// the zero time is the null timestamp
	}
	return null
}
