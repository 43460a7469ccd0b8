package types

import (
	"cmp"
	"fmt"
	"math"
	"time"
)

// Value is a tagged union over every logical column type.
//
// Primitive, boolean and timestamp values are held in their storage
// representation, so a Value is comparable with == whenever any object it
// carries is comparable. The zero Value is a null object.
type Value struct {
	kind Kind
	bits int64
	ref  any
}

func BooleanValue(b Boolean) Value { return Value{kind: KindBoolean, bits: int64(BooleanAsByte(b))} }
func CharValue(c Char) Value       { return Value{kind: KindChar, bits: int64(c)} }
func ByteValue(v int8) Value       { return Value{kind: KindByte, bits: int64(v)} }
func ShortValue(v int16) Value     { return Value{kind: KindShort, bits: int64(v)} }
func IntValue(v int32) Value       { return Value{kind: KindInt, bits: int64(v)} }
func LongValue(v int64) Value      { return Value{kind: KindLong, bits: v} }

func FloatValue(v float32) Value {
	return Value{kind: KindFloat, bits: int64(math.Float32bits(v))}
}

func DoubleValue(v float64) Value {
	return Value{kind: KindDouble, bits: int64(math.Float64bits(v))}
}

func DateTimeValue(t time.Time) Value { return Value{kind: KindDateTime, bits: Nanos(t)} }

// DateTimeNanosValue builds a timestamp value from its storage representation.
func DateTimeNanosValue(nanos int64) Value { return Value{kind: KindDateTime, bits: nanos} }

func ObjectValue(v any) Value { return Value{kind: KindObject, ref: v} }

// NullValue returns the null of the given kind.
func NullValue(kind Kind) Value {
	switch kind {
	case KindBoolean:
		return BooleanValue(NullBoolean)
	case KindChar:
		return CharValue(NullChar)
	case KindByte:
		return ByteValue(NullByte)
	case KindShort:
		return ShortValue(NullShort)
	case KindInt:
		return IntValue(NullInt)
	case KindLong:
		return LongValue(NullLong)
	case KindFloat:
		return FloatValue(NullFloat)
	case KindDouble:
		return DoubleValue(NullDouble)
	case KindDateTime:
		return DateTimeNanosValue(NullLong)
	}
	return Value{}
}

// ValueOf wraps v according to its static type.
func ValueOf[T any](v T) Value {
	switch x := any(v).(type) {
	case Boolean:
		return BooleanValue(x)
	case Char:
		return CharValue(x)
	case int8:
		return ByteValue(x)
	case int16:
		return ShortValue(x)
	case int32:
		return IntValue(x)
	case int64:
		return LongValue(x)
	case float32:
		return FloatValue(x)
	case float64:
		return DoubleValue(x)
	case time.Time:
		return DateTimeValue(x)
	case Value:
		return x
	}
	return ObjectValue(v)
}

// ValueAs unwraps v as a T. A null object converts to the null of T.
func ValueAs[T any](v Value) (T, error) {
	if v.kind == KindObject && v.ref == nil {
		return NullOf[T](), nil
	}
	x, ok := v.Any().(T)
	if !ok {
		var zero T
		return NullOf[T](), fmt.Errorf("%w: %s value as %T", ErrValueType, v.kind, zero)
	}
	return x, nil
}

func (v Value) Kind() Kind { return v.kind }

// Any returns the logical Go value: a Boolean, Char, int8 .. float64,
// time.Time or the object itself.
func (v Value) Any() any {
	switch v.kind {
	case KindBoolean:
		return ByteAsBoolean(int8(v.bits))
	case KindChar:
		return Char(v.bits)
	case KindByte:
		return int8(v.bits)
	case KindShort:
		return int16(v.bits)
	case KindInt:
		return int32(v.bits)
	case KindLong:
		return v.bits
	case KindFloat:
		return math.Float32frombits(uint32(v.bits))
	case KindDouble:
		return math.Float64frombits(uint64(v.bits))
	case KindDateTime:
		return NanosToTime(v.bits)
	}
	return v.ref
}

// Bits returns the storage representation of non object values: the boolean
// code, the timestamp nanos, or the primitive value widened to 64 bits (the
// IEEE bit pattern for floating point kinds).
func (v Value) Bits() int64 { return v.bits }

func (v Value) IsNull() bool {
	switch v.kind {
	case KindBoolean:
		return int8(v.bits) == NullBooleanAsByte
	case KindChar:
		return Char(v.bits) == NullChar
	case KindByte:
		return int8(v.bits) == NullByte
	case KindShort:
		return int16(v.bits) == NullShort
	case KindInt:
		return int32(v.bits) == NullInt
	case KindLong, KindDateTime:
		return v.bits == NullLong
	case KindFloat:
		return math.Float32frombits(uint32(v.bits)) == NullFloat
	case KindDouble:
		return math.Float64frombits(uint64(v.bits)) == NullDouble
	}
	return v.ref == nil
}

// Compare orders values first by kind and then by value. Nulls sort first
// within their kind. Objects order naturally when both are strings or the
// same numeric type, otherwise by their printed form.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		return cmp.Compare(v.kind, o.kind)
	}
	switch v.kind {
	case KindFloat:
		if v.IsNull() || o.IsNull() {
			return cmpNulls(v.IsNull(), o.IsNull())
		}
		return cmp.Compare(math.Float32frombits(uint32(v.bits)), math.Float32frombits(uint32(o.bits)))
	case KindDouble:
		if v.IsNull() || o.IsNull() {
			return cmpNulls(v.IsNull(), o.IsNull())
		}
		return cmp.Compare(math.Float64frombits(uint64(v.bits)), math.Float64frombits(uint64(o.bits)))
	case KindChar:
		if v.IsNull() || o.IsNull() {
			return cmpNulls(v.IsNull(), o.IsNull())
		}
	case KindObject:
		return compareObjects(v.ref, o.ref)
	}
	// every other storage representation orders like the logical value and
	// places its null sentinel lowest
	return cmp.Compare(v.bits, o.bits)
}

func cmpNulls(a, b bool) int {
	switch {
	case a && b:
		return 0
	case a:
		return -1
	}
	return 1
}

func compareObjects(a, b any) int {
	if a == nil || b == nil {
		return cmpNulls(a == nil, b == nil)
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case uint64:
		if y, ok := b.(uint64); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	}
	return cmp.Compare(fmt.Sprintf("%T:%v", a, a), fmt.Sprintf("%T:%v", b, b))
}

func (v Value) String() string {
	if v.IsNull() {
		return "null"
	}
	switch v.kind {
	case KindChar:
		return string(rune(v.bits))
	case KindDateTime:
		return NanosToTime(v.bits).Format(time.RFC3339Nano)
	}
	return fmt.Sprint(v.Any())
}
