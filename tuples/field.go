package tuples

import (
	"fmt"
	"time"

	"github.com/forestrie/go-livetable/column"
	"github.com/forestrie/go-livetable/types"
)

// Field projects a column of logical type C into the tuple storage type S
// and back.
type Field[C any, S comparable] interface {
	// Kind is the logical kind of the column.
	Kind() types.Kind
	Storage(v C) S
	// Logical returns the logical value for a stored field.
	Logical(s S) types.Value
	// Reinterpreted returns the stored field as a value of its storage kind.
	Reinterpreted(s S) types.Value
	// FromValue projects a logical value. A null object is accepted as the
	// null of the field.
	FromValue(v types.Value) (S, error)
	// FromReinterpreted accepts either a storage value or a logical one.
	FromReinterpreted(v types.Value) (S, error)
}

// Primitive is the set of column types stored unchanged in a tuple.
type Primitive interface {
	types.Char | int8 | int16 | int32 | int64 | float32 | float64
}

// Column pairs a column source with the projection of its values.
type Column[C any, S comparable] struct {
	Source column.Source[C]
	Field  Field[C, S]
}

func Boolean(src column.Source[types.Boolean]) Column[types.Boolean, int8] {
	return Column[types.Boolean, int8]{Source: src, Field: BooleanField{}}
}

// ReinterpretedBoolean is a boolean column whose source already yields the
// byte codes.
func ReinterpretedBoolean(src column.Source[int8]) Column[int8, int8] {
	return Column[int8, int8]{Source: src, Field: ReinterpretedBooleanField{}}
}

func DateTime(src column.Source[time.Time]) Column[time.Time, int64] {
	return Column[time.Time, int64]{Source: src, Field: DateTimeField{}}
}

func Of[T Primitive](src column.Source[T]) Column[T, T] {
	return Column[T, T]{Source: src, Field: PrimitiveField[T]{}}
}

func Object[T comparable](src column.Source[T]) Column[T, T] {
	return Column[T, T]{Source: src, Field: ObjectField[T]{}}
}

type BooleanField struct{}

var _ Field[types.Boolean, int8] = BooleanField{}

func (BooleanField) Kind() types.Kind                 { return types.KindBoolean }
func (BooleanField) Storage(v types.Boolean) int8     { return types.BooleanAsByte(v) }
func (BooleanField) Logical(s int8) types.Value       { return booleanLogical(s) }
func (BooleanField) Reinterpreted(s int8) types.Value { return types.ByteValue(s) }

func (BooleanField) FromValue(v types.Value) (int8, error) { return booleanFromValue(v) }

func (BooleanField) FromReinterpreted(v types.Value) (int8, error) {
	return booleanFromReinterpreted(v)
}

// ReinterpretedBooleanField is the boolean projection for columns that
// already hold byte codes.
type ReinterpretedBooleanField struct{}

var _ Field[int8, int8] = ReinterpretedBooleanField{}

func (ReinterpretedBooleanField) Kind() types.Kind                 { return types.KindBoolean }
func (ReinterpretedBooleanField) Storage(code int8) int8           { return code }
func (ReinterpretedBooleanField) Logical(s int8) types.Value       { return booleanLogical(s) }
func (ReinterpretedBooleanField) Reinterpreted(s int8) types.Value { return types.ByteValue(s) }

func (ReinterpretedBooleanField) FromValue(v types.Value) (int8, error) {
	return booleanFromValue(v)
}

func (ReinterpretedBooleanField) FromReinterpreted(v types.Value) (int8, error) {
	return booleanFromReinterpreted(v)
}

func booleanLogical(code int8) types.Value {
	return types.BooleanValue(types.ByteAsBoolean(code))
}

func booleanFromValue(v types.Value) (int8, error) {
	switch {
	case v.Kind() == types.KindBoolean:
		return int8(v.Bits()), nil
	case v.Kind() == types.KindObject && v.IsNull():
		return types.NullBooleanAsByte, nil
	}
	return types.NullBooleanAsByte, fmt.Errorf("%w: %s value for a Boolean field", types.ErrValueType, v.Kind())
}

func booleanFromReinterpreted(v types.Value) (int8, error) {
	if v.Kind() == types.KindByte {
		return int8(v.Bits()), nil
	}
	return booleanFromValue(v)
}

type DateTimeField struct{}

var _ Field[time.Time, int64] = DateTimeField{}

func (DateTimeField) Kind() types.Kind                  { return types.KindDateTime }
func (DateTimeField) Storage(v time.Time) int64         { return types.Nanos(v) }
func (DateTimeField) Logical(s int64) types.Value       { return types.DateTimeNanosValue(s) }
func (DateTimeField) Reinterpreted(s int64) types.Value { return types.LongValue(s) }

func (DateTimeField) FromValue(v types.Value) (int64, error) {
	switch {
	case v.Kind() == types.KindDateTime:
		return v.Bits(), nil
	case v.Kind() == types.KindObject && v.IsNull():
		return types.NullLong, nil
	}
	return types.NullLong, fmt.Errorf("%w: %s value for a DateTime field", types.ErrValueType, v.Kind())
}

func (f DateTimeField) FromReinterpreted(v types.Value) (int64, error) {
	if v.Kind() == types.KindLong {
		return v.Bits(), nil
	}
	return f.FromValue(v)
}

// PrimitiveField stores numeric and character columns unchanged.
type PrimitiveField[T Primitive] struct{}

func (PrimitiveField[T]) Kind() types.Kind                   { return types.KindOf[T]() }
func (PrimitiveField[T]) Storage(v T) T                      { return v }
func (PrimitiveField[T]) Logical(s T) types.Value            { return types.ValueOf(s) }
func (PrimitiveField[T]) Reinterpreted(s T) types.Value      { return types.ValueOf(s) }
func (PrimitiveField[T]) FromValue(v types.Value) (T, error) { return types.ValueAs[T](v) }

func (PrimitiveField[T]) FromReinterpreted(v types.Value) (T, error) {
	return types.ValueAs[T](v)
}

// ObjectField stores reference columns unchanged. The zero value of T is the
// null of the field: it exports as the null object, and the null object
// projects to it.
type ObjectField[T comparable] struct{}

func (ObjectField[T]) Kind() types.Kind                   { return types.KindObject }
func (ObjectField[T]) Storage(v T) T                      { return v }
func (ObjectField[T]) Logical(s T) types.Value            { return objectValue(s) }
func (ObjectField[T]) Reinterpreted(s T) types.Value      { return objectValue(s) }
func (ObjectField[T]) FromValue(v types.Value) (T, error) { return types.ValueAs[T](v) }

func (ObjectField[T]) FromReinterpreted(v types.Value) (T, error) {
	return types.ValueAs[T](v)
}

func objectValue[T comparable](s T) types.Value {
	var zero T
	if s == zero {
		return types.ObjectValue(nil)
	}
	return types.ValueOf(s)
}
