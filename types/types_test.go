package types

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindBoolean, KindOf[Boolean]())
	assert.Equal(t, KindChar, KindOf[Char]())
	assert.Equal(t, KindByte, KindOf[int8]())
	assert.Equal(t, KindShort, KindOf[int16]())
	assert.Equal(t, KindInt, KindOf[int32]())
	assert.Equal(t, KindLong, KindOf[int64]())
	assert.Equal(t, KindFloat, KindOf[float32]())
	assert.Equal(t, KindDouble, KindOf[float64]())
	assert.Equal(t, KindDateTime, KindOf[time.Time]())
	assert.Equal(t, KindObject, KindOf[string]())
	assert.Equal(t, KindObject, KindOf[any]())
	assert.Equal(t, "Kind(200)", Kind(200).String())
}

func TestNullOf(t *testing.T) {
	assert.Equal(t, NullBoolean, NullOf[Boolean]())
	assert.Equal(t, NullChar, NullOf[Char]())
	assert.Equal(t, NullByte, NullOf[int8]())
	assert.Equal(t, NullShort, NullOf[int16]())
	assert.Equal(t, NullInt, NullOf[int32]())
	assert.Equal(t, NullLong, NullOf[int64]())
	assert.Equal(t, NullFloat, NullOf[float32]())
	assert.Equal(t, NullDouble, NullOf[float64]())
	assert.True(t, NullOf[time.Time]().IsZero())
	assert.Equal(t, "", NullOf[string]())
	assert.Nil(t, NullOf[*int]())
}

func TestBooleanCodes(t *testing.T) {
	tests := []struct {
		b    Boolean
		code int8
	}{
		{True, TrueBooleanAsByte},
		{False, FalseBooleanAsByte},
		{NullBoolean, NullBooleanAsByte},
	}
	for _, tt := range tests {
		t.Run(tt.b.String(), func(t *testing.T) {
			if got := BooleanAsByte(tt.b); got != tt.code {
				t.Errorf("BooleanAsByte() = %v, want %v", got, tt.code)
			}
			if got := ByteAsBoolean(tt.code); got != tt.b {
				t.Errorf("ByteAsBoolean() = %v, want %v", got, tt.b)
			}
		})
	}
	// any other code reads as true
	assert.Equal(t, True, ByteAsBoolean(7))
	assert.Equal(t, True, BooleanOf(true))
	assert.Equal(t, False, BooleanOf(false))

	v, ok := NullBoolean.Bool()
	assert.False(t, v)
	assert.False(t, ok)
}

func TestNanos(t *testing.T) {
	assert.Equal(t, NullLong, Nanos(time.Time{}))
	assert.True(t, NanosToTime(NullLong).IsZero())

	ts := time.Date(2024, 3, 4, 5, 6, 7, 8, time.FixedZone("x", 3600))
	n := Nanos(ts)
	back := NanosToTime(n)
	assert.True(t, back.Equal(ts))
	assert.Equal(t, time.UTC, back.Location())
	assert.Equal(t, int64(0), Nanos(time.Unix(0, 0)))
}

func TestValueOfAndAs(t *testing.T) {
	ts := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		v    Value
		kind Kind
	}{
		{"boolean", True, ValueOf(True), KindBoolean},
		{"char", Char('x'), ValueOf(Char('x')), KindChar},
		{"byte", int8(-3), ValueOf(int8(-3)), KindByte},
		{"short", int16(300), ValueOf(int16(300)), KindShort},
		{"int", int32(70000), ValueOf(int32(70000)), KindInt},
		{"long", int64(1 << 40), ValueOf(int64(1 << 40)), KindLong},
		{"float", float32(3.5), ValueOf(float32(3.5)), KindFloat},
		{"double", 2.25, ValueOf(2.25), KindDouble},
		{"datetime", ts, ValueOf(ts), KindDateTime},
		{"object", "abc", ValueOf("abc"), KindObject},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.v.Kind())
			assert.Equal(t, tt.in, tt.v.Any())
			assert.False(t, tt.v.IsNull())
		})
	}

	f, err := ValueAs[float32](FloatValue(1.5))
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	_, err = ValueAs[int32](FloatValue(1.5))
	assert.ErrorIs(t, err, ErrValueType)

	d, err := ValueAs[float64](ObjectValue(nil))
	require.NoError(t, err)
	assert.Equal(t, NullDouble, d)

	s, err := ValueAs[string](ObjectValue("k"))
	require.NoError(t, err)
	assert.Equal(t, "k", s)
}

func TestNullValues(t *testing.T) {
	for k := KindObject; k <= maxKind; k++ {
		t.Run(k.String(), func(t *testing.T) {
			v := NullValue(k)
			assert.Equal(t, k, v.Kind())
			assert.True(t, v.IsNull())
			assert.Equal(t, "null", v.String())
		})
	}
	assert.True(t, Value{}.IsNull())
}

func TestValueEquality(t *testing.T) {
	assert.True(t, DoubleValue(3.5) == DoubleValue(3.5))
	assert.False(t, DoubleValue(3.5) == FloatValue(3.5))
	ts := time.Date(2023, 1, 1, 0, 0, 0, 0, time.FixedZone("y", -7200))
	assert.True(t, DateTimeValue(ts) == DateTimeValue(ts.UTC()))
	assert.True(t, ObjectValue("a") == ObjectValue("a"))
}

func TestValueCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"kind order", BooleanValue(True), ByteValue(0), -1},
		{"null boolean first", BooleanValue(NullBoolean), BooleanValue(False), -1},
		{"false before true", BooleanValue(False), BooleanValue(True), -1},
		{"bytes", ByteValue(-2), ByteValue(1), -1},
		{"null byte first", ByteValue(NullByte), ByteValue(math.MinInt8 + 1), -1},
		{"null char first", CharValue(NullChar), CharValue('a'), -1},
		{"floats", FloatValue(-1.5), FloatValue(0.25), -1},
		{"null double first", DoubleValue(NullDouble), DoubleValue(math.Inf(-1)), -1},
		{"doubles equal", DoubleValue(2), DoubleValue(2), 0},
		{"times", DateTimeNanosValue(10), DateTimeNanosValue(5), 1},
		{"null time first", DateTimeNanosValue(NullLong), DateTimeNanosValue(math.MinInt64 + 1), -1},
		{"strings", ObjectValue("a"), ObjectValue("b"), -1},
		{"nil object first", ObjectValue(nil), ObjectValue("a"), -1},
		{"ints", ObjectValue(3), ObjectValue(2), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("reverse Compare() = %v, want %v", got, -tt.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "true", BooleanValue(True).String())
	assert.Equal(t, "x", CharValue('x').String())
	assert.Equal(t, "3.5", FloatValue(3.5).String())
	assert.Equal(t, "1970-01-01T00:00:00.000000001Z", DateTimeNanosValue(1).String())
}

func TestValueCBORRoundTrip(t *testing.T) {
	values := []Value{
		BooleanValue(True),
		BooleanValue(NullBoolean),
		CharValue('z'),
		ByteValue(NullByte),
		ShortValue(-12),
		IntValue(99),
		LongValue(math.MaxInt64),
		FloatValue(3.5),
		DoubleValue(NullDouble),
		DateTimeNanosValue(1_700_000_000_000_000_000),
		ObjectValue("key"),
		ObjectValue(nil),
	}
	for _, v := range values {
		t.Run(v.Kind().String()+":"+v.String(), func(t *testing.T) {
			data, err := v.MarshalCBOR()
			require.NoError(t, err)
			var got Value
			require.NoError(t, got.UnmarshalCBOR(data))
			assert.True(t, got == v, "got %v want %v", got, v)
		})
	}
}

func TestValueCBORDeterministic(t *testing.T) {
	a, err := DoubleValue(1.25).MarshalCBOR()
	require.NoError(t, err)
	b, err := DoubleValue(1.25).MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestValueCBORRejectsBadKind(t *testing.T) {
	data, err := encMode.Marshal(valueWire{Kind: maxKind + 1})
	require.NoError(t, err)
	var v Value
	assert.ErrorIs(t, v.UnmarshalCBOR(data), ErrValueKind)

	data, err = encMode.Marshal(valueWire{Kind: KindObject, Ref: []any{1, 2}})
	require.NoError(t, err)
	assert.ErrorIs(t, v.UnmarshalCBOR(data), ErrValueType)
}
