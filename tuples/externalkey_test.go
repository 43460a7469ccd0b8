package tuples

import (
	"testing"

	"github.com/forestrie/go-livetable/column"
	"github.com/forestrie/go-livetable/rowset"
	"github.com/forestrie/go-livetable/types"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalKeyEquality(t *testing.T) {
	tc := newTestContext(t)
	rows := rowset.Of(0, 1, 2, 3)
	src := NewSource2(
		Object[string](newStore(t, tc, rows, []string{"x", "x", "y", "x"})),
		Of[int32](newStore(t, tc, rows, []int32{1, 1, 1, 2})),
	)

	keys := make([]ExternalKey, 0, rows.Size())
	for _, k := range rows.Keys() {
		tuple, err := src.MakeTuple(k)
		require.NoError(t, err)
		keys = append(keys, src.ExportExternalKey(tuple))
	}

	assert.Equal(t, keys[0], keys[1])
	assert.NotEqual(t, keys[0], keys[2])
	assert.NotEqual(t, keys[0], keys[3])

	// usable as a map key
	seen := map[ExternalKey]int{}
	for _, k := range keys {
		seen[k]++
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 2, seen[keys[0]])
}

func TestExternalKeyCompare(t *testing.T) {
	key := func(values ...types.Value) ExternalKey {
		k, err := NewExternalKey(values...)
		require.NoError(t, err)
		return k
	}
	tests := []struct {
		name string
		a, b ExternalKey
		want int
	}{
		{
			name: "equal",
			a:    key(types.ObjectValue("a"), types.IntValue(1)),
			b:    key(types.ObjectValue("a"), types.IntValue(1)),
			want: 0,
		},
		{
			name: "first field decides",
			a:    key(types.ObjectValue("a"), types.IntValue(9)),
			b:    key(types.ObjectValue("b"), types.IntValue(1)),
			want: -1,
		},
		{
			name: "second field decides",
			a:    key(types.ObjectValue("a"), types.IntValue(2)),
			b:    key(types.ObjectValue("a"), types.IntValue(1)),
			want: 1,
		},
		{
			name: "null sorts first",
			a:    key(types.BooleanValue(types.NullBoolean), types.DoubleValue(1)),
			b:    key(types.BooleanValue(types.False), types.DoubleValue(1)),
			want: -1,
		},
		{
			name: "prefix sorts first",
			a:    key(types.LongValue(1), types.LongValue(2)),
			b:    key(types.LongValue(1), types.LongValue(2), types.LongValue(0)),
			want: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("reversed Compare() = %v, want %v", got, -tt.want)
			}
		})
	}
}

func TestNewExternalKeyArity(t *testing.T) {
	_, err := NewExternalKey(types.LongValue(1))
	assert.ErrorIs(t, err, ErrArity)
	_, err = NewExternalKey(types.LongValue(1), types.LongValue(2), types.LongValue(3), types.LongValue(4))
	assert.ErrorIs(t, err, ErrArity)

	k, err := NewExternalKey(types.LongValue(1), types.ObjectValue("two"))
	require.NoError(t, err)
	assert.Equal(t, 2, k.Len())
	assert.Equal(t, "[1, two]", k.String())
	_, err = k.Field(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestExternalKeyCBOR(t *testing.T) {
	tc := newTestContext(t)
	rows := rowset.Of(8)
	src := NewSource3(
		Boolean(newStore(t, tc, rows, []types.Boolean{types.NullBoolean})),
		Object[string](newStore(t, tc, rows, []string{"eight"})),
		Of[float64](newStore(t, tc, rows, []float64{8.5})),
	)
	tuple, err := src.MakeTuple(8)
	require.NoError(t, err)
	key := src.ExportExternalKey(tuple)

	data, err := key.Bytes()
	require.NoError(t, err)

	var decoded ExternalKey
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	assert.Equal(t, key, decoded)

	// deterministic: equal keys encode to equal bytes
	again, err := src.ExportExternalKey(tuple).Bytes()
	require.NoError(t, err)
	assert.Equal(t, data, again)

	short, err := cbor.Marshal([]types.Value{types.LongValue(1)})
	require.NoError(t, err)
	assert.ErrorIs(t, cbor.Unmarshal(short, &decoded), ErrArity)
}

func TestExternalKeyFromStoreRoundTrip(t *testing.T) {
	tc := newTestContext(t)
	rows := rowset.Of(1, 2)
	src := NewSource2(
		Of[int64](newStore(t, tc, rows, []int64{10, 20})),
		Object[string](newStore(t, tc, rows, []string{"ten", "twenty"})),
	)

	index := map[ExternalKey]rowset.RowKey{}
	for _, k := range rows.Keys() {
		tuple, err := src.MakeTuple(k)
		require.NoError(t, err)
		index[src.ExportExternalKey(tuple)] = k
	}

	lookup, err := src.MakeTupleFromValues(types.LongValue(20), types.ObjectValue("twenty"))
	require.NoError(t, err)
	assert.Equal(t, rowset.RowKey(2), index[src.ExportExternalKey(lookup)])

	dest := column.New[string](column.WithUpdateGraph(tc.Graph))
	require.NoError(t, src.ExportField(lookup, 1, dest, 0))
	got, err := dest.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "twenty", got)
}
