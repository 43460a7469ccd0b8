package rowset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmapInsertContains(t *testing.T) {
	b := New()
	require.NoError(t, b.Insert(5))
	require.NoError(t, b.Insert(1<<40))
	require.NoError(t, b.Insert(5))

	assert.Equal(t, 2, b.Size())
	assert.True(t, b.Contains(5))
	assert.True(t, b.Contains(1<<40))
	assert.False(t, b.Contains(6))
	assert.False(t, b.Contains(NullRowKey))

	err := b.Insert(-3)
	assert.True(t, errors.Is(err, ErrNegativeRowKey))
}

func TestBitmapOrdering(t *testing.T) {
	b := Of(9, 2, 7, 3)
	assert.Equal(t, []RowKey{2, 3, 7, 9}, b.Keys())

	var rev []RowKey
	b.ForEachReverse(func(k RowKey) bool {
		rev = append(rev, k)
		return true
	})
	assert.Equal(t, []RowKey{9, 7, 3, 2}, rev)

	var firstTwo []RowKey
	b.ForEach(func(k RowKey) bool {
		firstTwo = append(firstTwo, k)
		return len(firstTwo) < 2
	})
	assert.Equal(t, []RowKey{2, 3}, firstTwo)
}

func TestOfPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { Of(1, -2) })
}

func TestFromRange(t *testing.T) {
	tests := []struct {
		name        string
		first, last RowKey
		want        []RowKey
		wantErr     error
	}{
		{"single", 4, 4, []RowKey{4}, nil},
		{"several", 0, 3, []RowKey{0, 1, 2, 3}, nil},
		{"inverted", 3, 1, nil, ErrRangeInverted},
		{"negative", -1, 1, nil, ErrNegativeRowKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromRange(tt.first, tt.last)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("FromRange() err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Keys())
		})
	}
}

func TestFromRangeAtTopOfKeySpace(t *testing.T) {
	b, err := FromRange(MaxRowKey-1, MaxRowKey)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Size())
	last, err := b.LastKey()
	require.NoError(t, err)
	assert.Equal(t, MaxRowKey, last)
}

func TestBitmapFirstLastEmpty(t *testing.T) {
	b := New()
	_, err := b.FirstKey()
	assert.ErrorIs(t, err, ErrEmptyRowSet)
	_, err = b.LastKey()
	assert.ErrorIs(t, err, ErrEmptyRowSet)

	b = Of(3, 11)
	first, err := b.FirstKey()
	require.NoError(t, err)
	assert.Equal(t, RowKey(3), first)
}

func TestBitmapCloneIsIndependent(t *testing.T) {
	a := Of(1, 2, 3)
	c := a.Clone()
	a.Remove(2)
	assert.True(t, c.Contains(2))
	assert.False(t, a.Equals(c))
	c.Remove(2)
	assert.True(t, a.Equals(c))
}

func TestBitmapString(t *testing.T) {
	tests := []struct {
		keys []RowKey
		want string
	}{
		{nil, "{}"},
		{[]RowKey{0}, "{0}"},
		{[]RowKey{0, 1, 2, 3, 7, 9, 10}, "{0-3,7,9-10}"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Of(tt.keys...).String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSequencePreservesCallerOrder(t *testing.T) {
	s, err := NewSequence(9, 1, 5)
	require.NoError(t, err)

	var got []RowKey
	s.ForEach(func(k RowKey) bool {
		got = append(got, k)
		return true
	})
	assert.Equal(t, []RowKey{9, 1, 5}, got)
	assert.Equal(t, 3, s.Size())
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(2))

	_, err = NewSequence(1, -4)
	assert.ErrorIs(t, err, ErrNegativeRowKey)
}
