package tabletesting

import (
	"fmt"
	"time"

	"github.com/forestrie/go-livetable/rowset"
	"github.com/forestrie/go-livetable/types"
)

// genesis anchors generated timestamps so they are stable for a given seed.
var genesis = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// RowKeys returns n distinct ascending keys below limit.
func (c *TestContext) RowKeys(n int, limit rowset.RowKey) []rowset.RowKey {
	if rowset.RowKey(n) > limit {
		c.T.Fatalf("cannot draw %d distinct keys below %d", n, limit)
	}
	b := c.RowSet(n, limit)
	return b.Keys()
}

// RowSet returns a set of n distinct keys below limit.
func (c *TestContext) RowSet(n int, limit rowset.RowKey) *rowset.Bitmap {
	b := rowset.New()
	for b.Size() < n {
		if err := b.Insert(c.Rand.Int64N(limit)); err != nil {
			c.T.Fatalf("insert: %v", err)
		}
	}
	return b
}

func (c *TestContext) Doubles(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = c.Rand.NormFloat64() * 1000
	}
	return out
}

func (c *TestContext) Floats(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(c.Rand.NormFloat64() * 100)
	}
	return out
}

func (c *TestContext) Longs(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = c.Rand.Int64() - c.Rand.Int64()
	}
	return out
}

// Booleans draws from true, false and null alike.
func (c *TestContext) Booleans(n int) []types.Boolean {
	choices := []types.Boolean{types.True, types.False, types.NullBoolean}
	out := make([]types.Boolean, n)
	for i := range out {
		out[i] = choices[c.Rand.IntN(len(choices))]
	}
	return out
}

// DateTimes draws timestamps within a year of a fixed instant. Roughly one in
// ten is the null timestamp.
func (c *TestContext) DateTimes(n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		if c.Rand.IntN(10) == 0 {
			continue
		}
		out[i] = genesis.Add(time.Duration(c.Rand.Int64N(int64(365 * 24 * time.Hour))))
	}
	return out
}

func (c *TestContext) Strings(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d", c.T.Name(), c.Rand.IntN(n+1))
	}
	return out
}
