package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bidon() Item {
	return Item{Code: "P1", Name: "Bidón 20L", Price: decimal.RequireFromString("12.50")}
}

func gaseosa() Item {
	return Item{Code: "P2", Name: "Gaseosa 3L", Price: decimal.RequireFromString("8.00")}
}

func TestAddMergesByCode(t *testing.T) {
	c := New()
	for i := 0; i < 3; i++ {
		c.Add(bidon())
	}

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Qty)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("37.50")))
}

func TestTotalConsistencyAcrossMutations(t *testing.T) {
	c := New()

	check := func() {
		t.Helper()
		sum := decimal.Zero
		for _, line := range c.Lines() {
			sum = sum.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
		}
		assert.True(t, c.Total().Equal(sum), "total %s != recomputed %s", c.Total(), sum)
	}

	c.Add(bidon())
	check()
	c.Add(gaseosa())
	check()
	c.AdjustQuantity(0, 4)
	check()
	c.AdjustQuantity(1, -1)
	check()
	c.Remove(0)
	check()
	c.Clear()
	check()
}

func TestAdjustQuantityDeletesAtZero(t *testing.T) {
	c := New()
	c.Add(bidon())
	c.Add(gaseosa())
	require.Equal(t, 2, c.Len())

	c.AdjustQuantity(0, -1)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "P2", lines[0].Code)
}

func TestOutOfRangeOperationsAreNoOps(t *testing.T) {
	c := New()
	c.Add(bidon())

	c.AdjustQuantity(5, 1)
	c.AdjustQuantity(-1, 1)
	c.Remove(5)
	c.Remove(-1)
	if _, ok := c.LineAt(7); ok {
		t.Fatalf("expected miss for out-of-range index")
	}

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Lines()[0].Qty)
}

func TestLineAtAnswersWouldDeleteQuery(t *testing.T) {
	c := New()
	c.Add(bidon())

	line, ok := c.LineAt(0)
	require.True(t, ok)
	assert.Equal(t, "Bidón 20L", line.Name)

	c.Remove(0)
	assert.Equal(t, 0, c.Len())
}

func TestCountSumsUnits(t *testing.T) {
	c := New()
	c.Add(bidon())
	c.Add(bidon())
	c.Add(gaseosa())
	assert.Equal(t, 3, c.Count())
}

func TestDrainEmptiesAtomically(t *testing.T) {
	c := New()
	c.Add(bidon())
	c.Add(bidon())

	lines, total, ok := c.Drain()
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.True(t, total.Equal(decimal.RequireFromString("25.00")))
	assert.Equal(t, 0, c.Len())

	_, _, ok = c.Drain()
	assert.False(t, ok, "drain on empty cart must report false")
}
