package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestAddLineMergesSameProductAndName(t *testing.T) {
	cart := &Cart{}

	cart.AddLine("IC1", "Spanish Latte (16oz)", price(89))
	cart.AddLine("IC1", "Spanish Latte (16oz)", price(89))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddLineKeepsDifferentCustomizationsDistinct(t *testing.T) {
	cart := &Cart{}

	cart.AddLine("IC1", "Spanish Latte (16oz)", price(89))
	cart.AddLine("IC1", "Spanish Latte (22oz)", price(109))

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestTotalIsDerivedFromLines(t *testing.T) {
	cart := &Cart{}
	assert.True(t, cart.Total().IsZero())

	cart.AddLine("IC1", "Spanish Latte (16oz)", price(89))
	cart.AddLine("IC1", "Spanish Latte (16oz)", price(89))
	cart.AddLine("WF1", "Classic Waffle", price(55))

	assert.True(t, cart.Total().Equal(price(233)))

	require.NoError(t, cart.RemoveLine(1))
	assert.True(t, cart.Total().Equal(price(178)))

	cart.DecrementLine("IC1")
	assert.True(t, cart.Total().Equal(price(89)))
}

func TestTotalMatchesRecomputationAfterMixedOps(t *testing.T) {
	cart := &Cart{}

	cart.AddLine("A", "A", price(10))
	cart.AddLine("B", "B", price(20))
	cart.AddLine("A", "A", price(10))
	cart.DecrementLine("B")
	cart.AddLine("C", "C", price(5))
	_ = cart.RemoveLine(7) // out of range, no-op on the lines

	want := decimal.Zero
	for _, l := range cart.Items {
		want = want.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	assert.True(t, cart.Total().Equal(want))
}

func TestRemoveLineInvalidIndex(t *testing.T) {
	cart := &Cart{}
	cart.AddLine("A", "A", price(10))

	assert.ErrorIs(t, cart.RemoveLine(-1), ErrInvalidIndex)
	assert.ErrorIs(t, cart.RemoveLine(1), ErrInvalidIndex)
	require.Len(t, cart.Items, 1)

	require.NoError(t, cart.RemoveLine(0))
	assert.True(t, cart.IsEmpty())
}

func TestDecrementLineRemovesAtZero(t *testing.T) {
	cart := &Cart{}
	cart.AddLine("A", "A", price(10))
	cart.AddLine("A", "A", price(10))

	cart.DecrementLine("A")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart.DecrementLine("A")
	assert.True(t, cart.IsEmpty())

	// unknown product is a no-op
	cart.DecrementLine("Z")
	assert.True(t, cart.IsEmpty())
}

func TestClear(t *testing.T) {
	cart := &Cart{}
	cart.AddLine("A", "A", price(10))
	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().IsZero())
}

func TestLegacyPayloadRendering(t *testing.T) {
	cart := &Cart{}
	cart.AddLine("IC1", "Spanish Latte (16oz)", price(89))
	cart.AddLine("IC1", "Spanish Latte (16oz)", price(89))
	cart.AddLine("WF1", "Classic Waffle", price(55))

	assert.Equal(t, "IC1, WF1", cart.JoinedProductIDs())
	assert.Equal(t, "Spanish Latte (16oz) x2, Classic Waffle x1", cart.Summary())
}
