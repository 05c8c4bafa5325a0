package seating

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout_Shape(t *testing.T) {
	layout := NewLayout(rand.New(rand.NewSource(1)))

	for _, row := range RowLabels {
		seats := layout.Row(row)
		require.Len(t, seats, SeatsPerRow, "row %s", row)

		for i, seat := range seats {
			number := i + 1
			assert.Equal(t, row+strconv.Itoa(number), seat.ID)
			assert.Equal(t, row, seat.Row)
			assert.Equal(t, number, seat.Number)

			if number >= 5 && number <= 8 {
				assert.Equal(t, CategoryPremium, seat.Category, "seat %s", seat.ID)
			} else {
				assert.Equal(t, CategoryRegular, seat.Category, "seat %s", seat.ID)
			}
		}
	}
}

func TestNewLayout_SeededIsDeterministic(t *testing.T) {
	a := NewLayout(rand.New(rand.NewSource(42)))
	b := NewLayout(rand.New(rand.NewSource(42)))

	for _, row := range RowLabels {
		assert.Equal(t, a.Row(row), b.Row(row))
	}
}

func TestLayout_SeatLookup(t *testing.T) {
	layout := NewLayout(rand.New(rand.NewSource(1)))

	seat, ok := layout.Seat("C7")
	require.True(t, ok)
	assert.Equal(t, "C", seat.Row)
	assert.Equal(t, 7, seat.Number)
	assert.Equal(t, CategoryPremium, seat.Category)

	_, ok = layout.Seat("Z99")
	assert.False(t, ok)
}

func TestPriceOf(t *testing.T) {
	base := 300.0

	regular := Seat{ID: "A1", Category: CategoryRegular}
	premium := Seat{ID: "A5", Category: CategoryPremium}

	assert.Equal(t, base, PriceOf(regular, base))
	assert.Equal(t, base+PremiumSurcharge, PriceOf(premium, base))
}

func TestComputeTotal(t *testing.T) {
	layout := NewLayout(rand.New(rand.NewSource(1)))
	base := 250.0

	t.Run("empty selection totals zero", func(t *testing.T) {
		assert.Zero(t, layout.ComputeTotal(nil, base))
	})

	t.Run("total is the sum of per-seat prices", func(t *testing.T) {
		selected := []string{"A1", "A5", "B8", "J12"}

		var want float64
		for _, id := range selected {
			seat, ok := layout.Seat(id)
			require.True(t, ok)
			want += PriceOf(seat, base)
		}

		assert.Equal(t, want, layout.ComputeTotal(selected, base))
		// A1 and J12 regular, A5 and B8 premium
		assert.Equal(t, 4*base+2*PremiumSurcharge, layout.ComputeTotal(selected, base))
	})
}

func TestSelection_Toggle(t *testing.T) {
	var sel Selection

	sel.Toggle("A1")
	sel.Toggle("B2")
	sel.Toggle("C3")
	assert.Equal(t, []string{"A1", "B2", "C3"}, sel.IDs())
	assert.True(t, sel.Contains("B2"))

	// Toggling again removes, order of the rest is preserved
	sel.Toggle("B2")
	assert.Equal(t, []string{"A1", "C3"}, sel.IDs())
	assert.False(t, sel.Contains("B2"))
	assert.Equal(t, 2, sel.Count())
}

func TestSelection_DoubleToggleRestoresSelection(t *testing.T) {
	var sel Selection
	sel.Toggle("A1")
	sel.Toggle("C3")

	before := sel.IDs()

	sel.Toggle("E5")
	sel.Toggle("E5")

	assert.Equal(t, before, sel.IDs())
}
