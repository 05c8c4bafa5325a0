// Package seating holds the client-side seat grid simulation used by the
// booking flow. The layout is a local stand-in for real seat inventory: it is
// regenerated on every construction and never shared or persisted.
package seating

import (
	"math/rand"
	"strconv"
	"time"
)

const (
	// SeatsPerRow is the fixed width of every row
	SeatsPerRow = 12

	// PremiumSurcharge is added on top of the movie's base price for
	// premium seats
	PremiumSurcharge = 100

	// Seat numbers in [premiumFrom, premiumTo] form the premium band
	premiumFrom = 5
	premiumTo   = 8

	// availableChance is the independent per-seat availability probability
	availableChance = 0.7
)

// RowLabels are the fixed rows of the simulated hall
var RowLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

type Category string

const (
	CategoryRegular Category = "regular"
	CategoryPremium Category = "premium"
)

type Seat struct {
	ID        string
	Row       string
	Number    int
	Category  Category
	Available bool
}

// Layout is one generated seat grid
type Layout struct {
	rows map[string][]Seat
	byID map[string]Seat
}

// NewLayout generates a fresh grid. Pass a seeded *rand.Rand for
// reproducible layouts; nil falls back to a time-seeded source.
func NewLayout(rng *rand.Rand) Layout {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rows := make(map[string][]Seat, len(RowLabels))
	byID := make(map[string]Seat, len(RowLabels)*SeatsPerRow)

	for _, row := range RowLabels {
		seats := make([]Seat, SeatsPerRow)
		for i := 0; i < SeatsPerRow; i++ {
			number := i + 1
			seat := Seat{
				ID:        row + strconv.Itoa(number),
				Row:       row,
				Number:    number,
				Category:  CategoryFor(number),
				Available: rng.Float64() < availableChance,
			}
			seats[i] = seat
			byID[seat.ID] = seat
		}
		rows[row] = seats
	}

	return Layout{rows: rows, byID: byID}
}

// Row returns the seats of one row in seat-number order
func (l Layout) Row(label string) []Seat {
	return l.rows[label]
}

// Seat looks a seat up by its identifier, e.g. "C7"
func (l Layout) Seat(id string) (Seat, bool) {
	seat, ok := l.byID[id]
	return seat, ok
}

// ComputeTotal sums PriceOf over the selected seat identifiers. Unknown
// identifiers contribute nothing; an empty selection totals zero.
func (l Layout) ComputeTotal(selected []string, basePrice float64) float64 {
	var total float64
	for _, id := range selected {
		if seat, ok := l.byID[id]; ok {
			total += PriceOf(seat, basePrice)
		}
	}
	return total
}

// CategoryFor maps a seat number to its pricing tier
func CategoryFor(number int) Category {
	if number >= premiumFrom && number <= premiumTo {
		return CategoryPremium
	}
	return CategoryRegular
}

// PriceOf returns the per-seat price for the given base price
func PriceOf(seat Seat, basePrice float64) float64 {
	if seat.Category == CategoryPremium {
		return basePrice + PremiumSurcharge
	}
	return basePrice
}
