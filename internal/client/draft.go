package client

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/Surendar2005/BookMyShow/internal/data/entity"
	"github.com/Surendar2005/BookMyShow/internal/dto/request"
	"github.com/Surendar2005/BookMyShow/internal/dto/response"
	"github.com/Surendar2005/BookMyShow/internal/seating"
)

// PaymentForm holds the raw payment inputs of the booking form. Only the
// fields matching the chosen method are ever sent to the service.
type PaymentForm struct {
	CardNumber     string
	CardName       string
	Expiry         string
	CVV            string
	UpiID          string
	WalletProvider string
	WalletNumber   string
}

// Draft is the in-memory state of one booking flow for one movie: the seat
// grid, the current selection, contact details and payment inputs. All
// mutation is local; nothing reaches the service before Submit.
type Draft struct {
	Movie         entity.Movie
	Layout        seating.Layout
	Showtime      string
	Contact       entity.ContactDetails
	PaymentMethod entity.PaymentMethod
	Payment       PaymentForm

	selection seating.Selection
}

// NewDraft starts a booking flow for a movie. The seat grid is regenerated
// here on every call; the first showtime and card payment are preselected,
// mirroring the booking page defaults.
func NewDraft(movie entity.Movie, rng *rand.Rand) *Draft {
	draft := &Draft{
		Movie:         movie,
		Layout:        seating.NewLayout(rng),
		PaymentMethod: entity.PaymentMethodCard,
	}

	if len(movie.Showtimes) > 0 {
		draft.Showtime = movie.Showtimes[0]
	}

	return draft
}

// ToggleSeat flips the selection state of a seat. Unknown and unavailable
// seats are rejected before the selection is touched.
func (d *Draft) ToggleSeat(id string) error {
	seat, ok := d.Layout.Seat(id)
	if !ok {
		return fmt.Errorf("unknown seat %s", id)
	}
	if !seat.Available {
		return fmt.Errorf("seat %s is not available", id)
	}

	d.selection.Toggle(id)
	return nil
}

// SelectedSeats returns the selected seat identifiers in selection order
func (d *Draft) SelectedSeats() []string {
	return d.selection.IDs()
}

// Total computes the order total from the current selection
func (d *Draft) Total() float64 {
	return d.Layout.ComputeTotal(d.selection.IDs(), d.Movie.Price)
}

// Validate runs the pre-submission checks in form order. The first failing
// check aborts with its user-facing message.
func (d *Draft) Validate() error {
	if d.selection.Count() == 0 {
		return fmt.Errorf("Please select at least one seat")
	}
	if d.Showtime == "" {
		return fmt.Errorf("Please select a showtime")
	}
	if d.Contact.Name == "" || d.Contact.Email == "" || d.Contact.Phone == "" {
		return fmt.Errorf("Please fill in all booking details")
	}

	switch d.PaymentMethod {
	case entity.PaymentMethodCard:
		if isBlank(d.Payment.CardNumber) || isBlank(d.Payment.CardName) ||
			isBlank(d.Payment.Expiry) || isBlank(d.Payment.CVV) {
			return fmt.Errorf("Please enter complete card details")
		}
	case entity.PaymentMethodUPI:
		if isBlank(d.Payment.UpiID) {
			return fmt.Errorf("Please enter your UPI ID")
		}
	case entity.PaymentMethodWallet:
		if isBlank(d.Payment.WalletProvider) || isBlank(d.Payment.WalletNumber) {
			return fmt.Errorf("Please enter your wallet provider and number")
		}
	default:
		return fmt.Errorf("Please choose a payment method")
	}

	return nil
}

// Request builds the submission payload. Only the payment fields belonging
// to the chosen method are included.
func (d *Draft) Request() *request.CreateBookingRequest {
	req := &request.CreateBookingRequest{
		MovieID:       d.Movie.ID,
		MovieTitle:    d.Movie.Title,
		Showtime:      d.Showtime,
		Seats:         d.selection.IDs(),
		Total:         d.Total(),
		User:          &d.Contact,
		PaymentMethod: string(d.PaymentMethod),
	}

	switch d.PaymentMethod {
	case entity.PaymentMethodCard:
		req.PaymentDetails.CardNumber = d.Payment.CardNumber
	case entity.PaymentMethodUPI:
		req.PaymentDetails.UpiID = d.Payment.UpiID
	case entity.PaymentMethodWallet:
		req.PaymentDetails.WalletProvider = d.Payment.WalletProvider
		req.PaymentDetails.WalletNumber = d.Payment.WalletNumber
	}

	return req
}

// Submit validates the draft and sends it to the booking service
func (d *Draft) Submit(ctx context.Context, api *Client) (*response.CreateBookingResponse, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return api.CreateBooking(ctx, d.Request())
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
