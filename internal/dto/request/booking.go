package request

import (
	"github.com/Surendar2005/BookMyShow/internal/data/entity"
)

// PaymentInput carries the raw, method-specific payment fields as submitted
// by the client. Only the redacted form ever reaches storage.
type PaymentInput struct {
	CardNumber     string `json:"cardNumber,omitempty"`
	CardName       string `json:"cardName,omitempty"`
	Expiry         string `json:"expiry,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	UpiID          string `json:"upiId,omitempty"`
	WalletProvider string `json:"walletProvider,omitempty"`
	WalletNumber   string `json:"walletNumber,omitempty"`
}

type CreateBookingRequest struct {
	MovieID        int                     `json:"movieId"`
	MovieTitle     string                  `json:"movieTitle"`
	Showtime       string                  `json:"showtime"`
	Seats          []string                `json:"seats"`
	Total          float64                 `json:"total"`
	User           *entity.ContactDetails  `json:"user"`
	PaymentMethod  string                  `json:"paymentMethod" validate:"omitempty,oneof=card upi wallet"`
	PaymentDetails PaymentInput            `json:"paymentDetails"`
}
