package entity

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// ContactDetails is the customer contact block embedded in a booking
type ContactDetails struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// PaymentSummary is the redacted payment information that gets persisted.
// It never carries a full card number, CVV, expiry, or full wallet number.
type PaymentSummary struct {
	Last4Digits    string `json:"last4Digits,omitempty"`
	UpiID          string `json:"upiId,omitempty"`
	WalletProvider string `json:"walletProvider,omitempty"`
	WalletNumber   string `json:"walletNumber,omitempty"`
}

// Booking is the persisted record of a completed seat purchase. Bookings are
// insert-only; no endpoint mutates them after creation.
type Booking struct {
	Base
	MovieID        int            `db:"movie_id"`
	MovieTitle     string         `db:"movie_title"`
	Showtime       string         `db:"showtime"`
	Seats          []string       `db:"seats"`
	Total          float64        `db:"total"`
	User           ContactDetails `db:"-"`
	PaymentMethod  PaymentMethod  `db:"payment_method"`
	PaymentDetails PaymentSummary `db:"payment_details"`
	Status         BookingStatus  `db:"status"`
}
