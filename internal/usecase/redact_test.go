package usecase

import (
	"testing"

	"github.com/Surendar2005/BookMyShow/internal/data/entity"
	"github.com/Surendar2005/BookMyShow/internal/dto/request"

	"github.com/stretchr/testify/assert"
)

func TestRedactPayment_Card(t *testing.T) {
	summary := redactPayment(entity.PaymentMethodCard, request.PaymentInput{
		CardNumber: "4111 1111 1111 1234",
		CardName:   "A Person",
		Expiry:     "12/26",
		CVV:        "123",
	})

	// Only the last four digits survive; CVV, expiry and the full number
	// are discarded
	assert.Equal(t, entity.PaymentSummary{Last4Digits: "1234"}, summary)
}

func TestRedactPayment_CardWithoutNumber(t *testing.T) {
	summary := redactPayment(entity.PaymentMethodCard, request.PaymentInput{})
	assert.Equal(t, entity.PaymentSummary{}, summary)
}

func TestRedactPayment_UPI(t *testing.T) {
	summary := redactPayment(entity.PaymentMethodUPI, request.PaymentInput{
		UpiID: "a@upi",
	})

	assert.Equal(t, entity.PaymentSummary{UpiID: "a@upi"}, summary)
}

func TestRedactPayment_Wallet(t *testing.T) {
	tests := []struct {
		name  string
		input request.PaymentInput
		want  entity.PaymentSummary
	}{
		{
			name:  "long number is masked down to last four",
			input: request.PaymentInput{WalletProvider: "paytm", WalletNumber: "9876543210"},
			want:  entity.PaymentSummary{WalletProvider: "paytm", WalletNumber: "****3210"},
		},
		{
			name:  "whitespace is stripped before masking",
			input: request.PaymentInput{WalletProvider: "paytm", WalletNumber: "98 7654 3210"},
			want:  entity.PaymentSummary{WalletProvider: "paytm", WalletNumber: "****3210"},
		},
		{
			name:  "short number becomes the bare mask",
			input: request.PaymentInput{WalletProvider: "paytm", WalletNumber: "12"},
			want:  entity.PaymentSummary{WalletProvider: "paytm", WalletNumber: "****"},
		},
		{
			name:  "exactly four digits becomes the bare mask",
			input: request.PaymentInput{WalletNumber: "1234"},
			want:  entity.PaymentSummary{WalletNumber: "****"},
		},
		{
			name:  "provider without number keeps provider only",
			input: request.PaymentInput{WalletProvider: "phonepe"},
			want:  entity.PaymentSummary{WalletProvider: "phonepe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redactPayment(entity.PaymentMethodWallet, tt.input))
		})
	}
}
