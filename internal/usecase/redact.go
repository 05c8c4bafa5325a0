package usecase

import (
	"strings"

	"github.com/Surendar2005/BookMyShow/internal/data/entity"
	"github.com/Surendar2005/BookMyShow/internal/dto/request"
)

// redactPayment strips the submitted payment input down to the safe form
// that may be persisted. Full card numbers, CVV and expiry never survive
// this call.
func redactPayment(method entity.PaymentMethod, input request.PaymentInput) entity.PaymentSummary {
	var summary entity.PaymentSummary

	switch method {
	case entity.PaymentMethodCard:
		if input.CardNumber != "" {
			cardNumber := stripSpaces(input.CardNumber)
			summary.Last4Digits = lastN(cardNumber, 4)
		}

	case entity.PaymentMethodUPI:
		// UPI handles are not treated as sensitive
		summary.UpiID = input.UpiID

	case entity.PaymentMethodWallet:
		summary.WalletProvider = input.WalletProvider
		if input.WalletNumber != "" {
			walletNumber := stripSpaces(input.WalletNumber)
			if len(walletNumber) > 4 {
				summary.WalletNumber = "****" + lastN(walletNumber, 4)
			} else {
				summary.WalletNumber = "****"
			}
		}
	}

	return summary
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
