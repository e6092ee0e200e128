//go:build unit

package builder

import (
	"staybook/internal/domain/booking"
)

type PaymentBuilder struct {
	CardholderName string
	CardNumber     string
	Expiry         string
	CVV            string
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		CardholderName: "Aditi Sharma",
		CardNumber:     "4111 1111 1111 1111",
		Expiry:         "09/27",
		CVV:            "123",
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) Build() booking.PaymentDetails {
	return booking.PaymentDetails{
		CardholderName: b.CardholderName,
		CardNumber:     b.CardNumber,
		Expiry:         b.Expiry,
		CVV:            b.CVV,
	}
}

func (b *PaymentBuilder) WithCardholder(name string) *PaymentBuilder {
	b.CardholderName = name
	return b
}

func (b *PaymentBuilder) WithCardNumber(number string) *PaymentBuilder {
	b.CardNumber = number
	return b
}

func (b *PaymentBuilder) WithExpiry(expiry string) *PaymentBuilder {
	b.Expiry = expiry
	return b
}

func (b *PaymentBuilder) WithCVV(cvv string) *PaymentBuilder {
	b.CVV = cvv
	return b
}
