//go:build unit

package booking_test

import (
	"testing"

	"staybook/internal/domain/booking"
	"staybook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentValidate(t *testing.T) {
	t.Run("valid details pass", func(t *testing.T) {
		errs := builder.NewPaymentBuilder().Build().Validate()
		assert.Empty(t, errs)
	})

	t.Run("card number may carry spaces and dashes", func(t *testing.T) {
		for _, number := range []string{
			"4111111111111111",
			"4111 1111 1111 1111",
			"4111-1111-1111-1111",
		} {
			errs := builder.NewPaymentBuilder().WithCardNumber(number).Build().Validate()
			assert.Empty(t, errs, "card number %q should validate", number)
		}
	})

	tests := []struct {
		name      string
		mutate    func(*builder.PaymentBuilder)
		wantField string
	}{
		{
			name:      "blank cardholder",
			mutate:    func(b *builder.PaymentBuilder) { b.WithCardholder("   ") },
			wantField: "cardholder",
		},
		{
			name:      "15-digit card number",
			mutate:    func(b *builder.PaymentBuilder) { b.WithCardNumber("4111 1111 1111 111") },
			wantField: "card_number",
		},
		{
			name:      "17-digit card number",
			mutate:    func(b *builder.PaymentBuilder) { b.WithCardNumber("41111111111111111") },
			wantField: "card_number",
		},
		{
			name:      "expiry without slash",
			mutate:    func(b *builder.PaymentBuilder) { b.WithExpiry("0927") },
			wantField: "expiry",
		},
		{
			name:      "expiry month 00",
			mutate:    func(b *builder.PaymentBuilder) { b.WithExpiry("00/27") },
			wantField: "expiry",
		},
		{
			name:      "expiry month 13",
			mutate:    func(b *builder.PaymentBuilder) { b.WithExpiry("13/27") },
			wantField: "expiry",
		},
		{
			name:      "cvv too short",
			mutate:    func(b *builder.PaymentBuilder) { b.WithCVV("12") },
			wantField: "cvv",
		},
		{
			name:      "cvv non-numeric",
			mutate:    func(b *builder.PaymentBuilder) { b.WithCVV("12a") },
			wantField: "cvv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := builder.NewPaymentBuilder().With(tt.mutate).Build().Validate()

			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}

	t.Run("all failures are reported together", func(t *testing.T) {
		errs := booking.PaymentDetails{}.Validate()
		assert.Len(t, errs, 4)
	})

	t.Run("implements error with itemized message", func(t *testing.T) {
		var err error = booking.PaymentDetails{}.Validate()
		assert.Contains(t, err.Error(), "cardholder")
		assert.Contains(t, err.Error(), "card_number")
	})
}
