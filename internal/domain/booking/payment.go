package booking

import (
	"regexp"
	"strings"
)

var (
	expiryPattern   = regexp.MustCompile(`^(\d{2})/\d{2}$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// PaymentDetails is transient card data. It lives only while the flow is
// awaiting payment and is discarded on cancel or success; it is forwarded
// to the remote API, never charged locally.
type PaymentDetails struct {
	CardholderName string `json:"cardholder"`
	CardNumber     string `json:"card_number"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
}

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "payment details invalid"
	}
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the card fields locally. All failures are reported
// together so the form can surface an itemized message.
func (p PaymentDetails) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(p.CardholderName) == "" {
		errs = append(errs, FieldError{Field: "cardholder", Message: "cardholder name is required"})
	}

	digits := nonDigitPattern.ReplaceAllString(p.CardNumber, "")
	if len(digits) != 16 {
		errs = append(errs, FieldError{Field: "card_number", Message: "card number must be 16 digits"})
	}

	if m := expiryPattern.FindStringSubmatch(p.Expiry); m == nil {
		errs = append(errs, FieldError{Field: "expiry", Message: "expiry must be MM/YY"})
	} else if m[1] < "01" || m[1] > "12" {
		errs = append(errs, FieldError{Field: "expiry", Message: "expiry month must be 01-12"})
	}

	if len(p.CVV) != 3 || nonDigitPattern.MatchString(p.CVV) {
		errs = append(errs, FieldError{Field: "cvv", Message: "cvv must be 3 digits"})
	}

	return errs
}
