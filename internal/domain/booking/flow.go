package booking

import (
	"errors"
	"time"

	"staybook/internal/domain/hotel"
)

type State string

const (
	StateBrowsing        State = "browsing"
	StateAwaitingPayment State = "awaiting_payment"
	StateSubmitting      State = "submitting"
	StateConfirmed       State = "confirmed"
	StateFailed          State = "failed"
)

func (s State) String() string {
	return string(s)
}

var (
	ErrNotAwaitingPayment   = errors.New("no payment is awaited in the current state")
	ErrSubmissionInProgress = errors.New("a submission is already in flight")
	ErrFlowConfirmed        = errors.New("booking flow already confirmed")
	ErrInvalidTransition    = errors.New("invalid booking flow transition")
)

// Confirmation is the terminal result of a successful submission, including
// the one-time navigation the UI performs after a fixed delay.
type Confirmation struct {
	Message       string        `json:"message"`
	BookingID     int64         `json:"booking_id"`
	TransactionID int64         `json:"transaction_id"`
	RedirectTo    string        `json:"redirect_to"`
	RedirectAfter time.Duration `json:"-"`
}

// Flow is the booking state machine:
//
//	Browsing -> AwaitingPayment -> Submitting -> Confirmed (terminal)
//	                     ^              |
//	                     |              v
//	                  (retry)        Failed
//	AwaitingPayment -> Browsing (cancel, payment discarded)
//
// It is not safe for concurrent use; the owning usecase serializes access.
type Flow struct {
	state    State
	hotel    hotel.Snapshot
	roomType string
	guests   int
	quote    Quote
	payment  *PaymentDetails
	lastErr  string
}

func NewFlow() *Flow {
	return &Flow{state: StateBrowsing}
}

func (f *Flow) State() State          { return f.state }
func (f *Flow) Hotel() hotel.Snapshot { return f.hotel }
func (f *Flow) RoomType() string      { return f.roomType }
func (f *Flow) Guests() int           { return f.guests }
func (f *Flow) Quote() Quote          { return f.quote }
func (f *Flow) LastError() string     { return f.lastErr }

// Payment returns the transient details held while awaiting payment, nil
// otherwise.
func (f *Flow) Payment() *PaymentDetails { return f.payment }

// Begin prices the stay and moves Browsing -> AwaitingPayment.
func (f *Flow) Begin(snapshot hotel.Snapshot, checkIn, checkOut time.Time, roomType string, guests int) error {
	if f.state == StateConfirmed {
		return ErrFlowConfirmed
	}
	if f.state != StateBrowsing {
		return ErrInvalidTransition
	}
	if roomType == "" {
		roomType = "Standard Room"
	}

	f.hotel = snapshot
	f.roomType = roomType
	f.guests = guests
	f.quote = NewQuote(snapshot, checkIn, checkOut)
	f.state = StateAwaitingPayment
	f.lastErr = ""
	return nil
}

// Reprice recomputes the quote for new dates while awaiting payment.
func (f *Flow) Reprice(checkIn, checkOut time.Time) error {
	if f.state != StateAwaitingPayment && f.state != StateFailed {
		return ErrNotAwaitingPayment
	}
	f.quote = NewQuote(f.hotel, checkIn, checkOut)
	return nil
}

// Submit validates the payment details and moves to Submitting. Validation
// failures leave the flow in AwaitingPayment with the details retained for
// correction. A Failed flow retries through here directly.
func (f *Flow) Submit(payment PaymentDetails) error {
	switch f.state {
	case StateSubmitting:
		return ErrSubmissionInProgress
	case StateConfirmed:
		return ErrFlowConfirmed
	case StateAwaitingPayment, StateFailed:
	default:
		return ErrNotAwaitingPayment
	}

	f.payment = &payment
	if errs := payment.Validate(); len(errs) > 0 {
		f.state = StateAwaitingPayment
		return errs
	}

	f.state = StateSubmitting
	f.lastErr = ""
	return nil
}

// Confirm completes a successful submission. The payment details are
// discarded and the flow becomes terminal.
func (f *Flow) Confirm() error {
	if f.state != StateSubmitting {
		return ErrInvalidTransition
	}
	f.state = StateConfirmed
	f.payment = nil
	return nil
}

// Fail records a remote failure and returns to AwaitingPayment so the user
// can retry; their input is kept.
func (f *Flow) Fail(reason string) error {
	if f.state != StateSubmitting {
		return ErrInvalidTransition
	}
	f.state = StateFailed
	f.lastErr = reason
	return nil
}

// Retry moves Failed back to AwaitingPayment.
func (f *Flow) Retry() error {
	if f.state != StateFailed {
		return ErrInvalidTransition
	}
	f.state = StateAwaitingPayment
	return nil
}

// Cancel abandons the intent without any network call. Payment details are
// discarded.
func (f *Flow) Cancel() error {
	switch f.state {
	case StateAwaitingPayment, StateFailed:
	case StateSubmitting:
		return ErrSubmissionInProgress
	default:
		return ErrInvalidTransition
	}
	f.state = StateBrowsing
	f.payment = nil
	f.hotel = hotel.Snapshot{}
	f.quote = Quote{}
	f.lastErr = ""
	return nil
}

// BuildRequest assembles the immutable booking request for submission.
func (f *Flow) BuildRequest(userID int64) (*Request, error) {
	if f.state != StateSubmitting {
		return nil, ErrInvalidTransition
	}
	if f.payment == nil {
		return nil, ErrNotAwaitingPayment
	}
	return NewRequest(f.hotel, f.quote, f.roomType, userID, *f.payment)
}
