package booking

import (
	"errors"
	"time"

	"staybook/internal/domain/hotel"
)

var (
	ErrInvalidStay      = errors.New("check-out must be after check-in")
	ErrAlreadySubmitted = errors.New("booking request already submitted")
)

// Request is the reservation intent built when the user confirms payment.
// It becomes immutable once submitted; cancelling simply discards it.
type Request struct {
	hotel     hotel.Snapshot
	quote     Quote
	roomType  string
	userID    int64
	payment   PaymentDetails
	submitted bool
}

func NewRequest(snapshot hotel.Snapshot, quote Quote, roomType string, userID int64, payment PaymentDetails) (*Request, error) {
	if !quote.CheckOut.After(quote.CheckIn) || quote.Nights < 1 {
		return nil, ErrInvalidStay
	}
	if roomType == "" {
		roomType = "Standard Room"
	}
	return &Request{
		hotel:    snapshot,
		quote:    quote,
		roomType: roomType,
		userID:   userID,
		payment:  payment,
	}, nil
}

func (r *Request) MarkSubmitted() error {
	if r.submitted {
		return ErrAlreadySubmitted
	}
	r.submitted = true
	return nil
}

func (r *Request) Hotel() hotel.Snapshot     { return r.hotel }
func (r *Request) Quote() Quote              { return r.quote }
func (r *Request) RoomType() string          { return r.roomType }
func (r *Request) UserID() int64             { return r.userID }
func (r *Request) Payment() PaymentDetails   { return r.payment }
func (r *Request) Submitted() bool           { return r.submitted }
func (r *Request) CheckIn() time.Time        { return r.quote.CheckIn }
func (r *Request) CheckOut() time.Time       { return r.quote.CheckOut }
func (r *Request) TotalPrice() float64       { return r.quote.Total }
