package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/query"
	"staybook/internal/infra"
	"staybook/internal/infra/gateway"
	"staybook/internal/pkg/errs"
)

var (
	// ErrAuthenticationRequired redirects to login; the handler attaches the
	// originating path so the flow resumes after authentication.
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrNoActiveBooking        = errors.New("no booking in progress")
	ErrBookingUpstream        = errors.New("booking submission failed")
)

// Where the UI navigates after a confirmed booking, and how long it shows
// the confirmation first.
const (
	confirmationRedirect = "/dashboard"
	confirmationDelay    = 2 * time.Second
)

// BookingGateway is the remote persistence collaborator for bookings.
type BookingGateway interface {
	CreateBooking(ctx context.Context, req *booking.Request) (*booking.Confirmation, error)
	UserBookings(ctx context.Context, userID int64) ([]gateway.BookingRecord, error)
}

// BeginBookingParams is the user's reservation intent.
type BeginBookingParams struct {
	HotelID  string
	CheckIn  time.Time
	CheckOut time.Time
	RoomType string
	Guests   int
}

// BookingState is the flow's externally visible state.
type BookingState struct {
	State    booking.State
	Quote    booking.Quote
	Hotel    string
	RoomType string
	LastErr  string
}

type BookingUseCase interface {
	Begin(ctx context.Context, session Session, params BeginBookingParams) (*BookingState, error)
	Reprice(ctx context.Context, session Session, checkIn, checkOut time.Time) (*BookingState, error)
	SubmitPayment(ctx context.Context, session Session, payment booking.PaymentDetails) (*booking.Confirmation, error)
	Cancel(ctx context.Context, session Session) error
	Current(session Session) (*BookingState, error)
	ListBookings(ctx context.Context, session Session) ([]gateway.BookingRecord, error)
}

type flowEntry struct {
	mu   sync.Mutex
	flow *booking.Flow
}

type bookingUseCaseImpl struct {
	mu      sync.Mutex
	flows   map[int64]*flowEntry
	hotels  HotelGateway
	gateway BookingGateway
}

func NewBookingUseCase(hotels HotelGateway, gw BookingGateway) BookingUseCase {
	return &bookingUseCaseImpl{
		flows:   make(map[int64]*flowEntry),
		hotels:  hotels,
		gateway: gw,
	}
}

func (u *bookingUseCaseImpl) entry(userID int64) *flowEntry {
	u.mu.Lock()
	defer u.mu.Unlock()

	e, ok := u.flows[userID]
	if !ok {
		e = &flowEntry{flow: booking.NewFlow()}
		u.flows[userID] = e
	}
	return e
}

func (u *bookingUseCaseImpl) drop(userID int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.flows, userID)
}

// Begin resolves the hotel snapshot remotely, prices the stay and moves the
// user's flow to AwaitingPayment. Unauthenticated callers are redirected to
// login instead.
func (u *bookingUseCaseImpl) Begin(ctx context.Context, session Session, params BeginBookingParams) (*BookingState, error) {
	if !session.Authenticated {
		return nil, ErrAuthenticationRequired
	}

	snapshot, err := u.hotels.GetHotelDetails(
		ctx,
		params.HotelID,
		params.CheckIn.Format(query.DateLayout),
		params.CheckOut.Format(query.DateLayout),
	)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Mark(err, ErrSearchUpstream)
	}

	e := u.entry(session.UserID)
	e.mu.Lock()
	defer e.mu.Unlock()

	// A fresh intent replaces an abandoned one rather than erroring.
	if e.flow.State() == booking.StateAwaitingPayment || e.flow.State() == booking.StateFailed {
		if err := e.flow.Cancel(); err != nil {
			return nil, err
		}
	}

	if err := e.flow.Begin(*snapshot, params.CheckIn, params.CheckOut, params.RoomType, params.Guests); err != nil {
		return nil, err
	}
	return stateOf(e.flow), nil
}

// Reprice recomputes the quote for new dates while the intent is awaiting
// payment. The snapshot already carries the room rate, so no network call
// is made.
func (u *bookingUseCaseImpl) Reprice(_ context.Context, session Session, checkIn, checkOut time.Time) (*BookingState, error) {
	if !session.Authenticated {
		return nil, ErrAuthenticationRequired
	}

	e := u.entry(session.UserID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.flow.State() == booking.StateBrowsing {
		return nil, ErrNoActiveBooking
	}
	if err := e.flow.Reprice(checkIn, checkOut); err != nil {
		return nil, err
	}
	return stateOf(e.flow), nil
}

// SubmitPayment validates locally, transitions to Submitting before the
// network call (so a second click is refused while one is in flight), and
// settles the flow on the gateway's answer.
func (u *bookingUseCaseImpl) SubmitPayment(ctx context.Context, session Session, payment booking.PaymentDetails) (*booking.Confirmation, error) {
	if !session.Authenticated {
		return nil, ErrAuthenticationRequired
	}

	e := u.entry(session.UserID)

	e.mu.Lock()
	if e.flow.State() == booking.StateBrowsing {
		e.mu.Unlock()
		return nil, ErrNoActiveBooking
	}
	if e.flow.State() == booking.StateFailed {
		if err := e.flow.Retry(); err != nil {
			e.mu.Unlock()
			return nil, err
		}
	}
	if err := e.flow.Submit(payment); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	req, err := e.flow.BuildRequest(session.UserID)
	if err != nil {
		e.mu.Unlock()
		return nil, err
	}
	if err := req.MarkSubmitted(); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	e.mu.Unlock()

	confirmation, err := u.gateway.CreateBooking(ctx, req)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		_ = e.flow.Fail(err.Error())
		return nil, errs.Mark(err, ErrBookingUpstream)
	}

	if err := e.flow.Confirm(); err != nil {
		return nil, err
	}
	u.drop(session.UserID) // next booking starts from Browsing

	confirmation.RedirectTo = confirmationRedirect
	confirmation.RedirectAfter = confirmationDelay
	return confirmation, nil
}

// Cancel abandons the current intent; no network call is made and the
// payment details are discarded.
func (u *bookingUseCaseImpl) Cancel(_ context.Context, session Session) error {
	if !session.Authenticated {
		return ErrAuthenticationRequired
	}

	e := u.entry(session.UserID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.flow.State() == booking.StateBrowsing {
		return ErrNoActiveBooking
	}
	if err := e.flow.Cancel(); err != nil {
		return err
	}
	u.drop(session.UserID)
	return nil
}

func (u *bookingUseCaseImpl) Current(session Session) (*BookingState, error) {
	if !session.Authenticated {
		return nil, ErrAuthenticationRequired
	}

	e := u.entry(session.UserID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return stateOf(e.flow), nil
}

func (u *bookingUseCaseImpl) ListBookings(ctx context.Context, session Session) ([]gateway.BookingRecord, error) {
	if !session.Authenticated {
		return nil, ErrAuthenticationRequired
	}

	records, err := u.gateway.UserBookings(ctx, session.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingUpstream)
	}
	return records, nil
}

func stateOf(f *booking.Flow) *BookingState {
	return &BookingState{
		State:    f.State(),
		Quote:    f.Quote(),
		Hotel:    f.Hotel().Name,
		RoomType: f.RoomType(),
		LastErr:  f.LastError(),
	}
}
