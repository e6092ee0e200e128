package response

import (
	"staybook/internal/domain/booking"
	"staybook/internal/infra/gateway"
	"staybook/internal/usecase"
)

type BookingStateResponse struct {
	State    string        `json:"state"`
	Hotel    string        `json:"hotel,omitempty"`
	RoomType string        `json:"room_type,omitempty"`
	Quote    QuoteResponse `json:"quote"`
	LastErr  string        `json:"last_error,omitempty"`
}

type ConfirmationResponse struct {
	Message         string `json:"message"`
	BookingID       int64  `json:"booking_id"`
	TransactionID   int64  `json:"transaction_id"`
	RedirectTo      string `json:"redirect_to"`
	RedirectAfterMs int64  `json:"redirect_after_ms"`
}

type BookingRecordResponse struct {
	ID          int64   `json:"id"`
	HotelName   string  `json:"hotel_name"`
	HotelID     string  `json:"hotel_id"`
	City        string  `json:"city,omitempty"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	RoomType    string  `json:"room_type"`
	TotalPrice  float64 `json:"total_price"`
	BookingDate string  `json:"booking_date,omitempty"`
}

func FromBookingState(state *usecase.BookingState) *BookingStateResponse {
	return &BookingStateResponse{
		State:    state.State.String(),
		Hotel:    state.Hotel,
		RoomType: state.RoomType,
		Quote:    FromQuote(state.Quote),
		LastErr:  state.LastErr,
	}
}

func FromConfirmation(c *booking.Confirmation) *ConfirmationResponse {
	return &ConfirmationResponse{
		Message:         c.Message,
		BookingID:       c.BookingID,
		TransactionID:   c.TransactionID,
		RedirectTo:      c.RedirectTo,
		RedirectAfterMs: c.RedirectAfter.Milliseconds(),
	}
}

func FromBookingRecord(r gateway.BookingRecord) BookingRecordResponse {
	return BookingRecordResponse{
		ID:          r.ID,
		HotelName:   r.HotelName,
		HotelID:     r.HotelID,
		City:        r.City,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		RoomType:    r.RoomType,
		TotalPrice:  r.TotalPrice,
		BookingDate: r.BookingDate,
	}
}
