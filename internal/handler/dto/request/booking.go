package request

import (
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/query"
	"staybook/internal/usecase"
)

type BeginBookingRequest struct {
	HotelID  string `json:"hotel_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	RoomType string `json:"room_type"`
	Guests   int    `json:"guests"`
}

func (r BeginBookingRequest) ToParams() (usecase.BeginBookingParams, error) {
	checkIn, err := time.Parse(query.DateLayout, r.CheckIn)
	if err != nil {
		return usecase.BeginBookingParams{}, err
	}
	checkOut, err := time.Parse(query.DateLayout, r.CheckOut)
	if err != nil {
		return usecase.BeginBookingParams{}, err
	}

	return usecase.BeginBookingParams{
		HotelID:  r.HotelID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomType: r.RoomType,
		Guests:   r.Guests,
	}, nil
}

type UpdateIntentRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

func (r UpdateIntentRequest) Dates() (time.Time, time.Time, error) {
	checkIn, err := time.Parse(query.DateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := time.Parse(query.DateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

type PaymentRequest struct {
	CardholderName string `json:"cardholder" binding:"required"`
	CardNumber     string `json:"card_number" binding:"required"`
	Expiry         string `json:"expiry" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
}

func (r PaymentRequest) ToDomain() booking.PaymentDetails {
	return booking.PaymentDetails{
		CardholderName: r.CardholderName,
		CardNumber:     r.CardNumber,
		Expiry:         r.Expiry,
		CVV:            r.CVV,
	}
}
