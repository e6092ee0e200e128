package api

import (
	"errors"
	"net/http"

	"staybook/internal/domain/booking"
	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/middleware"
	"staybook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Begin a booking
// @Description Price the stay for a hotel and start awaiting payment
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BeginBookingRequest true "Booking intent"
// @Success 200 {object} resdto.BookingStateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/intent [post]
func (h *BookingHandler) Begin(c *gin.Context) {
	var req reqdto.BeginBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must be YYYY-MM-DD",
		})
		return
	}

	state, err := h.bookingUseCase.Begin(c.Request.Context(), middleware.GetSession(c), params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingState(state))
}

// @Summary Reprice the booking in progress
// @Description Recompute the quote for new dates while awaiting payment
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateIntentRequest true "New dates"
// @Success 200 {object} resdto.BookingStateResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/intent [patch]
func (h *BookingHandler) UpdateIntent(c *gin.Context) {
	var req reqdto.UpdateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Dates must be YYYY-MM-DD",
		})
		return
	}

	state, err := h.bookingUseCase.Reprice(c.Request.Context(), middleware.GetSession(c), checkIn, checkOut)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingState(state))
}

// @Summary Submit payment
// @Description Validate the card details and submit the booking
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentRequest true "Payment details"
// @Success 200 {object} resdto.ConfirmationResponse
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/payment [post]
func (h *BookingHandler) SubmitPayment(c *gin.Context) {
	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	confirmation, err := h.bookingUseCase.SubmitPayment(c.Request.Context(), middleware.GetSession(c), req.ToDomain())
	if err != nil {
		var validationErrs booking.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Payment details invalid",
				"fields": validationErrs,
			})
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmation(confirmation))
}

// @Summary Current booking state
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.BookingStateResponse
// @Router /bookings/intent [get]
func (h *BookingHandler) Current(c *gin.Context) {
	state, err := h.bookingUseCase.Current(middleware.GetSession(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingState(state))
}

// @Summary Cancel the booking in progress
// @Description Abandon the current intent; payment details are discarded
// @Tags bookings
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/intent [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.bookingUseCase.Cancel(c.Request.Context(), middleware.GetSession(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List the caller's bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BookingRecordResponse
// @Failure 502 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	records, err := h.bookingUseCase.ListBookings(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	responses := make([]resdto.BookingRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, resdto.FromBookingRecord(r))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
			"login": "/login",
			"from":  c.Request.URL.RequestURI(),
		})
	case errors.Is(err, usecase.ErrNoActiveBooking):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No booking in progress",
		})
	case errors.Is(err, usecase.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hotel not found",
		})
	case errors.Is(err, booking.ErrSubmissionInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "A submission is already in flight",
		})
	case errors.Is(err, booking.ErrFlowConfirmed):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking already confirmed",
		})
	case errors.Is(err, booking.ErrNotAwaitingPayment), errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is not awaiting payment",
		})
	case errors.Is(err, booking.ErrInvalidStay):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Check-out must be after check-in",
		})
	case errors.Is(err, usecase.ErrBookingUpstream), errors.Is(err, usecase.ErrSearchUpstream):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Booking service unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
