package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/hotel"
	"staybook/internal/infra"
	"staybook/internal/pkg/config"
)

// Client talks to the remote hotel API (search, property details, bookings,
// login). It is the only component that performs network I/O; everything
// above it consumes domain types.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.GatewayConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// RemoteUser is the identity record the remote login endpoint returns.
type RemoteUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// BookingRecord is a persisted booking as the remote API reports it.
type BookingRecord struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	HotelName   string  `json:"hotel_name"`
	HotelID     string  `json:"hotel_id"`
	City        string  `json:"city"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	RoomType    string  `json:"room_type"`
	TotalPrice  float64 `json:"total_price"`
	BookingDate string  `json:"booking_date"`
}

type searchResponse struct {
	Properties []rawProperty `json:"properties"`
}

type createBookingRequest struct {
	UserID     int64                  `json:"user_id"`
	HotelName  string                 `json:"hotel_name"`
	HotelID    string                 `json:"hotel_id"`
	City       string                 `json:"city"`
	CheckIn    string                 `json:"check_in"`
	CheckOut   string                 `json:"check_out"`
	RoomType   string                 `json:"room_type"`
	TotalPrice float64                `json:"total_price"`
	Payment    booking.PaymentDetails `json:"payment"`
}

type createBookingResponse struct {
	Message       string `json:"message"`
	BookingID     int64  `json:"booking_id"`
	TransactionID int64  `json:"transaction_id"`
}

type loginResponse struct {
	Message string     `json:"message"`
	User    RemoteUser `json:"user"`
}

// SearchHotels runs a remote search. A response without the expected
// properties list is an empty result set, not an error.
func (c *Client) SearchHotels(ctx context.Context, params url.Values) ([]hotel.Snapshot, error) {
	var resp searchResponse
	if err := c.get(ctx, "/hotels/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	snapshots := make([]hotel.Snapshot, 0, len(resp.Properties))
	for _, prop := range resp.Properties {
		snapshots = append(snapshots, prop.toSnapshot())
	}
	return snapshots, nil
}

// GetHotelDetails fetches a single property by its search token.
func (c *Client) GetHotelDetails(ctx context.Context, token, checkIn, checkOut string) (*hotel.Snapshot, error) {
	params := url.Values{}
	if checkIn != "" {
		params.Set("check_in_date", checkIn)
	}
	if checkOut != "" {
		params.Set("check_out_date", checkOut)
	}

	path := "/hotels/" + url.PathEscape(token)
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var prop rawProperty
	if err := c.get(ctx, path, &prop); err != nil {
		return nil, err
	}
	snapshot := prop.toSnapshot()
	if snapshot.ID == "" {
		snapshot.ID = token
	}
	if snapshot.Name == "" {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindNotFound, "property not found", nil)
	}
	return &snapshot, nil
}

// CreateBooking persists the reservation remotely and returns the
// confirmation identifiers.
func (c *Client) CreateBooking(ctx context.Context, req *booking.Request) (*booking.Confirmation, error) {
	payload := createBookingRequest{
		UserID:     req.UserID(),
		HotelName:  req.Hotel().Name,
		HotelID:    req.Hotel().ID,
		City:       req.Hotel().Location,
		CheckIn:    req.CheckIn().Format("2006-01-02"),
		CheckOut:   req.CheckOut().Format("2006-01-02"),
		RoomType:   req.RoomType(),
		TotalPrice: req.TotalPrice(),
		Payment:    req.Payment(),
	}

	var resp createBookingResponse
	if err := c.post(ctx, "/bookings", payload, &resp); err != nil {
		return nil, err
	}

	return &booking.Confirmation{
		Message:       resp.Message,
		BookingID:     resp.BookingID,
		TransactionID: resp.TransactionID,
	}, nil
}

// UserBookings lists the bookings the remote API holds for a user.
func (c *Client) UserBookings(ctx context.Context, userID int64) ([]BookingRecord, error) {
	var records []BookingRecord
	if err := c.get(ctx, fmt.Sprintf("/bookings/%d", userID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Login forwards credentials to the remote API; no hashing happens locally.
func (c *Client) Login(ctx context.Context, username, password string) (*RemoteUser, error) {
	payload := map[string]string{"username": username, "password": password}

	var resp loginResponse
	if err := c.post(ctx, "/login", payload, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Register creates a remote account.
func (c *Client) Register(ctx context.Context, username, password, email, fullName string) error {
	payload := map[string]string{
		"username":  username,
		"password":  password,
		"email":     email,
		"full_name": fullName,
	}
	return c.post(ctx, "/register", payload, &struct {
		Message string `json:"message"`
	}{})
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadRequest, "build request", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadRequest, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadRequest, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "remote API unreachable", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "read response", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapGatewayErr(c.logger, infra.KindNotFound, remoteErrorMessage(body, "not found"), nil)
	case resp.StatusCode == http.StatusUnauthorized:
		return infra.WrapGatewayErr(c.logger, infra.KindUnauthorized, remoteErrorMessage(body, "unauthorized"), nil)
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusConflict:
		return infra.WrapGatewayErr(c.logger, infra.KindBadRequest, remoteErrorMessage(body, "request rejected"), nil)
	case resp.StatusCode >= 400:
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable,
			fmt.Sprintf("remote API returned %d: %s", resp.StatusCode, remoteErrorMessage(body, "request failed")), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "decode response", err)
	}
	return nil
}

func remoteErrorMessage(body []byte, fallback string) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fallback
}
