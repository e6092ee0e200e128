package response

import (
	"staybook/internal/domain/booking"
	"staybook/internal/domain/hotel"
	"staybook/internal/domain/query"
	"staybook/internal/usecase"
)

type HotelResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Images      []string `json:"images,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

type QueryResponse struct {
	Location        string `json:"location"`
	CheckIn         string `json:"check_in"`
	CheckOut        string `json:"check_out"`
	Guests          int    `json:"guests,omitempty"`
	Sort            string `json:"sort"`
	VacationRentals bool   `json:"vacation_rentals"`
}

type SearchResponse struct {
	Query       QueryResponse   `json:"query"`
	Phase       string          `json:"phase"`
	FilterCount int             `json:"filter_count"`
	Generation  uint64          `json:"generation"`
	Notice      string          `json:"notice,omitempty"`
	Hotels      []HotelResponse `json:"hotels"`
}

type QuoteResponse struct {
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Nights      int     `json:"nights"`
	BasePrice   float64 `json:"base_price"`
	CleaningFee float64 `json:"cleaning_fee"`
	ServiceFee  float64 `json:"service_fee"`
	Total       float64 `json:"total"`
}

type HotelDetailResponse struct {
	Hotel HotelResponse `json:"hotel"`
	Quote QuoteResponse `json:"quote"`
}

func FromSnapshot(s hotel.Snapshot) HotelResponse {
	return HotelResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Location:    s.Location,
		Price:       s.Price,
		Rating:      s.Rating,
		Reviews:     s.Reviews,
		Images:      s.Images,
		Amenities:   s.Amenities,
	}
}

func FromQuote(q booking.Quote) QuoteResponse {
	return QuoteResponse{
		CheckIn:     q.CheckIn.Format(query.DateLayout),
		CheckOut:    q.CheckOut.Format(query.DateLayout),
		Nights:      q.Nights,
		BasePrice:   q.BasePrice,
		CleaningFee: booking.CleaningFee,
		ServiceFee:  booking.ServiceFee,
		Total:       q.Total,
	}
}

func FromSearchView(view *usecase.SearchView) *SearchResponse {
	hotels := make([]HotelResponse, 0, len(view.Hotels))
	for _, h := range view.Hotels {
		hotels = append(hotels, FromSnapshot(h))
	}

	q := QueryResponse{
		Location:        view.Query.Location,
		Guests:          view.Query.Guests,
		Sort:            view.Query.Sort.String(),
		VacationRentals: view.Query.VacationRentals,
	}
	if !view.Query.CheckIn.IsZero() {
		q.CheckIn = view.Query.CheckIn.Format(query.DateLayout)
	}
	if !view.Query.CheckOut.IsZero() {
		q.CheckOut = view.Query.CheckOut.Format(query.DateLayout)
	}

	return &SearchResponse{
		Query:       q,
		Phase:       string(view.Phase),
		FilterCount: view.FilterCount,
		Generation:  view.Generation,
		Notice:      view.Notice,
		Hotels:      hotels,
	}
}
