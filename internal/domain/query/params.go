package query

import (
	"net/url"
	"strconv"
	"strings"
)

// GatewayParams builds the outbound search request for the remote API.
// Optional filters are omitted entirely when unset rather than sent as
// false/0 placeholders. While vacation-rental mode is on, the hotel-only
// filter domain (brands, hotel_class, free_cancellation, special_offers,
// eco_certified) never reaches the wire.
func (q Query) GatewayParams() url.Values {
	params := url.Values{}

	params.Set("destination", q.Location)
	params.Set("check_in_date", q.CheckIn.Format(DateLayout))
	params.Set("check_out_date", q.CheckOut.Format(DateLayout))
	if q.Guests > 0 {
		params.Set("adults", strconv.Itoa(q.Guests))
	}
	if code, ok := q.Sort.WireCode(); ok {
		params.Set("sort_by", code)
	}

	if q.MinPrice > 0 {
		params.Set("min_price", strconv.Itoa(q.MinPrice))
	}
	if q.MaxPrice > 0 {
		params.Set("max_price", strconv.Itoa(q.MaxPrice))
	}
	if q.RatingFilter != "" {
		params.Set("rating", q.RatingFilter)
	}
	if len(q.PropertyTypes) > 0 {
		params.Set("property_types", strings.Join(q.PropertyTypes, ","))
	}
	if len(q.Amenities) > 0 {
		params.Set("amenities", strings.Join(q.Amenities, ","))
	}

	if q.VacationRentals {
		params.Set("vacation_rentals", "true")
		if q.Bedrooms > 0 {
			params.Set("bedrooms", strconv.Itoa(q.Bedrooms))
		}
		if q.Bathrooms > 0 {
			params.Set("bathrooms", strconv.Itoa(q.Bathrooms))
		}
		return params
	}

	if len(q.Brands) > 0 {
		params.Set("brands", strings.Join(q.Brands, ","))
	}
	if len(q.HotelClasses) > 0 {
		params.Set("hotel_class", strings.Join(q.HotelClasses, ","))
	}
	if q.FreeCancellation {
		params.Set("free_cancellation", "true")
	}
	if q.SpecialOffers {
		params.Set("special_offers", "true")
	}
	if q.EcoCertified {
		params.Set("eco_certified", "true")
	}

	return params
}
