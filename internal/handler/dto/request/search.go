package request

import (
	"strings"
	"time"

	"staybook/internal/domain/hotel"
	"staybook/internal/domain/query"
)

// SearchRequest is the query-string surface of the search endpoint. Every
// field is optional; absent fields leave the session's stored query alone.
type SearchRequest struct {
	Location         *string `form:"location"`
	CheckIn          *string `form:"check_in"`
	CheckOut         *string `form:"check_out"`
	Guests           *int    `form:"guests"`
	Sort             *string `form:"sort"`
	MinPrice         *int    `form:"min_price"`
	MaxPrice         *int    `form:"max_price"`
	RatingFilter     *string `form:"rating_filter"`
	PropertyTypes    *string `form:"property_types"`
	Amenities        *string `form:"amenities"`
	Brands           *string `form:"brands"`
	HotelClass       *string `form:"hotel_class"`
	VacationRentals  *bool   `form:"vacation_rentals"`
	Bedrooms         *int    `form:"bedrooms"`
	Bathrooms        *int    `form:"bathrooms"`
	FreeCancellation *bool   `form:"free_cancellation"`
	SpecialOffers    *bool   `form:"special_offers"`
	EcoCertified     *bool   `form:"eco_certified"`
}

// ToOverrides translates the bound parameters into a domain override set.
// Bad dates and unknown sort modes are dropped rather than rejected, the
// stored query stays authoritative for anything unparseable.
func (r SearchRequest) ToOverrides() query.Overrides {
	o := query.Overrides{
		Location:         r.Location,
		Guests:           r.Guests,
		MinPrice:         r.MinPrice,
		MaxPrice:         r.MaxPrice,
		RatingFilter:     r.RatingFilter,
		VacationRentals:  r.VacationRentals,
		Bedrooms:         r.Bedrooms,
		Bathrooms:        r.Bathrooms,
		FreeCancellation: r.FreeCancellation,
		SpecialOffers:    r.SpecialOffers,
		EcoCertified:     r.EcoCertified,
	}

	if r.CheckIn != nil {
		if t, err := time.Parse(query.DateLayout, *r.CheckIn); err == nil {
			o.CheckIn = &t
		}
	}
	if r.CheckOut != nil {
		if t, err := time.Parse(query.DateLayout, *r.CheckOut); err == nil {
			o.CheckOut = &t
		}
	}
	if r.Sort != nil {
		mode := query.SortMode(*r.Sort)
		if mode.IsValid() {
			o.Sort = &mode
		}
	}
	if r.PropertyTypes != nil {
		list := splitList(*r.PropertyTypes)
		o.PropertyTypes = &list
	}
	if r.Amenities != nil {
		list := splitList(*r.Amenities)
		o.Amenities = &list
	}
	if r.Brands != nil {
		list := splitList(*r.Brands)
		o.Brands = &list
	}
	if r.HotelClass != nil {
		list := splitList(*r.HotelClass)
		o.HotelClasses = &list
	}

	return o
}

// ToPriceWindow derives the client-side clamp from the price bounds.
func (r SearchRequest) ToPriceWindow() hotel.PriceWindow {
	var window hotel.PriceWindow
	if r.MinPrice != nil {
		window.Min = float64(*r.MinPrice)
	}
	if r.MaxPrice != nil {
		window.Max = float64(*r.MaxPrice)
	}
	return window
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
