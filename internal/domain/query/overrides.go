package query

import "time"

// Overrides carries the fields a single user action wants to change. Nil
// means "leave as is"; the whole set is applied and persisted in one write
// so one action never produces more than one store transition.
type Overrides struct {
	Location         *string
	CheckIn          *time.Time
	CheckOut         *time.Time
	Guests           *int
	Sort             *SortMode
	MinPrice         *int
	MaxPrice         *int
	RatingFilter     *string
	PropertyTypes    *[]string
	Amenities        *[]string
	Brands           *[]string
	HotelClasses     *[]string
	VacationRentals  *bool
	Bedrooms         *int
	Bathrooms        *int
	FreeCancellation *bool
	SpecialOffers    *bool
	EcoCertified     *bool
}

func (o Overrides) IsEmpty() bool {
	return o == (Overrides{})
}

// Apply merges the overrides into q and returns the result.
func (o Overrides) Apply(q Query) Query {
	if o.Location != nil {
		q.Location = *o.Location
	}
	if o.CheckIn != nil {
		q.CheckIn = *o.CheckIn
	}
	if o.CheckOut != nil {
		q.CheckOut = *o.CheckOut
	}
	if o.Guests != nil {
		q.Guests = *o.Guests
	}
	if o.Sort != nil {
		q.Sort = *o.Sort
	}
	if o.MinPrice != nil {
		q.MinPrice = *o.MinPrice
	}
	if o.MaxPrice != nil {
		q.MaxPrice = *o.MaxPrice
	}
	if o.RatingFilter != nil {
		q.RatingFilter = *o.RatingFilter
	}
	if o.PropertyTypes != nil {
		q.PropertyTypes = *o.PropertyTypes
	}
	if o.Amenities != nil {
		q.Amenities = *o.Amenities
	}
	if o.Brands != nil {
		q.Brands = *o.Brands
	}
	if o.HotelClasses != nil {
		q.HotelClasses = *o.HotelClasses
	}
	if o.VacationRentals != nil {
		q.VacationRentals = *o.VacationRentals
	}
	if o.Bedrooms != nil {
		q.Bedrooms = *o.Bedrooms
	}
	if o.Bathrooms != nil {
		q.Bathrooms = *o.Bathrooms
	}
	if o.FreeCancellation != nil {
		q.FreeCancellation = *o.FreeCancellation
	}
	if o.SpecialOffers != nil {
		q.SpecialOffers = *o.SpecialOffers
	}
	if o.EcoCertified != nil {
		q.EcoCertified = *o.EcoCertified
	}
	if !q.CheckIn.IsZero() && !q.CheckOut.IsZero() && !q.CheckOut.After(q.CheckIn) {
		q.CheckOut = q.CheckIn.AddDate(0, 0, 1)
	}
	return q
}
