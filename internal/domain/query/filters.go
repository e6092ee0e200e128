package query

// ActiveFilterCount sums the independent filter groups currently engaged.
// Each group contributes independently, so toggling one filter moves the
// count by exactly its own weight and never by another group's.
func (q Query) ActiveFilterCount() int {
	count := 0

	if q.MinPrice > 0 || q.MaxPrice > 0 {
		count++
	}
	if q.RatingFilter != "" {
		count++
	}
	if len(q.PropertyTypes) > 0 {
		count++
	}
	if len(q.Amenities) > 0 {
		count++
	}

	if q.VacationRentals {
		count++ // the mode itself is a filter
		if q.Bedrooms > 0 {
			count++
		}
		if q.Bathrooms > 0 {
			count++
		}
		return count
	}

	if len(q.Brands) > 0 {
		count++
	}
	if len(q.HotelClasses) > 0 {
		count++
	}
	if q.FreeCancellation {
		count++
	}
	if q.SpecialOffers {
		count++
	}
	if q.EcoCertified {
		count++
	}

	return count
}
