package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DefaultLocation is used when a navigation arrives without a destination.
const DefaultLocation = "faridabad"

// Persisted store keys. The QueryStore representation is URL-shaped so a
// query can be shared, restored and diffed as a single string.
const (
	KeyLocation         = "location"
	KeyCheckIn          = "checkIn"
	KeyCheckOut         = "checkOut"
	KeyGuests           = "guests"
	KeySort             = "sort_by_ui"
	KeyMinPrice         = "min_price"
	KeyMaxPrice         = "max_price"
	KeyRating           = "rating_filter"
	KeyPropertyTypes    = "property_types"
	KeyAmenities        = "amenities"
	KeyBrands           = "brands"
	KeyHotelClass       = "hotel_class"
	KeyVacationRentals  = "vacation_rentals"
	KeyBedrooms         = "bedrooms"
	KeyBathrooms        = "bathrooms"
	KeyFreeCancellation = "free_cancellation"
	KeySpecialOffers    = "special_offers"
	KeyEcoCertified     = "eco_certified"
)

// Query is the single tagged record behind the QueryStore. Zero values mean
// "unset": price bounds and bed/bath minimums treat 0 as unbounded.
type Query struct {
	Location string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Sort     SortMode

	MinPrice      int
	MaxPrice      int
	RatingFilter  string
	PropertyTypes []string
	Amenities     []string

	// Hotel-only filters, mutually exclusive with the vacation-rental domain.
	Brands           []string
	HotelClasses     []string
	FreeCancellation bool
	SpecialOffers    bool
	EcoCertified     bool

	VacationRentals bool
	Bedrooms        int
	Bathrooms       int
}

// ParseValues decodes the persisted representation. Unparseable numbers and
// dates degrade to their zero value rather than failing; a checkOut on or
// before checkIn is advanced to checkIn+1d so the date invariant holds for
// every constructed Query.
func ParseValues(values url.Values) Query {
	q := Query{
		Location:         strings.TrimSpace(values.Get(KeyLocation)),
		CheckIn:          parseDate(values.Get(KeyCheckIn)),
		CheckOut:         parseDate(values.Get(KeyCheckOut)),
		Guests:           parseInt(values.Get(KeyGuests)),
		Sort:             SortMode(values.Get(KeySort)),
		MinPrice:         parseInt(values.Get(KeyMinPrice)),
		MaxPrice:         parseInt(values.Get(KeyMaxPrice)),
		RatingFilter:     values.Get(KeyRating),
		PropertyTypes:    splitList(values.Get(KeyPropertyTypes)),
		Amenities:        splitList(values.Get(KeyAmenities)),
		Brands:           splitList(values.Get(KeyBrands)),
		HotelClasses:     splitList(values.Get(KeyHotelClass)),
		VacationRentals:  values.Get(KeyVacationRentals) == "true",
		Bedrooms:         parseInt(values.Get(KeyBedrooms)),
		Bathrooms:        parseInt(values.Get(KeyBathrooms)),
		FreeCancellation: values.Get(KeyFreeCancellation) == "true",
		SpecialOffers:    values.Get(KeySpecialOffers) == "true",
		EcoCertified:     values.Get(KeyEcoCertified) == "true",
	}

	if !q.CheckIn.IsZero() && !q.CheckOut.IsZero() && !q.CheckOut.After(q.CheckIn) {
		q.CheckOut = q.CheckIn.AddDate(0, 0, 1)
	}

	return q
}

// Values serializes the query back into its persisted representation. The
// hotel-only keys are dropped entirely while vacation-rental mode is active,
// and vice versa, so a mode toggle cleans up the store in the same write.
func (q Query) Values() url.Values {
	values := url.Values{}

	setIfPresent(values, KeyLocation, q.Location)
	if !q.CheckIn.IsZero() {
		values.Set(KeyCheckIn, q.CheckIn.Format(DateLayout))
	}
	if !q.CheckOut.IsZero() {
		values.Set(KeyCheckOut, q.CheckOut.Format(DateLayout))
	}
	if q.Guests > 0 {
		values.Set(KeyGuests, strconv.Itoa(q.Guests))
	}
	if q.Sort != "" {
		values.Set(KeySort, q.Sort.String())
	}

	values.Set(KeyMinPrice, strconv.Itoa(q.MinPrice))
	values.Set(KeyMaxPrice, strconv.Itoa(q.MaxPrice))
	values.Set(KeyRating, q.RatingFilter)
	values.Set(KeyPropertyTypes, strings.Join(q.PropertyTypes, ","))
	values.Set(KeyAmenities, strings.Join(q.Amenities, ","))

	if q.VacationRentals {
		values.Set(KeyVacationRentals, "true")
		values.Set(KeyBedrooms, strconv.Itoa(q.Bedrooms))
		values.Set(KeyBathrooms, strconv.Itoa(q.Bathrooms))
	} else {
		values.Set(KeyBrands, strings.Join(q.Brands, ","))
		values.Set(KeyHotelClass, strings.Join(q.HotelClasses, ","))
		if q.FreeCancellation {
			values.Set(KeyFreeCancellation, "true")
		}
		if q.SpecialOffers {
			values.Set(KeySpecialOffers, "true")
		}
		if q.EcoCertified {
			values.Set(KeyEcoCertified, "true")
		}
	}

	return values
}

// Encode is the canonical string form used to detect redundant store writes
// and to recognize an already-materialized query. url.Values.Encode sorts
// keys, so equal queries always encode identically.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// MissingRequired reports which of the four required fields are absent.
func (q Query) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(q.Location) == "" {
		missing = append(missing, KeyLocation)
	}
	if q.CheckIn.IsZero() {
		missing = append(missing, KeyCheckIn)
	}
	if q.CheckOut.IsZero() {
		missing = append(missing, KeyCheckOut)
	}
	if !q.Sort.IsValid() {
		missing = append(missing, KeySort)
	}
	return missing
}

func (q Query) IsComplete() bool {
	return len(q.MissingRequired()) == 0
}

// FillDefaults returns a copy with the missing required fields defaulted:
// location "faridabad", check-in today, check-out tomorrow, sort price-low.
// Present fields are never touched.
func (q Query) FillDefaults(now time.Time) Query {
	// Day start in the clock's own location; truncating to a UTC multiple
	// would shift early-morning hours onto yesterday's date east of UTC.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if strings.TrimSpace(q.Location) == "" {
		q.Location = DefaultLocation
	}
	if q.CheckIn.IsZero() {
		q.CheckIn = today
	}
	if q.CheckOut.IsZero() {
		q.CheckOut = q.CheckIn.AddDate(0, 0, 1)
	}
	if !q.Sort.IsValid() {
		q.Sort = SortPriceLow
	}
	if !q.CheckOut.After(q.CheckIn) {
		q.CheckOut = q.CheckIn.AddDate(0, 0, 1)
	}

	return q
}

func parseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
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

func setIfPresent(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
