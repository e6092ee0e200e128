package booking

import (
	"time"

	"staybook/internal/domain/hotel"
)

// Fixed fees added to every booking, in the same currency unit as the
// nightly rate.
const (
	CleaningFee = 50
	ServiceFee  = 30
)

// Quote is the priced stay derived from a hotel snapshot and a date range.
// It is recomputed on every date, hotel or room change; never cached across
// a hotel swap.
type Quote struct {
	CheckIn   time.Time
	CheckOut  time.Time
	Nights    int
	BasePrice float64
	Total     float64
}

// NewQuote prices a stay. If checkOut is on or before checkIn the checkout
// is advanced to checkIn+1d instead of producing an invalid state, so
// Nights is always at least 1. A snapshot without a rate prices at 0;
// whether that means "free" or "unknown" is for the product to decide, the
// engine treats it as a legitimate zero-cost stay.
func NewQuote(snapshot hotel.Snapshot, checkIn, checkOut time.Time) Quote {
	checkIn = dateOnly(checkIn)
	checkOut = dateOnly(checkOut)

	if !checkOut.After(checkIn) {
		checkOut = checkIn.AddDate(0, 0, 1)
	}

	nights := calendarDays(checkIn, checkOut)
	base := float64(nights) * snapshot.Price

	return Quote{
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Nights:    nights,
		BasePrice: base,
		Total:     base + CleaningFee + ServiceFee,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calendarDays counts calendar dates, not elapsed 24h periods: a night
// shortened by a DST transition is still one night.
func calendarDays(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f) / (24 * time.Hour))
}
