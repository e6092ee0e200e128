package hotel

import (
	"sort"

	"staybook/internal/domain/query"
)

// Relevance scoring weights. Applied for the sort modes the server cannot
// order for us (relevance, most-reviewed).
const (
	relevanceRatingWeight = 0.6
	relevancePriceWeight  = 0.4
)

// RelevanceScore ranks a property by rating against price. Higher is better.
func RelevanceScore(s Snapshot) float64 {
	return relevanceRatingWeight*s.Rating - relevancePriceWeight*s.Price
}

// Sort returns a new slice ordered by mode. The sort is stable: ties keep
// the order the remote API returned them in.
func Sort(hotels []Snapshot, mode query.SortMode) []Snapshot {
	sorted := make([]Snapshot, len(hotels))
	copy(sorted, hotels)

	var less func(a, b Snapshot) bool
	switch mode {
	case query.SortPriceLow:
		less = func(a, b Snapshot) bool { return a.Price < b.Price }
	case query.SortPriceHigh:
		less = func(a, b Snapshot) bool { return a.Price > b.Price }
	case query.SortRating:
		less = func(a, b Snapshot) bool { return a.Rating > b.Rating }
	default: // relevance, most-reviewed
		less = func(a, b Snapshot) bool { return RelevanceScore(a) > RelevanceScore(b) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// PriceWindow is the client-side safety net applied after the remote fetch,
// independent of the server-side min_price/max_price filter. A zero bound
// is unbounded on that side.
type PriceWindow struct {
	Min float64
	Max float64
}

func (w PriceWindow) Contains(price float64) bool {
	if w.Min > 0 && price < w.Min {
		return false
	}
	if w.Max > 0 && price > w.Max {
		return false
	}
	return true
}

// Clamp drops items outside the window, preserving order.
func (w PriceWindow) Clamp(hotels []Snapshot) []Snapshot {
	if w.Min <= 0 && w.Max <= 0 {
		return hotels
	}
	kept := make([]Snapshot, 0, len(hotels))
	for _, h := range hotels {
		if w.Contains(h.Price) {
			kept = append(kept, h)
		}
	}
	return kept
}
