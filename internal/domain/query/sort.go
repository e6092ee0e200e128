package query

// SortMode is the user-facing sort selection. Only a subset has a server-side
// wire code; the rest is applied client-side after the fetch.
type SortMode string

const (
	SortRelevance    SortMode = "relevance"
	SortPriceLow     SortMode = "price-low"
	SortPriceHigh    SortMode = "price-high"
	SortRating       SortMode = "rating"
	SortMostReviewed SortMode = "most-reviewed"
)

func (s SortMode) String() string {
	return string(s)
}

func (s SortMode) IsValid() bool {
	switch s {
	case SortRelevance, SortPriceLow, SortPriceHigh, SortRating, SortMostReviewed:
		return true
	default:
		return false
	}
}

// WireCode returns the upstream sort_by code. relevance and price-high have
// no server equivalent and report ok=false.
func (s SortMode) WireCode() (code string, ok bool) {
	switch s {
	case SortPriceLow:
		return "3", true
	case SortRating:
		return "8", true
	case SortMostReviewed:
		return "13", true
	default:
		return "", false
	}
}
