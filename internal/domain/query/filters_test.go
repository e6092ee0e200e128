//go:build unit

package query_test

import (
	"testing"

	"staybook/internal/domain/query"

	"github.com/stretchr/testify/assert"
)

func TestActiveFilterCount(t *testing.T) {
	tests := []struct {
		name  string
		query query.Query
		want  int
	}{
		{
			name:  "no filters",
			query: query.Query{Location: "delhi", Sort: query.SortPriceLow},
			want:  0,
		},
		{
			name:  "price bounds count once as a group",
			query: query.Query{MinPrice: 50, MaxPrice: 200},
			want:  1,
		},
		{
			name:  "min alone engages the price group",
			query: query.Query{MinPrice: 50},
			want:  1,
		},
		{
			name: "independent groups add up",
			query: query.Query{
				MinPrice:     50,
				RatingFilter: "4.0",
				Amenities:    []string{"pool", "gym"},
			},
			want: 3,
		},
		{
			name: "hotel-only toggles each count",
			query: query.Query{
				Brands:           []string{"marriott"},
				HotelClasses:     []string{"4", "5"},
				FreeCancellation: true,
				SpecialOffers:    true,
				EcoCertified:     true,
			},
			want: 5,
		},
		{
			name: "vacation mode counts itself plus its own knobs",
			query: query.Query{
				VacationRentals: true,
				Bedrooms:        2,
				Bathrooms:       1,
			},
			want: 3,
		},
		{
			name: "vacation mode ignores lingering hotel-only fields",
			query: query.Query{
				VacationRentals:  true,
				Brands:           []string{"marriott"},
				FreeCancellation: true,
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.ActiveFilterCount())
		})
	}
}

func TestFilterCountMovesWithSingleToggle(t *testing.T) {
	q := query.Query{}
	assert.Equal(t, 0, q.ActiveFilterCount())

	q.RatingFilter = "4.5"
	assert.Equal(t, 1, q.ActiveFilterCount())

	q.Amenities = []string{"spa"}
	assert.Equal(t, 2, q.ActiveFilterCount())

	q.RatingFilter = ""
	assert.Equal(t, 1, q.ActiveFilterCount())
}
