//go:build unit

package query_test

import (
	"testing"

	"staybook/internal/domain/query"

	"github.com/stretchr/testify/assert"
)

func TestWireCode(t *testing.T) {
	tests := []struct {
		mode     query.SortMode
		wantCode string
		wantOK   bool
	}{
		{query.SortPriceLow, "3", true},
		{query.SortRating, "8", true},
		{query.SortMostReviewed, "13", true},
		{query.SortRelevance, "", false},
		{query.SortPriceHigh, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			code, ok := tt.mode.WireCode()
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestGatewayParams(t *testing.T) {
	base := query.Query{
		Location: "faridabad",
		CheckIn:  date("2026-09-01"),
		CheckOut: date("2026-09-03"),
		Sort:     query.SortPriceLow,
	}

	t.Run("required fields always present", func(t *testing.T) {
		params := base.GatewayParams()

		assert.Equal(t, "faridabad", params.Get("destination"))
		assert.Equal(t, "2026-09-01", params.Get("check_in_date"))
		assert.Equal(t, "2026-09-03", params.Get("check_out_date"))
		assert.Equal(t, "3", params.Get("sort_by"))
	})

	t.Run("client-only sorts omit sort_by", func(t *testing.T) {
		q := base
		q.Sort = query.SortRelevance
		assert.False(t, q.GatewayParams().Has("sort_by"))

		q.Sort = query.SortPriceHigh
		assert.False(t, q.GatewayParams().Has("sort_by"))
	})

	t.Run("unset optionals are omitted not zeroed", func(t *testing.T) {
		params := base.GatewayParams()

		for _, key := range []string{
			"adults", "min_price", "max_price", "rating",
			"property_types", "amenities", "brands", "hotel_class",
			"free_cancellation", "special_offers", "eco_certified",
			"vacation_rentals", "bedrooms", "bathrooms",
		} {
			assert.False(t, params.Has(key), "expected %s to be absent", key)
		}
	})

	t.Run("vacation mode excludes the hotel-only domain", func(t *testing.T) {
		q := base
		q.VacationRentals = true
		q.Bedrooms = 3
		q.Brands = []string{"marriott"}
		q.FreeCancellation = true

		params := q.GatewayParams()

		assert.Equal(t, "true", params.Get("vacation_rentals"))
		assert.Equal(t, "3", params.Get("bedrooms"))
		assert.False(t, params.Has("brands"))
		assert.False(t, params.Has("free_cancellation"))
	})

	t.Run("hotel mode excludes the vacation-only domain", func(t *testing.T) {
		q := base
		q.Bedrooms = 3
		q.HotelClasses = []string{"4", "5"}

		params := q.GatewayParams()

		assert.Equal(t, "4,5", params.Get("hotel_class"))
		assert.False(t, params.Has("vacation_rentals"))
		assert.False(t, params.Has("bedrooms"))
	})
}
