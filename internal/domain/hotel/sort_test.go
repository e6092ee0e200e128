//go:build unit

package hotel_test

import (
	"testing"

	"staybook/internal/domain/hotel"
	"staybook/internal/domain/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(hotels []hotel.Snapshot) []string {
	out := make([]string, len(hotels))
	for i, h := range hotels {
		out[i] = h.Name
	}
	return out
}

func TestSort(t *testing.T) {
	input := []hotel.Snapshot{
		{Name: "Mid", Price: 100, Rating: 4.0, Reviews: 200},
		{Name: "Cheap", Price: 80, Rating: 3.5, Reviews: 50},
		{Name: "Fancy", Price: 250, Rating: 4.8, Reviews: 900},
	}

	t.Run("price-low ascends", func(t *testing.T) {
		sorted := hotel.Sort(input, query.SortPriceLow)
		assert.Equal(t, []string{"Cheap", "Mid", "Fancy"}, names(sorted))
	})

	t.Run("price-high descends", func(t *testing.T) {
		sorted := hotel.Sort(input, query.SortPriceHigh)
		assert.Equal(t, []string{"Fancy", "Mid", "Cheap"}, names(sorted))
	})

	t.Run("rating descends", func(t *testing.T) {
		sorted := hotel.Sort(input, query.SortRating)
		assert.Equal(t, []string{"Fancy", "Mid", "Cheap"}, names(sorted))
	})

	t.Run("relevance weighs rating against price", func(t *testing.T) {
		// Mid: 0.6*4.0 - 0.4*100 = -37.6; Cheap: 0.6*3.5 - 0.4*80 = -29.9
		sorted := hotel.Sort(input, query.SortRelevance)
		assert.Equal(t, []string{"Cheap", "Mid", "Fancy"}, names(sorted))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		before := names(input)
		_ = hotel.Sort(input, query.SortPriceHigh)
		assert.Equal(t, before, names(input))
	})

	t.Run("ties keep arrival order", func(t *testing.T) {
		tied := []hotel.Snapshot{
			{Name: "First", Price: 100},
			{Name: "Second", Price: 100},
			{Name: "Third", Price: 100},
		}
		sorted := hotel.Sort(tied, query.SortPriceLow)
		assert.Equal(t, []string{"First", "Second", "Third"}, names(sorted))
	})
}

func TestRelevanceScore(t *testing.T) {
	s := hotel.Snapshot{Rating: 4.5, Price: 120}
	assert.InDelta(t, 0.6*4.5-0.4*120, hotel.RelevanceScore(s), 1e-9)
}

func TestPriceWindow(t *testing.T) {
	hotels := []hotel.Snapshot{
		{Name: "A", Price: 40},
		{Name: "B", Price: 100},
		{Name: "C", Price: 260},
	}

	t.Run("zero window keeps everything", func(t *testing.T) {
		kept := hotel.PriceWindow{}.Clamp(hotels)
		require.Len(t, kept, 3)
	})

	t.Run("min bound drops cheaper items", func(t *testing.T) {
		kept := hotel.PriceWindow{Min: 50}.Clamp(hotels)
		assert.Equal(t, []string{"B", "C"}, names(kept))
	})

	t.Run("max bound drops pricier items", func(t *testing.T) {
		kept := hotel.PriceWindow{Max: 200}.Clamp(hotels)
		assert.Equal(t, []string{"A", "B"}, names(kept))
	})

	t.Run("both bounds keep the middle", func(t *testing.T) {
		kept := hotel.PriceWindow{Min: 50, Max: 200}.Clamp(hotels)
		assert.Equal(t, []string{"B"}, names(kept))
	})

	t.Run("boundary prices are inside", func(t *testing.T) {
		w := hotel.PriceWindow{Min: 40, Max: 260}
		assert.True(t, w.Contains(40))
		assert.True(t, w.Contains(260))
		assert.False(t, w.Contains(39.99))
	})
}
