//go:build unit

package builder

import (
	"staybook/internal/domain/hotel"
)

type HotelBuilder struct {
	ID        string
	Name      string
	Location  string
	Price     float64
	Rating    float64
	Reviews   int
	Amenities []string
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:        "tok-grand-plaza",
		Name:      "Grand Plaza",
		Location:  "faridabad",
		Price:     120,
		Rating:    4.2,
		Reviews:   350,
		Amenities: []string{"Free Wi-Fi", "Pool"},
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) Build() hotel.Snapshot {
	return hotel.Snapshot{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		Price:     b.Price,
		Rating:    b.Rating,
		Reviews:   b.Reviews,
		Amenities: b.Amenities,
	}
}

func (b *HotelBuilder) WithID(id string) *HotelBuilder {
	b.ID = id
	return b
}

func (b *HotelBuilder) WithName(name string) *HotelBuilder {
	b.Name = name
	return b
}

func (b *HotelBuilder) WithPrice(price float64) *HotelBuilder {
	b.Price = price
	return b
}

func (b *HotelBuilder) WithRating(rating float64, reviews int) *HotelBuilder {
	b.Rating = rating
	b.Reviews = reviews
	return b
}
