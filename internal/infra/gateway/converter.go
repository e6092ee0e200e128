package gateway

import (
	"staybook/internal/domain/hotel"
)

// rawProperty mirrors the loosely-shaped property records the remote search
// returns. Missing fields degrade to defaults; nothing here is allowed to
// fail.
type rawProperty struct {
	PropertyToken string   `json:"property_token"`
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Snippet       string   `json:"snippet"`
	City          string   `json:"city"`
	Address       string   `json:"address"`
	OverallRating float64  `json:"overall_rating"`
	Reviews       int      `json:"reviews"`
	Amenities     []string `json:"amenities"`
	TotalRate     struct {
		ExtractedLowest float64 `json:"extracted_lowest"`
	} `json:"total_rate"`
	Images []struct {
		Thumbnail string `json:"thumbnail"`
		Link      string `json:"link"`
	} `json:"images"`
}

func (p rawProperty) toSnapshot() hotel.Snapshot {
	id := p.PropertyToken
	if id == "" {
		id = p.ID
	}

	description := p.Description
	if description == "" {
		description = p.Snippet
	}

	location := p.City
	if location == "" {
		location = p.Address
	}

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img.Thumbnail != "" {
			images = append(images, img.Thumbnail)
		} else if img.Link != "" {
			images = append(images, img.Link)
		}
	}

	return hotel.Snapshot{
		ID:          id,
		Name:        p.Name,
		Description: description,
		Location:    location,
		Price:       p.TotalRate.ExtractedLowest,
		Rating:      p.OverallRating,
		Reviews:     p.Reviews,
		Images:      images,
		Amenities:   p.Amenities,
	}
}
