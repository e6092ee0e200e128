package hotel

// Snapshot is an immutable, point-in-time record of a property as returned
// by the remote search. A new search replaces the whole set; snapshots are
// never mutated in place.
type Snapshot struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
}
