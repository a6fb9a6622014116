package catalog

// Course represents one course record served by the directory API.
// IDs are unique within a fetched collection.
type Course struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	DifficultyRating float64 `json:"difficulty_rating"`
	PriceRange       string  `json:"price_range"`
	Description      string  `json:"description"`
}

// RatingMax is the top of the difficulty scale.
const RatingMax = 5.0

// RatingPercent converts a difficulty rating to a 0-100 fill percentage.
// Out-of-range ratings clamp to the nearest bound before conversion.
func RatingPercent(rating float64) float64 {
	if rating < 0 {
		rating = 0
	}
	if rating > RatingMax {
		rating = RatingMax
	}
	return rating / RatingMax * 100
}
