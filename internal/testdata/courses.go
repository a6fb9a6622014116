package testdata

import (
	"encoding/json"
	"net/http"

	"github.com/jask/golfmatch/internal/catalog"
)

// SampleCourses returns the well-known demo catalog, in served order.
func SampleCourses() []catalog.Course {
	return []catalog.Course{
		{
			ID:               1,
			Name:             "Pine Valley Golf Club",
			Location:         "Pine Valley, New Jersey",
			DifficultyRating: 4.8,
			PriceRange:       "$$$",
			Description:      "One of the most challenging and beautiful golf courses in the world.",
		},
		{
			ID:               2,
			Name:             "Augusta National Golf Club",
			Location:         "Augusta, Georgia",
			DifficultyRating: 4.9,
			PriceRange:       "$$$$",
			Description:      "Home of the Masters Tournament, featuring pristine fairways and challenging greens.",
		},
		{
			ID:               3,
			Name:             "St Andrews Links (Old Course)",
			Location:         "St Andrews, Scotland",
			DifficultyRating: 4.5,
			PriceRange:       "$$$",
			Description:      "The oldest golf course in the world and the home of golf.",
		},
		{
			ID:               4,
			Name:             "Pebble Beach Golf Links",
			Location:         "Pebble Beach, California",
			DifficultyRating: 4.7,
			PriceRange:       "$$$$",
			Description:      "Stunning coastal views with challenging oceanside holes.",
		},
		{
			ID:               5,
			Name:             "Bethpage Black Course",
			Location:         "Farmingdale, New York",
			DifficultyRating: 4.6,
			PriceRange:       "$$",
			Description:      "A demanding public course that has hosted multiple major championships.",
		},
	}
}

// Handler serves the sample catalog the way the directory API does.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/courses" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(SampleCourses())
	})
}
