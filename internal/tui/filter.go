package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/golfmatch/internal/catalog"
)

const (
	sortAsReceived = iota
	sortByName
	sortByLocation
	sortByRating
	sortByPrice
	sortColumnCount
)

// visibleCourses returns the current filtered/sorted view of the collection.
func (a App) visibleCourses() []catalog.Course {
	return filteredCourses(a.fetch.Courses(), a.searchQuery, a.minRating, a.maxPrice, a.sortColumn, a.sortAsc)
}

// filteredCourses returns the subset of courses matching the active search and
// filters, sorted by the current sort column/direction.
func filteredCourses(courses []catalog.Course, query string, minRating float64, maxPrice int, sortCol int, sortAsc bool) []catalog.Course {
	var out []catalog.Course
	for _, c := range courses {
		if !matchesSearch(c, query) {
			continue
		}
		if minRating > 0 && c.DifficultyRating < minRating {
			continue
		}
		if maxPrice > 0 && priceLevel(c.PriceRange) > maxPrice {
			continue
		}
		out = append(out, c)
	}
	sortCourses(out, sortCol, sortAsc)
	return out
}

func matchesSearch(c catalog.Course, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Location), q) ||
		strings.Contains(strings.ToLower(c.Description), q) {
		return true
	}
	return fuzzyMatches(c, q)
}

// fuzzyMatches tolerates small typos by comparing the query against each word
// of the name and location with a relative edit-distance threshold.
func fuzzyMatches(c catalog.Course, q string) bool {
	words := strings.Fields(strings.ToLower(c.Name + " " + c.Location))
	for _, w := range words {
		dist := levenshtein.ComputeDistance(q, w)
		maxlen := float64(len(q))
		if len(w) > len(q) {
			maxlen = float64(len(w))
		}
		if maxlen == 0 {
			continue
		}
		if float64(dist)/maxlen < 0.4 {
			return true
		}
	}
	return false
}

// priceLevel maps a price range string to a 1-4 tier. Unknown or empty values
// map to 5 so they sort last and never pass a max-price filter.
func priceLevel(priceRange string) int {
	s := strings.TrimSpace(priceRange)
	if s == "" {
		return 5
	}
	for _, r := range s {
		if r != '$' {
			return 5
		}
	}
	if len(s) > 4 {
		return 4
	}
	return len(s)
}

func sortCourses(courses []catalog.Course, col int, asc bool) {
	if col == sortAsReceived {
		if asc {
			return
		}
		for i, j := 0, len(courses)-1; i < j; i, j = i+1, j-1 {
			courses[i], courses[j] = courses[j], courses[i]
		}
		return
	}
	sort.SliceStable(courses, func(i, j int) bool {
		var less bool
		switch col {
		case sortByName:
			less = strings.ToLower(courses[i].Name) < strings.ToLower(courses[j].Name)
		case sortByLocation:
			less = strings.ToLower(courses[i].Location) < strings.ToLower(courses[j].Location)
		case sortByRating:
			less = courses[i].DifficultyRating < courses[j].DifficultyRating
		case sortByPrice:
			less = priceLevel(courses[i].PriceRange) < priceLevel(courses[j].PriceRange)
		default:
			less = strings.ToLower(courses[i].Name) < strings.ToLower(courses[j].Name)
		}
		if asc {
			return less
		}
		return !less
	})
}

func sortColumnName(col int) string {
	switch col {
	case sortAsReceived:
		return "received"
	case sortByName:
		return "name"
	case sortByLocation:
		return "location"
	case sortByRating:
		return "difficulty"
	case sortByPrice:
		return "price"
	default:
		return "received"
	}
}

// nextMinRating cycles the minimum difficulty filter: off, 3, 4, 4.5, off.
func nextMinRating(cur float64) float64 {
	switch {
	case cur == 0:
		return 3
	case cur == 3:
		return 4
	case cur == 4:
		return 4.5
	default:
		return 0
	}
}

// nextMaxPrice cycles the maximum price filter: off, $, $$, $$$, $$$$, off.
func nextMaxPrice(cur int) int {
	if cur >= 4 {
		return 0
	}
	return cur + 1
}
