package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/golfmatch/internal/catalog"
)

func TestRenderRatingBarCellCounts(t *testing.T) {
	tests := []struct {
		rating     float64
		width      int
		wantFilled int
	}{
		{0, 20, 0},
		{2.5, 20, 10},
		{3, 20, 12},
		{4.5, 20, 18},
		{5, 20, 20},
		{2.5, 10, 5},
		{5, 1, 1},
	}
	for _, tt := range tests {
		got := renderRatingBar(tt.rating, tt.width)
		filled := strings.Count(got, "█")
		empty := strings.Count(got, "░")
		if filled != tt.wantFilled {
			t.Errorf("renderRatingBar(%v, %d) filled = %d, want %d", tt.rating, tt.width, filled, tt.wantFilled)
		}
		if filled+empty != tt.width {
			t.Errorf("renderRatingBar(%v, %d) total cells = %d, want %d", tt.rating, tt.width, filled+empty, tt.width)
		}
	}
}

func TestRenderRatingBarClampsRange(t *testing.T) {
	if got := strings.Count(renderRatingBar(7, 20), "█"); got != 20 {
		t.Errorf("rating above scale: filled = %d, want 20", got)
	}
	if got := strings.Count(renderRatingBar(-1, 20), "█"); got != 0 {
		t.Errorf("rating below scale: filled = %d, want 0", got)
	}
	if got := renderRatingBar(3, 0); got != "" {
		t.Errorf("zero width bar = %q, want empty", got)
	}
}

func TestRenderCardShape(t *testing.T) {
	course := filterFixture()[0]

	got := renderCard(course, false, 80)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("card has %d lines, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[0], "  ") {
		t.Errorf("unselected card prefix = %q", lines[0][:2])
	}

	selected := renderCard(course, true, 80)
	if !strings.HasPrefix(selected, "> ") {
		t.Errorf("selected card does not start with cursor marker: %q", strings.Split(selected, "\n")[0])
	}
}

func TestRenderCardContent(t *testing.T) {
	course := filterFixture()[0]
	got := renderCard(course, false, 80)

	for _, want := range []string{
		"Pine Valley Golf Club",
		"Pine Valley, New Jersey",
		"Difficulty: 4.8/5",
		"$$$$",
		"enter: view details",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("card missing %q:\n%s", want, got)
		}
	}
}

func TestRenderCardsScrollIndicator(t *testing.T) {
	courses := make([]catalog.Course, 5)
	for i := range courses {
		courses[i] = catalog.Course{ID: i + 1, Name: fmt.Sprintf("Course %d", i+1), PriceRange: "$$"}
	}

	got := renderCards(courses, 1, 1, 2, 80)
	if !strings.Contains(got, "── showing 2-3 of 5 ──") {
		t.Errorf("indicator missing or wrong:\n%s", got)
	}
	if cards := strings.Count(got, "enter: view details"); cards != 2 {
		t.Errorf("rendered %d cards, want 2", cards)
	}
}

func TestRenderCardsClampsWindowToCollection(t *testing.T) {
	courses := make([]catalog.Course, 5)
	for i := range courses {
		courses[i] = catalog.Course{ID: i + 1, Name: fmt.Sprintf("Course %d", i+1)}
	}

	got := renderCards(courses, 3, 3, 10, 80)
	if cards := strings.Count(got, "enter: view details"); cards != 2 {
		t.Errorf("rendered %d cards, want 2", cards)
	}
	if !strings.Contains(got, "── showing 4-5 of 5 ──") {
		t.Errorf("indicator missing or wrong:\n%s", got)
	}
}

func TestEmptyPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		app  App
		want string
	}{
		{"no filters", App{}, "No courses available."},
		{"search active", App{searchQuery: "x"}, "No courses match the current filters."},
		{"rating filter active", App{minRating: 3}, "No courses match the current filters."},
		{"price filter active", App{maxPrice: 2}, "No courses match the current filters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.app.emptyPlaceholder(); got != tt.want {
				t.Errorf("emptyPlaceholder() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusTextByPhase(t *testing.T) {
	pending := App{fetch: catalog.NewFetchState(), sortAsc: true}
	if got := pending.statusText(); got != "Fetching courses..." {
		t.Errorf("pending status = %q", got)
	}

	failed := App{fetch: catalog.NewFetchState(), sortAsc: true}
	failed.fetch.Fail(catalog.FailureMessage)
	if got := failed.statusText(); got != "Course fetch failed" {
		t.Errorf("failed status = %q", got)
	}

	ready := App{fetch: catalog.NewFetchState(), sortAsc: true}
	ready.fetch.Resolve(filterFixture())
	if got := ready.statusText(); got != "3/3 courses" {
		t.Errorf("ready status = %q", got)
	}
}

func TestStatusTextShowsActiveFilters(t *testing.T) {
	a := App{fetch: catalog.NewFetchState(), sortAsc: true}
	a.fetch.Resolve(filterFixture())

	a.searchQuery = "pine"
	a.minRating = 4.5
	a.maxPrice = 4
	got := a.statusText()

	for _, want := range []string{"1/3 courses", "search: pine", "difficulty ≥ 4.5", "price ≤ $$$$"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q missing %q", got, want)
		}
	}
}

func TestStatusTextSearchModeCursor(t *testing.T) {
	a := App{fetch: catalog.NewFetchState(), sortAsc: true}
	a.fetch.Resolve(filterFixture())
	a.searchMode = true
	a.searchQuery = "har"

	if got := a.statusText(); !strings.Contains(got, "search: har▌") {
		t.Errorf("status %q missing live search cursor", got)
	}
}

func TestStatusTextShowsNonDefaultSort(t *testing.T) {
	a := App{fetch: catalog.NewFetchState(), sortAsc: true, sortColumn: sortByRating}
	a.fetch.Resolve(filterFixture())
	if got := a.statusText(); !strings.Contains(got, "sort: difficulty asc") {
		t.Errorf("status %q missing sort", got)
	}

	b := App{fetch: catalog.NewFetchState(), sortAsc: false}
	b.fetch.Resolve(filterFixture())
	if got := b.statusText(); !strings.Contains(got, "sort: received desc") {
		t.Errorf("status %q missing sort direction", got)
	}
}

func TestStatusTextTransientOverride(t *testing.T) {
	a := App{fetch: catalog.NewFetchState(), sortAsc: true, status: "Cards per page: 12 (saved)"}
	a.fetch.Resolve(filterFixture())
	if got := a.statusText(); got != "Cards per page: 12 (saved)" {
		t.Errorf("status = %q, want transient message", got)
	}
}

func TestDetailViewShowsSelectedCourse(t *testing.T) {
	course := filterFixture()[2]
	a := App{selected: &course}

	got := a.detailView()
	for _, want := range []string{
		"Harbor Links",
		"Portland, Maine",
		"Difficulty",
		"3.5/5",
		"$$",
		"Coastal winds make club selection tricky.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("detail missing %q:\n%s", want, got)
		}
	}
}

func TestDetailViewEmptyWithoutSelection(t *testing.T) {
	a := App{}
	if got := a.detailView(); got != "" {
		t.Errorf("detailView() = %q, want empty", got)
	}
}

func TestRenderHeader(t *testing.T) {
	got := renderHeader("GolfMatch", 0)
	if !strings.Contains(got, "GolfMatch") || !strings.Contains(got, "course directory") {
		t.Errorf("header = %q", got)
	}

	wide := renderHeader("GolfMatch", 80)
	if w := lipgloss.Width(wide); w != 80 {
		t.Errorf("header width = %d, want 80", w)
	}
}

func TestRenderStatusFlattensNewlines(t *testing.T) {
	a := App{}
	got := a.renderStatus("first\nsecond", false)
	if strings.Contains(got, "\n") {
		t.Errorf("status bar contains newline: %q", got)
	}
	if !strings.Contains(got, "first second") {
		t.Errorf("status bar = %q", got)
	}
}

func TestRenderFooterShowsScopeBindings(t *testing.T) {
	a := App{keys: NewKeyRegistry()}
	got := a.renderFooter(a.keys.HelpBindings(scopeBrowse))

	for _, want := range []string{"j/k", "navigate", "enter", "view details", "q", "quit"} {
		if !strings.Contains(got, want) {
			t.Errorf("footer missing %q:\n%s", want, got)
		}
	}
}
