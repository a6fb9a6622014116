package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/golfmatch/internal/catalog"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	// Section titles
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	// App name in header
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	// Tagline next to the app name
	headerTagStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Background(colorMantle)

	// Loading / status text
	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	// Error text (fetch failures)
	errorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	// Section containers
	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// Modal overlay
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	// Help key styling — these inherit footer background via Inherit()
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// Card styles
	cardNameStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	cardLocationStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	cardDescStyle     = lipgloss.NewStyle().Foreground(colorSubtext1)
	cardPriceStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	cardHintStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	// Scroll indicator
	scrollStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
)

const ratingBarWidth = 20

// ---------------------------------------------------------------------------
// Section & chrome rendering
// ---------------------------------------------------------------------------

func renderHeader(appName string, width int) string {
	name := headerAppStyle.Render(appName)
	tag := headerTagStyle.Render("course directory")
	line1Content := name + "  " + tag

	if width <= 0 {
		return headerBarStyle.Render(line1Content)
	}
	style := headerBarStyle.Width(width)
	return style.Render(line1Content)
}

func (a App) renderSection(title, content string) string {
	contentWidth := a.sectionContentWidth()
	header := padRight(titleStyle.Render(title), contentWidth)
	sepStyle := lipgloss.NewStyle().Foreground(colorSurface2)
	separator := sepStyle.Render(strings.Repeat("─", contentWidth))
	sectionContent := header + "\n" + separator + "\n" + content
	section := listBoxStyle.Width(a.sectionWidth()).Render(sectionContent)
	if a.width == 0 {
		return section
	}
	return lipgloss.Place(a.width, lipgloss.Height(section), lipgloss.Center, lipgloss.Top, section)
}

func (a App) renderFooter(bindings []key.Binding) string {
	// Build help text where every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}

func (a App) renderStatus(text string, isErr bool) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	style := statusBarStyle
	if isErr {
		style = style.Foreground(colorError)
	}
	if a.width == 0 {
		return style.Render(flat)
	}
	return style.Width(a.width).Render(flat)
}

// ---------------------------------------------------------------------------
// Course list rendering
// ---------------------------------------------------------------------------

func (a App) browseView() string {
	filtered := a.visibleCourses()
	width := a.cardContentWidth()

	var body string
	if len(filtered) == 0 {
		body = statusStyle.Render(a.emptyPlaceholder())
	} else {
		body = renderCards(filtered, a.cursor, a.topIndex, a.visibleCards(), width)
	}
	title := fmt.Sprintf("Courses (%d)", len(filtered))
	return a.renderSection(title, body)
}

func (a App) emptyPlaceholder() string {
	if a.searchQuery != "" || a.minRating > 0 || a.maxPrice > 0 {
		return "No courses match the current filters."
	}
	return "No courses available."
}

func renderCards(courses []catalog.Course, cursor, topIndex, visible, width int) string {
	var lines []string

	end := topIndex + visible
	if end > len(courses) {
		end = len(courses)
	}
	for i := topIndex; i < end; i++ {
		lines = append(lines, renderCard(courses[i], i == cursor, width))
		if i < end-1 {
			lines = append(lines, "")
		}
	}

	// Scroll indicator
	total := len(courses)
	if total > 0 && visible > 0 {
		start := topIndex + 1
		endIdx := topIndex + visible
		if endIdx > total {
			endIdx = total
		}
		indicator := scrollStyle.Render(fmt.Sprintf("── showing %d-%d of %d ──", start, endIdx, total))
		lines = append(lines, "", indicator)
	}

	return strings.Join(lines, "\n")
}

// renderCard emits exactly four lines so the card grid stays aligned with
// the fixed row offsets used for mouse hit-testing.
func renderCard(c catalog.Course, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("> ")
	}
	textWidth := width - 2
	if textWidth < 10 {
		textWidth = 10
	}

	title := cardNameStyle.Render(c.Name) + cardLocationStyle.Render("  ·  "+c.Location)
	rating := statusStyle.Render(fmt.Sprintf("Difficulty: %g/5 ", c.DifficultyRating)) +
		renderRatingBar(c.DifficultyRating, ratingBarWidth) +
		"  " + cardPriceStyle.Render(c.PriceRange)
	desc := cardDescStyle.Render(c.Description)
	hint := cardHintStyle.Render("enter: view details")

	lines := []string{
		prefix + truncate(title, textWidth),
		"  " + truncate(rating, textWidth),
		"  " + truncate(desc, textWidth),
		"  " + truncate(hint, textWidth),
	}
	return strings.Join(lines, "\n")
}

// renderRatingBar draws a difficulty gauge where the filled share of cells
// tracks the rating as a percentage of the five-point scale.
func renderRatingBar(rating float64, width int) string {
	if width <= 0 {
		return ""
	}
	percent := catalog.RatingPercent(rating)
	filled := int(math.Round(percent / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	fillStyle := lipgloss.NewStyle().Foreground(difficultyColor(rating))
	trackStyle := lipgloss.NewStyle().Foreground(colorSurface1)
	return fillStyle.Render(strings.Repeat("█", filled)) + trackStyle.Render(strings.Repeat("░", width-filled))
}

// ---------------------------------------------------------------------------
// Phase views
// ---------------------------------------------------------------------------

func (a App) loadingView() string {
	text := a.spinner.View() + " " + statusStyle.Render("Loading courses...")
	return a.placeCentered(text)
}

func (a App) errorView() string {
	return a.placeCentered(errorStyle.Render(a.fetch.Message()))
}

func (a App) placeCentered(text string) string {
	if a.width == 0 || a.height == 0 {
		return text
	}
	boxHeight := a.height - 4
	if boxHeight < 1 {
		boxHeight = 1
	}
	return lipgloss.Place(a.width, boxHeight, lipgloss.Center, lipgloss.Center, text)
}

// ---------------------------------------------------------------------------
// Detail modal
// ---------------------------------------------------------------------------

func (a App) detailView() string {
	if a.selected == nil {
		return ""
	}
	c := *a.selected
	labelStyle := lipgloss.NewStyle().Foreground(colorSubtext0)

	lines := []string{
		titleStyle.Render(c.Name),
		cardLocationStyle.Render(c.Location),
		"",
		labelStyle.Render(fmt.Sprintf("%-12s", "Difficulty")) + " " +
			fmt.Sprintf("%g/5  ", c.DifficultyRating) + renderRatingBar(c.DifficultyRating, ratingBarWidth),
		labelStyle.Render(fmt.Sprintf("%-12s", "Price")) + " " + cardPriceStyle.Render(c.PriceRange),
		"",
		c.Description,
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Status line
// ---------------------------------------------------------------------------

func (a App) statusText() string {
	if a.status != "" {
		return a.status
	}
	switch a.fetch.Phase() {
	case catalog.PhasePending:
		return "Fetching courses..."
	case catalog.PhaseFailed:
		return "Course fetch failed"
	}

	filtered := a.visibleCourses()
	total := len(a.fetch.Courses())
	parts := []string{fmt.Sprintf("%d/%d courses", len(filtered), total)}
	if a.searchMode {
		parts = append(parts, "search: "+a.searchQuery+"▌")
	} else if a.searchQuery != "" {
		parts = append(parts, "search: "+a.searchQuery)
	}
	if a.minRating > 0 {
		parts = append(parts, fmt.Sprintf("difficulty ≥ %g", a.minRating))
	}
	if a.maxPrice > 0 {
		parts = append(parts, "price ≤ "+strings.Repeat("$", a.maxPrice))
	}
	if a.sortColumn != sortAsReceived || !a.sortAsc {
		dir := "asc"
		if !a.sortAsc {
			dir = "desc"
		}
		parts = append(parts, fmt.Sprintf("sort: %s %s", sortColumnName(a.sortColumn), dir))
	}
	return strings.Join(parts, "  ·  ")
}
