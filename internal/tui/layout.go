package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/golfmatch/internal/catalog"
)

// Card rows are laid out at fixed offsets below the header so mouse events
// can be mapped back to list indices without re-measuring the frame.
const (
	cardHeight    = 5 // four content lines plus a separator
	cardRegionTop = 5 // header, gap, box border, section title, rule
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (a App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Ensure every line is full-width to prevent ghosting from previous frames
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, a.width)
	}
	main = strings.Join(lines, "\n")
	return main + "\n" + statusLine + "\n" + footer
}

func (a App) composeModal(base, statusLine, footer, content string) string {
	baseView := a.placeWithFooter(base, statusLine, footer)
	if a.height == 0 || a.width == 0 {
		return baseView + "\n\n" + content
	}
	modal := a.renderModal(content)
	r := a.modalRectFor(modal)
	targetHeight := a.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	return overlayAt(baseView, modal, r.x, r.y, a.width, targetHeight)
}

func (a App) renderModal(content string) string {
	modalContent := lipgloss.NewStyle().Width(min(60, a.width-10)).Render(content)
	return modalStyle.Render(modalContent)
}

// modalRect reports where the detail dialog lands on screen. Update uses it
// to tell backdrop clicks from clicks inside the dialog, so it must agree
// with composeModal.
func (a App) modalRect() rect {
	if a.height == 0 || a.width == 0 {
		return rect{}
	}
	return a.modalRectFor(a.renderModal(a.detailView()))
}

func (a App) modalRectFor(modal string) rect {
	lines := splitLines(modal)
	w := maxLineWidth(lines)
	h := len(lines)
	targetHeight := a.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	x := (a.width - w) / 2
	if x < 0 {
		x = 0
	}
	y := (targetHeight - h) / 2
	if y < 0 {
		y = 0
	}
	return rect{x: x, y: y, w: w, h: h}
}

func (a App) footerBindings() []key.Binding {
	if a.showDetail {
		return a.keys.HelpBindings(scopeDetailModal)
	}
	if a.searchMode {
		return a.keys.HelpBindings(scopeSearch)
	}
	return a.keys.HelpBindings(scopeBrowse)
}

func (a *App) visibleCards() int {
	maxCards := a.cfg.UI.RowsPerPage
	if maxCards <= 0 {
		maxCards = 10
	}
	if a.height == 0 {
		return min(4, maxCards)
	}
	frameV := listBoxStyle.GetVerticalFrameSize()
	headerHeight := 1
	headerGap := 1
	sectionHeaderHeight := sectionHeaderLineCount()
	scrollIndicator := 1
	available := a.height - 2 - headerHeight - headerGap - frameV - sectionHeaderHeight - scrollIndicator
	cards := available / cardHeight
	if cards < 1 {
		cards = 1
	}
	if cards > maxCards {
		cards = maxCards
	}
	return cards
}

// cardIndexAt maps a screen row to an index into the filtered course list.
// Separator rows and rows outside the card region report no hit.
func (a *App) cardIndexAt(y int) (int, bool) {
	if a.fetch.Phase() != catalog.PhaseReady {
		return 0, false
	}
	rel := y - cardRegionTop
	if rel < 0 {
		return 0, false
	}
	if rel%cardHeight == cardHeight-1 {
		return 0, false
	}
	idx := rel / cardHeight
	if idx >= a.visibleCards() {
		return 0, false
	}
	i := a.topIndex + idx
	if i >= len(a.visibleCourses()) {
		return 0, false
	}
	return i, true
}

func (a *App) cardContentWidth() int {
	if a.width == 0 {
		return 80
	}
	contentWidth := a.sectionContentWidth()
	if contentWidth < 20 {
		return 20
	}
	return contentWidth
}

func (a *App) sectionContentWidth() int {
	if a.width == 0 {
		return 80
	}
	frameH := listBoxStyle.GetHorizontalFrameSize()
	contentWidth := a.sectionWidth() - frameH
	if contentWidth < 1 {
		contentWidth = 1
	}
	return contentWidth
}

func (a *App) sectionWidth() int {
	if a.width == 0 {
		return 80
	}
	width := a.width - 4
	if width < 20 {
		width = a.width
	}
	return width
}

func (a *App) ensureCursorInWindow() {
	visible := a.visibleCards()
	if visible <= 0 {
		return
	}
	filtered := a.visibleCourses()
	total := len(filtered)
	if a.cursor >= total {
		a.cursor = total - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor < a.topIndex {
		a.topIndex = a.cursor
	} else if a.cursor >= a.topIndex+visible {
		a.topIndex = a.cursor - visible + 1
	}
	maxTop := total - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if a.topIndex > maxTop {
		a.topIndex = maxTop
	}
	if a.topIndex < 0 {
		a.topIndex = 0
	}
}

func sectionHeaderLineCount() int {
	return 2
}
