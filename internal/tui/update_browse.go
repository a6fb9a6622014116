package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/golfmatch/internal/config"
)

func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopeBrowse, actionQuit, msg):
		return a, tea.Quit
	case a.isAction(scopeBrowse, actionNavigate, msg):
		a.moveCursor(msg.String())
		return a, nil
	case a.isAction(scopeBrowse, actionSelect, msg):
		a.openDetail()
		return a, nil
	case a.isAction(scopeBrowse, actionSearch, msg):
		a.searchMode = true
		return a, nil
	case a.isAction(scopeBrowse, actionSort, msg):
		a.sortColumn = (a.sortColumn + 1) % sortColumnCount
		a.ensureCursorInWindow()
		return a, nil
	case a.isAction(scopeBrowse, actionSortDirection, msg):
		a.sortAsc = !a.sortAsc
		a.ensureCursorInWindow()
		return a, nil
	case a.isAction(scopeBrowse, actionFilterRating, msg):
		a.minRating = nextMinRating(a.minRating)
		a.resetWindow()
		return a, nil
	case a.isAction(scopeBrowse, actionFilterPrice, msg):
		a.maxPrice = nextMaxPrice(a.maxPrice)
		a.resetWindow()
		return a, nil
	case a.isAction(scopeBrowse, actionClearFilters, msg):
		a.searchQuery = ""
		a.minRating = 0
		a.maxPrice = 0
		a.resetWindow()
		return a, nil
	case a.isAction(scopeBrowse, actionJumpTop, msg):
		a.cursor = 0
		a.ensureCursorInWindow()
		return a, nil
	case a.isAction(scopeBrowse, actionJumpBottom, msg):
		a.cursor = len(a.visibleCourses()) - 1
		a.ensureCursorInWindow()
		return a, nil
	case a.isAction(scopeBrowse, actionRowsPerPage, msg):
		a.adjustRowsPerPage(msg.String())
		return a, nil
	}
	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopeSearch, actionClearSearch, msg):
		a.searchMode = false
		a.searchQuery = ""
		a.resetWindow()
		return a, nil
	case a.isAction(scopeSearch, actionConfirm, msg):
		a.searchMode = false
		a.searchQuery = strings.TrimSpace(a.searchQuery)
		a.ensureCursorInWindow()
		return a, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.searchQuery) > 0 {
			_, size := utf8.DecodeLastRuneInString(a.searchQuery)
			a.searchQuery = a.searchQuery[:len(a.searchQuery)-size]
		}
		a.resetWindow()
	case tea.KeySpace:
		a.searchQuery += " "
		a.resetWindow()
	case tea.KeyRunes:
		a.searchQuery += string(msg.Runes)
		a.resetWindow()
	}
	return a, nil
}

func (a *App) moveCursor(keyName string) {
	switch keyName {
	case "j", "down", "ctrl+n":
		a.cursor++
	case "k", "up", "ctrl+p":
		a.cursor--
	}
	a.ensureCursorInWindow()
}

// resetWindow rewinds the list to the top after the filtered set changes.
func (a *App) resetWindow() {
	a.cursor = 0
	a.topIndex = 0
	a.ensureCursorInWindow()
}

func (a *App) adjustRowsPerPage(keyName string) {
	rows := a.cfg.UI.RowsPerPage
	switch keyName {
	case "+", "=":
		rows++
	case "-":
		rows--
	default:
		return
	}
	if rows < 3 {
		rows = 3
	}
	if rows > 50 {
		rows = 50
	}
	if rows == a.cfg.UI.RowsPerPage {
		return
	}
	a.cfg.UI.RowsPerPage = rows
	if err := config.Save(a.cfg); err != nil {
		a.setError(fmt.Sprintf("Save settings failed: %v", err))
	} else {
		a.setStatus(fmt.Sprintf("Cards per page: %d (saved)", rows))
	}
	a.ensureCursorInWindow()
}
