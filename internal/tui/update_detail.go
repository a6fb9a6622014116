package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (a App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopeDetailModal, actionClose, msg):
		a.closeDetail()
		return a, nil
	case a.isAction(scopeDetailModal, actionQuit, msg):
		return a, tea.Quit
	case a.isAction(scopeDetailModal, actionNavigate, msg):
		// Selection follows the cursor while the detail stays open.
		a.moveCursor(msg.String())
		a.openDetail()
		return a, nil
	}
	// Unbound keys never dismiss the dialog.
	return a, nil
}

// openDetail snapshots the course under the cursor. The dialog shows the
// copy, so later changes to the filtered list leave it untouched.
func (a *App) openDetail() {
	courses := a.visibleCourses()
	if a.cursor < 0 || a.cursor >= len(courses) {
		return
	}
	course := courses[a.cursor]
	a.selected = &course
	a.showDetail = true
}

func (a *App) closeDetail() {
	a.showDetail = false
	a.selected = nil
}
