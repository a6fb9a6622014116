package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/golfmatch/internal/catalog"
)

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := tea.MouseEvent(msg)

	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if !a.showDetail && a.fetch.Phase() == catalog.PhaseReady {
			a.moveCursor("up")
		}
		return a, nil
	case tea.MouseButtonWheelDown:
		if !a.showDetail && a.fetch.Phase() == catalog.PhaseReady {
			a.moveCursor("down")
		}
		return a, nil
	}

	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return a, nil
	}

	if a.showDetail {
		if a.modalRect().contains(ev.X, ev.Y) {
			// Clicks inside the dialog never dismiss it.
			return a, nil
		}
		a.closeDetail()
		return a, nil
	}

	if idx, ok := a.cardIndexAt(ev.Y); ok {
		a.cursor = idx
		a.ensureCursorInWindow()
		a.openDetail()
	}
	return a, nil
}
