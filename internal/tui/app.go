package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/golfmatch/internal/catalog"
	"github.com/jask/golfmatch/internal/config"
)

const appName = "GolfMatch"

// App is the top-level bubbletea model for the course browser.
//
// One fetch is started per App lifetime. Its outcome is tracked by a shared
// FetchState so late results observed after the collection settles (or after
// the screen is replaced) are dropped instead of re-applied.
type App struct {
	ctx context.Context
	cfg config.Config
	src catalog.Source

	fetch *catalog.FetchState

	width  int
	height int

	cursor   int
	topIndex int

	selected   *catalog.Course
	showDetail bool

	searchMode  bool
	searchQuery string
	minRating   float64
	maxPrice    int
	sortColumn  int
	sortAsc     bool

	spinner spinner.Model
	keys    *KeyRegistry

	status    string
	statusErr bool // true if status is an error (render in Red)
}

func New(ctx context.Context, cfg config.Config, src catalog.Source) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	a := App{
		ctx:     ctx,
		cfg:     cfg,
		src:     src,
		fetch:   catalog.NewFetchState(),
		sortAsc: true,
		spinner: sp,
		keys:    NewKeyRegistry(),
	}

	overrides, err := loadKeymap(a.keys.ExportKeybindingConfig())
	if err != nil {
		a.setError("keymap: " + err.Error())
		return a
	}
	if err := a.keys.ApplyKeybindingConfig(overrides); err != nil {
		a.setError("keymap: " + err.Error())
	}
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.fetchCourses())
}

// fetchCourses starts the one-shot course load. The result message carries
// the fetch identity so stale or already-settled fetches ignore it.
func (a App) fetchCourses() tea.Cmd {
	id := a.fetch.ID()
	src := a.src
	ctx := a.ctx
	return func() tea.Msg {
		courses, err := src.FetchCourses(ctx)
		return fetchDoneMsg{fetchID: id, courses: courses, err: err}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ensureCursorInWindow()
		return a, nil

	case fetchDoneMsg:
		return a.handleFetchDone(msg)

	case spinner.TickMsg:
		if a.fetch.Settled() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		a.setStatus("")
		if a.showDetail {
			return a.updateDetail(msg)
		}
		if a.searchMode {
			return a.updateSearch(msg)
		}
		return a.updateBrowse(msg)
	}
	return a, nil
}

func (a App) handleFetchDone(msg fetchDoneMsg) (tea.Model, tea.Cmd) {
	if !a.fetch.Accepts(msg.fetchID) {
		return a, nil
	}
	if msg.err != nil {
		a.fetch.Fail(catalog.FailureMessage)
		return a, nil
	}
	a.fetch.Resolve(msg.courses)
	a.ensureCursorInWindow()
	return a, nil
}

func (a App) View() string {
	header := renderHeader(appName, a.width)
	statusLine := a.renderStatus(a.statusText(), a.statusErr)
	footer := a.renderFooter(a.footerBindings())

	var body string
	switch a.fetch.Phase() {
	case catalog.PhaseFailed:
		body = a.errorView()
	case catalog.PhaseReady:
		body = a.browseView()
	default:
		body = a.loadingView()
	}

	main := header + "\n\n" + body

	if a.showDetail && a.selected != nil {
		return a.composeModal(main, statusLine, footer, a.detailView())
	}
	return a.placeWithFooter(main, statusLine, footer)
}

func (a App) isAction(scope string, action Action, msg tea.KeyMsg) bool {
	reg := a.keys
	if reg == nil {
		reg = NewKeyRegistry()
	}
	b := reg.Lookup(msg.String(), scope)
	return b != nil && b.Action == action
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(msg string) {
	a.status = msg
	a.statusErr = true
}

// messages
type fetchDoneMsg struct {
	fetchID string
	courses []catalog.Course
	err     error
}
