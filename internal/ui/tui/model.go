// Package tui implements the interactive directory browser: facet filter
// groups, the matching networks and the report card of the chosen network.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/biobank-directory/dirview/internal/application/store"
	"github.com/biobank-directory/dirview/internal/domain/entities"
	"github.com/biobank-directory/dirview/internal/ui/components"
	"github.com/biobank-directory/dirview/internal/ui/render"
	"github.com/biobank-directory/dirview/internal/ui/view"
)

// Pane identifies the focused area of the browser.
type Pane int

const (
	PaneFilters Pane = iota
	PaneResults
)

// narrowWidth is the terminal width below which panes are stacked.
const narrowWidth = 80

// Options configure a browser Model.
type Options struct {
	Logger             *slog.Logger
	Facets             []entities.Facet
	Styles             render.Styles
	MaxVisibleOptions  int
	InitiallyCollapsed bool
}

// reportLoadedMsg reports the outcome of a network report fetch.
type reportLoadedMsg struct {
	err error
	id  string
}

// Model is the bubbletea model of the browser.
type Model struct {
	ctx      context.Context
	store    *store.Store
	logger   *slog.Logger
	renderer *render.Renderer
	styles   render.Styles
	card     *components.NetworkReportCard
	dirty    *atomic.Bool
	err      error
	groups   []*components.CheckboxFilters
	results  []entities.Network
	pane     Pane
	focus    int
	cursor   int
	width    int
	quitting bool
	report   bool
}

// New creates a browser over st. Filter groups are built from opts.Facets
// and write their selections back to st.
func New(ctx context.Context, st *store.Store, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Model{
		ctx:      ctx,
		store:    st,
		logger:   logger,
		renderer: render.New(opts.Styles),
		styles:   opts.Styles,
		card:     components.NewNetworkReportCard(st),
		dirty:    &atomic.Bool{},
	}

	for _, facet := range opts.Facets {
		name := facet.Name
		props := components.CheckboxFiltersProps{
			Name:               name,
			Label:              facet.Label,
			Options:            facet.Options,
			Value:              st.Filter(name),
			MaxVisibleOptions:  opts.MaxVisibleOptions,
			InitiallyCollapsed: opts.InitiallyCollapsed,
		}
		m.groups = append(m.groups, components.NewCheckboxFilters(props, func(ids []string) {
			st.SetFilter(name, ids)
		}))
	}

	st.Subscribe(func(mu store.Mutation) {
		if mu.Type == store.MutationSetFilter {
			m.dirty.Store(true)
		}
	})

	m.sync()
	return m
}

// sync feeds store state back into the filter groups and refreshes results.
func (m *Model) sync() {
	for _, g := range m.groups {
		props := g.Props()
		props.Value = m.store.Filter(props.Name)
		g.SetProps(props)
	}

	results, err := m.store.FilteredNetworks(m.ctx)
	if err != nil {
		m.logger.Error("failed to filter networks", "error", err)
		m.err = err
	}
	m.results = results
	m.cursor = clamp(m.cursor, len(m.results))
	m.dirty.Store(false)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case reportLoadedMsg:
		m.err = msg.err
		if msg.err != nil {
			m.logger.Warn("network report unavailable", "network", msg.id, "error", msg.err)
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	if m.dirty.Load() {
		m.sync()
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return tea.Quit
	case "tab", "shift+tab":
		if m.pane == PaneFilters {
			m.pane = PaneResults
		} else {
			m.pane = PaneFilters
		}
	case "esc":
		m.report = false
	case "left", "h":
		if m.report {
			m.card.NextTab(-1)
		}
	case "right", "l":
		if m.report {
			m.card.NextTab(1)
		}
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case " ", "enter":
		return m.activate()
	}
	return nil
}

func (m *Model) move(delta int) {
	if m.pane == PaneFilters {
		m.focus = clamp(m.focus+delta, len(m.interactives()))
		return
	}
	m.cursor = clamp(m.cursor+delta, len(m.results))
}

func (m *Model) activate() tea.Cmd {
	if m.pane == PaneFilters {
		targets := m.interactives()
		if len(targets) == 0 {
			return nil
		}
		targets[clamp(m.focus, len(targets))].Click()
		// Local toggles change the number of controls.
		m.focus = clamp(m.focus, len(m.interactives()))
		return nil
	}

	if len(m.results) == 0 {
		return nil
	}
	id := m.results[m.cursor].ID
	m.report = true
	m.store.Navigate("/network/" + id)
	return m.loadReport(id)
}

func (m *Model) loadReport(id string) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		return reportLoadedMsg{id: id, err: st.LoadNetworkReportForRoute(ctx)}
	}
}

// interactives lists the focusable controls of every filter group in order.
func (m *Model) interactives() []*view.Node {
	var out []*view.Node
	for _, g := range m.groups {
		out = append(out, g.Render().Interactives()...)
	}
	return out
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	focusIdx := -1
	if m.pane == PaneFilters {
		if n := len(m.interactives()); n > 0 {
			focusIdx = clamp(m.focus, n)
		}
	}

	// Each group tree is rendered once so the focused node belongs to the tree drawn.
	var left []string
	offset := 0
	for _, g := range m.groups {
		root := g.Render()
		r := m.renderer
		targets := root.Interactives()
		if focusIdx >= offset && focusIdx < offset+len(targets) {
			r = r.WithFocus(targets[focusIdx-offset])
		}
		offset += len(targets)
		left = append(left, r.Render(root))
	}

	right := []string{m.styles.Header.Render(fmt.Sprintf("Networks (%d)", len(m.results)))}
	for i, n := range m.results {
		line := fmt.Sprintf("  %s  %s", n.ID, n.Title())
		if m.pane == PaneResults && i == m.cursor {
			line = render.FocusMarker + " " + m.styles.Focused.Render(fmt.Sprintf("%s  %s", n.ID, n.Title()))
		}
		right = append(right, line)
	}

	if m.report {
		right = append(right, "", m.renderer.Render(m.card.Render()))
	}
	if m.err != nil {
		right = append(right, "", m.styles.No.Render("error: "+m.err.Error()))
	}

	filters := strings.Join(left, "\n\n")
	results := strings.Join(right, "\n")
	var body string
	if m.width > 0 && m.width < narrowWidth {
		body = lipgloss.JoinVertical(lipgloss.Left, filters, "", results)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().MarginRight(2).Render(filters), results)
	}

	help := m.styles.Muted.Render("tab: switch pane • j/k: move • space/enter: toggle/open • h/l: report tabs • esc: close report • q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.Title.Render("dirview"), "", body, "", help)
}

// Pane returns the focused pane.
func (m *Model) Pane() Pane { return m.pane }

// Results returns the networks currently listed.
func (m *Model) Results() []entities.Network { return m.results }

// Groups returns the filter groups.
func (m *Model) Groups() []*components.CheckboxFilters { return m.groups }

// ShowingReport reports whether the report card is open.
func (m *Model) ShowingReport() bool { return m.report }

// clamp bounds i to [0, n).
func clamp(i, n int) int {
	if n <= 0 {
		return 0
	}
	return min(max(i, 0), n-1)
}
