package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tui "github.com/charmbracelet/bubbletea"
	styles "github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"
	"go.uber.org/zap"

	"github.com/keilerkonzept/worldcup-dashboard/internal/worldcup"
)

const dashboardTitle = "FIFA World Cup Winners Dashboard"

var (
	selectedColor = styles.AdaptiveColor{Light: "0", Dark: "9"}
	borderColor   = styles.AdaptiveColor{Light: "#555", Dark: "#555"}
	selectedFg    = styles.NewStyle().Foreground(selectedColor)
	borderFg      = styles.NewStyle().Foreground(borderColor)
	titleStyle    = styles.NewStyle().Bold(true).Padding(0, 1)
	outputStyle   = styles.NewStyle().Padding(0, 1).MarginTop(1)
	paneStyle     = styles.NewStyle().
			BorderStyle(styles.NormalBorder()).
			BorderForeground(borderColor)
)

var focusedPaneStyle = paneStyle.BorderForeground(selectedColor)

type focus int

const (
	focusCountry focus = iota
	focusYear
)

type optionItem struct {
	worldcup.Option
}

func (i optionItem) Title() string       { return i.Label }
func (i optionItem) Description() string { return "" }
func (i optionItem) FilterValue() string { return i.Label }

type model struct {
	width, height  int
	leftPaneWidth  int
	rightPaneWidth int

	state   *worldcup.DashboardState
	scale   colorScale
	metrics *deriveMetrics
	log     *zap.Logger

	focus     focus
	countries list.Model
	years     list.Model
	help      help.Model
	plot      *plot.Canvas
	logScale  bool
	showStats bool
}

func newModel(state *worldcup.DashboardState, scale colorScale, metrics *deriveMetrics, log *zap.Logger) *model {
	const (
		defaultWidth  = 80
		defaultHeight = 24
	)

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = styles.NewStyle().
		Border(styles.NormalBorder(), false, false, false, true).
		BorderForeground(borderColor).
		Foreground(selectedColor).
		Padding(0, 0, 0, 1)
	d.ShowDescription = false
	d.SetSpacing(0)

	m := &model{
		state:     state,
		scale:     scale,
		metrics:   metrics,
		log:       log,
		countries: newSelector(state.CountryOptions(), d),
		years:     newSelector(state.YearOptions(), d),
		help:      help.New(),
		logScale:  config.LogScale,
		showStats: config.StatsEnabled,
	}
	selectValue(&m.countries, state.Country())
	selectValue(&m.years, worldcup.FormatYear(state.Year()))

	m.width, m.height = defaultWidth, defaultHeight
	m.leftPaneWidth, m.rightPaneWidth = computePaneWidths(defaultWidth, config.ViewSplit)
	m.plot = newIntensityPlot(m.rightPaneWidth-2, config.PlotMinHeight, state.WinTable().Len())
	m.updatePlot()
	return m
}

func newSelector(opts []worldcup.Option, d list.DefaultDelegate) list.Model {
	items := make([]list.Item, len(opts))
	for i, o := range opts {
		items[i] = optionItem{o}
	}
	l := list.New(items, d, 20, 10)
	l.Styles.NoItems = l.Styles.NoItems.Padding(0, 2)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.FilterInput.Cursor.SetMode(cursor.CursorStatic)
	return l
}

func selectValue(l *list.Model, value string) {
	for i, it := range l.Items() {
		if it.(optionItem).Value == value {
			l.Select(i)
			return
		}
	}
}

func (m *model) focused() *list.Model {
	if m.focus == focusYear {
		return &m.years
	}
	return &m.countries
}

func (m *model) Init() tui.Cmd {
	return nil
}

func (m *model) Update(msg tui.Msg) (tui.Model, tui.Cmd) {
	switch msg := msg.(type) {
	case tui.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tui.KeyMsg:
		if m.focused().FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tui.Quit
		case key.Matches(msg, keys.Focus):
			m.focus = (m.focus + 1) % 2
			return m, nil
		case key.Matches(msg, keys.Reset):
			l := m.focused()
			l.ResetFilter()
			l.Select(0)
			m.syncSelection()
			return m, nil
		case key.Matches(msg, keys.Scale):
			m.logScale = !m.logScale
			m.updatePlot()
			return m, nil
		case key.Matches(msg, keys.Stats):
			m.showStats = !m.showStats
			m.metrics.setEnabled(m.showStats)
			m.resize(m.width, m.height)
			return m, nil
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize(m.width, m.height)
			return m, nil
		}
	}
	l := m.focused()
	var cmd tui.Cmd
	*l, cmd = l.Update(msg)
	m.syncSelection()
	return m, cmd
}

// syncSelection turns the list cursors into selection events.
func (m *model) syncSelection() worldcup.Output {
	var changed worldcup.Output
	if it, ok := m.countries.SelectedItem().(optionItem); ok && it.Value != m.state.Country() {
		m.metrics.observeEvent()
		changed |= m.state.Apply(worldcup.CountrySelected{Country: it.Value})
		m.log.Debug("Country selected", zap.String("country", it.Value), zap.Stringer("outputs", changed))
	}
	if it, ok := m.years.SelectedItem().(optionItem); ok {
		year, err := worldcup.ParseYear(it.Value)
		if err != nil {
			m.log.Warn("Ignoring year option", zap.String("value", it.Value), zap.Error(err))
		} else if year != m.state.Year() {
			m.metrics.observeEvent()
			out := m.state.Apply(worldcup.YearSelected{Year: year})
			changed |= out
			m.log.Debug("Year selected", zap.Int("year", year), zap.Stringer("outputs", out))
		}
	}
	if changed.Has(worldcup.OutputMap) {
		m.updatePlot()
	}
	return changed
}

func (m *model) bottomLines() int {
	lines := 1 // help
	if m.help.ShowAll {
		lines = len(keys.FullHelp()) + 1
	}
	lines += 4 // two summaries with top margins
	if m.showStats {
		lines += 5
	}
	return lines
}

func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	m.leftPaneWidth, m.rightPaneWidth = computePaneWidths(m.width, config.ViewSplit)
	m.help.Width = w

	available := max(4, m.height-m.bottomLines()-1)
	// Each selector sits in a bordered box (2 lines) with a title line.
	listHeight := max(1, (available-6)/2)
	listWidth := max(1, m.leftPaneWidth-2)
	m.countries.SetSize(listWidth, listHeight)
	m.years.SetSize(listWidth, listHeight)

	// Right side: title, choropleth rows, blank, legend, plot, all in a border.
	rows := m.state.WinTable().Len() + 3
	plotHeight := max(config.PlotMinHeight, available-rows-2)
	m.plot = newIntensityPlot(m.rightPaneWidth-2, plotHeight, m.state.WinTable().Len())
	m.updatePlot()
}

func (m *model) updatePlot() {
	fillIntensityPlot(m.plot, m.state.WinTable(), m.state.Map(), m.logScale)
}

func (m *model) View() string {
	header := titleStyle.Render(dashboardTitle)

	countryPane, yearPane := paneStyle, paneStyle
	if m.focus == focusYear {
		yearPane = focusedPaneStyle
	} else {
		countryPane = focusedPaneStyle
	}
	left := styles.JoinVertical(styles.Left,
		countryPane.Render(styles.JoinVertical(styles.Left, borderFg.Render(" Country"), m.countries.View())),
		yearPane.Render(styles.JoinVertical(styles.Left, borderFg.Render(" Year"), m.years.View())),
	)

	innerWidth := max(1, m.rightPaneWidth-2)
	mapView := m.state.Map()
	scaleHint := "LIN"
	if m.logScale {
		scaleHint = "LOG"
	}
	right := paneStyle.Render(styles.JoinVertical(styles.Left,
		borderFg.Render(" "+mapTitle),
		renderChoropleth(mapView, m.scale, m.state.Country(), innerWidth),
		m.plot.String(),
		borderFg.Render(" intensity plot "+scaleHint),
	))

	view := styles.JoinVertical(styles.Left,
		header,
		styles.JoinHorizontal(styles.Top, left, right),
		outputStyle.Render(m.state.CountrySummary()),
		outputStyle.Render(m.state.YearSummary()),
	)
	if m.showStats {
		view = styles.JoinVertical(styles.Left, view, m.statsView())
	}
	return styles.JoinVertical(styles.Left, view, m.help.View(keys))
}

func (m *model) statsView() string {
	snap := m.metrics.snapshot()
	statsStyle := styles.NewStyle().Foreground(styles.AdaptiveColor{Light: "1", Dark: "9"})
	lines := []string{
		"PERF STATS",
		fmt.Sprintf("events: %d  derivations: %d", snap.events, snap.derivations),
		"map: " + formatLatency(snap.mapLatency),
		"year: " + formatLatency(snap.yearLatency),
		"country: " + formatLatency(snap.ctyLatency),
	}
	return statsStyle.Render(strings.Join(lines, "\n"))
}

func formatLatency(s durationStats) string {
	return fmt.Sprintf("last %s avg %s max %s",
		formatMetricDuration(s.last), formatMetricDuration(s.avg), formatMetricDuration(s.max))
}

func formatMetricDuration(d time.Duration) string {
	if d <= 0 {
		return "0.000ms"
	}
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}

func computePaneWidths(totalWidth int, splitPercent int) (left, right int) {
	if totalWidth <= 1 {
		return 1, 1
	}
	left = totalWidth * splitPercent / 100
	left = min(max(left, 1), totalWidth-1)
	right = totalWidth - left

	// Keep panes readable when the terminal is wide enough.
	const minPane = 18
	if totalWidth >= minPane*2 {
		if left < minPane {
			left = minPane
			right = totalWidth - left
		}
		if right < minPane {
			right = minPane
			left = totalWidth - right
		}
	}
	return left, right
}
