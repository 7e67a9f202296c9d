// Package picker is the interactive widget for choosing which channel of a
// surface layer is displayed as its vertex coloring.
package picker

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/judithlutton/multichannel-surface/viewer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F87AF")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type state int

const (
	pickSurface state = iota
	pickChannel
)

// LayersChangedMsg tells the widget the layer list changed. Watch turns
// list events into this message; anything else arriving here is ignored.
type LayersChangedMsg struct {
	Event viewer.Event
}

// Watch subscribes to the layer list and forwards every change into a
// running program, typically via (*tea.Program).Send.
func Watch(layers *viewer.LayerList, send func(tea.Msg)) {
	layers.Subscribe(func(e viewer.Event) {
		send(LayersChangedMsg{Event: e})
	})
}

type option string

func (o option) Title() string       { return string(o) }
func (o option) Description() string { return "" }
func (o option) FilterValue() string { return string(o) }

// Model is the channel picker. It owns its option lists: surfaces and
// channels are only ever replaced through refreshSurfaces and
// chooseSurface, never reset by the framework.
type Model struct {
	layers   *viewer.LayerList
	surfaces []*viewer.Layer
	channels []string
	current  *viewer.Layer
	applied  string
	status   string

	surfaceList list.Model
	channelList list.Model
	state       state
}

// New builds a picker over the given layer list.
func New(layers *viewer.LayerList) Model {
	m := Model{
		layers:      layers,
		surfaceList: newOptionList("Surface"),
		channelList: newOptionList("Channel"),
	}
	m.refreshSurfaces()
	return m
}

func newOptionList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New([]list.Item{}, delegate, 40, 14)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surfaceList.SetSize(msg.Width, msg.Height-6)
		m.channelList.SetSize(msg.Width, msg.Height-6)
		return m, nil

	case LayersChangedMsg:
		switch msg.Event.Type {
		case viewer.EventInserted, viewer.EventRemoved, viewer.EventMoved, viewer.EventReplaced:
			m.refreshSurfaces()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "enter":
			switch m.state {
			case pickSurface:
				if i := m.surfaceList.Index(); i >= 0 && i < len(m.surfaces) {
					m.chooseSurface(m.surfaces[i])
					m.state = pickChannel
				}
				return m, nil
			case pickChannel:
				if i := m.channelList.Index(); i >= 0 && i < len(m.channels) {
					m.applyChannel(m.channels[i])
				}
				return m, nil
			}

		case "esc":
			if m.state == pickChannel {
				m.state = pickSurface
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case pickSurface:
		m.surfaceList, cmd = m.surfaceList.Update(msg)
	case pickChannel:
		m.channelList, cmd = m.channelList.Update(msg)
	}
	return m, cmd
}

// refreshSurfaces recomputes the surface options from the layer list. The
// projection runs from scratch every time; layer churn is rare.
func (m *Model) refreshSurfaces() {
	m.surfaces = viewer.SurfaceLayers(m.layers.Layers())

	items := make([]list.Item, len(m.surfaces))
	stillPresent := false
	selected := 0
	for i, l := range m.surfaces {
		items[i] = option(l.Name)
		if l == m.current {
			stillPresent = true
			selected = i
		}
	}
	m.surfaceList.SetItems(items)
	m.surfaceList.Select(selected)

	if !stillPresent {
		m.chooseSurface(nil)
		m.state = pickSurface
	}
}

// chooseSurface recomputes the channel options for the selected layer,
// keeping the previously applied channel selected when it still exists.
func (m *Model) chooseSurface(l *viewer.Layer) {
	m.current = l
	m.channels = viewer.ChannelNames(l)

	items := make([]list.Item, len(m.channels))
	for i, name := range m.channels {
		items[i] = option(name)
	}
	m.channelList.SetItems(items)
	m.channelList.Select(0)

	for i, name := range m.channels {
		if name == m.applied {
			m.channelList.Select(i)
			break
		}
	}
}

func (m *Model) applyChannel(name string) {
	if !viewer.ApplyChannel(m.current, name) {
		return
	}
	m.applied = name
	lo, hi := valueRange(m.current.VertexValues)
	m.status = fmt.Sprintf("%s shown on %q (range %g to %g)", name, m.current.Name, lo, hi)
}

func valueRange(values []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Surface Channels"))
	b.WriteString("\n\n")

	switch m.state {
	case pickSurface:
		if len(m.surfaces) == 0 {
			b.WriteString(emptyStyle.Render("No surface layers loaded."))
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			return b.String()
		}
		b.WriteString(m.surfaceList.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose surface • q quit"))

	case pickChannel:
		if len(m.channels) == 0 {
			b.WriteString(emptyStyle.Render(fmt.Sprintf("%q carries no channel data.", m.current.Name)))
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("esc back • q quit"))
			return b.String()
		}
		b.WriteString(m.channelList.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter apply channel • esc back • q quit"))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}
