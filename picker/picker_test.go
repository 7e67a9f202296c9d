package picker

import (
	"testing"

	"github.com/EliCDavis/vector/vector3"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/judithlutton/multichannel-surface/channel"
	"github.com/judithlutton/multichannel-surface/surface"
	"github.com/judithlutton/multichannel-surface/viewer"
)

func surfaceLayer(name string, channels ...string) *viewer.Layer {
	l := &viewer.Layer{
		Name: name,
		Kind: viewer.KindSurface,
		Data: surface.Surface{
			Points: []vector3.Float64{
				vector3.New(0., 0., 0.),
				vector3.New(1., 0., 0.),
				vector3.New(0., 1., 0.),
				vector3.New(0., 0., 1.),
			},
			Faces: []int{0, 1, 2, 1, 2, 3},
		},
	}
	if len(channels) > 0 {
		t := channel.NewTable()
		for i, name := range channels {
			t.Set(name, []float64{float64(i), 1, 2, 3})
		}
		l.Channels = t
	}
	return l
}

func enter() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} }
func esc() tea.Msg   { return tea.KeyMsg{Type: tea.KeyEsc} }

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestNewProjectsSurfaceOptions(t *testing.T) {
	layers := viewer.NewLayerList(
		surfaceLayer("bunny", "data0"),
		&viewer.Layer{Name: "cloud", Kind: viewer.LayerKind("points")},
		surfaceLayer("torus"),
	)

	m := New(layers)

	require.Len(t, m.surfaces, 2)
	require.Equal(t, "bunny", m.surfaces[0].Name)
	require.Equal(t, "torus", m.surfaces[1].Name)
}

func TestLayersChangedRefreshesOptions(t *testing.T) {
	layers := viewer.NewLayerList(surfaceLayer("bunny", "data0"))
	m := New(layers)
	require.Len(t, m.surfaces, 1)

	layers.Insert(surfaceLayer("torus", "data0"))
	m = update(t, m, LayersChangedMsg{Event: viewer.Event{Type: viewer.EventInserted, Index: 1}})

	require.Len(t, m.surfaces, 2)
}

func TestRemovingCurrentSurfaceClearsChannels(t *testing.T) {
	layers := viewer.NewLayerList(surfaceLayer("bunny", "data0", "data1"))
	m := New(layers)
	m = update(t, m, enter())
	require.Equal(t, pickChannel, m.state)
	require.Len(t, m.channels, 2)

	layers.Remove(0)
	m = update(t, m, LayersChangedMsg{Event: viewer.Event{Type: viewer.EventRemoved, Index: 0}})

	require.Equal(t, pickSurface, m.state)
	require.Nil(t, m.current)
	require.Empty(t, m.channels)
}

func TestEnterAppliesSelectedChannel(t *testing.T) {
	bunny := surfaceLayer("bunny", "data0", "data1")
	layers := viewer.NewLayerList(bunny)
	m := New(layers)

	m = update(t, m, enter()) // choose surface
	m = update(t, m, enter()) // apply first channel

	require.Equal(t, "data0", m.applied)
	require.Equal(t, []float64{0, 1, 2, 3}, bunny.VertexValues)
	require.Contains(t, m.status, "data0")
}

func TestAppliedChannelPreservedAcrossSurfaceChange(t *testing.T) {
	bunny := surfaceLayer("bunny", "data0", "data1")
	torus := surfaceLayer("torus", "data0", "data1")
	layers := viewer.NewLayerList(bunny, torus)
	m := New(layers)

	m = update(t, m, enter())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, enter())
	require.Equal(t, "data1", m.applied)

	// back out and pick the other surface: data1 stays selected
	m = update(t, m, esc())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, enter())
	require.Same(t, torus, m.current)
	require.Equal(t, 1, m.channelList.Index())
}

func TestSurfaceWithoutChannels(t *testing.T) {
	layers := viewer.NewLayerList(surfaceLayer("bare"))
	m := New(layers)

	m = update(t, m, enter())

	require.Equal(t, pickChannel, m.state)
	require.Empty(t, m.channels)
	require.Contains(t, m.View(), "no channel data")
}

func TestQuitKeys(t *testing.T) {
	m := New(viewer.NewLayerList())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
}
