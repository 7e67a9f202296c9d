// Package viewer holds the layer model shared by the file adapters and the
// channel picker: an ordered layer list with change notifications, and the
// pure projections the picker derives its option lists from.
package viewer

import (
	"github.com/judithlutton/multichannel-surface/channel"
	"github.com/judithlutton/multichannel-surface/surface"
)

// LayerKind tags what a layer holds. Only surfaces carry channel data.
type LayerKind string

const KindSurface LayerKind = "surface"

// Layer is one entry in the viewer: geometry, an optional channel table,
// and the scalar values currently displayed on the surface.
type Layer struct {
	Name         string
	Kind         LayerKind
	Data         surface.Surface
	Channels     *channel.Table
	VertexValues []float64
}

// EventType names a layer-list change.
type EventType string

const (
	EventInserted EventType = "inserted"
	EventRemoved  EventType = "removed"
	EventMoved    EventType = "moved"
	EventReplaced EventType = "replaced"
)

// Event describes one change to a LayerList.
type Event struct {
	Type  EventType
	Index int
}

// LayerList is an ordered collection of layers with change subscription.
// Not safe for concurrent use; the viewer is single-threaded.
type LayerList struct {
	layers []*Layer
	subs   []func(Event)
}

func NewLayerList(layers ...*Layer) *LayerList {
	l := &LayerList{}
	l.layers = append(l.layers, layers...)
	return l
}

// Subscribe registers fn for every subsequent change.
func (l *LayerList) Subscribe(fn func(Event)) {
	l.subs = append(l.subs, fn)
}

func (l *LayerList) notify(e Event) {
	for _, fn := range l.subs {
		fn(e)
	}
}

func (l *LayerList) Len() int {
	return len(l.layers)
}

// Layers returns the layers in display order.
func (l *LayerList) Layers() []*Layer {
	out := make([]*Layer, len(l.layers))
	copy(out, l.layers)
	return out
}

// Insert appends layer and notifies subscribers.
func (l *LayerList) Insert(layer *Layer) {
	l.layers = append(l.layers, layer)
	l.notify(Event{Type: EventInserted, Index: len(l.layers) - 1})
}

// Remove drops the layer at index i. Out-of-range indices are ignored.
func (l *LayerList) Remove(i int) {
	if i < 0 || i >= len(l.layers) {
		return
	}
	l.layers = append(l.layers[:i], l.layers[i+1:]...)
	l.notify(Event{Type: EventRemoved, Index: i})
}

// Move reorders the layer at from to position to.
func (l *LayerList) Move(from, to int) {
	if from < 0 || from >= len(l.layers) || to < 0 || to >= len(l.layers) || from == to {
		return
	}
	layer := l.layers[from]
	rest := append(l.layers[:from:from], l.layers[from+1:]...)
	l.layers = append(rest[:to:to], append([]*Layer{layer}, rest[to:]...)...)
	l.notify(Event{Type: EventMoved, Index: to})
}

// Replace swaps the layer at index i.
func (l *LayerList) Replace(i int, layer *Layer) {
	if i < 0 || i >= len(l.layers) {
		return
	}
	l.layers[i] = layer
	l.notify(Event{Type: EventReplaced, Index: i})
}

// SurfaceLayers projects the surface-kind layers out of a layer slice. The
// projection is recomputed from scratch on every change notification;
// layer-list churn is rare enough that this never shows up.
func SurfaceLayers(layers []*Layer) []*Layer {
	out := []*Layer{}
	for _, l := range layers {
		if l != nil && l.Kind == KindSurface {
			out = append(out, l)
		}
	}
	return out
}

// ChannelNames projects the selectable channel names of a layer. A layer
// without channel data, or whose table length disagrees with its vertex
// count, offers no channels.
func ChannelNames(l *Layer) []string {
	if l == nil || l.Channels == nil || l.Channels.Len() == 0 {
		return nil
	}
	if l.Channels.VertexCount() != l.Data.VertexCount() {
		return nil
	}
	return l.Channels.Names()
}

// ApplyChannel copies the named channel into the layer's displayed vertex
// values. Unknown names leave the layer untouched and report false.
func ApplyChannel(l *Layer, name string) bool {
	if l == nil || l.Channels == nil {
		return false
	}
	col, ok := l.Channels.Column(name)
	if !ok {
		return false
	}
	values := make([]float64, len(col))
	copy(values, col)
	l.VertexValues = values
	return true
}
