package archive

import (
	"bytes"
	"testing"

	"github.com/EliCDavis/vector/vector3"
	"github.com/stretchr/testify/require"

	"github.com/judithlutton/multichannel-surface/channel"
	"github.com/judithlutton/multichannel-surface/surface"
	"github.com/judithlutton/multichannel-surface/viewer"
)

func testLayer(name string) *viewer.Layer {
	table := channel.NewTable()
	table.Set("height", []float64{0, 20, 0, 10})
	return &viewer.Layer{
		Name: name,
		Kind: viewer.KindSurface,
		Data: surface.Surface{
			Points: []vector3.Float64{
				vector3.New(0., 0., 0.),
				vector3.New(0., 20., 20.),
				vector3.New(10., 0., 0.),
				vector3.New(10., 10., 10.),
			},
			Faces: []int{0, 1, 2, 1, 2, 3},
		},
		Channels: table,
	}
}

func TestWriteBundlesSurfaces(t *testing.T) {
	buf := bytes.Buffer{}

	err := Write(&buf, "session", []*viewer.Layer{
		testLayer("a"),
		testLayer("a"),
		{Name: "cloud", Kind: viewer.LayerKind("points")},
	})

	require.NoError(t, err)
	require.Positive(t, buf.Len())
}

func TestWriteEmptyBatch(t *testing.T) {
	buf := bytes.Buffer{}

	err := Write(&buf, "empty", nil)

	require.NoError(t, err)
	require.Positive(t, buf.Len())
}
