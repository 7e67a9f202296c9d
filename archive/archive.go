// Package archive bundles a batch of surface layers into a single rap
// recording, one embedded binary PLY per surface.
package archive

import (
	"bytes"
	"io"
	"strings"

	"github.com/EliCDavis/polyform/formats/ply"
	"github.com/recolude/rap/format"
	"github.com/recolude/rap/format/encoding"
	rapio "github.com/recolude/rap/format/io"
	"github.com/recolude/rap/format/metadata"

	"github.com/judithlutton/multichannel-surface/channel"
	"github.com/judithlutton/multichannel-surface/surface"
	"github.com/judithlutton/multichannel-surface/surfio"
	"github.com/judithlutton/multichannel-surface/viewer"
)

// Write serializes every surface layer into one recording named name.
// Entry names are de-duplicated the same way batch output paths are, so two
// layers saved as "a" become entries "a.ply" and "a0.ply". Layers of any
// other kind are skipped; zero surfaces still produce a valid, empty
// recording.
func Write(w io.Writer, name string, layers []*viewer.Layer) error {
	binaries := []format.Binary{}
	claimed := map[string]struct{}{}

	for _, l := range layers {
		if l == nil || l.Kind != viewer.KindSurface {
			continue
		}

		attrs := channel.Encode(l.Channels, l.Data.VertexCount())
		buf := bytes.Buffer{}
		if err := ply.Write(&buf, surface.ToMesh(l.Data, attrs), ply.BinaryLittleEndian, ""); err != nil {
			return err
		}

		entryName := l.Name
		if entryName == "" {
			entryName = "mesh0"
		}
		entry := surfio.Allocate(entryName, claimed, ".ply")
		claimed[entry] = struct{}{}

		binaries = append(binaries, rapio.NewBinary(entry, buf.Bytes(), metadata.NewBlock(map[string]metadata.Property{
			"points":   metadata.NewIntProperty(l.Data.VertexCount()),
			"faces":    metadata.NewIntProperty(l.Data.FaceCount()),
			"channels": metadata.NewStringProperty(strings.Join(viewer.ChannelNames(l), ",")),
		})))
	}

	recording := format.NewRecording(
		"surfaces",
		name,
		[]format.CaptureCollection{},
		nil,
		metadata.NewBlock(map[string]metadata.Property{
			"surfaces": metadata.NewIntProperty(len(binaries)),
		}),
		binaries,
		[]format.BinaryReference{},
	)

	writer := rapio.NewWriter([]encoding.Encoder{}, true, w, rapio.BST16)
	_, err := writer.Write(recording)
	return err
}
