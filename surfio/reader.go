// Package surfio reads and writes surface layers through the PLY mesh
// format and allocates collision-free output paths for write batches.
package surfio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/EliCDavis/polyform/formats/ply"
	"go.uber.org/zap"

	"github.com/judithlutton/multichannel-surface/channel"
	"github.com/judithlutton/multichannel-surface/surface"
	"github.com/judithlutton/multichannel-surface/viewer"
)

// ErrUnreadable is returned when the mesh library cannot parse a file.
// The parser's own diagnostics are deliberately dropped; callers get one
// generic failure regardless of cause.
var ErrUnreadable = errors.New("surface file is not in a readable format")

var readableExtensions = map[string]bool{
	".ply": true,
}

// DefaultExtension is applied to output names written without a suffix.
const DefaultExtension = ".ply"

// CanRead reports whether path has a suffix the reader understands.
func CanRead(path string) bool {
	return readableExtensions[strings.ToLower(filepath.Ext(path))]
}

// ReadFunc reads every given path into a layer record.
type ReadFunc func(paths ...string) ([]*viewer.Layer, error)

// Reader returns a function able to read the given paths, or nil when they
// are not readable. Only the first path's suffix is checked: batches are
// assumed homogeneous, so one readable path means all are.
func Reader(paths ...string) ReadFunc {
	if len(paths) == 0 || !CanRead(paths[0]) {
		return nil
	}
	return ReadAll
}

// ReadAll reads each path in order into a layer record.
func ReadAll(paths ...string) ([]*viewer.Layer, error) {
	layers := make([]*viewer.Layer, 0, len(paths))
	for _, p := range paths {
		layer, err := ReadSurface(p)
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

// ReadSurface reads one surface file into a layer record. Per-vertex
// attributes whose shape matches the vertex count are decoded into the
// layer's channel table; mismatched attributes are dropped without error.
// A mesh carrying no usable per-vertex data yields a layer without a
// channel table.
func ReadSurface(path string) (*viewer.Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mesh, err := ply.ReadMesh(f)
	if err != nil {
		logger.Warn("mesh parse failed",
			zap.String("path", path),
			zap.Error(err))
		return nil, ErrUnreadable
	}

	s, attrs := surface.FromMesh(*mesh)
	layer := &viewer.Layer{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Kind: viewer.KindSurface,
		Data: s,
	}

	table := channel.Decode(s.VertexCount(), attrs)
	if table.Clobbered() > 0 {
		logger.Warn("channel names collided, last write wins",
			zap.String("path", path),
			zap.Int("collisions", table.Clobbered()))
	}
	if table.Len() > 0 {
		layer.Channels = table
	}
	return layer, nil
}
