package surfio

import (
	"os"
	"path/filepath"

	"github.com/EliCDavis/polyform/formats/ply"
	"go.uber.org/zap"

	"github.com/judithlutton/multichannel-surface/channel"
	"github.com/judithlutton/multichannel-surface/surface"
	"github.com/judithlutton/multichannel-surface/viewer"
)

// defaultLayerName names output files for layers saved without a name.
const defaultLayerName = "mesh0"

// Job pairs a surface layer with the output path allocated for it.
type Job struct {
	Path  string
	Layer *viewer.Layer
}

// PlanBatch assigns one collision-free output path per surface layer, in
// input order. Layers of any other kind contribute nothing.
func PlanBatch(dir string, layers []*viewer.Layer) []Job {
	claimed := map[string]struct{}{}
	jobs := []Job{}
	for _, l := range layers {
		if l == nil || l.Kind != viewer.KindSurface {
			continue
		}
		name := l.Name
		if name == "" {
			name = defaultLayerName
		}
		path := Allocate(filepath.Join(dir, name), claimed, DefaultExtension)
		claimed[path] = struct{}{}
		jobs = append(jobs, Job{Path: path, Layer: l})
	}
	return jobs
}

// WriteSurface writes one layer to path as binary PLY, channel table
// included as scalar vertex attributes. Returns the written path as a
// single-element list.
func WriteSurface(path string, l *viewer.Layer) ([]string, error) {
	attrs := channel.Encode(l.Channels, l.Data.VertexCount())
	mesh := surface.ToMesh(l.Data, attrs)

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := ply.Write(f, mesh, ply.BinaryLittleEndian, ""); err != nil {
		return nil, err
	}
	logger.Debug("wrote surface",
		zap.String("path", path),
		zap.Int("points", l.Data.VertexCount()),
		zap.Int("channels", len(attrs)))
	return []string{path}, nil
}

// WriteBatch writes every surface layer into dir, creating it when needed.
// A dir that already exists as a plain file cannot hold a batch; nothing is
// written and the returned path list is empty. On a write failure the paths
// produced so far are returned with the error.
func WriteBatch(dir string, layers []*viewer.Layer) ([]string, error) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		logger.Warn("batch target is an existing file, nothing written",
			zap.String("path", dir))
		return nil, nil
	}

	// the directory is created even when the batch holds no surfaces,
	// matching the single-surface writer's "target dir always exists" view
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	written := []string{}
	for _, job := range PlanBatch(dir, layers) {
		paths, err := WriteSurface(job.Path, job.Layer)
		if err != nil {
			return written, err
		}
		written = append(written, paths...)
	}
	return written, nil
}
