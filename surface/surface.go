// Package surface models triangular surface geometry and converts it to and
// from the mesh representation used by the file layer.
package surface

import (
	"sort"

	"github.com/EliCDavis/polyform/modeling"
	"github.com/EliCDavis/vector/vector3"

	"github.com/judithlutton/multichannel-surface/channel"
)

// CellKind identifies the connectivity of one cell block in a source mesh.
type CellKind int

const (
	CellUnknown CellKind = iota
	CellVertex
	CellLine
	CellTriangle
	CellQuad
)

func (k CellKind) String() string {
	switch k {
	case CellVertex:
		return "vertex"
	case CellLine:
		return "line"
	case CellTriangle:
		return "triangle"
	case CellQuad:
		return "quad"
	}
	return "unknown"
}

// CellBlock is one run of same-kind cells, indices flattened in cell order.
type CellBlock struct {
	Kind    CellKind
	Indices []int
}

// TriangleFaces returns the indices of the first triangle block, or an
// empty slice when no triangle block exists. All other cell kinds are
// ignored; a surface without triangles is still a valid (faceless) surface.
func TriangleFaces(blocks []CellBlock) []int {
	for _, b := range blocks {
		if b.Kind != CellTriangle {
			continue
		}
		out := make([]int, len(b.Indices))
		copy(out, b.Indices)
		return out
	}
	return []int{}
}

// Surface is vertex positions plus a flat triangle index list.
type Surface struct {
	Points []vector3.Float64
	Faces  []int
}

func (s Surface) VertexCount() int {
	return len(s.Points)
}

func (s Surface) FaceCount() int {
	return len(s.Faces) / 3
}

// FromMesh extracts surface geometry and per-vertex attributes from a
// parsed mesh. Faces come from the mesh indices only when the topology is
// triangular; point clouds and other topologies yield a faceless surface.
// Attributes are returned scalars first, then width-2, then width-3, names
// sorted within each group, so decoding is deterministic.
func FromMesh(m modeling.Mesh) (Surface, []channel.Attribute) {
	s := Surface{Points: []vector3.Float64{}}
	if m.HasFloat3Attribute(modeling.PositionAttribute) {
		s.Points = float3Slice(m, modeling.PositionAttribute)
	}

	indices := m.Indices()
	flat := make([]int, indices.Len())
	for i := 0; i < indices.Len(); i++ {
		flat[i] = indices.At(i)
	}
	blocks := []CellBlock{}
	switch m.Topology() {
	case modeling.TriangleTopology:
		blocks = append(blocks, CellBlock{Kind: CellTriangle, Indices: flat})
	case modeling.PointTopology:
		blocks = append(blocks, CellBlock{Kind: CellVertex, Indices: flat})
	default:
		blocks = append(blocks, CellBlock{Kind: CellUnknown, Indices: flat})
	}
	s.Faces = TriangleFaces(blocks)

	attrs := []channel.Attribute{}
	for _, name := range sortedNames(m.Float1Attributes()) {
		attrs = append(attrs, channel.Scalar(name, float1Slice(m, name)))
	}
	for _, name := range sortedNames(m.Float2Attributes()) {
		view := m.Float2Attribute(name)
		data := make([]float64, 0, view.Len()*2)
		for i := 0; i < view.Len(); i++ {
			v := view.At(i)
			data = append(data, v.X(), v.Y())
		}
		attrs = append(attrs, channel.Attribute{Name: name, Rows: view.Len(), Width: 2, Data: data})
	}
	for _, name := range sortedNames(m.Float3Attributes()) {
		if name == modeling.PositionAttribute {
			continue
		}
		view := m.Float3Attribute(name)
		data := make([]float64, 0, view.Len()*3)
		for i := 0; i < view.Len(); i++ {
			v := view.At(i)
			data = append(data, v.X(), v.Y(), v.Z())
		}
		attrs = append(attrs, channel.Attribute{Name: name, Rows: view.Len(), Width: 3, Data: data})
	}

	return s, attrs
}

// ToMesh rebuilds a mesh from surface geometry plus scalar attributes.
// Vector attributes never appear here: encoded channel tables only carry
// width-1 attributes, and anything else is skipped. A faceless surface
// becomes a point cloud.
func ToMesh(s Surface, attrs []channel.Attribute) modeling.Mesh {
	mesh := modeling.EmptyMesh(modeling.PointTopology)
	if len(s.Faces) > 0 {
		mesh = modeling.NewTriangleMesh(s.Faces)
	}
	mesh = mesh.SetFloat3Attribute(modeling.PositionAttribute, s.Points)
	for _, a := range attrs {
		if a.Width != 1 || a.Rows != s.VertexCount() {
			continue
		}
		mesh = mesh.SetFloat1Attribute(a.Name, a.Data)
	}
	return mesh
}

func float1Slice(m modeling.Mesh, attr string) []float64 {
	view := m.Float1Attribute(attr)
	out := make([]float64, view.Len())
	for i := 0; i < view.Len(); i++ {
		out[i] = view.At(i)
	}
	return out
}

func float3Slice(m modeling.Mesh, attr string) []vector3.Float64 {
	view := m.Float3Attribute(attr)
	out := make([]vector3.Float64, view.Len())
	for i := 0; i < view.Len(); i++ {
		out[i] = view.At(i)
	}
	return out
}

func sortedNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}
