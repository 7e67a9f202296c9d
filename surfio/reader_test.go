package surfio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanRead(t *testing.T) {
	require.True(t, CanRead("bunny.ply"))
	require.True(t, CanRead("BUNNY.PLY"))
	require.False(t, CanRead("bunny.stl"))
	require.False(t, CanRead("bunny"))
}

func TestReaderSuffixGate(t *testing.T) {
	require.Nil(t, Reader())
	require.Nil(t, Reader("fake.file"))
	require.NotNil(t, Reader("mesh.ply"))
	// batches are assumed homogeneous: only the first path is checked
	require.NotNil(t, Reader("mesh.ply", "other.xyz"))
}

func TestReadSurfaceMissingFile(t *testing.T) {
	_, err := ReadSurface(filepath.Join(t.TempDir(), "absent.ply"))

	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnreadable)
}

func TestReadSurfaceGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.ply")
	require.NoError(t, os.WriteFile(path, []byte("not a mesh at all\n"), 0o644))

	_, err := ReadSurface(path)

	require.ErrorIs(t, err, ErrUnreadable)
}

func TestReadAllReadsEveryPath(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.ply", "b.ply"} {
		p := filepath.Join(dir, name)
		_, err := WriteSurface(p, testLayer(name))
		require.NoError(t, err)
		paths = append(paths, p)
	}

	layers, err := ReadAll(paths...)

	require.NoError(t, err)
	require.Len(t, layers, 2)
	require.Equal(t, "a", layers[0].Name)
	require.Equal(t, "b", layers[1].Name)
	for _, l := range layers {
		require.Equal(t, 4, l.Data.VertexCount())
		require.Equal(t, 2, l.Data.FaceCount())
	}
}

func TestReadAllStopsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ply")
	_, err := WriteSurface(good, testLayer("good"))
	require.NoError(t, err)
	bad := filepath.Join(dir, "bad.ply")
	require.NoError(t, os.WriteFile(bad, []byte("junk"), 0o644))

	layers, err := ReadAll(good, bad)

	require.ErrorIs(t, err, ErrUnreadable)
	require.Nil(t, layers)
}