package raycast3d

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// a unit quad and a triangle sharing an edge, with normals
const quadAndTriGeo = `2
4 3
0 1 2 3 1 4 2
0 0 0  1 0 0  1 1 0  0 1 0  2 0.5 0
0 0 1  0 0 1  0 0 1  0 0 1  0 0 1
`

func TestParseGeo(t *testing.T) {
	g, err := ParseGeo(strings.NewReader(quadAndTriGeo))
	require.NoError(t, err)
	require.Equal(t, []int{4, 3}, g.FaceSizes)
	require.Equal(t, []int{0, 1, 2, 3, 1, 4, 2}, g.VertexIndices)
	require.Len(t, g.Vertices, 5)
	require.Equal(t, Point3{2, 0.5, 0}, g.Vertices[4])
	require.Len(t, g.Normals, 5)
}

func TestParseGeoWithoutNormals(t *testing.T) {
	g, err := ParseGeo(strings.NewReader("1\r\n3\r\n0 1 2\r\n0 0 0 1 0 0 0 1 0"))
	require.NoError(t, err)
	require.Len(t, g.Vertices, 3)
	require.Empty(t, g.Normals)
}

func TestParseGeoErrors(t *testing.T) {
	for name, in := range map[string]string{
		"too short":        "1\n3\n0 1 2",
		"bad count":        "x\n3\n0 1 2\n0 0 0 1 0 0 0 1 0",
		"count mismatch":   "2\n3\n0 1 2\n0 0 0 1 0 0 0 1 0",
		"negative index":   "1\n3\n0 -1 2\n0 0 0 1 0 0 0 1 0",
		"ragged coords":    "1\n3\n0 1 2\n0 0 0 1 0 0 0 1",
		"bad coord":        "1\n3\n0 1 2\n0 0 0 1 0 0 0 one 0",
		"non-finite coord": "1\n3\n0 1 2\n0 0 0 1 0 0 0 Inf 0",
		"ragged normals":   "1\n3\n0 1 2\n0 0 0 1 0 0 0 1 0\n0 0",
	} {
		_, err := ParseGeo(strings.NewReader(in))
		require.ErrorIs(t, err, ErrMeshFormat, name)
	}
}

func TestFanTriangulate(t *testing.T) {
	g, err := ParseGeo(strings.NewReader(quadAndTriGeo))
	require.NoError(t, err)
	idx, err := FanTriangulate(g)
	require.NoError(t, err)
	// quad 0 1 2 3 -> (0 1 2) (0 2 3); triangle 1 4 2 as is
	require.Equal(t, []int{0, 1, 2, 0, 2, 3, 1, 4, 2}, idx)

	hex := &GeoData{FaceSizes: []int{6}, VertexIndices: []int{0, 1, 2, 3, 4, 5}, Vertices: make([]Point3, 6)}
	idx, err = FanTriangulate(hex)
	require.NoError(t, err)
	require.Len(t, idx, 3*4)
}

func TestFanTriangulateErrors(t *testing.T) {
	_, err := FanTriangulate(&GeoData{FaceSizes: []int{2}, VertexIndices: []int{0, 1}, Vertices: make([]Point3, 2)})
	require.ErrorIs(t, err, ErrMeshFormat)

	_, err = FanTriangulate(&GeoData{FaceSizes: []int{4}, VertexIndices: []int{0, 1, 2}, Vertices: make([]Point3, 4)})
	require.ErrorIs(t, err, ErrMeshFormat)

	_, err = FanTriangulate(&GeoData{FaceSizes: []int{3}, VertexIndices: []int{0, 1, 7}, Vertices: make([]Point3, 3)})
	require.ErrorIs(t, err, ErrMeshFormat)
}

func TestMeshTransform(t *testing.T) {
	pts := []Point3{{0, 0, 0}, {2, 4, 6}}
	b := Bounds(pts)
	require.Equal(t, 2.0, b.Max.X)
	require.Equal(t, 6.0, b.Max.Z)
	require.Equal(t, 0.0, b.Min.Y)

	out := MeshTransform{Center: true}.Apply(pts)
	require.Equal(t, []Point3{{-1, -2, -3}, {1, 2, 3}}, out)
	require.Equal(t, Point3{0, 0, 0}, pts[0], "input untouched")

	out = MeshTransform{Offset: Vector3{0, 0, -10}}.Apply(pts)
	require.Equal(t, []Point3{{0, 0, -10}, {2, 4, -4}}, out)

	out = MeshTransform{Rotations: []Rotation{{AxisZ, 1.5707963267948966}}, Offset: Vector3{1, 0, 0}}.Apply([]Point3{{1, 0, 0}})
	require.True(t, nearPoint(out[0], Point3{1, 1, 0}, 1e-12), "%+v", out[0])
}

func TestGeoTrianglesAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.geo")
	// second face is degenerate (all on one line) and gets dropped
	src := "2\n3 3\n0 1 2 0 1 3\n0 0 0 1 0 0 0 1 0 2 0 0\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	g, err := LoadGeo(path)
	require.NoError(t, err)
	tris, err := g.Triangles(Color{9, 9, 9}, MeshTransform{Offset: Vector3{0, 0, -5}})
	require.NoError(t, err)
	require.Len(t, tris, 1)
	require.Equal(t, Point3{0, 1, -5}, tris[0].Point3)
	require.Equal(t, Color{9, 9, 9}, tris[0].Color)

	_, err = LoadGeo(filepath.Join(dir, "missing.geo"))
	require.Error(t, err)
}

func TestBundledPyramidScene(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "scenes", "pyramid.yaml"))
	require.NoError(t, err)
	s, err := cfg.Scene()
	require.NoError(t, err)
	// floor plane + square base (2 triangles) + 4 sides
	require.Len(t, s.Primitives, 7)
}

func TestBoundsOfFlatMesh(t *testing.T) {
	// all points in z = -2; the box keeps its zero depth
	pts := []Point3{{-1, 3, -2}, {5, -1, -2}, {2, 0, -2}}
	b := Bounds(pts)
	require.Equal(t, r3.Vec{X: -1, Y: -1, Z: -2}, b.Min)
	require.Equal(t, r3.Vec{X: 5, Y: 3, Z: -2}, b.Max)
	require.Equal(t, r3.Vec{X: 2, Y: 1, Z: -2}, b.Center())

	out := MeshTransform{Center: true}.Apply(pts)
	require.Equal(t, []Point3{{-3, 2, 0}, {3, -2, 0}, {0, -1, 0}}, out)

	single := Bounds([]Point3{{1, 2, 3}})
	require.Equal(t, single.Min, single.Max)
}
