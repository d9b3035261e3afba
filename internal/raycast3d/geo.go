package raycast3d

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// GeoData is a polygon mesh in the .geo text format:
//
//	line 1: number of faces
//	line 2: vertex count of each face
//	line 3: vertex indices, faces concatenated
//	line 4: vertex coordinates, x y z per vertex
//	line 5: vertex normals, x y z per vertex (optional)
type GeoData struct {
	FaceSizes     []int
	VertexIndices []int
	Vertices      []Point3
	Normals       []Vector3
}

// LoadGeo reads a .geo file.
func LoadGeo(path string) (*GeoData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh: %w", err)
	}
	defer f.Close()
	g, err := ParseGeo(f)
	if err != nil {
		return nil, errorsmod.Wrap(err, path)
	}
	return g, nil
}

func ParseGeo(r io.Reader) (*GeoData, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read mesh: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < 4 {
		return nil, errorsmod.Wrapf(ErrMeshFormat, "expected at least 4 lines, got %d", len(lines))
	}

	numFaces, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || numFaces < 0 {
		return nil, errorsmod.Wrapf(ErrMeshFormat, "line 1: bad face count %q", strings.TrimSpace(lines[0]))
	}
	g := &GeoData{}
	if g.FaceSizes, err = parseInts(lines[1], 2); err != nil {
		return nil, err
	}
	if len(g.FaceSizes) != numFaces {
		return nil, errorsmod.Wrapf(ErrMeshFormat, "line 2: header says %d faces, found %d", numFaces, len(g.FaceSizes))
	}
	if g.VertexIndices, err = parseInts(lines[2], 3); err != nil {
		return nil, err
	}
	coords, err := parseFloats(lines[3], 4)
	if err != nil {
		return nil, err
	}
	for i := 0; i+2 < len(coords); i += 3 {
		g.Vertices = append(g.Vertices, Point3{coords[i], coords[i+1], coords[i+2]})
	}
	if len(lines) > 4 {
		normals, err := parseFloats(lines[4], 5)
		if err != nil {
			return nil, err
		}
		for i := 0; i+2 < len(normals); i += 3 {
			g.Normals = append(g.Normals, Vector3{normals[i], normals[i+1], normals[i+2]})
		}
	}
	DebugLog("Parsed mesh: %d faces, %d indices, %d vertices, %d normals", numFaces, len(g.VertexIndices), len(g.Vertices), len(g.Normals))
	return g, nil
}

func parseInts(line string, lineNo int) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, errorsmod.Wrapf(ErrMeshFormat, "line %d: bad integer %q", lineNo, f)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseFloats(line string, lineNo int) ([]Real, error) {
	fields := strings.Fields(line)
	if len(fields)%3 != 0 {
		return nil, errorsmod.Wrapf(ErrMeshFormat, "line %d: %d values is not a multiple of 3", lineNo, len(fields))
	}
	out := make([]Real, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil || !isFinite(x) {
			return nil, errorsmod.Wrapf(ErrMeshFormat, "line %d: bad number %q", lineNo, f)
		}
		out = append(out, x)
	}
	return out, nil
}

// FanTriangulate splits every n-gon into n-2 triangles sharing its first vertex and
// returns vertex indices, three per triangle.
func FanTriangulate(g *GeoData) ([]int, error) {
	var tris []int
	k := 0
	for i, n := range g.FaceSizes {
		if n < 3 {
			return nil, errorsmod.Wrapf(ErrMeshFormat, "face #%d has %d vertices", i, n)
		}
		if k+n > len(g.VertexIndices) {
			return nil, errorsmod.Wrapf(ErrMeshFormat, "face #%d needs indices %d..%d, only %d given", i, k, k+n-1, len(g.VertexIndices))
		}
		for j := 0; j < n-2; j++ {
			tris = append(tris, g.VertexIndices[k], g.VertexIndices[k+j+1], g.VertexIndices[k+j+2])
		}
		k += n
	}
	for _, idx := range tris {
		if idx >= len(g.Vertices) {
			return nil, errorsmod.Wrapf(ErrMeshFormat, "vertex index %d out of range (%d vertices)", idx, len(g.Vertices))
		}
	}
	return tris, nil
}

// MeshTransform places ingested geometry in the scene: optionally move the bounding
// box center to the origin, then rotate about the origin, then translate by Offset.
type MeshTransform struct {
	Center    bool
	Rotations []Rotation
	Offset    Vector3
}

func (tr MeshTransform) Apply(points []Point3) []Point3 {
	pts := points
	if tr.Center && len(points) > 0 {
		c := Bounds(points).Center()
		shift := Vector3{-c.X, -c.Y, -c.Z}
		pts = make([]Point3, len(points))
		for i, p := range points {
			pts[i] = p.Add(shift)
		}
	}
	out := transformPoints(pts, ComposeRotations(tr.Rotations))
	for i := range out {
		out[i] = out[i].Add(tr.Offset)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of points. Flat meshes give a box
// with zero extent on one axis; r3.Box.Union treats such boxes as empty, so the
// fold is done per component.
func Bounds(points []Point3) r3.Box {
	b := r3.Box{
		Min: r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
	for _, p := range points {
		b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
		b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	}
	return b
}

// Triangles fan-triangulates the mesh, transforms its vertices and paints every
// triangle with color. Zero-area triangles are dropped.
func (g *GeoData) Triangles(color Color, tr MeshTransform) ([]*Triangle, error) {
	idx, err := FanTriangulate(g)
	if err != nil {
		return nil, err
	}
	verts := tr.Apply(g.Vertices)
	out := make([]*Triangle, 0, len(idx)/3)
	skipped := 0
	for i := 0; i+2 < len(idx); i += 3 {
		t, err := NewTriangle(verts[idx[i]], verts[idx[i+1]], verts[idx[i+2]], color)
		if errors.Is(err, ErrDegenerateGeometry) {
			DebugLogOnce("Dropping zero-area mesh triangles, first: %v", err)
			skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	DebugLog("Mesh: %d triangles, %d degenerate skipped", len(out), skipped)
	return out, nil
}
