package raycast3d

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testTriangle(t *testing.T) *Triangle {
	tr, err := NewTriangle(Point3{-1, -1, -5}, Point3{1, -1, -5}, Point3{0, 1, -5}, Color{0, 0, 255})
	require.NoError(t, err)
	return tr
}

func TestTriangleHitReturnsDistance(t *testing.T) {
	tr := testTriangle(t)
	require.Equal(t, Vector3{0, 0, 4}, tr.FaceNormal())

	tHit, ok := tr.Intersect(Ray{Origin: Origin(), Direction: Vector3{0, 0, -1}})
	require.True(t, ok)
	require.InDelta(t, 5.0, tHit, 1e-12)

	r := Ray{Origin: Point3{0.25, 0, 3}, Direction: Vector3{0, 0, -1}}
	tHit, ok = tr.Intersect(r)
	require.True(t, ok)
	require.InDelta(t, 8.0, tHit, 1e-12)
}

func TestTriangleMissOutsideEdges(t *testing.T) {
	tr := testTriangle(t)
	for _, target := range []Vector3{{3, 0, -5}, {0, -2, -5}, {-0.9, 0.9, -5}} {
		_, ok := tr.Intersect(Ray{Origin: Origin(), Direction: target.Norm()})
		require.False(t, ok, "target %+v", target)
	}
}

func TestTriangleWindingDoesNotMatter(t *testing.T) {
	cw, err := NewTriangle(Point3{-1, -1, -5}, Point3{0, 1, -5}, Point3{1, -1, -5}, Color{})
	require.NoError(t, err)
	tHit, ok := cw.Intersect(Ray{Origin: Origin(), Direction: Vector3{0, 0, -1}})
	require.True(t, ok)
	require.InDelta(t, 5.0, tHit, 1e-12)
}

func TestTriangleParallelAndBehind(t *testing.T) {
	tr := testTriangle(t)
	_, ok := tr.Intersect(Ray{Origin: Point3{-5, 0, -5}, Direction: Vector3{1, 0, 0}})
	require.False(t, ok, "ray in the triangle plane")

	_, ok = tr.Intersect(Ray{Origin: Origin(), Direction: Vector3{0, 0, 1}})
	require.False(t, ok, "triangle behind the ray")
}

func TestNewTriangleRejectsDegenerate(t *testing.T) {
	_, err := NewTriangle(Point3{0, 0, 0}, Point3{1, 1, 1}, Point3{2, 2, 2}, Color{})
	require.ErrorIs(t, err, ErrDegenerateGeometry)
	_, err = NewTriangle(Point3{1, 0, 0}, Point3{1, 0, 0}, Point3{0, 1, 0}, Color{})
	require.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestDegenerateTriangleLiteralNeverHits(t *testing.T) {
	collinear := &Triangle{Point1: Point3{-1, 0, -5}, Point2: Point3{0, 0, -5}, Point3: Point3{1, 0, -5}}
	for _, d := range []Vector3{{0, 0, -1}, {0.1, 0, -1}, {0, 1, 0}} {
		_, ok := collinear.Intersect(Ray{Origin: Origin(), Direction: d.Norm()})
		require.False(t, ok, "direction %+v", d)
	}
	same := &Triangle{Point1: Point3{0, 0, -5}, Point2: Point3{0, 0, -5}, Point3: Point3{0, 0, -5}}
	_, ok := same.Intersect(Ray{Origin: Origin(), Direction: Vector3{0, 0, -1}})
	require.False(t, ok)
}

func TestZeroDirectionNeverHits(t *testing.T) {
	zero := Ray{Origin: Origin(), Direction: Vector3{}}
	for _, p := range []Primitive{
		// ray origin inside the sphere
		&Sphere{Radius: 2},
		&Sphere{Center: Point3{0, 0, -5}, Radius: 1},
		&Plane{Origin: Point3{0, -1, 0}, Normal: Vector3{0, 1, 0}},
		testTriangle(t),
	} {
		_, ok := p.Intersect(zero)
		require.False(t, ok, Kind(p))
	}
	_, ok := (&Scene{Primitives: []Primitive{&Sphere{Radius: 2}}}).Trace(zero)
	require.False(t, ok)
}
