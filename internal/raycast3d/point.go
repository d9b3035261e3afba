package raycast3d

// Point3 represents a position in 3D space.
type Point3 struct {
	X, Y, Z Real
}

// Origin is the coordinate-space zero point, where every camera ray starts.
func Origin() Point3 { return Point3{} }

// Add lets you translate a Point3 by a Vector3.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Vector returns the point as a displacement from the origin.
func (p Point3) Vector() Vector3 { return Vector3{p.X, p.Y, p.Z} }

// Transform applies m to the point taken as a coordinate vector through the origin.
func (p Point3) Transform(m Matrix3) Point3 {
	v := m.MulVec(p.Vector())
	return Point3{v.X, v.Y, v.Z}
}
