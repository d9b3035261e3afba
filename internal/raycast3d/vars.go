package raycast3d

var (
	Debug = false // set to true for verbose debug output
	// ParallelEpsilon: |direction·normal| below this is treated as a ray parallel to a plane
	// or triangle (no hit).
	ParallelEpsilon Real = 1e-6
	// Compile time checks to ensure that all primitive kinds implement the Primitive interface
	_ Primitive = (*Sphere)(nil)
	_ Primitive = (*Plane)(nil)
	_ Primitive = (*Triangle)(nil)
)
