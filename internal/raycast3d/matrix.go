package raycast3d

// 3×3 matrix (row-major)
type Matrix3 struct {
	Row1, Row2, Row3 Vector3
}

func Identity3() Matrix3 {
	return Matrix3{
		Row1: Vector3{1, 0, 0},
		Row2: Vector3{0, 1, 0},
		Row3: Vector3{0, 0, 1},
	}
}

// MulVec applies the matrix by row-wise dot product.
func (A Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{A.Row1.Dot(v), A.Row2.Dot(v), A.Row3.Dot(v)}
}

func (A Matrix3) Transpose() Matrix3 {
	return Matrix3{
		Row1: Vector3{A.Row1.X, A.Row2.X, A.Row3.X},
		Row2: Vector3{A.Row1.Y, A.Row2.Y, A.Row3.Y},
		Row3: Vector3{A.Row1.Z, A.Row2.Z, A.Row3.Z},
	}
}

// Mul returns A·B, so (A·B)v == A(Bv).
func (A Matrix3) Mul(B Matrix3) Matrix3 {
	T := B.Transpose()
	return Matrix3{
		Row1: T.MulVec(A.Row1),
		Row2: T.MulVec(A.Row2),
		Row3: T.MulVec(A.Row3),
	}
}
