package swr

import "math"

// Mat4 is a row-major 4x4 matrix. Vectors are transformed as row
// vectors: v' = v * M, so composing transforms reads left to right in
// the order they are applied (RotateAxis(...).Mul(Translate4(...))
// rotates, then translates).
type Mat4 struct {
	M [4][4]float64
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	var m Mat4
	m.M[0][0], m.M[1][1], m.M[2][2], m.M[3][3] = 1, 1, 1, 1
	return m
}

// Translate4 returns a translation matrix.
func Translate4(x, y, z float64) Mat4 {
	m := Identity4()
	m.M[3][0], m.M[3][1], m.M[3][2] = x, y, z
	return m
}

// Scale4 returns a non-uniform scaling matrix.
func Scale4(x, y, z float64) Mat4 {
	m := Identity4()
	m.M[0][0], m.M[1][1], m.M[2][2] = x, y, z
	return m
}

// RotateAxis returns a matrix that rotates theta radians about the axis
// (x,y,z), built from the equivalent unit quaternion.
func RotateAxis(x, y, z, theta float64) Mat4 {
	qsin := math.Sin(theta * 0.5)
	qcos := math.Cos(theta * 0.5)
	w := qcos
	axis := V3(x, y, z).Normalize()
	x, y, z = axis.X*qsin, axis.Y*qsin, axis.Z*qsin

	var m Mat4
	m.M[0][0] = 1 - 2*y*y - 2*z*z
	m.M[1][0] = 2*x*y - 2*w*z
	m.M[2][0] = 2*x*z + 2*w*y
	m.M[0][1] = 2*x*y + 2*w*z
	m.M[1][1] = 1 - 2*x*x - 2*z*z
	m.M[2][1] = 2*y*z - 2*w*x
	m.M[0][2] = 2*x*z - 2*w*y
	m.M[1][2] = 2*y*z + 2*w*x
	m.M[2][2] = 1 - 2*x*x - 2*y*y
	m.M[3][3] = 1
	return m
}

// LookAtLH builds a left-handed view matrix from an eye position, a
// target point, and an up direction.
func LookAtLH(eye, at, up Vec3) Mat4 {
	zaxis := at.Sub(eye).Normalize()
	xaxis := up.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	var m Mat4
	setCol4(&m, 0, xaxis.X, xaxis.Y, xaxis.Z, -eye.Dot(xaxis))
	setCol4(&m, 1, yaxis.X, yaxis.Y, yaxis.Z, -eye.Dot(yaxis))
	setCol4(&m, 2, zaxis.X, zaxis.Y, zaxis.Z, -eye.Dot(zaxis))
	setCol4(&m, 3, 0, 0, 0, 1)
	return m
}

func setCol4(m *Mat4, col int, a, b, c, d float64) {
	m.M[0][col], m.M[1][col], m.M[2][col], m.M[3][col] = a, b, c, d
}

// PerspectiveFovLH builds a left-handed perspective projection matrix
// equivalent to D3DXMatrixPerspectiveFovLH: fovy is the vertical field
// of view in radians, aspect is width/height, zn and zf are the near
// and far plane distances. Maps view-space z into [0,1] after the
// perspective divide.
func PerspectiveFovLH(fovy, aspect, zn, zf float64) Mat4 {
	fax := 1 / math.Tan(fovy*0.5)
	var m Mat4
	m.M[0][0] = fax / aspect
	m.M[1][1] = fax
	m.M[2][2] = zf / (zf - zn)
	m.M[3][2] = -zn * zf / (zf - zn)
	m.M[2][3] = 1
	return m
}

// Mul returns the matrix product m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.M[j][k] * other.M[k][i]
			}
			out.M[j][i] = sum
		}
	}
	return out
}

// MulVec4 transforms v as a row vector: v * m.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	a := [4]float64{v.X, v.Y, v.Z, v.W}
	var b [4]float64
	for i := 0; i < 4; i++ {
		b[i] = a[0]*m.M[0][i] + a[1]*m.M[1][i] + a[2]*m.M[2][i] + a[3]*m.M[3][i]
	}
	return Vec4{X: b[0], Y: b[1], Z: b[2], W: b[3]}
}

// MulPoint transforms a 3D point (implicit w=1) and returns xyz.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(V4(v.X, v.Y, v.Z, 1)).XYZ()
}

// MulDir transforms a 3D direction (implicit w=0, no translation) and
// returns xyz.
func (m Mat4) MulDir(v Vec3) Vec3 {
	return m.MulVec4(V4(v.X, v.Y, v.Z, 0)).XYZ()
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			out.M[j][i] = m.M[i][j]
		}
	}
	return out
}

// minor3 returns the determinant of the 3x3 matrix left after deleting
// row and col from m.
func minor3(m Mat4, row, col int) float64 {
	var sub [3][3]float64
	sr := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		sc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			sub[sr][sc] = m.M[r][c]
			sc++
		}
		sr++
	}
	return sub[0][0]*(sub[1][1]*sub[2][2]-sub[1][2]*sub[2][1]) -
		sub[0][1]*(sub[1][0]*sub[2][2]-sub[1][2]*sub[2][0]) +
		sub[0][2]*(sub[1][0]*sub[2][1]-sub[1][1]*sub[2][0])
}

func cofactor4(m Mat4, row, col int) float64 {
	c := minor3(m, row, col)
	if (row+col)%2 != 0 {
		c = -c
	}
	return c
}

// Det returns the determinant, computed by cofactor expansion along
// the first row.
func (m Mat4) Det() float64 {
	var sum float64
	for i := 0; i < 4; i++ {
		sum += m.M[0][i] * cofactor4(m, 0, i)
	}
	return sum
}

// Inverse returns the matrix inverse via the adjoint (transposed
// cofactor matrix) divided by the determinant. Returns the identity
// matrix if m is singular.
func (m Mat4) Inverse() Mat4 {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return Identity4()
	}
	var adj Mat4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			adj.M[j][i] = cofactor4(m, i, j)
		}
	}
	invDet := 1 / det
	var out Mat4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			out.M[j][i] = adj.M[j][i] * invDet
		}
	}
	return out
}

// NormalMatrix returns the matrix that correctly transforms normal
// vectors under a (possibly non-uniform-scaling) model matrix: the
// transpose of the inverse.
func NormalMatrix(model Mat4) Mat4 {
	return model.Inverse().Transpose()
}
