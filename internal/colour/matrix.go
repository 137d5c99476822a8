package colour

import "math"

// mat3 is a 3x3 matrix in row-major order.
type mat3 [9]float64

// apply returns m·v.
func (m *mat3) apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// mul returns m·n.
func (m *mat3) mul(n *mat3) mat3 {
	var out mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3]*n[c] + m[r*3+1]*n[3+c] + m[r*3+2]*n[6+c]
		}
	}
	return out
}

// scaled returns m with every element multiplied by s.
func (m mat3) scaled(s float64) mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// inverse returns the inverse of m. Singular matrices are not expected for
// the fixed colourspace matrices this package uses.
func (m *mat3) inverse() mat3 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	det := a*A + b*B + c*C

	inv := mat3{
		A, -(b*i - c*h), b*f - c*e,
		B, a*i - c*g, -(a*f - c*d),
		C, -(a*h - b*g), a*e - b*d,
	}
	return inv.scaled(1 / det)
}

// spow is the sign-preserving power: sign(x)·|x|^p.
func spow(x, p float64) float64 {
	if x < 0 {
		return -math.Pow(-x, p)
	}
	return math.Pow(x, p)
}
