package fabric

// DefaultTolerance is the boundary tolerance that keeps a 150x150 grid free
// of spurious gaps along the triangle edges.
const DefaultTolerance = 0.005

// Barycentric is a point expressed as weights of the three triangle apexes.
// The zero value marks a point lying outside the triangle.
type Barycentric struct {
	A, B, C float64
}

// OffTriangle reports whether b is the off-triangle sentinel.
// An accepted coordinate always sums to one, so the exact zero test is enough.
func (b Barycentric) OffTriangle() bool {
	return b.A+b.B+b.C == 0
}

// CartesianToBarycentric is the inverse of BarycentricToCartesian.
// Every weight has to stay within [-tol, 1+tol], otherwise the zero
// Barycentric is returned. The weights are checked in order and the
// remaining ones are not computed once a check fails. tol must not be negative.
func CartesianToBarycentric(x, y float64, apex Apex, tol float64) Barycentric {
	if apex == ApexDown {
		y = -y
	}
	x /= scale
	a := (y + offset) / scale
	if outside(a, tol) {
		return Barycentric{}
	}
	b := -(x*sqrt3 - 1 + a) / 2
	if outside(b, tol) {
		return Barycentric{}
	}
	c := 1 - a - b
	if outside(c, tol) {
		return Barycentric{}
	}
	return Barycentric{A: a, B: b, C: c}
}

// outside is written as a negated inside test so that a NaN weight or
// tolerance rejects the point.
func outside(w, tol float64) bool {
	return !(w >= -tol && w <= 1+tol)
}
