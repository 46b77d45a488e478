package fabric

import "sort"

// Eigen holds the normalized eigenvalues of an orientation tensor,
// ordered so that E1 >= E2 >= E3 and E1+E2+E3 = 1.
type Eigen struct {
	E1, E2, E3 float64
}

// Isotropic is the eigen-system of a random (unoriented) fabric.
var Isotropic = Eigen{E1: 1.0 / 3, E2: 1.0 / 3, E3: 1.0 / 3}

// PGR is the Point, Girdle, Random index triplet of a fabric.
// For normalized and descending eigenvalues P+G+R = 1.
type PGR struct {
	P, G, R float64
}

// EigenToPGR derives the PGR index of an eigen-system.
// The eigenvalues are expected to be sorted descending and normalized;
// this is not checked and the result is meaningless otherwise.
func EigenToPGR(e Eigen) PGR {
	return PGR{
		P: e.E1 - e.E2,
		G: 2 * (e.E2 - e.E3),
		R: 3 * e.E3,
	}
}

// PGRToEigen is the algebraic inverse of EigenToPGR.
func PGRToEigen(p PGR) Eigen {
	e3 := p.R / 3
	e2 := p.G/2 + e3
	e1 := p.P + e2
	return Eigen{E1: e1, E2: e2, E3: e3}
}

// Eigen returns the eigenvalues the index was derived from.
func (p PGR) Eigen() Eigen { return PGRToEigen(p) }

// Sum returns P+G+R.
func (p PGR) Sum() float64 { return p.P + p.G + p.R }

// Sum returns E1+E2+E3.
func (e Eigen) Sum() float64 { return e.E1 + e.E2 + e.E3 }

// Deviation returns the sum of squared differences between e and base.
func (e Eigen) Deviation(base Eigen) float64 {
	d1, d2, d3 := e.E1-base.E1, e.E2-base.E2, e.E3-base.E3
	return d1*d1 + d2*d2 + d3*d3
}

// Normalize sorts the eigenvalues descending and scales them to sum to one.
// An eigen-system summing to zero is returned unchanged.
func (e Eigen) Normalize() Eigen {
	v := []float64{e.E1, e.E2, e.E3}
	sort.Sort(sort.Reverse(sort.Float64Slice(v)))
	sum := v[0] + v[1] + v[2]
	if sum == 0 {
		return e
	}
	return Eigen{E1: v[0] / sum, E2: v[1] / sum, E3: v[2] / sum}
}
