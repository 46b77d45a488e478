package fabric

import "math"

// Apex selects on which side of the plot the single apex of the triangle lies.
type Apex int

const (
	// ApexDown puts the R apex at the bottom, P top-left and G top-right.
	ApexDown Apex = iota
	// ApexUp mirrors ApexDown around the horizontal axis.
	ApexUp
)

func (a Apex) String() string {
	switch a {
	case ApexDown:
		return "down"
	case ApexUp:
		return "up"
	}
	return "unknown"
}

// scale and offset inscribe the barycentric triangle into the unit circumcircle.
const (
	scale  = 1.5
	offset = 0.5
)

var sqrt3 = math.Sqrt(3)

// Point is a plot coordinate inside [-1, 1]x[-1, 1].
type Point struct {
	X, Y float64
}

// Frame holds the triangle apexes in top-left, top-right, bottom order
// (for ApexDown; the order is kept when the triangle is mirrored).
type Frame [3]Point

// Closed returns the apexes with the first one repeated at the end,
// ready to be stroked as a closed polyline.
func (f Frame) Closed() []Point {
	return []Point{f[0], f[1], f[2], f[0]}
}

// BarycentricToCartesian maps a barycentric coordinate onto the plot.
// A weights the single apex, B the left one and C the right one.
func BarycentricToCartesian(b Barycentric, apex Apex) Point {
	x := (1 - b.A - 2*b.B) / sqrt3 * scale
	y := b.A*scale - offset
	if apex == ApexDown {
		y = -y
	}
	return Point{X: x, Y: y}
}

// PGRToCartesian places a PGR index on an apex down plot:
// R at the bottom, P top-left and G top-right.
func PGRToCartesian(p PGR) Point {
	return BarycentricToCartesian(Barycentric{A: p.R, B: p.P, C: p.G}, ApexDown)
}

// TriangleFrame returns the apexes of the equilateral triangle
// inscribed in the unit circle centred at the origin.
// ApexDown gives (-√3/2, 0.5), (√3/2, 0.5), (0, -1), the corners PGRToCartesian
// reaches for pure P, G and R; ApexUp negates every y.
func TriangleFrame(apex Apex) Frame {
	f := Frame{
		{X: -sqrt3 / 2, Y: 0.5},
		{X: sqrt3 / 2, Y: 0.5},
		{X: 0, Y: -1},
	}
	if apex == ApexUp {
		for i := range f {
			f[i].Y = -f[i].Y
		}
	}
	return f
}

// ConvertBatch converts every eigen-system to its PGR index and plot point,
// keeping the input order. The apex down frame is returned once.
func ConvertBatch(eigs []Eigen) ([]PGR, []Point, Frame) {
	pgrs := make([]PGR, len(eigs))
	points := make([]Point, len(eigs))
	for i, e := range eigs {
		pgrs[i] = EigenToPGR(e)
		points[i] = PGRToCartesian(pgrs[i])
	}
	return pgrs, points, TriangleFrame(ApexDown)
}
