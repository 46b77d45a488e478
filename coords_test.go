package fabric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
}

func TestPGRToCartesianApexes(t *testing.T) {
	h := math.Sqrt(3) / 2
	tests := []struct {
		name string
		pgr  PGR
		want Point
	}{
		{"point apex top-left", PGR{P: 1}, Point{X: -h, Y: 0.5}},
		{"girdle apex top-right", PGR{G: 1}, Point{X: h, Y: 0.5}},
		{"random apex bottom", PGR{R: 1}, Point{X: 0, Y: -1}},
		{"centroid", PGR{P: 1.0 / 3, G: 1.0 / 3, R: 1.0 / 3}, Point{X: 0, Y: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertPoint(t, tc.want, PGRToCartesian(tc.pgr))
		})
	}
}

func TestBarycentricToCartesianApexUp(t *testing.T) {
	down := BarycentricToCartesian(Barycentric{A: 0.2, B: 0.5, C: 0.3}, ApexDown)
	up := BarycentricToCartesian(Barycentric{A: 0.2, B: 0.5, C: 0.3}, ApexUp)
	assert.Equal(t, down.X, up.X)
	assert.Equal(t, down.Y, -up.Y)

	top := BarycentricToCartesian(Barycentric{A: 1}, ApexUp)
	assertPoint(t, Point{X: 0, Y: 1}, top)
}

func TestTriangleFrame(t *testing.T) {
	h := math.Sqrt(3) / 2

	down := TriangleFrame(ApexDown)
	assertPoint(t, Point{X: -h, Y: 0.5}, down[0])
	assertPoint(t, Point{X: h, Y: 0.5}, down[1])
	assertPoint(t, Point{X: 0, Y: -1}, down[2])

	up := TriangleFrame(ApexUp)
	assertPoint(t, Point{X: -h, Y: -0.5}, up[0])
	assertPoint(t, Point{X: h, Y: -0.5}, up[1])
	assertPoint(t, Point{X: 0, Y: 1}, up[2])

	for _, f := range []Frame{down, up} {
		for _, p := range f {
			assert.InDelta(t, 1, math.Hypot(p.X, p.Y), eps, "apex on the unit circle")
		}
	}
}

func TestFrameMatchesPGRApexes(t *testing.T) {
	f := TriangleFrame(ApexDown)
	assertPoint(t, f[0], PGRToCartesian(PGR{P: 1}))
	assertPoint(t, f[1], PGRToCartesian(PGR{G: 1}))
	assertPoint(t, f[2], PGRToCartesian(PGR{R: 1}))
}

func TestFrameClosed(t *testing.T) {
	f := TriangleFrame(ApexDown)
	loop := f.Closed()
	require.Len(t, loop, 4)
	assert.Equal(t, loop[0], loop[3])
}

func TestConvertBatch(t *testing.T) {
	eigs := []Eigen{
		Isotropic,
		{E1: 1},
		{E1: 0.6, E2: 0.3, E3: 0.1},
	}
	pgrs, points, frame := ConvertBatch(eigs)
	require.Len(t, pgrs, len(eigs))
	require.Len(t, points, len(eigs))
	assert.Equal(t, TriangleFrame(ApexDown), frame)

	for i, e := range eigs {
		assert.Equal(t, EigenToPGR(e), pgrs[i])
		assert.Equal(t, PGRToCartesian(pgrs[i]), points[i])
	}
	assertPoint(t, Point{X: 0, Y: -1}, points[0])

	pgrs, points, _ = ConvertBatch(nil)
	assert.Empty(t, pgrs)
	assert.Empty(t, points)
}

func TestApexString(t *testing.T) {
	assert.Equal(t, "down", ApexDown.String())
	assert.Equal(t, "up", ApexUp.String())
	assert.Equal(t, "unknown", Apex(5).String())
}
