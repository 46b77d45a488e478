package fabric

import "math"

// Segment is a piece of an isoline.
type Segment [2]Point

// Contour holds the isoline segments of one level.
type Contour struct {
	Level    float64
	Segments []Segment
}

// Levels returns k levels evenly spread strictly inside the grid range.
// It returns nil when the grid holds no finite value or k < 1.
func Levels(g *Grid, k int) []float64 {
	lo, hi := g.Range()
	if k < 1 || math.IsNaN(lo) || hi <= lo {
		return nil
	}
	step := (hi - lo) / float64(k+1)
	levels := make([]float64, k)
	for i := range levels {
		levels[i] = lo + float64(i+1)*step
	}
	return levels
}

// Contours extracts the isolines of the grid with marching squares.
// Cells with a NaN corner are skipped, so the lines stop at the triangle edge.
func Contours(g *Grid, levels []float64) []Contour {
	contours := make([]Contour, 0, len(levels))
	for _, level := range levels {
		c := Contour{Level: level}
		for j := 0; j < g.N-1; j++ {
			for i := 0; i < g.N-1; i++ {
				c.Segments = appendCell(c.Segments, g, i, j, level)
			}
		}
		contours = append(contours, c)
	}
	return contours
}

// appendCell adds the isoline segments crossing cell (i, j).
func appendCell(segs []Segment, g *Grid, i, j int, level float64) []Segment {
	// corners counterclockwise from the bottom left one
	p := [4]Point{
		{X: g.X[i], Y: g.Y[j]},
		{X: g.X[i+1], Y: g.Y[j]},
		{X: g.X[i+1], Y: g.Y[j+1]},
		{X: g.X[i], Y: g.Y[j+1]},
	}
	v := [4]float64{g.Z[j][i], g.Z[j][i+1], g.Z[j+1][i+1], g.Z[j+1][i]}

	var index int
	for k, z := range v {
		if math.IsNaN(z) {
			return segs
		}
		if z >= level {
			index |= 1 << k
		}
	}
	if index == 0 || index == 15 {
		return segs
	}

	// edge k joins corner k and corner k+1
	var cross [4]Point
	var hit [4]bool
	for k := 0; k < 4; k++ {
		a, b := k, (k+1)%4
		if (v[a] >= level) != (v[b] >= level) {
			t := (level - v[a]) / (v[b] - v[a])
			cross[k] = Point{
				X: p[a].X + t*(p[b].X-p[a].X),
				Y: p[a].Y + t*(p[b].Y-p[a].Y),
			}
			hit[k] = true
		}
	}

	switch index {
	case 5, 10:
		// saddle, disambiguated by the cell average
		center := (v[0] + v[1] + v[2] + v[3]) / 4
		if (index == 5) == (center >= level) {
			return append(segs, Segment{cross[0], cross[1]}, Segment{cross[2], cross[3]})
		}
		return append(segs, Segment{cross[0], cross[3]}, Segment{cross[1], cross[2]})
	}

	var ends []Point
	for k := 0; k < 4; k++ {
		if hit[k] {
			ends = append(ends, cross[k])
		}
	}
	return append(segs, Segment{ends[0], ends[1]})
}
