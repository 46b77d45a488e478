package fabric

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/esimov/fabric/utils"
	"golang.org/x/sync/errgroup"
)

// Grid is a regular n x n lattice over [-1, 1]x[-1, 1] holding one fabric
// index per node. Z is indexed row first: Z[j][i] belongs to (X[i], Y[j]).
// Nodes outside the triangle hold NaN.
type Grid struct {
	N    int
	X, Y []float64
	Z    [][]float64
}

// At returns the coordinates and the value of node (i, j).
func (g *Grid) At(i, j int) (x, y, z float64) {
	return g.X[i], g.Y[j], g.Z[j][i]
}

// Valid returns the number of nodes lying on the triangle.
func (g *Grid) Valid() int {
	var n int
	for _, row := range g.Z {
		for _, z := range row {
			if !math.IsNaN(z) {
				n++
			}
		}
	}
	return n
}

// Range returns the smallest and biggest value of the grid, ignoring NaN.
// Both are NaN when no node lies on the triangle.
func (g *Grid) Range() (lo, hi float64) {
	values := make([]float64, 0, g.N*g.N)
	for _, row := range g.Z {
		for _, z := range row {
			if !math.IsNaN(z) {
				values = append(values, z)
			}
		}
	}
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	return utils.Min(values...), utils.Max(values...)
}

// Evaluator holds the options of a density grid evaluation.
type Evaluator struct {
	N         int
	Tolerance float64
	Mode      Mode
	Expected  Eigen
	// Workers bounds the number of rows evaluated at once.
	// Zero means runtime.NumCPU, one evaluates sequentially.
	Workers int
}

// NewEvaluator returns an Evaluator with the reference tolerance
// and the isotropic protolith.
func NewEvaluator(n int, mode Mode) *Evaluator {
	return &Evaluator{
		N:         n,
		Tolerance: DefaultTolerance,
		Mode:      mode,
		Expected:  Isotropic,
	}
}

func (ev *Evaluator) validate() error {
	if ev.N < 2 {
		return fmt.Errorf("%w: got %d", ErrGridSize, ev.N)
	}
	if !ev.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(ev.Mode))
	}
	if ev.Tolerance < 0 || math.IsNaN(ev.Tolerance) {
		return fmt.Errorf("%w: got %v", ErrTolerance, ev.Tolerance)
	}
	return nil
}

// Evaluate computes the grid. Rows are independent and are spread over
// the workers; the result does not depend on the number of workers.
func (ev *Evaluator) Evaluate(ctx context.Context) (*Grid, error) {
	if err := ev.validate(); err != nil {
		return nil, err
	}
	n := ev.N
	g := &Grid{
		N: n,
		X: linspace(-1, 1, n),
		Y: linspace(-1, 1, n),
		Z: make([][]float64, n),
	}

	workers := ev.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for j := 0; j < n; j++ {
		j := j
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := make([]float64, n)
			for i, x := range g.X {
				row[i] = DensityAt(x, g.Y[j], ev.Tolerance, ev.Mode, ev.Expected)
			}
			g.Z[j] = row
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return g, nil
}

// EvaluateGrid evaluates the fabric index on an n x n grid sequentially.
func EvaluateGrid(n int, tol float64, mode Mode, expected Eigen) (*Grid, error) {
	ev := &Evaluator{N: n, Tolerance: tol, Mode: mode, Expected: expected, Workers: 1}
	return ev.Evaluate(context.Background())
}

// linspace returns n evenly spaced samples from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	s := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range s {
		s[i] = lo + float64(i)*step
	}
	s[n-1] = hi
	return s
}
