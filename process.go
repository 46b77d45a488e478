package fabric

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/esimov/fabric/utils"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Processor : type with plotting options
type Processor struct {
	Size        int     `toml:"size"`
	Margin      int     `toml:"margin"`
	GridSize    int     `toml:"grid"`
	Tolerance   float64 `toml:"tolerance"`
	Mode        Mode    `toml:"mode"`
	Expected    Eigen   `toml:"expected"`
	Levels      int     `toml:"levels"`
	LineWidth   float64 `toml:"line_width"`
	PointRadius float64 `toml:"point_radius"`
	Labels      bool    `toml:"labels"`
	Colormap    string  `toml:"colormap"`
	Workers     int     `toml:"workers"`
}

// Result holds everything computed while drawing a plot.
type Result struct {
	PGR      []PGR
	Points   []Point
	Frame    Frame
	Grid     *Grid
	Contours []Contour
}

// DefaultProcessor returns the options of a 150x150 density plot.
func DefaultProcessor() *Processor {
	return &Processor{
		Size:        800,
		Margin:      40,
		GridSize:    150,
		Tolerance:   DefaultTolerance,
		Mode:        Density,
		Expected:    Isotropic,
		Levels:      8,
		LineWidth:   1,
		PointRadius: 3,
		Labels:      true,
		Colormap:    "viridis",
	}
}

func (p *Processor) colormap() (*Colormap, error) {
	if p.Colormap == "" {
		return Viridis, nil
	}
	cm, ok := Colormaps[p.Colormap]
	if !ok {
		return nil, fmt.Errorf("unknown colormap %q", p.Colormap)
	}
	return cm, nil
}

// toCanvas maps a plot coordinate onto the image, y pointing down.
func (p *Processor) toCanvas(pt Point) (float64, float64) {
	side := float64(p.Size - 2*p.Margin)
	x := float64(p.Margin) + (pt.X+1)/2*side
	y := float64(p.Margin) + (1-pt.Y)/2*side
	return x, y
}

// Draw plots the records over the density field of the processor's mode.
func (p *Processor) Draw(ctx context.Context, recs []Record) (image.Image, *Result, error) {
	if p.Size <= 2*p.Margin {
		return nil, nil, fmt.Errorf("image size %d too small for margin %d", p.Size, p.Margin)
	}
	cm, err := p.colormap()
	if err != nil {
		return nil, nil, err
	}

	ev := &Evaluator{
		N:         p.GridSize,
		Tolerance: p.Tolerance,
		Mode:      p.Mode,
		Expected:  p.Expected,
		Workers:   p.Workers,
	}
	grid, err := ev.Evaluate(ctx)
	if err != nil {
		return nil, nil, err
	}

	res := &Result{Grid: grid}
	res.PGR, res.Points, res.Frame = ConvertBatch(Eigens(recs))
	res.Contours = Contours(grid, Levels(grid, p.Levels))

	dc := gg.NewContext(p.Size, p.Size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	p.drawField(dc, grid, cm)
	p.drawContours(dc, res.Contours)
	p.drawFrame(dc, res.Frame)
	p.drawPoints(dc, recs, res.Points)
	if p.Labels {
		p.drawLabels(dc, res.Frame, grid)
	}
	return dc.Image(), res, nil
}

// Process reads the records, draws the plot and encodes it as PNG.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer, opts ...ReadOption) (*Result, error) {
	recs, err := ReadRecords(r, opts...)
	if err != nil {
		return nil, err
	}
	img, res, err := p.Draw(ctx, recs)
	if err != nil {
		return nil, err
	}
	if err := png.Encode(w, img); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *Processor) drawField(dc *gg.Context, g *Grid, cm *Colormap) {
	lo, hi := g.Range()
	if math.IsNaN(lo) {
		return
	}
	side := float64(p.Size - 2*p.Margin)
	cell := side / float64(g.N-1)
	for j := 0; j < g.N; j++ {
		for i := 0; i < g.N; i++ {
			x, y, z := g.At(i, j)
			if math.IsNaN(z) {
				continue
			}
			cx, cy := p.toCanvas(Point{X: x, Y: y})
			dc.DrawRectangle(cx-cell/2, cy-cell/2, cell, cell)
			dc.SetColor(cm.Scale(z, lo, hi))
			dc.Fill()
		}
	}
}

func (p *Processor) drawContours(dc *gg.Context, contours []Contour) {
	dc.SetRGBA(0, 0, 0, 0.6)
	dc.SetLineWidth(p.LineWidth)
	for _, c := range contours {
		for _, s := range c.Segments {
			x0, y0 := p.toCanvas(s[0])
			x1, y1 := p.toCanvas(s[1])
			dc.DrawLine(x0, y0, x1, y1)
		}
	}
	dc.Stroke()
}

func (p *Processor) drawFrame(dc *gg.Context, f Frame) {
	for i, pt := range f.Closed() {
		x, y := p.toCanvas(pt)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.SetColor(color.Black)
	dc.SetLineWidth(2 * p.LineWidth)
	dc.Stroke()
}

// drawPoints colors every sample by its weight.
func (p *Processor) drawPoints(dc *gg.Context, recs []Record, points []Point) {
	if len(points) == 0 || p.PointRadius <= 0 {
		return
	}
	weights := make([]float64, len(recs))
	for i, r := range recs {
		weights[i] = r.Weight
	}
	lo, hi := utils.Min(weights...), utils.Max(weights...)
	for i, pt := range points {
		x, y := p.toCanvas(pt)
		dc.DrawCircle(x, y, p.PointRadius)
		dc.SetColor(Gray.Scale(weights[i], lo, hi))
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.Stroke()
	}
}

func (p *Processor) drawLabels(dc *gg.Context, f Frame, g *Grid) {
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(color.Black)
	pad := float64(p.Margin) / 3

	x, y := p.toCanvas(f[0])
	dc.DrawStringAnchored("P", x-pad, y-pad, 0.5, 0.5)
	x, y = p.toCanvas(f[1])
	dc.DrawStringAnchored("G", x+pad, y-pad, 0.5, 0.5)
	x, y = p.toCanvas(f[2])
	dc.DrawStringAnchored("R", x, y+pad, 0.5, 0.5)

	lo, hi := g.Range()
	caption := fmt.Sprintf("%s  %.3f - %.3f", p.Mode, lo, hi)
	dc.DrawStringAnchored(caption, float64(p.Size)/2, float64(p.Size)-pad, 0.5, 0.5)
}
