package fabric

import (
	"fmt"
	"image/color"
	"math"

	"github.com/esimov/fabric/utils"
	"github.com/lucasb-eyer/go-colorful"
)

// Colormap maps the unit interval onto colors by blending evenly spaced
// stops in the CIE L*a*b* space.
type Colormap struct {
	Name  string
	Stops []colorful.Color
}

// NewColormap builds a map from hex color stops. It panics on a malformed stop.
func NewColormap(name string, hex ...string) *Colormap {
	cm := &Colormap{Name: name, Stops: make([]colorful.Color, len(hex))}
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("colormap %s: %v", name, err))
		}
		cm.Stops[i] = c
	}
	return cm
}

var (
	// Viridis is matplotlib's perceptually uniform map sampled every eighth.
	Viridis = NewColormap("viridis",
		"#440154", "#472d7b", "#3b528b", "#2c728e", "#21918c",
		"#28ae80", "#5ec962", "#addc30", "#fde725",
	)
	// Gray goes from white to black.
	Gray = NewColormap("gray", "#ffffff", "#000000")
)

// Colormaps lists the maps selectable by name.
var Colormaps = map[string]*Colormap{
	Viridis.Name: Viridis,
	Gray.Name:    Gray,
}

// At returns the color at t. Values outside [0, 1] are clamped,
// NaN gives a transparent color.
func (c *Colormap) At(t float64) color.NRGBA {
	if math.IsNaN(t) || len(c.Stops) == 0 {
		return color.NRGBA{}
	}
	t = utils.Clamp(t, 0, 1)
	pos := t * float64(len(c.Stops)-1)
	i := int(pos)
	col := c.Stops[len(c.Stops)-1]
	if f := pos - float64(i); i < len(c.Stops)-1 {
		col = c.Stops[i]
		if f > 0 {
			col = col.BlendLab(c.Stops[i+1], f).Clamped()
		}
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Scale returns the color of v within the [lo, hi] range.
func (c *Colormap) Scale(v, lo, hi float64) color.NRGBA {
	if hi <= lo {
		return c.At(0)
	}
	return c.At((v - lo) / (hi - lo))
}
